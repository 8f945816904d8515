package model

// UserIdentity is the resolved session identity supplied by the Auth/Profile service.
// It is read-only input to validation and submission.
type UserIdentity struct {
	Email          string
	GithubUsername string
	HasGithubToken bool
}

// GithubConfigured reports whether the user may attach a PR link.
func (u UserIdentity) GithubConfigured() bool {
	return u.HasGithubToken && u.GithubUsername != ""
}
