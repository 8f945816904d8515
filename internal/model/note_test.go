package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pr-notes/internal/model"
)

func TestParsePRState(t *testing.T) {
	tests := map[string]model.PRState{
		"open":    model.PRStateOpen,
		"closed":  model.PRStateClosed,
		"merged":  model.PRStateMerged,
		"":        model.PRStateUnknown,
		"draft":   model.PRStateUnknown,
		"unknown": model.PRStateUnknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, model.ParsePRState(in), in)
	}
}

func TestPRStateBadgeAndFilter(t *testing.T) {
	assert.Equal(t, "success", model.PRStateOpen.BadgeClass())
	assert.Equal(t, "danger", model.PRStateClosed.BadgeClass())
	assert.Equal(t, "primary", model.PRStateMerged.BadgeClass())
	assert.Equal(t, "secondary", model.PRStateUnknown.BadgeClass())

	assert.True(t, model.PRStateMerged.IsFilter())
	assert.False(t, model.PRStateUnknown.IsFilter())
}

func TestGithubConfigured(t *testing.T) {
	assert.True(t, model.UserIdentity{GithubUsername: "dev", HasGithubToken: true}.GithubConfigured())
	assert.False(t, model.UserIdentity{GithubUsername: "dev"}.GithubConfigured())
	assert.False(t, model.UserIdentity{HasGithubToken: true}.GithubConfigured())
}

func TestPRLinkRepo(t *testing.T) {
	assert.Equal(t, "acme/widget", model.PRLink{Number: 1, RepoOwner: "acme", RepoName: "widget"}.Repo())
}
