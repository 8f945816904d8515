package note

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"pr-notes/internal/model"
)

// MaxTitleLength is the maximum title length in characters.
const MaxTitleLength = 255

// ValidationCode identifies one local validation failure.
type ValidationCode string

const (
	CodeTitleRequired              ValidationCode = "title_required"
	CodeTitleTooLong               ValidationCode = "title_too_long"
	CodeContentRequired            ValidationCode = "content_required"
	CodeGithubProfileNotConfigured ValidationCode = "github_profile_not_configured"
	CodeIncompletePRLink           ValidationCode = "incomplete_pr_link"
	CodeInvalidPRNumber            ValidationCode = "invalid_pr_number"
)

// ValidationError is a local, pre-network validation failure.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e ValidationError) Error() string { return e.Message }

var (
	ErrTitleRequired              = ValidationError{CodeTitleRequired, "Title is required"}
	ErrTitleTooLong               = ValidationError{CodeTitleTooLong, "Title must be at most 255 characters"}
	ErrContentRequired            = ValidationError{CodeContentRequired, "Content is required"}
	ErrGithubProfileNotConfigured = ValidationError{CodeGithubProfileNotConfigured, "Please configure your GitHub profile to use PR integration"}
	ErrIncompletePRLink           = ValidationError{CodeIncompletePRLink, "All GitHub PR fields (PR number, repository owner, and repository name) are required when using PR integration"}
	ErrInvalidPRNumber            = ValidationError{CodeInvalidPRNumber, "PR number must be a positive integer"}
)

// ValidationErrors collects every rule a draft violates, in rule order.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether code is among the collected errors.
func (es ValidationErrors) Has(code ValidationCode) bool {
	for _, e := range es {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Codes returns the codes of the collected errors.
func (es ValidationErrors) Codes() []ValidationCode {
	codes := make([]ValidationCode, len(es))
	for i, e := range es {
		codes[i] = e.Code
	}
	return codes
}

// Draft is the editable, unsaved form state of a note. All fields are raw user input.
type Draft struct {
	Title     string
	Content   string
	PRNumber  string
	RepoOwner string
	RepoName  string
}

// DraftFromNote seeds a draft from a fetched note.
func DraftFromNote(n model.Note) Draft {
	d := Draft{Title: n.Title, Content: n.Content}
	if n.PRLink != nil {
		d.PRNumber = strconv.Itoa(n.PRLink.Number)
		d.RepoOwner = n.PRLink.RepoOwner
		d.RepoName = n.PRLink.RepoName
	}
	return d
}

// HasPRFields reports whether any PR field holds non-blank input.
func (d Draft) HasPRFields() bool {
	return strings.TrimSpace(d.PRNumber) != "" ||
		strings.TrimSpace(d.RepoOwner) != "" ||
		strings.TrimSpace(d.RepoName) != ""
}

// Payload is the normalised body sent to the Note Store on create or update.
// PRLink is nil when the draft carried no PR fields.
type Payload struct {
	Title   string
	Content string
	PRLink  *model.PRLink
}

// CanSubmit validates d for a new note.
func CanSubmit(d Draft, identity model.UserIdentity) (Payload, error) {
	return Validate(d, identity, nil)
}

// Validate evaluates every rule against d and returns either the normalised payload
// or ValidationErrors holding all violations.
//
// existing is the PR link the note already carries (edit mode). Keeping it unchanged, or
// clearing it, does not require a configured GitHub profile; only a new or modified link does.
func Validate(d Draft, identity model.UserIdentity, existing *model.PRLink) (Payload, error) {
	var errs ValidationErrors

	title := strings.TrimSpace(d.Title)
	content := strings.TrimSpace(d.Content)
	number := strings.TrimSpace(d.PRNumber)
	owner := strings.TrimSpace(d.RepoOwner)
	repo := strings.TrimSpace(d.RepoName)

	if title == "" {
		errs = append(errs, ErrTitleRequired)
	} else if utf8.RuneCountInString(title) > MaxTitleLength {
		errs = append(errs, ErrTitleTooLong)
	}

	if content == "" {
		errs = append(errs, ErrContentRequired)
	}

	prNumber, numberErr := strconv.Atoi(number)
	validNumber := numberErr == nil && prNumber > 0

	anyPR := number != "" || owner != "" || repo != ""
	if anyPR {
		unchanged := existing != nil && validNumber &&
			existing.Number == prNumber && existing.RepoOwner == owner && existing.RepoName == repo
		if !identity.GithubConfigured() && !unchanged {
			errs = append(errs, ErrGithubProfileNotConfigured)
		}
		if number == "" || owner == "" || repo == "" {
			errs = append(errs, ErrIncompletePRLink)
		}
	}

	if number != "" && !validNumber {
		errs = append(errs, ErrInvalidPRNumber)
	}

	if len(errs) > 0 {
		return Payload{}, errs
	}

	p := Payload{Title: title, Content: content}
	if anyPR {
		p.PRLink = &model.PRLink{Number: prNumber, RepoOwner: owner, RepoName: repo}
	}
	return p, nil
}
