// Package apierrors provides the categorized errors raised by CI/CD automation
// when GitHub, NuGet or Twitter calls fail.
//
// Every failure is an [*Error] tagged with a [Category] naming the subsystem
// that produced it. Catch sites branch on the category, never on the message:
//
//	switch {
//	case errors.Is(err, apierrors.ErrMilestone):
//	    // ...
//	case apierrors.IsUsers(err):
//	    var apiErr *apierrors.Error
//	    errors.As(err, &apiErr)
//	    if apiErr.HasStatusCode() && apiErr.StatusCode == http.StatusNotFound {
//	        // ...
//	    }
//	}
package apierrors

import (
	"errors"
	"fmt"
)

// Category names the subsystem a failure originated from.
type Category string

// Supported categories.
const (
	CategoryBadCredentials Category = "BadCredentials"
	CategoryMilestone      Category = "Milestone"
	CategoryNuGet          Category = "NuGet"
	CategoryOrganization   Category = "Organization"
	CategoryProject        Category = "Project"
	CategoryPullRequest    Category = "PullRequest"
	CategoryUsers          Category = "Users"
	CategoryWorkflow       Category = "Workflow"
)

// StatusUnspecified is the status code of a Users error built without one.
const StatusUnspecified = 0

// Category sentinels, matched with errors.Is.
var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrMilestone      = errors.New("milestone error")
	ErrNuGet          = errors.New("nuget error")
	ErrOrganization   = errors.New("organization error")
	ErrProject        = errors.New("project error")
	ErrPullRequest    = errors.New("pull request error")
	ErrUsers          = errors.New("users error")
	ErrWorkflow       = errors.New("workflow error")
)

var sentinels = map[Category]error{
	CategoryBadCredentials: ErrBadCredentials,
	CategoryMilestone:      ErrMilestone,
	CategoryNuGet:          ErrNuGet,
	CategoryOrganization:   ErrOrganization,
	CategoryProject:        ErrProject,
	CategoryPullRequest:    ErrPullRequest,
	CategoryUsers:          ErrUsers,
	CategoryWorkflow:       ErrWorkflow,
}

// Categories returns every category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryBadCredentials,
		CategoryMilestone,
		CategoryNuGet,
		CategoryOrganization,
		CategoryProject,
		CategoryPullRequest,
		CategoryUsers,
		CategoryWorkflow,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := sentinels[c]
	return ok
}

// Sentinel returns the errors.Is target for c, or nil for unknown categories.
func (c Category) Sentinel() error {
	return sentinels[c]
}

// Error is a categorized failure. It is never mutated after construction.
type Error struct {
	Category Category
	Message  string
	// StatusCode is only set for the Users category.
	StatusCode int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.HasStatusCode() {
		return fmt.Sprintf("%s (%d): %s", e.Category, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap exposes the category sentinel so errors.Is works on wrapped errors.
func (e *Error) Unwrap() error {
	return e.Category.Sentinel()
}

// HasStatusCode reports whether an HTTP status code was supplied. 0 is never
// a real HTTP status, so StatusUnspecified always means none was given.
func (e *Error) HasStatusCode() bool {
	return e.StatusCode != StatusUnspecified
}

func newError(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

// NewBadCredentialsError reports missing or rejected credentials.
func NewBadCredentialsError(message string) *Error {
	return newError(CategoryBadCredentials, message)
}

// NewMilestoneError reports a milestone lookup or update failure.
func NewMilestoneError(message string) *Error {
	return newError(CategoryMilestone, message)
}

// NewNuGetError reports a NuGet feed failure.
func NewNuGetError(message string) *Error {
	return newError(CategoryNuGet, message)
}

// NewOrganizationError reports an organization lookup failure.
func NewOrganizationError(message string) *Error {
	return newError(CategoryOrganization, message)
}

// NewProjectError reports a project (board) failure.
func NewProjectError(message string) *Error {
	return newError(CategoryProject, message)
}

// NewPullRequestError reports a pull request or issue failure.
func NewPullRequestError(message string) *Error {
	return newError(CategoryPullRequest, message)
}

// NewWorkflowError reports a workflow run failure.
func NewWorkflowError(message string) *Error {
	return newError(CategoryWorkflow, message)
}

// NewUsersError reports a user lookup failure without a status code.
func NewUsersError(message string) *Error {
	return newError(CategoryUsers, message)
}

// NewUsersErrorWithStatus reports a user lookup failure with the HTTP status
// code returned by the API. A statusCode of StatusUnspecified (0) is not a
// real HTTP status and yields the same error as NewUsersError.
func NewUsersErrorWithStatus(message string, statusCode int) *Error {
	e := newError(CategoryUsers, message)
	e.StatusCode = statusCode
	return e
}

// New builds an error for an arbitrary category. Unknown categories are
// kept as given; errors.Is then matches no sentinel.
func New(category Category, message string) *Error {
	return newError(category, message)
}

// CategoryOf returns the category of the first *Error in err's chain.
func CategoryOf(err error) (Category, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Category, true
	}
	return "", false
}

// IsBadCredentials reports whether err is a BadCredentials error.
func IsBadCredentials(err error) bool { return errors.Is(err, ErrBadCredentials) }

// IsMilestone reports whether err is a Milestone error.
func IsMilestone(err error) bool { return errors.Is(err, ErrMilestone) }

// IsNuGet reports whether err is a NuGet error.
func IsNuGet(err error) bool { return errors.Is(err, ErrNuGet) }

// IsOrganization reports whether err is an Organization error.
func IsOrganization(err error) bool { return errors.Is(err, ErrOrganization) }

// IsProject reports whether err is a Project error.
func IsProject(err error) bool { return errors.Is(err, ErrProject) }

// IsPullRequest reports whether err is a PullRequest error.
func IsPullRequest(err error) bool { return errors.Is(err, ErrPullRequest) }

// IsUsers reports whether err is a Users error.
func IsUsers(err error) bool { return errors.Is(err, ErrUsers) }

// IsWorkflow reports whether err is a Workflow error.
func IsWorkflow(err error) bool { return errors.Is(err, ErrWorkflow) }
