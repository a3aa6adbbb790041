// Package github provides the GitHub REST and GraphQL payload shapes used by
// the CI/CD automation layer, plus helpers bridging them to go-github.
package github

import "errors"

// Error definitions for GitHub payload handling.
var (
	errUnknownState         = errors.New("unknown issue state")
	errUnknownStateReason   = errors.New("unknown state reason")
	errEmptyTitle           = errors.New("title cannot be empty")
	errEmptyMilestoneName   = errors.New("milestone name cannot be empty")
	errInvalidMilestone     = errors.New("milestone number must be positive")
	errMilestoneByName      = errors.New("milestone must be resolved to a number")
	errNullNotRepresentable = errors.New("explicit null cannot be expressed with go-github IssueRequest")
	errInvalidTitle         = errors.New("title must be a string or a number")
	errInvalidMilestoneRef  = errors.New("milestone must be a number, a name or null")
	errMalformedLinkHeader  = errors.New("malformed Link header")
	errInvalidIssueNumber   = errors.New("issue number must be positive")

	// ErrMalformedLinkHeader is returned when a Link header cannot be parsed.
	ErrMalformedLinkHeader = errMalformedLinkHeader
	// ErrNullNotRepresentable is returned when an update clears a field that
	// go-github's IssueRequest cannot send as null.
	ErrNullNotRepresentable = errNullNotRepresentable
	// ErrMilestoneByName is returned when converting an update whose milestone
	// is still a name.
	ErrMilestoneByName = errMilestoneByName
)
