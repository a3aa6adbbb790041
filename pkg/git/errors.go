package git

import "errors"

var (
	errDetachedHead   = errors.New("HEAD is not pointing to a branch")
	errBranchNotFound = errors.New("branch not found")
	errNoRemoteURL    = errors.New("no URLs found for remote")
	errEmptyBranch    = errors.New("branch name is required")

	// ErrBranchNotFound is returned when a branch does not exist locally.
	ErrBranchNotFound = errBranchNotFound
	// ErrDetachedHead is returned by CurrentBranch on a detached HEAD.
	ErrDetachedHead = errDetachedHead
)
