// Package git reads the local repository state a CI job needs: the current
// branch, the commit a branch points to, release tags and the GitHub remote.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sgaunet/cikit/internal/urlutil"
	ghpkg "github.com/sgaunet/cikit/pkg/github"
	"github.com/sgaunet/cikit/pkg/version"
)

// DefaultRemote is the remote inspected when none is given.
const DefaultRemote = "origin"

// Repository wraps a go-git repository.
type Repository struct {
	repo *git.Repository
}

// OpenRepository opens the repository containing path, searching parent
// directories for the .git entry.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo}, nil
}

// CurrentBranch returns the short name of the checked out branch.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", errDetachedHead
	}

	return head.Name().Short(), nil
}

// BranchTarget returns the commit a local branch points to, shaped like the
// GraphQL ref target so local and remote state compare directly.
func (r *Repository) BranchTarget(branch string) (ghpkg.BranchTarget, error) {
	if branch == "" {
		return ghpkg.BranchTarget{}, errEmptyBranch
	}

	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return ghpkg.BranchTarget{}, fmt.Errorf("%w: %s", errBranchNotFound, branch)
		}
		return ghpkg.BranchTarget{}, fmt.Errorf("failed to resolve branch %s: %w", branch, err)
	}

	return ghpkg.BranchTarget{OID: ref.Hash().String()}, nil
}

// Tags returns the short names of all tags.
func (r *Repository) Tags() ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}

// LatestReleaseTag returns the highest production tag, or the highest
// production or preview tag when includePreview is set. The boolean is false
// when no tag qualifies.
func (r *Repository) LatestReleaseTag(includePreview bool) (string, bool, error) {
	tags, err := r.Tags()
	if err != nil {
		return "", false, err
	}
	tag, ok := version.Latest(tags, includePreview)
	return tag, ok, nil
}

// RemoteURL returns the first URL of the named remote.
func (r *Repository) RemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w %s", errNoRemoteURL, remoteName)
	}

	return urls[0], nil
}

// Remote returns the owner and repository name of the named remote.
func (r *Repository) Remote(remoteName string) (urlutil.Remote, error) {
	raw, err := r.RemoteURL(remoteName)
	if err != nil {
		return urlutil.Remote{}, err
	}
	remote, err := urlutil.ParseRemote(raw)
	if err != nil {
		return urlutil.Remote{}, fmt.Errorf("remote %s: %w", remoteName, err)
	}
	return remote, nil
}
