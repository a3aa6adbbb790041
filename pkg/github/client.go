package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/cikit/internal/security"
	"github.com/sgaunet/cikit/pkg/apierrors"
	"golang.org/x/oauth2"
)

// NewClient creates a go-github client authenticated with token.
// An empty token is a BadCredentials error.
func NewClient(ctx context.Context, token security.SecureToken) (*github.Client, error) {
	if token.IsEmpty() {
		return nil, apierrors.NewBadCredentialsError("GitHub token is required")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token.Value()},
	)
	return github.NewClient(oauth2.NewClient(ctx, ts)), nil
}

// NewIssueUpdateRequest builds, without sending, the PATCH request applying
// update to an issue or pull request. Unlike go-github's IssueRequest, the
// body keeps explicit nulls. Send it with client.Do.
func NewIssueUpdateRequest(
	client *github.Client,
	owner, repo string,
	number int,
	update IssueUpdate,
) (*http.Request, error) {
	if number <= 0 {
		return nil, apierrors.NewPullRequestError(fmt.Sprintf("%s: %d", errInvalidIssueNumber, number))
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("repos/%s/%s/issues/%d", url.PathEscape(owner), url.PathEscape(repo), number)
	req, err := client.NewRequest(http.MethodPatch, path, update)
	if err != nil {
		return nil, fmt.Errorf("failed to build issue update request: %w", err)
	}
	return req, nil
}
