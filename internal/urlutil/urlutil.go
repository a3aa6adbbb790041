// Package urlutil extracts the owner and repository name from git remote URLs.
//
// Three forms are understood:
//   - HTTPS: https://github.com/owner/repo
//   - SSH colon: git@github.com:owner/repo
//   - SSH protocol: ssh://git@github.com/owner/repo
//
// A trailing ".git" and trailing slashes are ignored.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnsupportedRemote is returned for URLs that do not name an owner and a repository.
var ErrUnsupportedRemote = errors.New("unsupported remote URL")

// Remote is a parsed remote URL.
type Remote struct {
	Host  string
	Owner string
	Repo  string
}

// FullName returns "owner/repo".
func (r Remote) FullName() string {
	return r.Owner + "/" + r.Repo
}

// ParseRemote parses a git remote URL. Hosts with nested namespaces keep
// everything but the last component as the owner.
//
// Examples:
//
//	ParseRemote("git@github.com:owner/repo.git")         → {github.com owner repo}
//	ParseRemote("https://gitlab.com/group/sub/project")  → {gitlab.com group/sub project}
func ParseRemote(remote string) (Remote, error) {
	raw := strings.TrimSpace(remote)
	if raw == "" {
		return Remote{}, fmt.Errorf("%w: empty", ErrUnsupportedRemote)
	}

	var host, path string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, fmt.Errorf("%w: %w", ErrUnsupportedRemote, err)
		}
		host, path = u.Hostname(), u.Path
	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		// scp-like syntax: user@host:path
		userHost, p, _ := strings.Cut(raw, ":")
		_, host, _ = strings.Cut(userHost, "@")
		path = p
	default:
		return Remote{}, fmt.Errorf("%w: %q", ErrUnsupportedRemote, raw)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	idx := strings.LastIndex(path, "/")
	if host == "" || idx <= 0 || idx == len(path)-1 {
		return Remote{}, fmt.Errorf("%w: %q", ErrUnsupportedRemote, raw)
	}

	return Remote{
		Host:  strings.TrimPrefix(host, "www."),
		Owner: path[:idx],
		Repo:  path[idx+1:],
	}, nil
}
