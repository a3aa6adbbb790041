package security

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	githubTokenRegex *regexp.Regexp
	nugetKeyRegex    *regexp.Regexp
	bearerTokenRegex *regexp.Regexp
	authHeaderRegex  *regexp.Regexp
	objectIDRegex    *regexp.Regexp
	regexOnce        sync.Once

	sensitiveKeys = []string{
		"token", "password", "secret", "api_key", "apikey",
		"auth", "credential", "consumer_key",
	}
)

func compileRegexPatterns() {
	regexOnce.Do(func() {
		// Classic and fine-grained GitHub tokens: ghp_/gho_/ghs_/ghu_/ghr_, github_pat_.
		githubTokenRegex = regexp.MustCompile(`(?:gh[opsur]_[a-zA-Z0-9]{20,}|github_pat_[a-zA-Z0-9_]{20,})`)

		// NuGet.org API keys are 46 lowercase base32 characters starting with oy2.
		nugetKeyRegex = regexp.MustCompile(`\boy2[a-z0-9]{43}\b`)

		// Twitter bearer tokens and other long base64-like strings.
		bearerTokenRegex = regexp.MustCompile(`\b[A-Za-z0-9+/=%]{40,200}\b`)

		authHeaderRegex = regexp.MustCompile(`(?i)authorization:\s*(?:bearer|basic|token|oauth)\s+[a-zA-Z0-9+/=_\-",.]{10,}`)

		// SHA-1 and SHA-256 git object ids.
		objectIDRegex = regexp.MustCompile(`^(?:[0-9a-f]{40}|[0-9a-f]{64})$`)
	})
}

// SanitizeString redacts GitHub tokens, NuGet API keys, authorization headers
// and generic bearer tokens from s. Git object ids are kept.
//
// Safe for concurrent use.
func SanitizeString(s string) string {
	s = SanitizeCredentials(s)

	// Generic pass last, and only when nothing more specific matched.
	if strings.Contains(s, "-redacted]") || strings.Contains(s, "Authorization: [redacted]") {
		return s
	}
	return bearerTokenRegex.ReplaceAllStringFunc(s, func(match string) string {
		if objectIDRegex.MatchString(match) {
			return match
		}
		return "[token-redacted]"
	})
}

// SanitizeCredentials redacts only recognizable credentials: GitHub tokens,
// NuGet API keys and authorization headers. Use it on text that legitimately
// carries long identifiers, such as API error messages naming commits or
// branches.
//
// Safe for concurrent use.
func SanitizeCredentials(s string) string {
	compileRegexPatterns()

	s = githubTokenRegex.ReplaceAllString(s, "[github-token-redacted]")
	s = nugetKeyRegex.ReplaceAllString(s, "[nuget-key-redacted]")
	return authHeaderRegex.ReplaceAllString(s, "Authorization: [redacted]")
}

// SanitizeError wraps an error with [SanitizeString] applied to its message.
// Returns nil if err is nil. The original chain is not preserved.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", errSanitized, SanitizeString(err.Error()))
}

// SanitizeMap redacts values whose keys look sensitive and passes other
// string values through [SanitizeString]. Returns nil if m is nil.
func SanitizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		if isSensitiveKey(k) {
			result[k] = maskRedacted
			continue
		}
		if str, ok := v.(string); ok {
			result[k] = SanitizeString(str)
		} else {
			result[k] = v
		}
	}
	return result
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, sensitiveKey := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitiveKey) {
			return true
		}
	}
	return false
}
