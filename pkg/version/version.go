// Package version validates and orders release tags.
//
// Two tag shapes are recognized:
//   - production: v<major>.<minor>.<patch>, e.g. v1.4.0
//   - preview:    v<major>.<minor>.<patch>-preview.<n>, e.g. v1.4.0-preview.2
//
// Validation trims surrounding whitespace and ignores the case of the leading v.
// A production tag is never a preview tag and vice versa.
package version

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	productionRegex = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)
	previewRegex    = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)-preview\.(\d+)$`)
)

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidProductionVersion reports whether s is a production tag.
func IsValidProductionVersion(s string) bool {
	return productionRegex.MatchString(Normalize(s))
}

// IsInvalidProductionVersion is the negation of IsValidProductionVersion.
func IsInvalidProductionVersion(s string) bool {
	return !IsValidProductionVersion(s)
}

// IsValidPreviewVersion reports whether s is a preview tag.
func IsValidPreviewVersion(s string) bool {
	return previewRegex.MatchString(Normalize(s))
}

// IsInvalidPreviewVersion is the negation of IsValidPreviewVersion.
func IsInvalidPreviewVersion(s string) bool {
	return !IsValidPreviewVersion(s)
}

// canonical rewrites a valid tag into strict semver form, dropping leading
// zeros that semver rejects. It returns "" for anything else.
func canonical(s string) string {
	s = Normalize(s)
	if m := productionRegex.FindStringSubmatch(s); m != nil {
		return "v" + trimZeros(m[1]) + "." + trimZeros(m[2]) + "." + trimZeros(m[3])
	}
	if m := previewRegex.FindStringSubmatch(s); m != nil {
		return "v" + trimZeros(m[1]) + "." + trimZeros(m[2]) + "." + trimZeros(m[3]) +
			"-preview." + trimZeros(m[4])
	}
	return ""
}

func trimZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// Compare orders two tags and returns -1, 0 or +1.
// A preview sorts before the production release it previews, previews are
// ordered by their number, and invalid tags sort before every valid tag.
func Compare(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}

// Latest returns the highest valid tag in tags, as given, with surrounding
// whitespace removed. Preview tags are considered only when includePreview
// is set. The boolean is false when no tag qualifies.
func Latest(tags []string, includePreview bool) (string, bool) {
	best := ""
	found := false
	for _, tag := range tags {
		switch {
		case IsValidProductionVersion(tag):
		case includePreview && IsValidPreviewVersion(tag):
		default:
			continue
		}
		if !found || Compare(tag, best) > 0 {
			best = strings.TrimSpace(tag)
			found = true
		}
	}
	return best, found
}
