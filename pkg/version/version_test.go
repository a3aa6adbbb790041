package version_test

import (
	"testing"

	"github.com/sgaunet/cikit/pkg/version"
	"github.com/stretchr/testify/assert"
)

func TestIsValidProductionVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"v1.2.3", true},
		{"v0.0.0", true},
		{"v10.20.30", true},
		{"v01.002.0003", true},
		{"V1.2.3", true},
		{"  v1.2.3  ", true},
		{"\tv1.2.3\n", true},
		{"1.2.3", false},
		{"v1.2", false},
		{"v1.2.3.4", false},
		{"v1.2.x", false},
		{"v1.2.3-preview.1", false},
		{"v1.2.3-beta", false},
		{"release v1.2.3", false},
		{"v1.2.3 final", false},
		{"v1. 2.3", false},
		{"v1.2.3\nv1.2.4", false},
		{"v-1.2.3", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, version.IsValidProductionVersion(tt.input))
			assert.Equal(t, !tt.expected, version.IsInvalidProductionVersion(tt.input))
		})
	}
}

func TestIsValidPreviewVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"v1.2.3-preview.0", true},
		{"v1.2.3-preview.12", true},
		{"V1.2.3-PREVIEW.4", true},
		{" v1.2.3-preview.4 ", true},
		{"v1.2.3", false},
		{"v1.2.3-preview", false},
		{"v1.2.3-preview.", false},
		{"v1.2.3-preview.a", false},
		{"v1.2.3-preview.1.2", false},
		{"v1.2.3-rc.1", false},
		{"v1.2.3-preview.1 extra", false},
		{"v1.2.3 -preview.1", false},
		{"1.2.3-preview.1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, version.IsValidPreviewVersion(tt.input))
			assert.Equal(t, !tt.expected, version.IsInvalidPreviewVersion(tt.input))
		})
	}
}

func TestProductionAndPreviewAreDisjoint(t *testing.T) {
	for _, tag := range []string{"v1.0.0", "v1.0.0-preview.1", "v2.3.4", "v0.0.1-preview.0"} {
		assert.False(t,
			version.IsValidProductionVersion(tag) && version.IsValidPreviewVersion(tag),
			"%q matched both shapes", tag)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "v1.2.3-preview.1", version.Normalize("  V1.2.3-Preview.1\t"))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "equal", a: "v1.2.3", b: "v1.2.3", expected: 0},
		{name: "leading zeros equal", a: "v01.02.03", b: "v1.2.3", expected: 0},
		{name: "case and whitespace", a: " V1.2.3", b: "v1.2.3", expected: 0},
		{name: "patch", a: "v1.2.3", b: "v1.2.4", expected: -1},
		{name: "minor numeric", a: "v1.10.0", b: "v1.9.0", expected: 1},
		{name: "preview before release", a: "v2.0.0-preview.3", b: "v2.0.0", expected: -1},
		{name: "preview numeric", a: "v2.0.0-preview.10", b: "v2.0.0-preview.9", expected: 1},
		{name: "preview after previous release", a: "v2.0.0-preview.1", b: "v1.9.9", expected: 1},
		{name: "invalid sorts first", a: "latest", b: "v0.0.0", expected: -1},
		{name: "invalid pair", a: "foo", b: "bar", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, version.Compare(tt.a, tt.b))
		})
	}
}

func TestLatest(t *testing.T) {
	tags := []string{"v1.0.0", "nightly", " v1.10.0 ", "v1.9.0", "v2.0.0-preview.2"}

	got, ok := version.Latest(tags, false)
	assert.True(t, ok)
	assert.Equal(t, "v1.10.0", got)

	got, ok = version.Latest(tags, true)
	assert.True(t, ok)
	assert.Equal(t, "v2.0.0-preview.2", got)

	got, ok = version.Latest([]string{"nightly", "v2.0.0-preview.1"}, false)
	assert.False(t, ok)
	assert.Empty(t, got)

	_, ok = version.Latest(nil, true)
	assert.False(t, ok)
}
