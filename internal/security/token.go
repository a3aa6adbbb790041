// Package security provides secret wrapping and credential sanitization utilities.
package security

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// Minimum secret length to show partial masking (show last 4 chars).
	minTokenLengthForPartialMask = 8
	// Number of characters to show when masking.
	maskShowChars = 4
	// maskEmpty is returned for empty secrets.
	maskEmpty = "[empty]"
	// maskRedacted is returned for short secrets.
	maskRedacted = "[redacted]"
)

// SecureToken wraps a secret (API token, API key, OAuth consumer secret) so it
// cannot leak through fmt verbs, logs or YAML encoding.
//
// Example:
//
//	token := NewSecureToken("ghp_secret123456")
//	fmt.Printf("Token: %s", token)  // Output: "Token: [token:****3456]"
//	fmt.Printf("Token: %+v", token) // Output: "Token: [token:****3456]"
type SecureToken struct {
	value string
}

// NewSecureToken creates a new SecureToken from a string value.
func NewSecureToken(token string) SecureToken {
	return SecureToken{value: token}
}

// String implements fmt.Stringer and returns a masked representation.
func (t SecureToken) String() string {
	if t.value == "" {
		return maskEmpty
	}

	if len(t.value) < minTokenLengthForPartialMask {
		return maskRedacted
	}

	return fmt.Sprintf("[token:****%s]", t.value[len(t.value)-maskShowChars:])
}

// GoString implements fmt.GoStringer to prevent leaking in %#v formatting.
func (t SecureToken) GoString() string {
	return t.String()
}

// Value returns the actual secret.
// Only call this when handing the secret to an HTTP client. Never log the result.
func (t SecureToken) Value() string {
	return t.value
}

// IsEmpty returns true if the secret is empty.
func (t SecureToken) IsEmpty() bool {
	return t.value == ""
}

// UnmarshalYAML decodes a plain YAML scalar into the token.
func (t *SecureToken) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: line %d: %w", errInvalidSecret, node.Line, err)
	}
	t.value = raw
	return nil
}

// MarshalYAML writes the masked form, so dumping a config never writes secrets back.
func (t SecureToken) MarshalYAML() (any, error) {
	return t.String(), nil
}
