package security

import "errors"

var (
	// errSanitized is the error type for sanitized errors.
	errSanitized = errors.New("sanitized error")
	// errInvalidSecret is returned when a secret is not a YAML scalar.
	errInvalidSecret = errors.New("secret must be a string")
)
