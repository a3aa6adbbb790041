package config

import "errors"

var (
	errConfigNotFound    = errors.New("config file not found")
	errConfigParse       = errors.New("failed to parse config file")
	errInvalidReleaseTag = errors.New("invalid release tag")
	errInvalidNuGetURL   = errors.New("nuget source must be an absolute http(s) URL")
	errInvalidOwner      = errors.New("invalid GitHub owner")

	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errConfigNotFound
	// ErrConfigParse is returned when the config file is not valid YAML.
	ErrConfigParse = errConfigParse
	// ErrInvalidReleaseTag is returned when release.tag does not match its channel.
	ErrInvalidReleaseTag = errInvalidReleaseTag
)
