// Package config handles loading and validation of the credentials and
// release settings used by CI/CD jobs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sgaunet/cikit/internal/logger"
	"github.com/sgaunet/cikit/internal/security"
	"github.com/sgaunet/cikit/pkg/apierrors"
	"github.com/sgaunet/cikit/pkg/credentials"
	"github.com/sgaunet/cikit/pkg/version"
	"gopkg.in/yaml.v3"
)

// DefaultNuGetSource is used when nuget.source is not set.
const DefaultNuGetSource = "https://api.nuget.org/v3/index.json"

// GitHub logins: alphanumerics with inner hyphens or underscores, at most 39 characters.
var ownerRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9_-]{0,37}[a-zA-Z0-9])?$`)

// Config represents the complete configuration file.
type Config struct {
	GitHub  GitHubConfig        `yaml:"github"`
	NuGet   NuGetConfig         `yaml:"nuget"`
	Twitter credentials.Twitter `yaml:"twitter"`
	Release ReleaseConfig       `yaml:"release"`
}

// GitHubConfig contains GitHub-specific configuration.
type GitHubConfig struct {
	Token security.SecureToken `yaml:"token"`
	Owner string               `yaml:"owner"`
}

// NuGetConfig contains the package feed configuration.
type NuGetConfig struct {
	APIKey security.SecureToken `yaml:"api_key"`
	Source string               `yaml:"source"`
}

// ReleaseConfig describes the tag being released.
type ReleaseConfig struct {
	Tag     string `yaml:"tag"`
	Preview bool   `yaml:"preview"`
}

// DefaultPath returns ~/.config/cikit/config.yml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "cikit", "config.yml"), nil
}

// LoadDefault reads the configuration from [DefaultPath].
func LoadDefault(log logger.Logger) (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path, log)
}

// Load reads, parses and validates the configuration file at path.
// A nil log disables logging.
func Load(path string, log logger.Logger) (*Config, error) {
	log = logger.OrNoop(log)
	log.Debug("Loading configuration from " + path)

	// #nosec G304 - the path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.logCredentials(log)
	log.Debug("Configuration loaded successfully")
	return cfg, nil
}

// Parse decodes YAML and applies defaults without validating.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigParse, err)
	}

	cfg.GitHub.Owner = strings.TrimSpace(cfg.GitHub.Owner)
	cfg.NuGet.Source = strings.TrimSpace(cfg.NuGet.Source)
	if cfg.NuGet.Source == "" {
		cfg.NuGet.Source = DefaultNuGetSource
	}
	cfg.Release.Tag = strings.TrimSpace(cfg.Release.Tag)
	return &cfg, nil
}

// Validate checks that required credentials are present and well formed.
// Credential problems are BadCredentials errors, feed problems NuGet errors
// and owner problems Organization errors.
func (c *Config) Validate() error {
	if c.GitHub.Token.IsEmpty() {
		return apierrors.NewBadCredentialsError("github token is required")
	}

	if c.GitHub.Owner != "" && !ownerRegex.MatchString(c.GitHub.Owner) {
		return apierrors.NewOrganizationError(fmt.Sprintf("%s: %q", errInvalidOwner, c.GitHub.Owner))
	}

	if err := c.NuGet.validate(); err != nil {
		return err
	}

	if !c.Twitter.IsZero() {
		if err := c.Twitter.Validate(); err != nil {
			return err
		}
	}

	return c.Release.validate()
}

func (n NuGetConfig) validate() error {
	u, err := url.Parse(n.Source)
	if err != nil || !u.IsAbs() || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return apierrors.NewNuGetError(fmt.Sprintf("%s: %q", errInvalidNuGetURL, n.Source))
	}
	return nil
}

func (r ReleaseConfig) validate() error {
	if r.Tag == "" {
		return nil
	}
	if r.Preview && version.IsInvalidPreviewVersion(r.Tag) {
		return fmt.Errorf("%w: %q is not a preview tag (vX.Y.Z-preview.N)", errInvalidReleaseTag, r.Tag)
	}
	if !r.Preview && version.IsInvalidProductionVersion(r.Tag) {
		return fmt.Errorf("%w: %q is not a production tag (vX.Y.Z)", errInvalidReleaseTag, r.Tag)
	}
	return nil
}

func (c *Config) logCredentials(log logger.Logger) {
	security.DebugAuth(log, "GitHub", map[string]string{
		"owner": c.GitHub.Owner,
		"token": c.GitHub.Token.Value(),
	})
	if !c.NuGet.APIKey.IsEmpty() {
		security.DebugAuth(log, "NuGet", map[string]string{
			"source":  c.NuGet.Source,
			"api_key": c.NuGet.APIKey.Value(),
		})
	}
	if !c.Twitter.IsZero() {
		security.DebugAuth(log, "Twitter", map[string]string{
			"consumer_key":    c.Twitter.ConsumerKey.Value(),
			"access_token_id": c.Twitter.AccessTokenKey.Value(),
		})
	}
}
