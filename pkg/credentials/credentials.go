// Package credentials holds the secret bundles for third-party services.
package credentials

import (
	"github.com/sgaunet/cikit/internal/security"
	"github.com/sgaunet/cikit/pkg/apierrors"
)

// Twitter is the OAuth 1.0a credential set for posting release announcements.
type Twitter struct {
	ConsumerKey       security.SecureToken `yaml:"consumer_key"`
	ConsumerSecret    security.SecureToken `yaml:"consumer_secret"`
	AccessTokenKey    security.SecureToken `yaml:"access_token_key"`
	AccessTokenSecret security.SecureToken `yaml:"access_token_secret"`
}

// NewTwitter builds a credential bundle from raw secrets.
func NewTwitter(consumerKey, consumerSecret, accessTokenKey, accessTokenSecret string) Twitter {
	return Twitter{
		ConsumerKey:       security.NewSecureToken(consumerKey),
		ConsumerSecret:    security.NewSecureToken(consumerSecret),
		AccessTokenKey:    security.NewSecureToken(accessTokenKey),
		AccessTokenSecret: security.NewSecureToken(accessTokenSecret),
	}
}

// IsZero reports whether no secret is set.
func (t Twitter) IsZero() bool {
	return t.ConsumerKey.IsEmpty() && t.ConsumerSecret.IsEmpty() &&
		t.AccessTokenKey.IsEmpty() && t.AccessTokenSecret.IsEmpty()
}

// Validate returns a BadCredentials error naming the first missing secret.
func (t Twitter) Validate() error {
	fields := []struct {
		name  string
		token security.SecureToken
	}{
		{"consumer_key", t.ConsumerKey},
		{"consumer_secret", t.ConsumerSecret},
		{"access_token_key", t.AccessTokenKey},
		{"access_token_secret", t.AccessTokenSecret},
	}
	for _, f := range fields {
		if f.token.IsEmpty() {
			return apierrors.NewBadCredentialsError("twitter " + f.name + " is required")
		}
	}
	return nil
}
