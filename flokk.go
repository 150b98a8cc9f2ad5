// Package flokk authenticates users against Flokk using the OAuth 2.0
// authorization code flow and normalizes their Flokk account into a Profile.
//
//	strategy, err := flokk.New(flokk.Config{
//		ClientID:     "123-456-789",
//		ClientSecret: "shhh-its-a-secret",
//		CallbackURL:  "https://www.example.net/auth/flokk/callback",
//	}, func(ctx context.Context, accessToken, refreshToken string, profile flokk.Profile) (any, error) {
//		return users.FindOrCreate(ctx, profile.ID)
//	})
package flokk

import "strings"

// Name identifies the strategy and is the provider of every Profile.
const Name = "flokk"

const (
	DefaultHost             = "https://auth.theflokk.com"
	DefaultAuthorizationURL = "/authorize"
	DefaultTokenURL         = "/token"
	DefaultProfileURL       = "https://api.theflokk.com/account"
)

// Config is supplied once by the embedding application.
// AuthorizationURL and TokenURL may be relative to Host.
type Config struct {
	ClientID         string
	ClientSecret     string
	CallbackURL      string
	Host             string
	AuthorizationURL string
	TokenURL         string
	ProfileURL       string
	Scope            []string
}

func (cfg Config) withDefaults() Config {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	cfg.Host = strings.TrimSuffix(cfg.Host, "/")
	if cfg.AuthorizationURL == "" {
		cfg.AuthorizationURL = DefaultAuthorizationURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.ProfileURL == "" {
		cfg.ProfileURL = DefaultProfileURL
	}
	if cfg.Scope != nil {
		cfg.Scope = append([]string(nil), cfg.Scope...)
	}
	return cfg
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.ClientID) == "" {
		return InvalidArgumentError("flokk: client id required")
	}
	return nil
}
