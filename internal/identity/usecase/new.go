package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"em-agent/internal/identity"
	"em-agent/internal/session"
	"em-agent/pkg/log"
)

const (
	ProviderMicrosoft = "microsoft"
	ProviderGoogle    = "google"
)

// Config describes the OAuth2 client registered with the provider.
type Config struct {
	Provider     string
	ClientID     string
	ClientSecret string
	Authority    string // microsoft only
	Scopes       []string
}

// implUseCase is the private implementation of identity.UseCase.
type implUseCase struct {
	l         log.Logger
	store     session.Store
	provider  string
	authority string
	enabled   bool
	oauth     oauth2.Config
}

// New creates the identity use case. Missing client credentials are not an
// error; sign-in then fails with identity.ErrNotConfigured.
func New(l log.Logger, store session.Store, cfg Config) (identity.UseCase, error) {
	uc := &implUseCase{
		l:         l,
		store:     store,
		provider:  cfg.Provider,
		authority: strings.TrimRight(cfg.Authority, "/"),
		enabled:   cfg.ClientID != "" && cfg.ClientSecret != "",
	}

	switch cfg.Provider {
	case ProviderMicrosoft:
		if uc.authority == "" {
			return nil, fmt.Errorf("identity: authority is required for provider %q", cfg.Provider)
		}
		uc.oauth = oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   uc.authority + "/oauth2/v2.0/authorize",
				TokenURL:  uc.authority + "/oauth2/v2.0/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
			Scopes: mergeScopes(cfg.Scopes, "openid", "profile", "offline_access"),
		}
	case ProviderGoogle:
		uc.oauth = oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       mergeScopes(cfg.Scopes, "openid", "profile", "email"),
		}
	default:
		return nil, fmt.Errorf("identity: unsupported provider %q", cfg.Provider)
	}

	return uc, nil
}

// configFor returns a copy of the OAuth2 config bound to redirectURI.
func (uc *implUseCase) configFor(redirectURI string) *oauth2.Config {
	cfg := uc.oauth
	cfg.RedirectURL = redirectURI
	return &cfg
}

// mergeScopes appends the reserved scopes that are not already requested.
func mergeScopes(scopes []string, reserved ...string) []string {
	seen := make(map[string]bool, len(scopes)+len(reserved))
	out := make([]string, 0, len(scopes)+len(reserved))
	for _, s := range append(append([]string{}, scopes...), reserved...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
