package identity

import (
	"context"

	"golang.org/x/oauth2"

	"em-agent/internal/session"
)

// UseCase drives the OAuth2 authorization-code sign-in.
// Every method persists the changes it makes to sess.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// BeginLogin stores a fresh anti-forgery state in sess and returns the provider sign-in URL.
	BeginLogin(ctx context.Context, sess *session.Session, input BeginLoginInput) (string, error)
	// CompleteLogin handles the provider callback. A callback without code and error is a no-op.
	CompleteLogin(ctx context.Context, sess *session.Session, input CallbackInput) error
	// CurrentCredential returns a valid access token for the signed-in user, refreshing it when needed.
	CurrentCredential(ctx context.Context, sess *session.Session) (*oauth2.Token, bool)
	// Logout forgets sess and returns where the browser should go next.
	Logout(ctx context.Context, sess *session.Session, input LogoutInput) string
}
