package session

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"em-agent/internal/model"
)

// Session is the per-browser state kept between requests.
type Session struct {
	ID        string
	State     string // anti-forgery value of the pending sign-in, empty otherwise
	Verifier  string // PKCE verifier of the pending sign-in
	User      *model.User
	Token     *oauth2.Token
	CreatedAt time.Time
}

// New returns an empty session with a fresh random ID.
func New() Session {
	return Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Authenticated reports whether a user has completed sign-in in this session.
func (s Session) Authenticated() bool {
	return s.User != nil
}
