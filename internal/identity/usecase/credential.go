package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"em-agent/internal/session"
)

// CurrentCredential returns the cached token while it is valid. An expired
// token is refreshed once and the result written back to the store.
func (uc *implUseCase) CurrentCredential(ctx context.Context, sess *session.Session) (*oauth2.Token, bool) {
	if sess == nil || sess.User == nil || sess.Token == nil {
		return nil, false
	}
	if sess.Token.Valid() {
		return sess.Token, true
	}
	if !uc.enabled || sess.Token.RefreshToken == "" {
		uc.l.Warnf(ctx, "identity.CurrentCredential: token expired and cannot be refreshed")
		return nil, false
	}

	tok, err := uc.oauth.TokenSource(ctx, sess.Token).Token()
	if err != nil {
		uc.l.Warnf(ctx, "identity.CurrentCredential: refresh: %v", err)
		return nil, false
	}

	sess.Token = tok
	uc.store.Set(ctx, sess.ID, *sess)
	uc.l.Debugf(ctx, "identity.CurrentCredential: token refreshed, expires %s", tok.Expiry)
	return tok, true
}
