package usecase

import (
	"context"
	"net/url"

	"em-agent/internal/identity"
	"em-agent/internal/session"
)

// Logout deletes the session. Microsoft also ends the provider session, so
// the browser is sent to its logout endpoint first.
func (uc *implUseCase) Logout(ctx context.Context, sess *session.Session, input identity.LogoutInput) string {
	if sess.User != nil {
		uc.l.Infof(ctx, "User logged out: %s", sess.User.DisplayName())
	}
	uc.store.Delete(ctx, sess.ID)
	*sess = session.Session{ID: sess.ID}

	back := input.PostLogoutRedirectURI
	if back == "" {
		back = "/"
	}
	if uc.provider != ProviderMicrosoft {
		return back
	}
	return uc.authority + "/oauth2/v2.0/logout?post_logout_redirect_uri=" + url.QueryEscape(back)
}
