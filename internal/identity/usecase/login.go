package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"em-agent/internal/identity"
	"em-agent/internal/session"
)

// BeginLogin starts a sign-in with a new anti-forgery state and PKCE verifier.
func (uc *implUseCase) BeginLogin(ctx context.Context, sess *session.Session, input identity.BeginLoginInput) (string, error) {
	if !uc.enabled {
		return "", identity.ErrNotConfigured
	}

	sess.State = uuid.NewString()
	sess.Verifier = oauth2.GenerateVerifier()
	uc.store.Set(ctx, sess.ID, *sess)

	opts := []oauth2.AuthCodeOption{oauth2.S256ChallengeOption(sess.Verifier)}
	if uc.provider == ProviderGoogle {
		opts = append(opts, oauth2.AccessTypeOffline)
	}
	return uc.configFor(input.RedirectURI).AuthCodeURL(sess.State, opts...), nil
}

// CompleteLogin checks the state, then exchanges the code and records the user.
func (uc *implUseCase) CompleteLogin(ctx context.Context, sess *session.Session, input identity.CallbackInput) error {
	if sess.State == "" || input.State != sess.State {
		uc.l.Warnf(ctx, "identity.CompleteLogin: state mismatch")
		return identity.ErrStateMismatch
	}

	verifier := sess.Verifier
	sess.State = ""
	sess.Verifier = ""
	uc.store.Set(ctx, sess.ID, *sess)

	if input.Error != "" {
		uc.l.Errorf(ctx, "identity.CompleteLogin: provider error %s: %s", input.Error, input.ErrorDescription)
		return &identity.ProviderError{Code: input.Error, Description: input.ErrorDescription}
	}
	if input.Code == "" {
		return nil
	}
	if !uc.enabled {
		return identity.ErrNotConfigured
	}

	tok, err := uc.configFor(input.RedirectURI).Exchange(ctx, input.Code, oauth2.VerifierOption(verifier))
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.ErrorCode != "" {
			uc.l.Errorf(ctx, "identity.CompleteLogin: token error %s: %s", re.ErrorCode, re.ErrorDescription)
			return &identity.ProviderError{Code: re.ErrorCode, Description: re.ErrorDescription}
		}
		uc.l.Errorf(ctx, "identity.CompleteLogin: exchange: %v", err)
		return fmt.Errorf("%w: %v", identity.ErrExchangeFailed, err)
	}

	user, err := userFromToken(tok)
	if err != nil {
		uc.l.Errorf(ctx, "identity.CompleteLogin: %v", err)
		return err
	}

	sess.User = user
	sess.Token = tok
	uc.store.Set(ctx, sess.ID, *sess)

	uc.l.Infof(ctx, "User logged in: %s", user.DisplayName())
	return nil
}
