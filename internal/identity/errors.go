package identity

import "errors"

var (
	ErrNotConfigured   = errors.New("identity provider is not configured")
	ErrStateMismatch   = errors.New("sign-in state mismatch")
	ErrProviderError   = errors.New("identity provider error")
	ErrExchangeFailed  = errors.New("authorization code exchange failed")
	ErrMissingIdentity = errors.New("token response carries no id_token")
)
