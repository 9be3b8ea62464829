package identity

// BeginLoginInput carries the absolute callback URL registered with the provider.
type BeginLoginInput struct {
	RedirectURI string
}

// CallbackInput is the query string the provider sends back to the callback route.
type CallbackInput struct {
	State            string
	Code             string
	Error            string
	ErrorDescription string
	RedirectURI      string
}

// LogoutInput carries the absolute URL the provider returns to after signing out.
type LogoutInput struct {
	PostLogoutRedirectURI string
}

// ProviderError is a sign-in failure reported by the identity provider.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return "identity provider error: " + e.Code
	}
	return "identity provider error: " + e.Code + ": " + e.Description
}

// Is lets errors.Is(err, ErrProviderError) match every ProviderError.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderError
}
