package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"em-agent/internal/identity"
	"em-agent/internal/model"
	"em-agent/internal/session"
	"em-agent/internal/session/memory"
	"em-agent/pkg/log"
)

const redirectURI = "http://localhost:5001/getAToken"

func fakeIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"none"}`)) + "." + enc.EncodeToString(payload) + ".sig"
}

// newTokenServer serves the microsoft token endpoint under /oauth2/v2.0/token.
func newTokenServer(t *testing.T, handler func(w http.ResponseWriter, form url.Values)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth2/v2.0/token" {
			http.NotFound(w, r)
			return
		}
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		handler(w, r.PostForm)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newUseCase(t *testing.T, authority string) (identity.UseCase, session.Store) {
	t.Helper()
	store := memory.New(log.NewNop(), memory.Config{MaxEntries: 10, TTL: time.Minute})
	uc, err := New(log.NewNop(), store, Config{
		Provider:     ProviderMicrosoft,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Authority:    authority,
		Scopes:       []string{"User.Read", "Calendars.Read"},
	})
	require.NoError(t, err)
	return uc, store
}

func TestNew(t *testing.T) {
	store := memory.New(log.NewNop(), memory.Config{MaxEntries: 1, TTL: time.Minute})

	_, err := New(log.NewNop(), store, Config{Provider: "okta"})
	assert.Error(t, err)

	_, err = New(log.NewNop(), store, Config{Provider: ProviderMicrosoft})
	assert.Error(t, err)

	_, err = New(log.NewNop(), store, Config{Provider: ProviderGoogle})
	assert.NoError(t, err)
}

func TestMergeScopes(t *testing.T) {
	got := mergeScopes([]string{"User.Read", "openid", "", "User.Read"}, "openid", "profile")
	assert.Equal(t, []string{"User.Read", "openid", "profile"}, got)
}

func TestBeginLogin(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t, "https://login.example.com/common")

	sess := session.New()
	authURL, err := uc.BeginLogin(ctx, &sess, identity.BeginLoginInput{RedirectURI: redirectURI})
	require.NoError(t, err)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "/common/oauth2/v2.0/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, redirectURI, q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, sess.State, q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.Equal(t, "User.Read Calendars.Read openid profile offline_access", q.Get("scope"))

	stored, ok := store.Get(ctx, sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess.State, stored.State)
	assert.NotEmpty(t, stored.Verifier)
}

func TestBeginLogin_NotConfigured(t *testing.T) {
	store := memory.New(log.NewNop(), memory.Config{MaxEntries: 1, TTL: time.Minute})
	uc, err := New(log.NewNop(), store, Config{Provider: ProviderMicrosoft, Authority: "https://login.example.com/common"})
	require.NoError(t, err)

	sess := session.New()
	_, err = uc.BeginLogin(context.Background(), &sess, identity.BeginLoginInput{RedirectURI: redirectURI})
	assert.ErrorIs(t, err, identity.ErrNotConfigured)
}

func TestCompleteLogin(t *testing.T) {
	ctx := context.Background()
	var idToken string
	srv := newTokenServer(t, func(w http.ResponseWriter, form url.Values) {
		assert.Equal(t, "authorization_code", form.Get("grant_type"))
		assert.Equal(t, "the-code", form.Get("code"))
		assert.Equal(t, "client-id", form.Get("client_id"))
		assert.Equal(t, redirectURI, form.Get("redirect_uri"))
		assert.NotEmpty(t, form.Get("code_verifier"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access",
			"refresh_token": "refresh",
			"token_type":    "Bearer",
			"expires_in":    3600,
			"id_token":      idToken,
		})
	})
	idToken = fakeIDToken(t, map[string]any{
		"name":               "Ana Silva",
		"preferred_username": "ana@contoso.com",
		"oid":                "oid-1",
	})
	uc, store := newUseCase(t, srv.URL)

	sess := session.New()
	_, err := uc.BeginLogin(ctx, &sess, identity.BeginLoginInput{RedirectURI: redirectURI})
	require.NoError(t, err)

	err = uc.CompleteLogin(ctx, &sess, identity.CallbackInput{State: sess.State, Code: "the-code", RedirectURI: redirectURI})
	require.NoError(t, err)

	assert.Equal(t, &model.User{ObjectID: "oid-1", Name: "Ana Silva", PreferredUsername: "ana@contoso.com"}, sess.User)
	assert.Equal(t, "access", sess.Token.AccessToken)
	assert.Empty(t, sess.State)
	assert.Empty(t, sess.Verifier)

	stored, ok := store.Get(ctx, sess.ID)
	require.True(t, ok)
	assert.True(t, stored.Authenticated())
}

func TestCompleteLogin_StateMismatch(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, "https://login.example.com/common")

	sess := session.New()
	err := uc.CompleteLogin(ctx, &sess, identity.CallbackInput{State: "x", Code: "c"})
	assert.ErrorIs(t, err, identity.ErrStateMismatch)

	sess.State = "expected"
	err = uc.CompleteLogin(ctx, &sess, identity.CallbackInput{State: "other", Code: "c"})
	assert.ErrorIs(t, err, identity.ErrStateMismatch)
	assert.Equal(t, "expected", sess.State)
}

func TestCompleteLogin_ProviderError(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, "https://login.example.com/common")

	sess := session.New()
	sess.State = "s"
	err := uc.CompleteLogin(ctx, &sess, identity.CallbackInput{
		State:            "s",
		Error:            "access_denied",
		ErrorDescription: "user cancelled",
	})
	require.ErrorIs(t, err, identity.ErrProviderError)

	var pe *identity.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "access_denied", pe.Code)
	assert.Equal(t, "user cancelled", pe.Description)
	assert.Nil(t, sess.User)
}

func TestCompleteLogin_NoCode(t *testing.T) {
	uc, _ := newUseCase(t, "https://login.example.com/common")

	sess := session.New()
	sess.State = "s"
	err := uc.CompleteLogin(context.Background(), &sess, identity.CallbackInput{State: "s"})
	assert.NoError(t, err)
	assert.Nil(t, sess.User)
}

func TestCompleteLogin_TokenError(t *testing.T) {
	srv := newTokenServer(t, func(w http.ResponseWriter, _ url.Values) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"code expired"}`))
	})
	uc, _ := newUseCase(t, srv.URL)

	sess := session.New()
	sess.State = "s"
	err := uc.CompleteLogin(context.Background(), &sess, identity.CallbackInput{State: "s", Code: "c", RedirectURI: redirectURI})

	var pe *identity.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "invalid_grant", pe.Code)
	assert.Equal(t, "code expired", pe.Description)
}

func TestCompleteLogin_MissingIDToken(t *testing.T) {
	srv := newTokenServer(t, func(w http.ResponseWriter, _ url.Values) {
		_, _ = w.Write([]byte(`{"access_token":"a","token_type":"Bearer","expires_in":3600}`))
	})
	uc, _ := newUseCase(t, srv.URL)

	sess := session.New()
	sess.State = "s"
	err := uc.CompleteLogin(context.Background(), &sess, identity.CallbackInput{State: "s", Code: "c", RedirectURI: redirectURI})
	assert.ErrorIs(t, err, identity.ErrMissingIdentity)
	assert.Nil(t, sess.User)
}

func TestCurrentCredential(t *testing.T) {
	ctx := context.Background()
	srv := newTokenServer(t, func(w http.ResponseWriter, form url.Values) {
		assert.Equal(t, "refresh_token", form.Get("grant_type"))
		assert.Equal(t, "refresh", form.Get("refresh_token"))
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`))
	})
	uc, store := newUseCase(t, srv.URL)

	t.Run("no user", func(t *testing.T) {
		sess := session.New()
		_, ok := uc.CurrentCredential(ctx, &sess)
		assert.False(t, ok)
	})

	t.Run("nil session", func(t *testing.T) {
		_, ok := uc.CurrentCredential(ctx, nil)
		assert.False(t, ok)
	})

	t.Run("valid token", func(t *testing.T) {
		sess := session.New()
		sess.User = &model.User{Name: "Ana"}
		sess.Token = &oauth2.Token{AccessToken: "cached", Expiry: time.Now().Add(time.Hour)}
		tok, ok := uc.CurrentCredential(ctx, &sess)
		require.True(t, ok)
		assert.Equal(t, "cached", tok.AccessToken)
	})

	t.Run("expired token is refreshed", func(t *testing.T) {
		sess := session.New()
		sess.User = &model.User{Name: "Ana"}
		sess.Token = &oauth2.Token{AccessToken: "old", RefreshToken: "refresh", Expiry: time.Now().Add(-time.Hour)}
		tok, ok := uc.CurrentCredential(ctx, &sess)
		require.True(t, ok)
		assert.Equal(t, "fresh", tok.AccessToken)
		assert.Equal(t, "refresh", tok.RefreshToken)

		stored, found := store.Get(ctx, sess.ID)
		require.True(t, found)
		assert.Equal(t, "fresh", stored.Token.AccessToken)
	})

	t.Run("expired without refresh token", func(t *testing.T) {
		sess := session.New()
		sess.User = &model.User{Name: "Ana"}
		sess.Token = &oauth2.Token{AccessToken: "old", Expiry: time.Now().Add(-time.Hour)}
		_, ok := uc.CurrentCredential(ctx, &sess)
		assert.False(t, ok)
	})
}

func TestCurrentCredential_RefreshFails(t *testing.T) {
	srv := newTokenServer(t, func(w http.ResponseWriter, _ url.Values) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	})
	uc, _ := newUseCase(t, srv.URL)

	sess := session.New()
	sess.User = &model.User{Name: "Ana"}
	sess.Token = &oauth2.Token{AccessToken: "old", RefreshToken: "refresh", Expiry: time.Now().Add(-time.Hour)}
	_, ok := uc.CurrentCredential(context.Background(), &sess)
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t, "https://login.example.com/common")

	sess := session.New()
	sess.User = &model.User{Name: "Ana"}
	store.Set(ctx, sess.ID, sess)

	next := uc.Logout(ctx, &sess, identity.LogoutInput{PostLogoutRedirectURI: "http://localhost:5001/"})
	assert.Equal(t, "https://login.example.com/common/oauth2/v2.0/logout?post_logout_redirect_uri=http%3A%2F%2Flocalhost%3A5001%2F", next)
	assert.Nil(t, sess.User)

	_, ok := store.Get(ctx, sess.ID)
	assert.False(t, ok)
}

func TestLogout_Google(t *testing.T) {
	store := memory.New(log.NewNop(), memory.Config{MaxEntries: 1, TTL: time.Minute})
	uc, err := New(log.NewNop(), store, Config{Provider: ProviderGoogle, ClientID: "id", ClientSecret: "s"})
	require.NoError(t, err)

	sess := session.New()
	assert.Equal(t, "/", uc.Logout(context.Background(), &sess, identity.LogoutInput{}))
}

func TestUserFromToken(t *testing.T) {
	tok := (&oauth2.Token{AccessToken: "a"}).WithExtra(map[string]any{
		"id_token": fakeIDToken(t, map[string]any{"sub": "google-sub", "email": "ana@gmail.com", "name": "Ana"}),
	})
	user, err := userFromToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "google-sub", user.ObjectID)
	assert.Equal(t, "ana@gmail.com", user.PreferredUsername)

	bad := (&oauth2.Token{}).WithExtra(map[string]any{"id_token": "not-a-jwt"})
	_, err = userFromToken(bad)
	assert.ErrorIs(t, err, identity.ErrMissingIdentity)

	garbled := (&oauth2.Token{}).WithExtra(map[string]any{"id_token": "a." + strings.Repeat("!", 8) + ".c"})
	_, err = userFromToken(garbled)
	assert.ErrorIs(t, err, identity.ErrMissingIdentity)

	anonymous := (&oauth2.Token{}).WithExtra(map[string]any{"id_token": fakeIDToken(t, map[string]any{})})
	_, err = userFromToken(anonymous)
	assert.ErrorIs(t, err, identity.ErrMissingIdentity)

	nameOnly := (&oauth2.Token{}).WithExtra(map[string]any{"id_token": fakeIDToken(t, map[string]any{"name": "Ana"})})
	_, err = userFromToken(nameOnly)
	assert.ErrorIs(t, err, identity.ErrMissingIdentity)
}
