package middleware

import (
	"time"

	"em-agent/internal/identity"
	"em-agent/internal/session"
	"em-agent/pkg/log"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// RateLimitConfig bounds how often one user may call a limited route.
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedUsers int
}

// Config is the dependency bag passed to New().
type Config struct {
	Store     session.Store
	SecretKey string
	Cookie    CookieConfig
	Identity  identity.UseCase
	RateLimit RateLimitConfig
}

type Middleware struct {
	l        log.Logger
	store    session.Store
	signer   session.Signer
	cookie   CookieConfig
	identity identity.UseCase
	limiter  *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:        l,
		store:    cfg.Store,
		signer:   session.NewSigner(cfg.SecretKey),
		cookie:   cfg.Cookie,
		identity: cfg.Identity,
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.MaxTrackedUsers)
	}
	return mw
}
