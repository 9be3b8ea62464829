package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"em-agent/internal/decompose"
	"em-agent/internal/identity"
	"em-agent/internal/middleware"
	"em-agent/internal/productivity"
	"em-agent/internal/session"
	"em-agent/pkg/log"
	"em-agent/web"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	externalURL string

	// Web session
	mw           middleware.Middleware
	sessionStore session.Store
	redirectPath string

	// Domains
	identityUC     identity.UseCase
	decomposeUC    decompose.UseCase
	productivityUC productivity.UseCase

	// Readiness
	identityEnabled   bool
	completionEnabled bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	ExternalURL string

	// Web session
	SessionStore  session.Store
	SessionSecret string
	Cookie        middleware.CookieConfig
	RateLimit     middleware.RateLimitConfig
	RedirectPath  string

	// Domains
	IdentityUC     identity.UseCase
	DecomposeUC    decompose.UseCase
	ProductivityUC productivity.UseCase

	// Readiness
	IdentityEnabled   bool
	CompletionEnabled bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		externalURL:       cfg.ExternalURL,
		sessionStore:      cfg.SessionStore,
		redirectPath:      cfg.RedirectPath,
		identityUC:        cfg.IdentityUC,
		decomposeUC:       cfg.DecomposeUC,
		productivityUC:    cfg.ProductivityUC,
		identityEnabled:   cfg.IdentityEnabled,
		completionEnabled: cfg.CompletionEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{
		Store:     cfg.SessionStore,
		SecretKey: cfg.SessionSecret,
		Cookie:    cfg.Cookie,
		Identity:  cfg.IdentityUC,
		RateLimit: cfg.RateLimit,
	})

	tmpl, err := web.Templates(templateFuncs())
	if err != nil {
		return nil, err
	}
	srv.gin.SetHTMLTemplate(tmpl)

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionStore == nil {
		return errors.New("session store is required")
	}
	if srv.redirectPath == "" {
		return errors.New("redirect path is required")
	}
	if srv.identityUC == nil || srv.decomposeUC == nil || srv.productivityUC == nil {
		return errors.New("identity, decompose and productivity use cases are required")
	}
	return nil
}
