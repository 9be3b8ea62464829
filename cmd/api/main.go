package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"em-agent/config"
	_ "em-agent/docs" // Swagger docs
	decomposeUC "em-agent/internal/decompose/usecase"
	identityUC "em-agent/internal/identity/usecase"
	"em-agent/internal/httpserver"
	"em-agent/internal/middleware"
	"em-agent/internal/productivity/repository"
	googleRepo "em-agent/internal/productivity/repository/google"
	graphRepo "em-agent/internal/productivity/repository/graph"
	productivityUC "em-agent/internal/productivity/usecase"
	"em-agent/internal/session/memory"
	"em-agent/pkg/azopenai"
	"em-agent/pkg/graph"
	"em-agent/pkg/log"
)

// @title       Em Agent API
// @description Sign-in, calendar and task views, and AI task decomposition for users with ADHD.
// @version     1
// @host        localhost:5001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Em agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.UsesDefaultSecret() {
		logger.Warn(ctx, "SECRET_KEY is not set, sessions are signed with the built-in default")
	}

	// 3. Sessions
	sessionStore := memory.New(logger, memory.Config{
		MaxEntries: cfg.Session.MaxEntries,
		TTL:        cfg.Session.TTL,
	})

	// 4. Identity
	if !cfg.Identity.Enabled() {
		logger.Warn(ctx, "CLIENT_ID or CLIENT_SECRET is missing, sign-in is disabled")
	}
	identity, err := identityUC.New(logger, sessionStore, identityUC.Config{
		Provider:     cfg.Identity.Provider,
		ClientID:     cfg.Identity.ClientID,
		ClientSecret: cfg.Identity.ClientSecret,
		Authority:    cfg.Identity.Authority,
		Scopes:       cfg.Identity.Scopes,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize identity: ", err)
		return
	}

	// 5. Completion client (optional)
	var completion azopenai.IAzureOpenAI
	if cfg.Completion.Enabled() {
		completion, err = azopenai.New(azopenai.Config{
			Endpoint:   cfg.Completion.Endpoint,
			APIKey:     cfg.Completion.APIKey,
			Deployment: cfg.Completion.Deployment,
			APIVersion: cfg.Completion.APIVersion,
			HTTPClient: &http.Client{Timeout: cfg.Completion.Timeout},
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Azure OpenAI client: ", err)
			return
		}
		logger.Infof(ctx, "Azure OpenAI deployment: %s", cfg.Completion.Deployment)
	} else {
		logger.Warn(ctx, "AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_KEY or AZURE_OPENAI_DEPLOYMENT_NAME is missing, /decompose will fail")
	}

	decompose := decomposeUC.New(logger, completion, decomposeUC.Sampling{
		MaxTokens:        cfg.Completion.MaxTokens,
		Temperature:      cfg.Completion.Temperature,
		TopP:             cfg.Completion.TopP,
		FrequencyPenalty: cfg.Completion.FrequencyPenalty,
		PresencePenalty:  cfg.Completion.PresencePenalty,
	})

	// 6. Calendar and tasks
	var repo repository.Repository
	switch cfg.Identity.Provider {
	case config.ProviderGoogle:
		repo = googleRepo.New(logger)
	default:
		graphClient, gErr := graph.New(graph.Config{
			BaseURL:    cfg.Graph.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Graph.Timeout},
		})
		if gErr != nil {
			logger.Error(ctx, "Failed to initialize Graph client: ", gErr)
			return
		}
		repo = graphRepo.New(graphClient, logger)
	}
	productivity := productivityUC.New(repo, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		ExternalURL:   cfg.HTTPServer.ExternalURL,
		SessionStore:  sessionStore,
		SessionSecret: cfg.Session.SecretKey,
		Cookie: middleware.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		RateLimit: middleware.RateLimitConfig{
			Enabled:         cfg.RateLimit.Enabled,
			RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
			MaxTrackedUsers: cfg.RateLimit.MaxTrackedUsers,
		},
		RedirectPath:      cfg.Identity.RedirectPath,
		IdentityUC:        identity,
		DecomposeUC:       decompose,
		ProductivityUC:    productivity,
		IdentityEnabled:   cfg.Identity.Enabled(),
		CompletionEnabled: cfg.Completion.Enabled(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
