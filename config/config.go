package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration. Built once by Load and shared read-only.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Web session + sign-in
	Session  SessionConfig
	Identity IdentityConfig

	// Upstream APIs
	Graph      GraphConfig
	Completion CompletionConfig

	// Per-user limit on the AI route
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	ExternalURL string // scheme://host[:port] used for OAuth redirects; derived from the request when empty
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SessionConfig struct {
	SecretKey  string
	CookieName string
	TTL        time.Duration
	MaxEntries int
	Secure     bool
}

// IdentityConfig describes the OAuth2 identity provider.
type IdentityConfig struct {
	Provider     string // "microsoft" or "google"
	ClientID     string
	ClientSecret string
	Authority    string // microsoft only, e.g. https://login.microsoftonline.com/common
	RedirectPath string
	Scopes       []string
}

type GraphConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CompletionConfig holds Azure OpenAI settings and the sampling parameters sent on every call.
type CompletionConfig struct {
	Endpoint         string
	APIKey           string
	Deployment       string
	APIVersion       string
	Timeout          time.Duration
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedUsers int
}

const (
	ProviderMicrosoft = "microsoft"
	ProviderGoogle    = "google"

	defaultSecretKey = "default-secret-key-please-change"
)

// defaultScopes are the data scopes requested when identity.scope is unset.
var defaultScopes = map[string]string{
	ProviderMicrosoft: "User.Read Calendars.Read Tasks.Read email",
	ProviderGoogle:    "https://www.googleapis.com/auth/calendar.readonly https://www.googleapis.com/auth/tasks.readonly",
}

// Enabled reports whether every value needed to call the completion service is set.
func (c CompletionConfig) Enabled() bool {
	return c.Endpoint != "" && c.APIKey != "" && c.Deployment != ""
}

// Enabled reports whether the sign-in client credentials are set.
func (c IdentityConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ExternalURL = strings.TrimRight(v.GetString("http_server.external_url"), "/")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Session
	cfg.Session.SecretKey = firstNonEmpty(v.GetString("secret_key"), v.GetString("session.secret_key"))
	cfg.Session.CookieName = v.GetString("session.cookie_name")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxEntries = v.GetInt("session.max_entries")
	cfg.Session.Secure = v.GetBool("session.secure")

	// Identity. Flat env names match the ones the web app has always read.
	cfg.Identity.Provider = strings.ToLower(v.GetString("identity.provider"))
	cfg.Identity.ClientID = firstNonEmpty(v.GetString("client_id"), v.GetString("identity.client_id"))
	cfg.Identity.ClientSecret = firstNonEmpty(v.GetString("client_secret"), v.GetString("identity.client_secret"))
	cfg.Identity.Authority = strings.TrimRight(firstNonEmpty(v.GetString("authority"), v.GetString("identity.authority")), "/")
	cfg.Identity.RedirectPath = firstNonEmpty(v.GetString("redirect_path"), v.GetString("identity.redirect_path"))
	scope := firstNonEmpty(v.GetString("scope"), v.GetString("identity.scope"))
	if scope == "" {
		scope = defaultScopes[cfg.Identity.Provider]
	}
	cfg.Identity.Scopes = parseScopes(scope)
	if !strings.HasPrefix(cfg.Identity.RedirectPath, "/") {
		cfg.Identity.RedirectPath = "/" + cfg.Identity.RedirectPath
	}

	// Graph
	cfg.Graph.BaseURL = v.GetString("graph.base_url")
	cfg.Graph.Timeout = v.GetDuration("graph.timeout")

	// Completion
	cfg.Completion.Endpoint = firstNonEmpty(v.GetString("azure_openai_endpoint"), v.GetString("completion.endpoint"))
	cfg.Completion.APIKey = firstNonEmpty(v.GetString("azure_openai_key"), v.GetString("completion.api_key"))
	cfg.Completion.Deployment = firstNonEmpty(v.GetString("azure_openai_deployment_name"), v.GetString("completion.deployment"))
	cfg.Completion.APIVersion = v.GetString("completion.api_version")
	cfg.Completion.Timeout = v.GetDuration("completion.timeout")
	cfg.Completion.MaxTokens = v.GetInt("completion.max_tokens")
	cfg.Completion.Temperature = v.GetFloat64("completion.temperature")
	cfg.Completion.TopP = v.GetFloat64("completion.top_p")
	cfg.Completion.FrequencyPenalty = v.GetFloat64("completion.frequency_penalty")
	cfg.Completion.PresencePenalty = v.GetFloat64("completion.presence_penalty")

	// Rate limit
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedUsers = v.GetInt("rate_limit.max_tracked_users")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would make the server unusable.
// Missing identity or completion credentials are not errors: the matching
// routes answer with an error instead, and main logs a warning.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	switch c.Identity.Provider {
	case ProviderMicrosoft:
		if c.Identity.Authority == "" {
			return fmt.Errorf("identity.authority is required for provider %q", ProviderMicrosoft)
		}
	case ProviderGoogle:
	default:
		return fmt.Errorf("identity.provider %q is not supported", c.Identity.Provider)
	}
	if len(c.Identity.Scopes) == 0 {
		return fmt.Errorf("identity.scope must list at least one scope")
	}
	if c.Session.SecretKey == "" {
		return fmt.Errorf("secret_key is required")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.Session.MaxEntries <= 0 {
		return fmt.Errorf("session.max_entries must be positive")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when enabled")
	}
	return nil
}

// UsesDefaultSecret reports whether the session secret was left at its built-in value.
func (c *Config) UsesDefaultSecret() bool {
	return c.Session.SecretKey == defaultSecretKey
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5001)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("session.secret_key", defaultSecretKey)
	v.SetDefault("session.cookie_name", "em_session")
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("session.max_entries", 10000)
	v.SetDefault("session.secure", false)

	v.SetDefault("identity.provider", ProviderMicrosoft)
	v.SetDefault("identity.authority", "https://login.microsoftonline.com/common")
	v.SetDefault("identity.redirect_path", "/getAToken")

	v.SetDefault("graph.base_url", "https://graph.microsoft.com/v1.0/")
	v.SetDefault("graph.timeout", "30s")

	v.SetDefault("completion.api_version", "2024-02-01")
	v.SetDefault("completion.timeout", "45s")
	v.SetDefault("completion.max_tokens", 300)
	v.SetDefault("completion.temperature", 0.7)
	v.SetDefault("completion.top_p", 0.95)
	v.SetDefault("completion.frequency_penalty", 0)
	v.SetDefault("completion.presence_penalty", 0)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 20)
	v.SetDefault("rate_limit.max_tracked_users", 1000)
}

// parseScopes splits a space or comma separated scope list.
func parseScopes(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ','
	})
	var out []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
