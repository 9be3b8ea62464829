package azopenai

import "time"

const (
	// DefaultAPIVersion is the Azure OpenAI REST API version.
	DefaultAPIVersion = "2024-02-01"

	// DefaultTimeout is the per-call HTTP client timeout.
	DefaultTimeout = 45 * time.Second

	DefaultMaxTokens   = 300
	DefaultTemperature = 0.7
	DefaultTopP        = 0.95

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
