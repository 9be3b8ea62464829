package azopenai

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds Azure OpenAI client configuration.
type Config struct {
	Endpoint   string // e.g. https://my-resource.openai.azure.com/
	APIKey     string
	Deployment string
	APIVersion string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("azopenai: Endpoint is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("azopenai: APIKey is required")
	}
	if c.Deployment == "" {
		return fmt.Errorf("azopenai: Deployment is required")
	}
	c.Endpoint = strings.TrimRight(c.Endpoint, "/") + "/"
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// azureImpl is the internal implementation of IAzureOpenAI
type azureImpl struct {
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
	httpClient *http.Client
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a chat completion request. Sampling fields are sent as-is, so
// zero means zero; use NewRequest for the usual defaults.
type Request struct {
	Messages         []Message `json:"messages"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
	PresencePenalty  float64   `json:"presence_penalty"`
	Stop             []string  `json:"stop"`
}

// NewRequest builds a system+user request with default sampling parameters.
func NewRequest(systemPrompt, userPrompt string) *Request {
	return &Request{
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userPrompt},
		},
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
	}
}

// Response is the subset of the chat completion response the service reads.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one candidate completion.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// FirstContent returns the message content of the first choice.
func (r *Response) FirstContent() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}
