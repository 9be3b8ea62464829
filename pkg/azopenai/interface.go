package azopenai

import "context"

// IAzureOpenAI defines the interface for the Azure OpenAI chat completion client.
// Implementations are safe for concurrent use.
type IAzureOpenAI interface {
	// ChatCompletion sends one request. A response without choices is an error.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Deployment returns the deployment name being called
	Deployment() string
}

// New creates a new Azure OpenAI client with the given configuration
func New(cfg Config) (IAzureOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newAzureImpl(cfg), nil
}
