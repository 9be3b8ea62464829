package usecase

import (
	"em-agent/internal/decompose"
	"em-agent/pkg/azopenai"
	"em-agent/pkg/log"
)

// Sampling holds the parameters sent with every completion request.
type Sampling struct {
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// DefaultSampling matches the values the assistant was tuned with.
func DefaultSampling() Sampling {
	return Sampling{
		MaxTokens:   azopenai.DefaultMaxTokens,
		Temperature: azopenai.DefaultTemperature,
		TopP:        azopenai.DefaultTopP,
	}
}

// implUseCase is the private implementation of decompose.UseCase.
type implUseCase struct {
	l        log.Logger
	client   azopenai.IAzureOpenAI
	sampling Sampling
}

// New creates the decompose use case. client may be nil when the completion
// service is not configured; Decompose then fails with ErrCompletionUnavailable.
func New(l log.Logger, client azopenai.IAzureOpenAI, sampling Sampling) decompose.UseCase {
	return &implUseCase{
		l:        l,
		client:   client,
		sampling: sampling,
	}
}
