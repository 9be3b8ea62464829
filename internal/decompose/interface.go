package decompose

import (
	"context"

	"em-agent/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Decompose asks the completion service for first steps on a task and
	// splits the reply into steps and encouragement.
	Decompose(ctx context.Context, sc model.Scope, input DecomposeInput) (DecomposeOutput, error)
}
