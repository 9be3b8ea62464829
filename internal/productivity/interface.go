package productivity

import (
	"context"

	"em-agent/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ListEvents returns the caller's events for the next seven days, earliest first.
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) (ListEventsOutput, error)
	// ListTasks returns the caller's open tasks from the default list.
	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
}
