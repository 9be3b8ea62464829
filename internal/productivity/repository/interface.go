package repository

import (
	"context"

	"em-agent/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.TodoTask, error)
}
