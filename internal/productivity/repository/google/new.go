package google

import (
	"context"

	"golang.org/x/oauth2"

	"em-agent/internal/productivity/repository"
	"em-agent/pkg/gcalendar"
	"em-agent/pkg/gtasks"
	"em-agent/pkg/log"
)

type calendarLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type taskLister interface {
	ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.Task, error)
}

type implRepository struct {
	l            log.Logger
	newCalendar  func(ctx context.Context, ts oauth2.TokenSource) (calendarLister, error)
	newTaskLists func(ctx context.Context, ts oauth2.TokenSource) (taskLister, error)
}

// New creates a Google Calendar + Google Tasks backed repository.
// A client is built per call from the caller's token.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l: l,
		newCalendar: func(ctx context.Context, ts oauth2.TokenSource) (calendarLister, error) {
			return gcalendar.NewClientFromTokenSource(ctx, ts)
		},
		newTaskLists: func(ctx context.Context, ts oauth2.TokenSource) (taskLister, error) {
			return gtasks.NewClientFromTokenSource(ctx, ts)
		},
	}
}
