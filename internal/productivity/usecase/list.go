package usecase

import (
	"context"
	"fmt"

	"em-agent/internal/model"
	"em-agent/internal/productivity"
	repo "em-agent/internal/productivity/repository"
)

// ListEvents fetches the next seven days of events starting now (UTC).
func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope, input productivity.ListEventsInput) (productivity.ListEventsOutput, error) {
	if input.Token == nil || input.Token.AccessToken == "" {
		return productivity.ListEventsOutput{}, productivity.ErrMissingCredential
	}

	start := uc.now().UTC()
	end := start.Add(productivity.EventWindow)

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		Token: input.Token,
		Start: start,
		End:   end,
		Limit: productivity.MaxEvents,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEvents user=%s: %v", sc.UserID, err)
		return productivity.ListEventsOutput{}, fmt.Errorf("%w: %v", productivity.ErrFetchFailed, err)
	}
	if len(events) > productivity.MaxEvents {
		events = events[:productivity.MaxEvents]
	}

	uc.l.Debugf(ctx, "uc.ListEvents user=%s: %d events", sc.UserID, len(events))
	return productivity.ListEventsOutput{Events: events, Start: start, End: end}, nil
}

// ListTasks fetches the open tasks of the caller's default list.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input productivity.ListTasksInput) (productivity.ListTasksOutput, error) {
	if input.Token == nil || input.Token.AccessToken == "" {
		return productivity.ListTasksOutput{}, productivity.ErrMissingCredential
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Token: input.Token})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks user=%s: %v", sc.UserID, err)
		return productivity.ListTasksOutput{}, fmt.Errorf("%w: %v", productivity.ErrFetchFailed, err)
	}

	uc.l.Debugf(ctx, "uc.ListTasks user=%s: %d tasks", sc.UserID, len(tasks))
	return productivity.ListTasksOutput{Tasks: tasks}, nil
}
