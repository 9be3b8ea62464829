package google

import (
	"context"

	"golang.org/x/oauth2"

	"em-agent/internal/model"
	"em-agent/internal/productivity/repository"
	"em-agent/pkg/gcalendar"
	"em-agent/pkg/gtasks"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	client, err := r.newCalendar(ctx, oauth2.StaticTokenSource(opt.Token))
	if err != nil {
		return nil, err
	}

	items, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin:    opt.Start,
		TimeMax:    opt.End,
		MaxResults: int64(opt.Limit),
	})
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		events = append(events, model.Event{
			ID:      item.ID,
			Subject: item.Summary,
			Start:   item.Start,
			End:     item.End,
			AllDay:  item.AllDay,
			WebLink: item.HtmlLink,
		})
	}
	return events, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.TodoTask, error) {
	client, err := r.newTaskLists(ctx, oauth2.StaticTokenSource(opt.Token))
	if err != nil {
		return nil, err
	}

	items, err := client.ListTasks(ctx, gtasks.ListTasksRequest{ShowCompleted: false})
	if err != nil {
		return nil, err
	}

	tasks := make([]model.TodoTask, 0, len(items))
	for _, item := range items {
		if item.Status == gtasks.StatusCompleted {
			continue
		}
		tasks = append(tasks, model.TodoTask{
			ID:     item.ID,
			Title:  item.Title,
			Status: item.Status,
			Due:    item.Due,
		})
	}
	return tasks, nil
}
