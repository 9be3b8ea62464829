package graph

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"em-agent/internal/model"
	"em-agent/internal/productivity/repository"
	pkgGraph "em-agent/pkg/graph"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	endpoint := calendarViewEndpoint + "?" + odataQuery(
		"startDateTime", opt.Start.UTC().Format(graphTimeFormat),
		"endDateTime", opt.End.UTC().Format(graphTimeFormat),
		"$select", "subject,start,end",
		"$orderby", "start/dateTime",
		"$top", strconv.Itoa(opt.Limit),
	)

	doc, err := r.client.Get(ctx, endpoint, opt.Token.AccessToken)
	if err != nil {
		return nil, err
	}

	items := pkgGraph.Values(doc)
	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		events = append(events, toEvent(item))
	}
	return events, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.TodoTask, error) {
	endpoint := todoTasksEndpoint + "?" + odataQuery(
		"$filter", "status ne 'completed'",
		"$select", "id,title,status,importance,dueDateTime",
	)

	doc, err := r.client.Get(ctx, endpoint, opt.Token.AccessToken)
	if err != nil {
		return nil, err
	}

	items := pkgGraph.Values(doc)
	tasks := make([]model.TodoTask, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, toTodoTask(item))
	}
	return tasks, nil
}

// odataQuery joins key/value pairs, escaping values only. OData system
// options keep their literal $ prefix.
func odataQuery(kv ...string) string {
	parts := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		parts = append(parts, kv[i]+"="+strings.ReplaceAll(url.QueryEscape(kv[i+1]), "+", "%20"))
	}
	return strings.Join(parts, "&")
}

func toEvent(item map[string]any) model.Event {
	ev := model.Event{
		ID:      str(item["id"]),
		Subject: str(item["subject"]),
		WebLink: str(item["webLink"]),
	}
	ev.Start, ev.TimeZone = dateTimeTimeZone(item["start"])
	ev.End, _ = dateTimeTimeZone(item["end"])
	if allDay, ok := item["isAllDay"].(bool); ok {
		ev.AllDay = allDay
	}
	return ev
}

func toTodoTask(item map[string]any) model.TodoTask {
	t := model.TodoTask{
		ID:         str(item["id"]),
		Title:      str(item["title"]),
		Status:     str(item["status"]),
		Importance: str(item["importance"]),
	}
	t.Due, _ = dateTimeTimeZone(item["dueDateTime"])
	return t
}

// dateTimeTimeZone reads a Graph dateTimeTimeZone resource.
func dateTimeTimeZone(v any) (string, string) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", ""
	}
	return str(m["dateTime"]), str(m["timeZone"])
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
