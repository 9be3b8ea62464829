package gtasks

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

const (
	defaultTaskList   = "@default"
	defaultMaxResults = 100
)

// Client wraps the Google Tasks API service. Read-only.
type Client struct {
	service *tasks.Service
}

// NewClientFromTokenSource creates a Tasks client acting as the user behind ts.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListTasks returns the tasks of one list.
func (c *Client) ListTasks(ctx context.Context, req ListTasksRequest) ([]Task, error) {
	listID := req.TaskListID
	if listID == "" {
		listID = defaultTaskList
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	result, err := c.service.Tasks.List(listID).
		ShowCompleted(req.ShowCompleted).
		MaxResults(maxResults).
		Fields("items(id,title,status,due,notes)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]Task, 0, len(result.Items))
	for _, item := range result.Items {
		out = append(out, Task{
			ID:     item.Id,
			Title:  item.Title,
			Status: item.Status,
			Due:    item.Due,
			Notes:  item.Notes,
		})
	}
	return out, nil
}
