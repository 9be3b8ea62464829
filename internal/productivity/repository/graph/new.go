package graph

import (
	"em-agent/internal/productivity/repository"
	pkgGraph "em-agent/pkg/graph"
	"em-agent/pkg/log"
)

const (
	calendarViewEndpoint = "me/calendarview"
	todoTasksEndpoint    = "me/todo/lists/Tasks/tasks"

	// graphTimeFormat is the UTC form calendarview accepts for its window bounds.
	graphTimeFormat = "2006-01-02T15:04:05.0000000Z"
)

type implRepository struct {
	client pkgGraph.IGraph
	l      log.Logger
}

// New creates a Microsoft Graph backed repository.
func New(client pkgGraph.IGraph, l log.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}
