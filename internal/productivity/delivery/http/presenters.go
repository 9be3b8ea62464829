package http

import (
	"time"

	"em-agent/internal/model"
	"em-agent/internal/productivity"
)

// --- Response DTOs ---

type listEventsResp struct {
	Events []model.Event `json:"events"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
}

func (h *handler) newListEventsResp(out productivity.ListEventsOutput) listEventsResp {
	events := out.Events
	if events == nil {
		events = []model.Event{}
	}
	return listEventsResp{Events: events, Start: out.Start, End: out.End}
}

type listTasksResp struct {
	Tasks []model.TodoTask `json:"tasks"`
}

func (h *handler) newListTasksResp(out productivity.ListTasksOutput) listTasksResp {
	tasks := out.Tasks
	if tasks == nil {
		tasks = []model.TodoTask{}
	}
	return listTasksResp{Tasks: tasks}
}
