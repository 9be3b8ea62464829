package productivity

import (
	"time"

	"golang.org/x/oauth2"

	"em-agent/internal/model"
)

const (
	// EventWindow is how far ahead the calendar view looks.
	EventWindow = 7 * 24 * time.Hour
	// MaxEvents caps the number of events returned.
	MaxEvents = 25
)

// --- UseCase Inputs ---

type ListEventsInput struct {
	Token *oauth2.Token
}

type ListTasksInput struct {
	Token *oauth2.Token
}

// --- UseCase Outputs ---

type ListEventsOutput struct {
	Events []model.Event
	Start  time.Time
	End    time.Time
}

type ListTasksOutput struct {
	Tasks []model.TodoTask
}
