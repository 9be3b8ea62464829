package repository

import (
	"time"

	"golang.org/x/oauth2"
)

// ListEventsOptions selects events starting in [Start, End).
type ListEventsOptions struct {
	Token *oauth2.Token
	Start time.Time
	End   time.Time
	Limit int
}

// ListTasksOptions selects the open tasks of the default list.
type ListTasksOptions struct {
	Token *oauth2.Token
}
