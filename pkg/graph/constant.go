package graph

import "time"

const (
	// DefaultBaseURL is the Microsoft Graph v1.0 root.
	DefaultBaseURL = "https://graph.microsoft.com/v1.0/"

	// DefaultTimeout bounds a single GET, connection through body read.
	DefaultTimeout = 30 * time.Second
)
