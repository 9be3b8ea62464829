package decompose

import "errors"

var (
	ErrEmptyDescription      = errors.New("task description is empty")
	ErrCompletionUnavailable = errors.New("completion service is not configured")
	ErrCompletionFailed      = errors.New("completion request failed")
)
