package azopenai

import "errors"

// ErrNoChoices is returned when the service answered successfully but with zero candidates.
var ErrNoChoices = errors.New("azopenai: response has no choices")
