package http

import (
	"errors"
	"net/http"

	"em-agent/internal/decompose"
	pkgErrors "em-agent/pkg/errors"
)

var (
	errNotJSON             = pkgErrors.NewHTTPError(http.StatusBadRequest, "Request must be JSON")
	errMissingDescription  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing 'task_description'")
	errDecompositionFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to get decomposition from AI service.")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, decompose.ErrEmptyDescription):
		return errMissingDescription
	default:
		return errDecompositionFailed
	}
}
