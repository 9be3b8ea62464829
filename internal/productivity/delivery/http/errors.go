package http

import (
	"errors"

	"em-agent/internal/productivity"
	pkgErrors "em-agent/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, productivity.ErrMissingCredential):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
