package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for the four failure classes the API distinguishes. Services
// wrap them with context; handlers map them to a status via Status.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store failure")
	ErrUpstream   = errors.New("upstream failure")
)

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func Store(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStore, err)
}

func Upstream(msg string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrUpstream, msg)
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstream, msg, cause)
}

func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
