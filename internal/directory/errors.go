package directory

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("directory entry not found")
	ErrDuplicate    = errors.New("email already on the waitlist")
	ErrInvalidInput = errors.New("invalid directory request")
)

// MapHTTPStatus translates directory errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
