package matches

import (
	"errors"
	"net/http"
)

// Domain errors for match operations.
var (
	ErrNotFound     = errors.New("match not found")
	ErrDuplicate    = errors.New("match already exists")
	ErrForbidden    = errors.New("match not owned by caller")
	ErrInvalidInput = errors.New("invalid input")
)

// MapHTTPStatus maps match domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
