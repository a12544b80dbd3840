package listings

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("listing not found")
	ErrDuplicate    = errors.New("listing already contracted")
	ErrForbidden    = errors.New("listing not owned by caller")
	ErrInvalidInput = errors.New("invalid listing data")
	ErrInvalidPDF   = errors.New("document is not a valid PDF")
)

// MapHTTPStatus translates listing errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidPDF):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
