package sites

import (
	"errors"
	"net/http"
)

// Domain errors for site operations.
var (
	ErrNotFound     = errors.New("site not found")
	ErrDuplicate    = errors.New("site already exists")
	ErrForbidden    = errors.New("site not owned by caller")
	ErrInvalidInput = errors.New("invalid input")
)

// MapHTTPStatus maps site domain errors to HTTP status codes.
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
