package processing

import (
	"errors"
	"net/http"
)

// Domain errors for intake processing operations.
var (
	ErrNoInput        = errors.New("either file or raw_content must be provided")
	ErrTextRequired   = errors.New("content must be decodeable to text")
	ErrBytesRequired  = errors.New("content must be provided as bytes")
	ErrClassification = errors.New("classification failed")
	ErrNotFound       = errors.New("process not found")
	ErrFileTooLarge   = errors.New("file exceeds maximum upload size")
)

// MapHTTPStatus maps processing domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrTextRequired) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrBytesRequired) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
