package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// ErrNoDatabase is returned by history endpoints when no store is configured.
var ErrNoDatabase = errors.New("history is unavailable: no database configured")

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		tooLarge    *http.MaxBytesError
		invalid     *ErrValidation
		validation  validator.ValidationErrors
		fetchFailed *fetch.Error
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, extraction.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, extraction.ErrExtractionFailure):
		return http.StatusUnprocessableEntity
	case errors.As(err, &invalid), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrFetchFailed), errors.Is(err, ingestion.ErrNoContent):
		return http.StatusBadGateway
	case errors.As(err, &fetchFailed):
		// Only URL validation reaches here; transport failures wrap ErrFetchFailed.
		return http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoDatabase):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// isCallerError reports whether a persistence error was caused by the request itself
// rather than by the store.
func isCallerError(err error) bool {
	return HTTPStatus(err) < http.StatusInternalServerError || errors.Is(err, ErrNoDatabase)
}
