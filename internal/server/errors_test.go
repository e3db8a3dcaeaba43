package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "min_experience", Message: "must be a whole number of years"}
	assert.Equal(t, "validation error: min_experience - must be a whole number of years", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"too large", &http.MaxBytesError{Limit: 1}, http.StatusRequestEntityTooLarge},
		{"unsupported", fmt.Errorf("%w: %q", extraction.ErrUnsupportedFormat, ".txt"), http.StatusUnsupportedMediaType},
		{"extraction", &extraction.ExtractionError{Kind: extraction.KindPDF, Cause: errors.New("bad")}, http.StatusUnprocessableEntity},
		{"fetch failed", fmt.Errorf("%w: %w", ingestion.ErrFetchFailed, errors.New("timeout")), http.StatusBadGateway},
		{"invalid url", &fetch.Error{URL: "x", Message: "invalid URL"}, http.StatusBadRequest},
		{"not found", fmt.Errorf("resume x: %w", db.ErrNotFound), http.StatusNotFound},
		{"no database", ErrNoDatabase, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
