package extraction

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither PDF nor DOCX.
	ErrUnsupportedFormat = errors.New("unsupported file format: only PDF and DOCX are supported")
	// ErrExtractionFailure is returned when a document cannot be decoded.
	ErrExtractionFailure = errors.New("text extraction failed")
)

// ExtractionError reports a document that could not be turned into text.
type ExtractionError struct {
	Kind  FileKind
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s", e.Kind)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrExtractionFailure) hold for every ExtractionError.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailure
}
