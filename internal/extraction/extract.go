package extraction

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Extractor converts the raw bytes of one document format into text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(data []byte) (string, error)

// Extract calls f(data).
func (f ExtractorFunc) Extract(data []byte) (string, error) {
	return f(data)
}

// Registry maps document kinds to extractors.
type Registry map[FileKind]Extractor

// DefaultRegistry returns the PDF and DOCX extractors.
func DefaultRegistry() Registry {
	return Registry{
		KindPDF:  pdfExtractor{},
		KindDOCX: docxExtractor{},
	}
}

// ExtractPlainText extracts the text of a document and splits it into non-blank lines.
// A document without text yields zero lines and no error.
func ExtractPlainText(data []byte, kind FileKind) ([]string, error) {
	return DefaultRegistry().ExtractPlainText(data, kind)
}

// ExtractPlainText extracts with the extractor registered for kind.
func (r Registry) ExtractPlainText(data []byte, kind FileKind) ([]string, error) {
	extractor, ok := r[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, kind)
	}

	text, err := extractor.Extract(data)
	if err != nil {
		return nil, &ExtractionError{Kind: kind, Cause: err}
	}

	return SplitLines(text), nil
}

// ExtractFile reads a document from disk and extracts its lines, detecting the kind from the extension.
func ExtractFile(path string) ([]string, error) {
	kind, err := KindFromFilename(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ExtractPlainText(data, kind)
}

var spaceRun = regexp.MustCompile(`[ \t\f\v\p{Zs}]+`)

// SplitLines normalizes line endings and whitespace and returns the non-blank lines of text.
func SplitLines(text string) []string {
	// Normalize line endings (CRLF → LF)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
