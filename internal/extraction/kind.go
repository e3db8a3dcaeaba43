// Package extraction turns uploaded résumé documents into plain text lines.
package extraction

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileKind is a supported document format.
type FileKind string

const (
	KindPDF  FileKind = "pdf"
	KindDOCX FileKind = "docx"
)

// KindFromFilename returns the document kind for a file name based on its extension.
func KindFromFilename(name string) (FileKind, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch FileKind(ext) {
	case KindPDF:
		return KindPDF, nil
	case KindDOCX:
		return KindDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}
