package extraction

import (
	"bytes"
	"fmt"

	"code.sajari.com/docconv"
)

type docxExtractor struct{}

// Extract returns the paragraph text of a DOCX document, one paragraph per line.
func (docxExtractor) Extract(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to convert docx: %w", err)
	}
	return text, nil
}
