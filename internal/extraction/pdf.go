package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type pdfExtractor struct{}

// Extract reads every page row by row so that each visual line of the PDF becomes one text line.
func (pdfExtractor) Extract(data []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		for _, row := range rows {
			sb.WriteString(joinRow(row.Content))
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// wordGapRatio is the horizontal gap, as a fraction of the font size, above which two
// chunks on a row are separate words.
const wordGapRatio = 0.15

// joinRow concatenates the text chunks of one row, inserting a space where the PDF
// positions words apart instead of drawing a space glyph.
func joinRow(chunks []pdf.Text) string {
	var sb strings.Builder
	for i, chunk := range chunks {
		if i > 0 && needsSpace(chunks[i-1], chunk) {
			sb.WriteByte(' ')
		}
		sb.WriteString(chunk.S)
	}
	return sb.String()
}

func needsSpace(prev, cur pdf.Text) bool {
	if prev.S == "" || cur.S == "" ||
		strings.HasSuffix(prev.S, " ") || strings.HasPrefix(cur.S, " ") {
		return false
	}
	size := prev.FontSize
	if size <= 0 {
		size = prev.W
	}
	gap := cur.X - (prev.X + prev.W)
	return size > 0 && gap > size*wordGapRatio
}
