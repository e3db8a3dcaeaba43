package extraction

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromFilename(t *testing.T) {
	tests := []struct {
		name    string
		want    FileKind
		wantErr bool
	}{
		{name: "resume.pdf", want: KindPDF},
		{name: "Resume.PDF", want: KindPDF},
		{name: "/tmp/cv.docx", want: KindDOCX},
		{name: "cv.doc", wantErr: true},
		{name: "notes.txt", wantErr: true},
		{name: "noextension", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindFromFilename(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitLines(t *testing.T) {
	text := "Jane Doe\r\n\r\n  EDUCATION  \rBachelor   of\tScience MIT\n\n\n"
	assert.Equal(t, []string{"Jane Doe", "EDUCATION", "Bachelor of Science MIT"}, SplitLines(text))
	assert.Empty(t, SplitLines(""))
	assert.Empty(t, SplitLines(" \n\t\n"))
}

func TestRegistry_ExtractPlainText(t *testing.T) {
	registry := Registry{
		KindPDF: ExtractorFunc(func(data []byte) (string, error) {
			return string(data), nil
		}),
		KindDOCX: ExtractorFunc(func([]byte) (string, error) {
			return "", errors.New("zip: not a valid zip file")
		}),
	}

	t.Run("lines", func(t *testing.T) {
		lines, err := registry.ExtractPlainText([]byte("Jane Doe\nSKILLS\nGo"), KindPDF)
		require.NoError(t, err)
		assert.Equal(t, []string{"Jane Doe", "SKILLS", "Go"}, lines)
	})

	t.Run("empty document is not an error", func(t *testing.T) {
		lines, err := registry.ExtractPlainText(nil, KindPDF)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("extractor failure", func(t *testing.T) {
		_, err := registry.ExtractPlainText([]byte("x"), KindDOCX)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExtractionFailure)

		var extractionErr *ExtractionError
		require.True(t, errors.As(err, &extractionErr))
		assert.Equal(t, KindDOCX, extractionErr.Kind)
		assert.Contains(t, err.Error(), "docx")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := registry.ExtractPlainText([]byte("x"), FileKind("rtf"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestExtractPlainText_MalformedDocuments(t *testing.T) {
	_, err := ExtractPlainText([]byte("this is not a pdf"), KindPDF)
	assert.ErrorIs(t, err, ErrExtractionFailure)

	_, err = ExtractPlainText([]byte("this is not a zip archive"), KindDOCX)
	assert.ErrorIs(t, err, ErrExtractionFailure)
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()

	unsupported := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(unsupported, []byte("Jane"), 0644))
	_, err := ExtractFile(unsupported)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ExtractFile(filepath.Join(dir, "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
