package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	// SHA-256 of "abc"
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", ContentHash([]byte("abc")))
	assert.Len(t, ContentHash(nil), 64)
}

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("posting", "https://example.com/job")
	assert.Equal(t, "https://example.com/job", meta.Source)
	assert.Equal(t, ContentHash([]byte("posting")), meta.Hash)

	_, err := time.Parse(time.RFC3339, meta.Timestamp)
	assert.NoError(t, err)
}

func TestMetadata_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(NewMetadata("x", "job.txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "board")
	assert.NotContains(t, string(data), "rendered")
	assert.Contains(t, string(data), `"source":"job.txt"`)
}
