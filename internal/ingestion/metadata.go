package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes where ingested content came from.
type Metadata struct {
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`      // SHA-256 hex of the content
	Board     string `json:"board,omitempty"`
	Title     string `json:"title,omitempty"`
	Rendered  bool   `json:"rendered,omitempty"`
	FromCache bool   `json:"from_cache,omitempty"`
}

// NewMetadata stamps content from source with the current time and its hash.
func NewMetadata(content, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      ContentHash([]byte(content)),
	}
}

// ContentHash returns the hex SHA-256 digest of data.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
