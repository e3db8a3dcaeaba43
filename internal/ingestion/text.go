// Package ingestion turns job postings from files and URLs into clean job-description text.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// MaxDescriptionBytes caps a job description read from disk.
const MaxDescriptionBytes = 1 << 20

var (
	innerSpace  = regexp.MustCompile(`[ \t\f\v]+`)
	blankRun    = regexp.MustCompile(`\n{3,}`)
	bulletStart = regexp.MustCompile(`^(?:[•·]\s*|[-*]\s+)`)
)

// CleanText normalizes line endings and whitespace, unifies bullets as "- "
// and keeps at most one blank line between paragraphs.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	out := strings.Join(lines, "\n")
	out = blankRun.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func cleanLine(line string) string {
	line = strings.TrimSpace(innerSpace.ReplaceAllString(line, " "))
	if line == "" {
		return ""
	}
	if strings.HasPrefix(line, "#") {
		return line
	}
	if m := bulletStart.FindStringSubmatchIndex(line); m != nil && m[1] < len(line) {
		return "- " + line[m[1]:]
	}
	return line
}

// JobDescriptionFromFile reads and cleans a plain-text job description.
func JobDescriptionFromFile(path string) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("job description file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read job description: %w", err)
	}
	if info.Size() > MaxDescriptionBytes {
		return "", nil, fmt.Errorf("job description %s is larger than %d bytes", path, MaxDescriptionBytes)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read job description: %w", err)
	}

	text := CleanText(string(content))
	if text == "" {
		return "", nil, fmt.Errorf("job description %s is empty", path)
	}
	return text, NewMetadata(text, path), nil
}
