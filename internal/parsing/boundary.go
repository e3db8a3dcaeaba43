package parsing

import "strings"

// Keywords that mark the first line of a new entry. Matching is a case-insensitive
// substring test, so "mar" also fires inside "market" and "201" inside "2019".
var (
	educationTriggers = []string{
		"bachelor", "master", "phd", "degree", "university", "college", "school",
		"202", "201",
	}
	experienceDateTriggers = []string{
		"202", "201",
		"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec",
	}
	experienceRoleTriggers = []string{
		"engineer", "developer", "manager", "analyst", "specialist", "coordinator", "intern", "associate",
	}
	bulletGlyphs = []string{"•", "-", "*", "○"}
)

// maxProjectTitleLength bounds how long a line mentioning "project" may be and still count as a title.
const maxProjectTitleLength = 80

// StartsEducationEntry reports whether line opens a new education entry.
func StartsEducationEntry(line string) bool {
	return containsAny(strings.ToLower(line), educationTriggers)
}

// StartsExperienceEntry reports whether line opens a new job entry.
func StartsExperienceEntry(line string) bool {
	lower := strings.ToLower(line)
	return containsAny(lower, experienceDateTriggers) || containsAny(lower, experienceRoleTriggers)
}

// StartsProjectEntry reports whether line looks like a project title: not a bullet, and
// either ending in "|" or ":" or a short line that mentions "project".
func StartsProjectEntry(line string) bool {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			return false
		}
	}
	if strings.HasSuffix(line, "|") || strings.HasSuffix(line, ":") {
		return true
	}
	// Length is measured in characters, not bytes.
	return strings.Contains(strings.ToLower(line), "project") && len([]rune(line)) < maxProjectTitleLength
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
