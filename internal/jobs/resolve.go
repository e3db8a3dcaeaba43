// Package jobs resolves job titles to canned descriptions and required skills.
package jobs

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Template is a canned job description and its required skills.
type Template struct {
	Key         string   `json:"key"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

func (t Template) clone() Template {
	t.Skills = append([]string(nil), t.Skills...)
	return t
}

// Templates returns a copy of the template table in lookup order.
func Templates() []Template {
	out := make([]Template, len(templates))
	for i, t := range templates {
		out[i] = t.clone()
	}
	return out
}

// Generic returns the fallback template.
func Generic() Template {
	return genericTemplate.clone()
}

// Lookup returns the first template whose key contains the title or is contained in it,
// ignoring case. A blank or unmatched title yields the generic template and false.
func Lookup(title string) (Template, bool) {
	needle := strings.ToLower(strings.TrimSpace(title))
	if needle == "" {
		return Generic(), false
	}
	for _, t := range templates {
		if strings.Contains(needle, t.Key) || strings.Contains(t.Key, needle) {
			return t.clone(), true
		}
	}
	return Generic(), false
}

// Resolve returns the description and skills for a job title.
func Resolve(title string) (string, []string) {
	t, _ := Lookup(title)
	return t.Description, t.Skills
}

var skillSeparators = regexp.MustCompile(`[,\r\n]+`)

// ParseSkillList splits free text on commas and newlines into trimmed, non-empty skills.
func ParseSkillList(text string) []string {
	parts := skillSeparators.Split(text, -1)
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// Overrides replace parts of a resolved template.
type Overrides struct {
	Description string
	Skills      []string
}

// BuildRequirements resolves title and applies overrides. It returns the job description
// in effect and the requirements to analyze against.
func BuildRequirements(title string, overrides Overrides, minExperience int, level types.EducationLevel) (string, types.JobRequirements) {
	description, skills := Resolve(title)
	if strings.TrimSpace(overrides.Description) != "" {
		description = overrides.Description
	}
	if len(overrides.Skills) > 0 {
		skills = append([]string(nil), overrides.Skills...)
	}
	if level == "" {
		level = types.EducationAny
	}

	return description, types.JobRequirements{
		Skills:         skills,
		MinExperience:  minExperience,
		EducationLevel: level,
	}
}
