package types

import (
	"fmt"
	"strings"
)

// EducationLevel is the minimum education a job asks for.
type EducationLevel string

const (
	EducationAny        EducationLevel = "Any"
	EducationHighSchool EducationLevel = "High School"
	EducationAssociate  EducationLevel = "Associate's"
	EducationBachelor   EducationLevel = "Bachelor's"
	EducationMaster     EducationLevel = "Master's"
	EducationPhD        EducationLevel = "PhD"
)

// EducationLevels lists every supported level in ascending order.
var EducationLevels = []EducationLevel{
	EducationAny,
	EducationHighSchool,
	EducationAssociate,
	EducationBachelor,
	EducationMaster,
	EducationPhD,
}

// ParseEducationLevel maps user input to an EducationLevel. Matching ignores case and
// apostrophes so "bachelors" and "Bachelor's" are equivalent. An empty string means Any.
func ParseEducationLevel(s string) (EducationLevel, error) {
	key := normalizeLevel(s)
	if key == "" {
		return EducationAny, nil
	}
	for _, level := range EducationLevels {
		if normalizeLevel(string(level)) == key {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown education level %q", s)
}

func normalizeLevel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")
	return s
}

// JobRequirements are the expectations a résumé is measured against.
type JobRequirements struct {
	Skills         []string       `json:"skills"`
	MinExperience  int            `json:"min_experience" validate:"gte=0"`
	EducationLevel EducationLevel `json:"education_level" validate:"education_level"`
}

// Canonicalize rewrites EducationLevel to its canonical spelling, so "bachelors" becomes
// "Bachelor's" and an empty level becomes Any.
func (r *JobRequirements) Canonicalize() error {
	level, err := ParseEducationLevel(string(r.EducationLevel))
	if err != nil {
		return err
	}
	r.EducationLevel = level
	return nil
}

// GapReport lists what a résumé is missing relative to a set of requirements.
type GapReport struct {
	MissingSkills  []string `json:"missing_skills"`
	WeakExperience []string `json:"weak_experience"`
	EducationGaps  []string `json:"education_gaps"`
	ProjectGaps    []string `json:"project_gaps"`
}

// Empty reports whether no gaps were found.
func (g GapReport) Empty() bool {
	return len(g.MissingSkills) == 0 && len(g.WeakExperience) == 0 &&
		len(g.EducationGaps) == 0 && len(g.ProjectGaps) == 0
}
