// Package analysis compares a résumé with job requirements and scores the fit.
package analysis

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Gap messages.
const (
	WeakExperienceMessage = "Add more detailed work experience descriptions"
	BachelorGapMessage    = "Consider adding Bachelor's degree or equivalent"
	MasterGapMessage      = "Consider adding Master's degree or equivalent"
	ProjectGapMessage     = "Add more relevant projects to showcase practical skills"
)

// experienceKeywords are counted in the experience text; fewer than minExperienceKeywords is weak.
var experienceKeywords = []string{"years", "experience", "worked", "developed", "managed"}

const (
	minExperienceKeywords = 3
	minProjects           = 2
)

// Analyze finds the gaps between a résumé and the requirements.
//
// Skill matching is a substring test against the lowercased, space-joined skills
// section, so "Java" is satisfied by "JavaScript" and "R" by almost anything.
func Analyze(resume types.ResumeRecord, reqs types.JobRequirements) types.GapReport {
	return types.GapReport{
		MissingSkills:  missingSkills(resume.Skills, reqs.Skills),
		WeakExperience: weakExperience(resume.Experience),
		EducationGaps:  educationGaps(resume.Education, reqs.EducationLevel),
		ProjectGaps:    projectGaps(resume.Projects),
	}
}

func missingSkills(have, required []string) []string {
	text := strings.ToLower(strings.Join(have, " "))
	missing := []string{}
	for _, skill := range required {
		if !strings.Contains(text, strings.ToLower(skill)) {
			missing = append(missing, skill)
		}
	}
	return missing
}

func weakExperience(experience []string) []string {
	text := strings.ToLower(strings.Join(experience, " "))
	found := 0
	for _, kw := range experienceKeywords {
		if strings.Contains(text, kw) {
			found++
		}
	}
	if found < minExperienceKeywords {
		return []string{WeakExperienceMessage}
	}
	return []string{}
}

func educationGaps(education []string, level types.EducationLevel) []string {
	text := strings.ToLower(strings.Join(education, " "))
	gaps := []string{}
	switch level {
	case types.EducationBachelor:
		if !strings.Contains(text, "bachelor") {
			gaps = append(gaps, BachelorGapMessage)
		}
	case types.EducationMaster:
		if !strings.Contains(text, "master") {
			gaps = append(gaps, MasterGapMessage)
		}
	}
	return gaps
}

func projectGaps(projects []string) []string {
	if len(projects) < minProjects {
		return []string{ProjectGapMessage}
	}
	return []string{}
}
