package advice

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Suggestion categories.
const (
	CategorySkills         = "Skills"
	CategoryExperience     = "Experience"
	CategoryEducation      = "Education"
	CategoryProjects       = "Projects"
	CategoryCertifications = "Certifications"
)

// Suggestions returns improvement suggestions in fixed category order. A category is
// included only when its gap list is non-empty; certifications are suggested when the
// résumé lists none.
func Suggestions(resume types.ResumeRecord, gaps types.GapReport) []types.Suggestion {
	suggestions := []types.Suggestion{}

	if len(gaps.MissingSkills) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category:   CategorySkills,
			Priority:   types.PriorityHigh,
			Suggestion: "Add these missing skills: " + strings.Join(gaps.MissingSkills, ", "),
			Action:     "Consider taking online courses or adding relevant projects that demonstrate these skills",
		})
	}

	if len(gaps.WeakExperience) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category:   CategoryExperience,
			Priority:   types.PriorityHigh,
			Suggestion: "Strengthen your work experience section",
			Action:     "Add quantifiable achievements, use action verbs, and include specific technologies used",
		})
	}

	if len(gaps.EducationGaps) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category:   CategoryEducation,
			Priority:   types.PriorityMedium,
			Suggestion: gaps.EducationGaps[0],
			Action:     "Highlight relevant coursework or certifications that demonstrate required knowledge",
		})
	}

	if len(gaps.ProjectGaps) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category:   CategoryProjects,
			Priority:   types.PriorityMedium,
			Suggestion: "Add more relevant projects",
			Action:     "Create projects that showcase the required skills and technologies",
		})
	}

	if len(resume.Certifications) == 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category:   CategoryCertifications,
			Priority:   types.PriorityLow,
			Suggestion: "Consider adding relevant certifications",
			Action:     "Look for industry-recognized certifications in your field",
		})
	}

	return suggestions
}
