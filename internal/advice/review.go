// Package advice turns gap reports and scores into review text, suggestions and chat replies.
package advice

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxListedMissingSkills caps how many missing skills the review names.
const maxListedMissingSkills = 3

var assessments = map[string]string{
	analysis.BandStrong:           "Your resume shows strong alignment with the job requirements. You have a good chance of being selected.",
	analysis.BandGood:             "Your resume is competitive but has some areas for improvement. With some enhancements, you could be a strong candidate.",
	analysis.BandNeedsImprovement: "Your resume needs significant improvements to be competitive for this position.",
	analysis.BandNotReady:         "Your resume is not well-aligned with this job. Consider applying for positions that better match your current skills.",
}

var outlooks = map[string]string{
	analysis.BandStrong:           "High chance of being selected!",
	analysis.BandGood:             "Good chance with some improvements",
	analysis.BandNeedsImprovement: "Moderate chance, needs work",
	analysis.BandNotReady:         "Consider other opportunities or significant improvements",
}

// Strengths lists what the résumé already does well.
func Strengths(resume types.ResumeRecord, gaps types.GapReport) []string {
	var strengths []string
	if len(gaps.MissingSkills) == 0 {
		strengths = append(strengths, "Strong skill match")
	}
	if len(gaps.WeakExperience) == 0 {
		strengths = append(strengths, "Good experience descriptions")
	}
	if len(gaps.ProjectGaps) == 0 {
		strengths = append(strengths, "Relevant projects")
	}
	if len(resume.Certifications) > 0 {
		strengths = append(strengths, "Professional certifications")
	}
	return strengths
}

// Improvements lists the areas that need work, naming at most three missing skills.
func Improvements(gaps types.GapReport) []string {
	var improvements []string
	if n := len(gaps.MissingSkills); n > 0 {
		listed := gaps.MissingSkills[:min(n, maxListedMissingSkills)]
		improvements = append(improvements, "Missing key skills: "+strings.Join(listed, ", "))
	}
	if len(gaps.WeakExperience) > 0 {
		improvements = append(improvements, "Experience section needs strengthening")
	}
	if len(gaps.EducationGaps) > 0 {
		improvements = append(improvements, "Education requirements not fully met")
	}
	if len(gaps.ProjectGaps) > 0 {
		improvements = append(improvements, "Need more relevant projects")
	}
	return improvements
}

// Review renders the honest review: overall band, strengths, areas for improvement and
// the selection probability.
func Review(resume types.ResumeRecord, _ types.JobRequirements, gaps types.GapReport, score float64) string {
	band := analysis.Band(score)

	var sb strings.Builder
	sb.WriteString("**Honest Resume Review:**\n\n")
	fmt.Fprintf(&sb, "**Overall Assessment: %s**\n", band)
	sb.WriteString(assessments[band])
	sb.WriteString("\n\n")

	writeList(&sb, "Strengths", Strengths(resume, gaps))
	writeList(&sb, "Areas for Improvement", Improvements(gaps))

	fmt.Fprintf(&sb, "**Selection Probability: %.1f%%**\n", score)
	sb.WriteString(outlooks[band])

	return sb.String()
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "**%s:**\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "• %s\n", item)
	}
	sb.WriteString("\n")
}
