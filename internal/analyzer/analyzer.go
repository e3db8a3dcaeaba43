// Package analyzer composes segmentation, requirement resolution, gap analysis, scoring
// and advice into the two public operations: analyzing a résumé and answering chat.
package analyzer

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/advice"
	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/jobs"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeResume segments the résumé lines and scores them against the job described by req.
// The only error is an invalid request; an empty résumé is analyzed like any other.
func AnalyzeResume(lines []string, req types.AnalysisRequest) (*types.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis request: %w", err)
	}
	level, err := types.ParseEducationLevel(req.EducationLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid analysis request: %w", err)
	}

	resume := parsing.Segment(lines)
	description, reqs := jobs.BuildRequirements(req.JobTitle, jobs.Overrides{
		Description: req.JobDescription,
		Skills:      req.Skills,
	}, req.MinExperience, level)

	return Evaluate(resume, req.JobTitle, description, reqs), nil
}

// Evaluate scores an already segmented résumé against requirements.
func Evaluate(resume types.ResumeRecord, jobTitle, jobDescription string, reqs types.JobRequirements) *types.AnalysisResult {
	gaps := analysis.Analyze(resume, reqs)
	score := analysis.Score(resume, reqs, gaps)

	return &types.AnalysisResult{
		Resume:         resume,
		Requirements:   reqs,
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		Gaps:           gaps,
		Score:          analysis.NewScoreResult(score),
		Review:         advice.Review(resume, reqs, gaps, score),
		Suggestions:    advice.Suggestions(resume, gaps),
	}
}

// Chat answers a free-text question about a résumé. Gaps, score and suggestions are
// recomputed from the inputs on every call.
func Chat(message string, resume types.ResumeRecord, _ string, reqs types.JobRequirements) string {
	gaps := analysis.Analyze(resume, reqs)
	return advice.Respond(advice.Route(message), advice.Context{
		Resume:       resume,
		Requirements: reqs,
		Gaps:         gaps,
		Score:        analysis.Score(resume, reqs, gaps),
		Suggestions:  advice.Suggestions(resume, gaps),
	})
}
