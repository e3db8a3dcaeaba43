package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreResult is the selection probability together with the policy that produced it.
type ScoreResult struct {
	SelectionProbability float64 `json:"selection_probability"`
	Band                 string  `json:"band"`
	ScoringVersion       string  `json:"scoring_version"`
}

// Priority orders suggestions by urgency.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Suggestion is one actionable improvement for a résumé.
type Suggestion struct {
	Category   string   `json:"category"`
	Priority   Priority `json:"priority"`
	Suggestion string   `json:"suggestion"`
	Action     string   `json:"action"`
}

// AnalysisRequest carries the job-side inputs for an analysis.
type AnalysisRequest struct {
	JobTitle string `json:"job_title" validate:"max=200"`
	// JobDescription replaces the template description when set.
	JobDescription string `json:"job_description,omitempty"`
	// Skills replaces the template skill list when non-empty.
	Skills         []string `json:"skills,omitempty" validate:"omitempty,dive,required"`
	MinExperience  int      `json:"min_experience" validate:"gte=0"`
	EducationLevel string   `json:"education_level" validate:"education_level"`
}

// Validate validates the AnalysisRequest using the validator.
func (r *AnalysisRequest) Validate() error {
	return newValidator().Struct(r)
}

// AnalysisResult bundles everything produced by one analysis.
type AnalysisResult struct {
	Resume         ResumeRecord    `json:"resume"`
	Requirements   JobRequirements `json:"requirements"`
	JobTitle       string          `json:"job_title"`
	JobDescription string          `json:"job_description"`
	Gaps           GapReport       `json:"gaps"`
	Score          ScoreResult     `json:"score"`
	Review         string          `json:"review"`
	Suggestions    []Suggestion    `json:"suggestions"`
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("education_level", func(fl validator.FieldLevel) bool {
		_, err := ParseEducationLevel(fl.Field().String())
		return err == nil
	})
	return validate
}
