package analysis

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ScoringVersion identifies the weighting policy below. Bump it whenever a weight changes
// so stored scores can be told apart.
const ScoringVersion = "v1"

// Weights and magnitudes for each scoring component.
const (
	baseScore = 100.0

	skillsWeight        = 0.4
	skillPenaltyPerMiss = 10.0

	experienceWeight  = 0.3
	experiencePenalty = 20.0
	experienceBonus   = 10.0

	educationWeight  = 0.15
	educationPenalty = 15.0
	educationBonus   = 5.0

	projectsWeight  = 0.15
	projectsPenalty = 15.0
	projectsBonus   = 5.0

	certificationBonus = 5.0

	minScore = 0.0
	maxScore = 100.0
)

// SkillsMatchPercent is the share of required skills considered matched, dropping ten
// points per missing skill and never going below zero.
func SkillsMatchPercent(gaps types.GapReport) float64 {
	return max(0, 100-skillPenaltyPerMiss*float64(len(gaps.MissingSkills)))
}

// Score computes the selection probability in [0, 100].
func Score(resume types.ResumeRecord, _ types.JobRequirements, gaps types.GapReport) float64 {
	score := baseScore

	// Skills match
	score -= (100 - SkillsMatchPercent(gaps)) * skillsWeight

	// Experience quality
	if len(gaps.WeakExperience) > 0 {
		score -= experiencePenalty * experienceWeight
	} else {
		score += experienceBonus * experienceWeight
	}

	// Education match
	if len(gaps.EducationGaps) > 0 {
		score -= educationPenalty * educationWeight
	} else {
		score += educationBonus * educationWeight
	}

	// Projects quality
	if len(gaps.ProjectGaps) > 0 {
		score -= projectsPenalty * projectsWeight
	} else {
		score += projectsBonus * projectsWeight
	}

	if len(resume.Certifications) > 0 {
		score += certificationBonus
	}

	return clamp(score)
}

// NewScoreResult wraps a score with its band and the scoring version.
func NewScoreResult(score float64) types.ScoreResult {
	return types.ScoreResult{
		SelectionProbability: score,
		Band:                 Band(score),
		ScoringVersion:       ScoringVersion,
	}
}

// Review bands, evaluated from the top.
const (
	BandStrong           = "Strong Candidate"
	BandGood             = "Good Candidate"
	BandNeedsImprovement = "Needs Improvement"
	BandNotReady         = "Not Ready"
)

// Band maps a score to its review band.
func Band(score float64) string {
	switch {
	case score >= 80:
		return BandStrong
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandNeedsImprovement
	default:
		return BandNotReady
	}
}

func clamp(score float64) float64 {
	return min(maxScore, max(minScore, score))
}
