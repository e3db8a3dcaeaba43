package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultListLimit caps list queries when no limit is given.
const DefaultListLimit = 50

// Resume is a stored résumé with summary counts.
type Resume struct {
	ID             uuid.UUID `json:"id"`
	Label          string    `json:"label"`
	FileName       string    `json:"file_name"`
	FileKind       string    `json:"file_kind"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	VersionCount   int       `json:"version_count"`
	AnalysisCount  int       `json:"analysis_count"`
	// LatestScore is the selection probability of the newest analysis, if any.
	LatestScore *float64 `json:"latest_score,omitempty"`
}

// ResumeVersion is one uploaded revision of a résumé.
type ResumeVersion struct {
	ID          uuid.UUID          `json:"id"`
	ResumeID    uuid.UUID          `json:"resume_id"`
	Version     int                `json:"version"`
	RawText     string             `json:"raw_text"`
	ContentHash string             `json:"content_hash"`
	Record      types.ResumeRecord `json:"record"`
	CreatedAt   time.Time          `json:"created_at"`
}

// AnalysisRecord is a stored analysis result.
type AnalysisRecord struct {
	ID                   uuid.UUID             `json:"id"`
	ResumeID             uuid.UUID             `json:"resume_id"`
	VersionID            *uuid.UUID            `json:"version_id,omitempty"`
	JobTitle             string                `json:"job_title"`
	JobDescription       string                `json:"job_description"`
	Requirements         types.JobRequirements `json:"requirements"`
	Gaps                 types.GapReport       `json:"gaps"`
	Suggestions          []types.Suggestion    `json:"suggestions"`
	Review               string                `json:"review"`
	SelectionProbability float64               `json:"selection_probability"`
	Band                 string                `json:"band"`
	ScoringVersion       string                `json:"scoring_version"`
	CreatedAt            time.Time             `json:"created_at"`
}

// ResumeInput holds the data for a new résumé or résumé version.
type ResumeInput struct {
	Label       string
	FileName    string
	FileKind    string
	RawText     string
	ContentHash string
	Record      types.ResumeRecord
}

// label falls back to the candidate name, then the file name.
func (in *ResumeInput) label() string {
	switch {
	case in.Label != "":
		return in.Label
	case in.Record.Name != "":
		return in.Record.Name
	default:
		return in.FileName
	}
}

// AnalysisInput links an analysis result to the résumé version it was computed from.
type AnalysisInput struct {
	ResumeID  uuid.UUID
	VersionID *uuid.UUID
	Result    *types.AnalysisResult
}

// ResumeFilters holds optional filters for listing résumés
type ResumeFilters struct {
	Name  string
	Limit int
}
