package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
)

// SaveAnalysis stores an analysis result for a résumé.
func (db *DB) SaveAnalysis(ctx context.Context, in *AnalysisInput) (*AnalysisRecord, error) {
	if in.Result == nil {
		return nil, fmt.Errorf("analysis result is required")
	}
	if err := schemas.ValidateDocument(schemafiles.AnalysisResult, in.Result); err != nil {
		return nil, fmt.Errorf("analysis result does not match schema: %w", err)
	}

	res := in.Result
	requirements, err := json.Marshal(res.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}
	gaps, err := json.Marshal(res.Gaps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gaps: %w", err)
	}
	suggestions, err := json.Marshal(res.Suggestions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	record := AnalysisRecord{
		ID:                   uuid.New(),
		ResumeID:             in.ResumeID,
		VersionID:            in.VersionID,
		JobTitle:             res.JobTitle,
		JobDescription:       res.JobDescription,
		Requirements:         res.Requirements,
		Gaps:                 res.Gaps,
		Suggestions:          res.Suggestions,
		Review:               res.Review,
		SelectionProbability: res.Score.SelectionProbability,
		Band:                 res.Score.Band,
		ScoringVersion:       res.Score.ScoringVersion,
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_analyses (id, resume_id, version_id, job_title, job_description,
		     requirements, gaps, suggestions, review, selection_probability, band, scoring_version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING created_at`,
		record.ID, record.ResumeID, record.VersionID, record.JobTitle, record.JobDescription,
		requirements, gaps, suggestions, record.Review, record.SelectionProbability, record.Band, record.ScoringVersion,
	).Scan(&record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return &record, nil
}

// ListAnalyses retrieves the analysis history of a résumé, newest first.
func (db *DB) ListAnalyses(ctx context.Context, resumeID uuid.UUID, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, version_id, job_title, job_description, requirements, gaps, suggestions,
		        review, selection_probability, band, scoring_version, created_at
		 FROM resume_analyses WHERE resume_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		resumeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	analyses := []AnalysisRecord{}
	for rows.Next() {
		var a AnalysisRecord
		var requirements, gaps, suggestions []byte
		if err := rows.Scan(&a.ID, &a.ResumeID, &a.VersionID, &a.JobTitle, &a.JobDescription,
			&requirements, &gaps, &suggestions, &a.Review, &a.SelectionProbability, &a.Band,
			&a.ScoringVersion, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if err := decodeAnalysisJSON(&a, requirements, gaps, suggestions); err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

func decodeAnalysisJSON(a *AnalysisRecord, requirements, gaps, suggestions []byte) error {
	if err := json.Unmarshal(requirements, &a.Requirements); err != nil {
		return fmt.Errorf("failed to decode requirements: %w", err)
	}
	if err := json.Unmarshal(gaps, &a.Gaps); err != nil {
		return fmt.Errorf("failed to decode gaps: %w", err)
	}
	if err := json.Unmarshal(suggestions, &a.Suggestions); err != nil {
		return fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return nil
}
