package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
)

// ErrNotFound is returned by mutations that target a missing row.
var ErrNotFound = errors.New("not found")

// SaveResume stores a new résumé together with its first version.
func (db *DB) SaveResume(ctx context.Context, in *ResumeInput) (*Resume, *ResumeVersion, error) {
	record, err := encodeRecord(in)
	if err != nil {
		return nil, nil, err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	resume := Resume{
		ID:             uuid.New(),
		Label:          in.label(),
		FileName:       in.FileName,
		FileKind:       in.FileKind,
		CandidateName:  in.Record.Name,
		CandidateEmail: in.Record.Email,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO resumes (id, label, file_name, file_kind, candidate_name, candidate_email)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		resume.ID, resume.Label, resume.FileName, resume.FileKind, resume.CandidateName, resume.CandidateEmail,
	).Scan(&resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert resume: %w", err)
	}

	version, err := insertVersion(ctx, tx, resume.ID, 1, in, record)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit resume: %w", err)
	}

	resume.VersionCount = 1
	return &resume, version, nil
}

// AddResumeVersion stores a new revision of an existing résumé and refreshes its candidate details.
func (db *DB) AddResumeVersion(ctx context.Context, resumeID uuid.UUID, in *ResumeInput) (*ResumeVersion, error) {
	record, err := encodeRecord(in)
	if err != nil {
		return nil, err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the résumé row so concurrent uploads get distinct version numbers
	var next int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE((SELECT MAX(version) FROM resume_versions WHERE resume_id = r.id), 0) + 1
		 FROM resumes r WHERE r.id = $1 FOR UPDATE`,
		resumeID,
	).Scan(&next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("resume %s: %w", resumeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock resume: %w", err)
	}

	version, err := insertVersion(ctx, tx, resumeID, next, in, record)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE resumes SET candidate_name = $2, candidate_email = $3, file_name = $4, file_kind = $5, updated_at = NOW()
		 WHERE id = $1`,
		resumeID, in.Record.Name, in.Record.Email, in.FileName, in.FileKind,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit resume version: %w", err)
	}
	return version, nil
}

func insertVersion(ctx context.Context, tx pgx.Tx, resumeID uuid.UUID, number int, in *ResumeInput, record []byte) (*ResumeVersion, error) {
	version := ResumeVersion{
		ID:          uuid.New(),
		ResumeID:    resumeID,
		Version:     number,
		RawText:     in.RawText,
		ContentHash: in.ContentHash,
		Record:      in.Record,
	}
	err := tx.QueryRow(ctx,
		`INSERT INTO resume_versions (id, resume_id, version, raw_text, content_hash, record)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		version.ID, version.ResumeID, version.Version, version.RawText, version.ContentHash, record,
	).Scan(&version.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert resume version: %w", err)
	}
	return &version, nil
}

// encodeRecord validates the record against its schema and marshals it for the JSONB column.
func encodeRecord(in *ResumeInput) ([]byte, error) {
	if err := schemas.ValidateDocument(schemafiles.ResumeRecord, in.Record); err != nil {
		return nil, fmt.Errorf("resume record does not match schema: %w", err)
	}
	record, err := json.Marshal(in.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume record: %w", err)
	}
	return record, nil
}

const resumeSummaryColumns = `r.id, r.label, r.file_name, r.file_kind, r.candidate_name, r.candidate_email,
	r.created_at, r.updated_at,
	(SELECT COUNT(*) FROM resume_versions v WHERE v.resume_id = r.id),
	(SELECT COUNT(*) FROM resume_analyses a WHERE a.resume_id = r.id),
	(SELECT a.selection_probability FROM resume_analyses a WHERE a.resume_id = r.id ORDER BY a.created_at DESC LIMIT 1)`

func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	err := row.Scan(&r.ID, &r.Label, &r.FileName, &r.FileKind, &r.CandidateName, &r.CandidateEmail,
		&r.CreatedAt, &r.UpdatedAt, &r.VersionCount, &r.AnalysisCount, &r.LatestScore)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetResume retrieves a résumé by ID. It returns nil, nil when the résumé does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	r, err := scanResume(db.pool.QueryRow(ctx,
		`SELECT `+resumeSummaryColumns+` FROM resumes r WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return r, nil
}

// buildResumeListQuery assembles the list query and its positional arguments.
func buildResumeListQuery(filters ResumeFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	query := `SELECT ` + resumeSummaryColumns + ` FROM resumes r WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Name != "" {
		query += fmt.Sprintf(" AND (r.candidate_name ILIKE $%d OR r.label ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filters.Name+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY r.updated_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}

// ListResumesFiltered retrieves résumés with optional filters
func (db *DB) ListResumesFiltered(ctx context.Context, filters ResumeFilters) ([]Resume, error) {
	query, args := buildResumeListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := []Resume{}
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// GetLatestVersion returns the newest version of a résumé, or nil, nil when there is none.
func (db *DB) GetLatestVersion(ctx context.Context, resumeID uuid.UUID) (*ResumeVersion, error) {
	var v ResumeVersion
	var record []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, version, raw_text, content_hash, record, created_at
		 FROM resume_versions WHERE resume_id = $1 ORDER BY version DESC LIMIT 1`,
		resumeID,
	).Scan(&v.ID, &v.ResumeID, &v.Version, &v.RawText, &v.ContentHash, &record, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume version: %w", err)
	}
	if err := json.Unmarshal(record, &v.Record); err != nil {
		return nil, fmt.Errorf("failed to decode resume record: %w", err)
	}
	return &v, nil
}

// DeleteResume deletes a résumé with its versions and analyses (via cascade)
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume %s: %w", id, ErrNotFound)
	}
	return nil
}
