package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// persist stores the uploaded résumé (as a new résumé or a new version of resume_id)
// and the analysis computed from it.
func (s *Server) persist(r *http.Request, up *upload, result *types.AnalysisResult, resp *analyzeResponse) error {
	if s.store == nil {
		return ErrNoDatabase
	}
	ctx := r.Context()

	in := &db.ResumeInput{
		Label:       r.FormValue("label"),
		FileName:    up.FileName,
		FileKind:    string(up.Kind),
		RawText:     strings.Join(up.Lines, "\n"),
		ContentHash: ingestion.ContentHash(up.Data),
		Record:      result.Resume,
	}

	var resumeID uuid.UUID
	var version *db.ResumeVersion
	if raw := r.FormValue("resume_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return &ErrValidation{Field: "resume_id", Message: "must be a UUID"}
		}
		if version, err = s.store.AddResumeVersion(ctx, id, in); err != nil {
			return err
		}
		resumeID = id
	} else {
		resume, v, err := s.store.SaveResume(ctx, in)
		if err != nil {
			return err
		}
		resumeID, version = resume.ID, v
	}

	record, err := s.store.SaveAnalysis(ctx, &db.AnalysisInput{ResumeID: resumeID, VersionID: &version.ID, Result: result})
	if err != nil {
		return err
	}

	resp.ResumeID = resumeID.String()
	resp.VersionID = version.ID.String()
	resp.AnalysisID = record.ID.String()
	return nil
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return db.DefaultListLimit
	}
	return min(limit, 200)
}

// handleListResumes lists stored résumés, newest first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrNoDatabase)
		return
	}

	resumes, err := s.store.ListResumesFiltered(r.Context(), db.ResumeFilters{
		Name:  r.URL.Query().Get("name"),
		Limit: queryLimit(r),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes, "count": len(resumes)})
}

// handleGetResume returns one stored résumé summary with its latest extracted version.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrNoDatabase)
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	latest, err := s.store.GetLatestVersion(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resume": resume, "latest_version": latest})
}

// handleListAnalyses returns the analysis history of a résumé.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrNoDatabase)
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	analyses, err := s.store.ListAnalyses(r.Context(), id, queryLimit(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resume": resume, "analyses": analyses, "count": len(analyses)})
}

// handleDeleteResume removes a résumé with its versions and analyses.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrNoDatabase)
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.store.DeleteResume(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
