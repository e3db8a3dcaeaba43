package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/jobs"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "disabled"
	if s.store != nil {
		database = "ok"
		if err := s.store.Ping(r.Context()); err != nil {
			database = "unreachable"
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "database": database})
}

type jobTemplateResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// handleListJobs lists the built-in job templates.
func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	templates := jobs.Templates()
	out := make([]jobTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, jobTemplateResponse{Title: t.Key, Description: t.Description, Skills: t.Skills})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": out, "count": len(out)})
}

// handleResolveJob resolves a free-text title to a template.
func (s *Server) handleResolveJob(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	template, matched := jobs.Lookup(title)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"title":       title,
		"template":    template.Key,
		"matched":     matched,
		"description": template.Description,
		"skills":      template.Skills,
	})
}

// upload is a decoded résumé file from a multipart request.
type upload struct {
	FileName string
	Kind     extraction.FileKind
	Data     []byte
	Lines    []string
}

// readUpload parses the multipart form and extracts the lines of the "file" part.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	if r.ContentLength > s.maxUpload {
		return nil, &http.MaxBytesError{Limit: s.maxUpload}
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, &ErrValidation{Field: "file", Message: "request must be multipart/form-data"}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, &ErrValidation{Field: "file", Message: "a résumé file is required"}
	}
	defer func() { _ = file.Close() }()

	kind, err := extraction.KindFromFilename(header.Filename)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	lines, err := s.extractors.ExtractPlainText(data, kind)
	if err != nil {
		return nil, err
	}

	return &upload{FileName: header.Filename, Kind: kind, Data: data, Lines: lines}, nil
}

type extractResponse struct {
	FileName string                 `json:"file_name"`
	Kind     extraction.FileKind    `json:"kind"`
	Record   types.ResumeRecord     `json:"record"`
	Trace    []types.LineAssignment `json:"trace,omitempty"`
}

// handleExtract returns the structured record for an uploaded résumé.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := extractResponse{FileName: up.FileName, Kind: up.Kind, Record: parsing.Segment(up.Lines)}
	if trace, _ := strconv.ParseBool(r.URL.Query().Get("trace")); trace {
		resp.Trace = parsing.Trace(up.Lines)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// analysisRequestFromForm reads the job-side inputs of an analyze call.
func analysisRequestFromForm(r *http.Request) (types.AnalysisRequest, error) {
	req := types.AnalysisRequest{
		JobTitle:       strings.TrimSpace(r.FormValue("job_title")),
		JobDescription: strings.TrimSpace(r.FormValue("job_description")),
		Skills:         jobs.ParseSkillList(r.FormValue("skills")),
		EducationLevel: r.FormValue("education_level"),
	}
	if v := strings.TrimSpace(r.FormValue("min_experience")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, &ErrValidation{Field: "min_experience", Message: "must be a whole number of years"}
		}
		req.MinExperience = n
	}
	return req, nil
}

type analyzeResponse struct {
	*types.AnalysisResult
	JobSource  *ingestion.Metadata `json:"job_source,omitempty"`
	ResumeID   string              `json:"resume_id,omitempty"`
	VersionID  string              `json:"version_id,omitempty"`
	AnalysisID string              `json:"analysis_id,omitempty"`
	Persisted  bool                `json:"persisted"`
	// PersistError is set when storage failed; the analysis itself is still returned.
	PersistError string `json:"persist_error,omitempty"`
}

// handleAnalyze extracts an uploaded résumé, scores it and optionally stores both.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	req, err := analysisRequestFromForm(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var resp analyzeResponse
	if jobURL := strings.TrimSpace(r.FormValue("job_url")); jobURL != "" && req.JobDescription == "" {
		text, meta, err := ingestion.JobDescriptionFromURL(r.Context(), jobURL, s.jobFetch)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		req.JobDescription = text
		resp.JobSource = meta
	}

	result, err := analyzer.AnalyzeResume(up.Lines, req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp.AnalysisResult = result

	if save, _ := strconv.ParseBool(r.FormValue("save")); save {
		err := s.persist(r, up, result, &resp)
		switch {
		case err == nil:
			resp.Persisted = true
		case isCallerError(err):
			s.fail(w, r, err)
			return
		default:
			logger.Ctx(r.Context()).Warn().Err(err).Msg("failed to persist analysis")
			resp.PersistError = "failed to store analysis"
		}
	}

	logger.Ctx(r.Context()).Debug().
		Str("job_title", result.JobTitle).
		Float64("selection_probability", result.Score.SelectionProbability).
		Msg("analysis complete")
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleChat answers one message within a caller-held conversation.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		s.fail(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, r, err)
		return
	}

	reply, conv := analyzer.Ask(req.Conversation, req.Message)
	s.jsonResponse(w, http.StatusOK, types.ChatResponse{Response: reply, Conversation: conv})
}
