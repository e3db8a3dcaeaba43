// Package server provides the HTTP API for résumé extraction, analysis, chat and history.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

// Store is the persistence the history endpoints need. *db.DB implements it.
type Store interface {
	Ping(ctx context.Context) error
	SaveResume(ctx context.Context, in *db.ResumeInput) (*db.Resume, *db.ResumeVersion, error)
	AddResumeVersion(ctx context.Context, resumeID uuid.UUID, in *db.ResumeInput) (*db.ResumeVersion, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	GetLatestVersion(ctx context.Context, resumeID uuid.UUID) (*db.ResumeVersion, error)
	ListResumesFiltered(ctx context.Context, filters db.ResumeFilters) ([]db.Resume, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
	SaveAnalysis(ctx context.Context, in *db.AnalysisInput) (*db.AnalysisRecord, error)
	ListAnalyses(ctx context.Context, resumeID uuid.UUID, limit int) ([]db.AnalysisRecord, error)
}

// Config holds server configuration
type Config struct {
	Port           int
	MaxUploadBytes int64
	UseBrowser     bool
	RateLimit      ratelimit.Config
	// Extractors overrides the document decoders, mainly for tests.
	Extractors extraction.Registry
	// JobFetch overrides how job_url postings are fetched.
	JobFetch *ingestion.URLOptions
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	maxUpload   int64
	extractors  extraction.Registry
	jobFetch    ingestion.URLOptions
	rateLimiter *ratelimit.Limiter
}

// New builds a server. store may be nil, in which case history endpoints answer 503.
func New(cfg Config, store Store) *Server {
	s := &Server{
		store:      store,
		maxUpload:  cfg.MaxUploadBytes,
		extractors: cfg.Extractors,
	}
	if s.maxUpload <= 0 {
		s.maxUpload = 10 << 20
	}
	if s.extractors == nil {
		s.extractors = extraction.DefaultRegistry()
	}
	if cfg.JobFetch != nil {
		s.jobFetch = *cfg.JobFetch
	} else {
		s.jobFetch = ingestion.URLOptions{UseBrowser: cfg.UseBrowser, Cache: fetch.NewCache(fetch.DefaultCacheSize, fetch.DefaultCacheTTL, nil)}
	}
	s.rateLimiter = ratelimit.NewLimiter(cfg.RateLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /v1/jobs", s.handleListJobs)
	mux.HandleFunc("GET /v1/jobs/resolve", s.handleResolveJob)

	mux.HandleFunc("POST /v1/extract", s.handleExtract)
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /v1/chat", s.handleChat)

	mux.HandleFunc("GET /v1/resumes", s.handleListResumes)
	mux.HandleFunc("GET /v1/resumes/{id}", s.handleGetResume)
	mux.HandleFunc("GET /v1/resumes/{id}/analyses", s.handleListAnalyses)
	mux.HandleFunc("DELETE /v1/resumes/{id}", s.handleDeleteResume)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // job_url fetches may render in a browser
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()

	logger.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging attaches a request-scoped logger and logs each completed request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		reqLog := logger.Logger.With().Str("request_id", requestID).Logger()

		w.Header().Set("X-Request-ID", requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(logger.WithContext(r.Context(), reqLog)))

		reqLog.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}

// withRateLimit rejects clients that exceed their token bucket.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := s.rateLimiter.Allow(clientID(r), r.Method, r.URL.Path)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		}
		if !info.Allowed {
			retry := int(info.RetryAfter.Round(time.Second).Seconds())
			w.Header().Set("Retry-After", strconv.Itoa(max(retry, 1)))
			logger.Warn().Str("client", clientID(r)).Str("path", r.URL.Path).Msg("rate limit exceeded")
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies a caller by remote IP.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps err to a status, logs server-side failures and writes the error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	s.errorResponse(w, status, err.Error())
}
