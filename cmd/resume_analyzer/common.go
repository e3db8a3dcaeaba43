package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/jobs"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

// jobFlags are the job-side inputs shared by analyze and chat.
type jobFlags struct {
	title           string
	description     string
	descriptionFile string
	url             string
	useBrowser      bool
	skills          string
	minExperience   int
	educationLevel  string
}

func (f *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "job-title", "t", "", "Job title to resolve against the built-in templates")
	cmd.Flags().StringVar(&f.description, "job-description", "", "Job description text (replaces the template description)")
	cmd.Flags().StringVar(&f.descriptionFile, "job-description-file", "", "Read the job description from a text file")
	cmd.Flags().StringVar(&f.url, "job-url", "", "Fetch the job description from a posting URL")
	cmd.Flags().BoolVar(&f.useBrowser, "use-browser", false, "Render the job URL in headless Chrome when plain HTTP yields too little text")
	cmd.Flags().StringVar(&f.skills, "skills", "", "Comma or newline separated required skills (replaces the template skills)")
	cmd.Flags().IntVar(&f.minExperience, "min-experience", -1, "Minimum years of experience (default from config)")
	cmd.Flags().StringVar(&f.educationLevel, "education-level", "", "Required education level: Any, High School, Associate's, Bachelor's, Master's, PhD")
	cmd.MarkFlagsMutuallyExclusive("job-description", "job-description-file", "job-url")
}

// request builds an AnalysisRequest, loading the description from a file or URL when asked.
func (f *jobFlags) request(ctx context.Context, cfg *config.Config) (types.AnalysisRequest, *ingestion.Metadata, error) {
	req := types.AnalysisRequest{
		JobTitle:       f.title,
		JobDescription: f.description,
		Skills:         jobs.ParseSkillList(f.skills),
		MinExperience:  f.minExperience,
		EducationLevel: f.educationLevel,
	}
	if req.MinExperience < 0 {
		req.MinExperience = cfg.DefaultMinExperience
	}
	if req.EducationLevel == "" {
		req.EducationLevel = cfg.DefaultEducationLevel
	}

	var meta *ingestion.Metadata
	var err error
	switch {
	case f.descriptionFile != "":
		req.JobDescription, meta, err = ingestion.JobDescriptionFromFile(f.descriptionFile)
	case f.url != "":
		req.JobDescription, meta, err = ingestion.JobDescriptionFromURL(ctx, f.url, ingestion.URLOptions{
			UseBrowser: f.useBrowser || cfg.UseBrowser,
			Fetch:      fetch.DefaultOptions(),
		})
	}
	if err != nil {
		return req, nil, err
	}
	if meta != nil {
		logger.Debug().Str("source", meta.Source).Str("hash", meta.Hash).Int("chars", len(req.JobDescription)).Msg("loaded job description")
	}
	return req, meta, nil
}

// connectDB opens the configured database, or fails with a hint when none is set.
func connectDB(ctx context.Context, dbURL string) (*db.DB, error) {
	if dbURL == "" {
		dbURL = appConfig.DatabaseURL
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required (set it in the environment, .env, config or --db-url)")
	}
	return db.Connect(ctx, dbURL)
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
