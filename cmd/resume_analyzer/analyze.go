package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	analyzeJob         jobFlags
	analyzeJSON        bool
	analyzeSave        bool
	analyzeDBURL       string
	analyzeConcurrency int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Score one or more résumés against a job",
	Long: `Extract each résumé, compare it with the job requirements and print the review,
selection probability and suggestions. Several files are analyzed in parallel.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeJob.register(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Store résumés and analyses in the database")
	analyzeCmd.Flags().StringVar(&analyzeDBURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Files analyzed in parallel (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}

// fileAnalysis is the outcome for one input file.
type fileAnalysis struct {
	File       string                `json:"file"`
	Result     *types.AnalysisResult `json:"result"`
	ResumeID   string                `json:"resume_id,omitempty"`
	AnalysisID string                `json:"analysis_id,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req, meta, err := analyzeJob.request(ctx, appConfig)
	if err != nil {
		return err
	}

	var database *db.DB
	if analyzeSave {
		database, err = connectDB(ctx, analyzeDBURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare database: %w", err)
		}
	}

	limit := analyzeConcurrency
	if limit <= 0 {
		limit = appConfig.Concurrency
	}

	results, err := analyzeFiles(ctx, args, req, limit, database)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		if len(results) == 1 {
			return writeJSON(out, results[0])
		}
		return writeJSON(out, results)
	}

	if meta != nil {
		_, _ = fmt.Fprintf(out, "Job description: %s\n\n", meta.Source)
	}
	for i, fa := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		printAnalysis(out, cmd.ErrOrStderr(), fa)
	}
	return nil
}

// analyzeFiles analyzes files with at most limit in flight and returns results in input order.
// The first failure cancels the rest.
func analyzeFiles(ctx context.Context, files []string, req types.AnalysisRequest, limit int, database *db.DB) ([]fileAnalysis, error) {
	results := make([]fileAnalysis, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fa, err := analyzeFile(ctx, file, req, database)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = *fa
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyzeFile(ctx context.Context, file string, req types.AnalysisRequest, database *db.DB) (*fileAnalysis, error) {
	kind, err := extraction.KindFromFilename(file)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	lines, err := extraction.ExtractPlainText(data, kind)
	if err != nil {
		return nil, err
	}

	result, err := analyzer.AnalyzeResume(lines, req)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", file).Float64("selection_probability", result.Score.SelectionProbability).Msg("analyzed résumé")

	fa := &fileAnalysis{File: file, Result: result}
	if database == nil {
		return fa, nil
	}

	resume, version, err := database.SaveResume(ctx, &db.ResumeInput{
		FileName:    filepath.Base(file),
		FileKind:    string(kind),
		RawText:     strings.Join(lines, "\n"),
		ContentHash: ingestion.ContentHash(data),
		Record:      result.Resume,
	})
	if err != nil {
		return nil, err
	}
	record, err := database.SaveAnalysis(ctx, &db.AnalysisInput{ResumeID: resume.ID, VersionID: &version.ID, Result: result})
	if err != nil {
		return nil, err
	}
	fa.ResumeID = resume.ID.String()
	fa.AnalysisID = record.ID.String()
	return fa, nil
}

func printAnalysis(out, verboseOut io.Writer, fa fileAnalysis) {
	res := fa.Result
	_, _ = fmt.Fprintf(out, "== %s ==\n", fa.File)
	if verbose {
		p := observability.NewPrinter(verboseOut)
		p.PrintResumeRecord(&res.Resume)
		p.PrintRequirements(res.JobTitle, &res.Requirements)
		p.PrintAnalysis(res)
	}

	_, _ = fmt.Fprintln(out, res.Review)
	if len(res.Suggestions) > 0 {
		_, _ = fmt.Fprintln(out, "\nSuggestions:")
		for i, s := range res.Suggestions {
			_, _ = fmt.Fprintf(out, "%d. [%s] %s\n   %s\n", i+1, s.Priority, s.Suggestion, s.Action)
		}
	}
	if fa.ResumeID != "" {
		_, _ = fmt.Fprintf(out, "\nSaved as résumé %s (analysis %s)\n", fa.ResumeID, fa.AnalysisID)
	}
}
