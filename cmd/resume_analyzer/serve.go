package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort  int
	serveDBURL string
	serveNoDB  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing extraction, analysis, chat and job template endpoints.
When a database is configured, analyses can be saved and browsed under /v1/resumes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	serveCmd.Flags().BoolVar(&serveNoDB, "no-db", false, "Run without a database; history endpoints answer 503")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store server.Store
	if !serveNoDB && (serveDBURL != "" || cfg.DatabaseURL != "") {
		database, err := connectDB(ctx, serveDBURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare database: %w", err)
		}
		store = database
	} else {
		logger.Warn().Msg("no database configured; résumé history is disabled")
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
		UseBrowser:     cfg.UseBrowser,
		RateLimit: ratelimit.Config{
			Enabled:           cfg.RateLimit.Enabled,
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			Rules:             ratelimit.DefaultRules(),
		},
	}, store)

	return srv.Start(ctx)
}
