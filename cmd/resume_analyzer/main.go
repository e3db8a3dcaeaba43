// Package main provides the resume_analyzer command line tool and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	verbose    bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Résumé extractor and job-fit scorer",
	Long: "resume_analyzer extracts structured records from PDF and DOCX résumés, scores them against " +
		"job requirements, explains the gaps and answers follow-up questions.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print boxed summaries of intermediate results")
}

// setup loads configuration and initializes logging before every command.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if verbose && logLevel == "" {
		cfg.LogLevel = "debug"
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	appConfig = cfg
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
