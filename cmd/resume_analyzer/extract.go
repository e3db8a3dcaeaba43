package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
	"github.com/spf13/cobra"
)

var (
	extractTrace    bool
	extractValidate bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract a structured record from a PDF or DOCX résumé",
	Long:  "Extract the name, contact details and sections of a résumé and print them as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractTrace, "trace", false, "Print the class assigned to every line instead of the record")
	extractCmd.Flags().BoolVar(&extractValidate, "validate", false, "Validate the record against resume_record.schema.json")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	lines, err := extraction.ExtractFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if extractTrace {
		trace := parsing.Trace(lines)
		if verbose {
			observability.NewPrinter(cmd.ErrOrStderr()).PrintTrace(trace)
		}
		return writeJSON(out, trace)
	}

	record := parsing.Segment(lines)
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintResumeRecord(&record)
	}

	if extractValidate {
		if err := schemas.ValidateDocument(schemafiles.ResumeRecord, record); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("extracted record does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate record against schema: %v\n", err)
		}
	}

	return writeJSON(out, record)
}
