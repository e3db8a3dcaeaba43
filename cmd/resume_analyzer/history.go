package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/spf13/cobra"
)

var (
	historyDBURL  string
	historyName   string
	historyLimit  int
	historyJSON   bool
	historyDelete bool
)

var historyCmd = &cobra.Command{
	Use:   "history [resume-id]",
	Short: "Browse saved résumés and their analyses",
	Long: `Without arguments, list saved résumés with their latest score.
With a résumé ID, list its analyses, newest first. --delete removes the résumé.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDBURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	historyCmd.Flags().StringVar(&historyName, "name", "", "Filter résumés by candidate name or label")
	historyCmd.Flags().IntVar(&historyLimit, "limit", db.DefaultListLimit, "Maximum rows to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print as JSON")
	historyCmd.Flags().BoolVar(&historyDelete, "delete", false, "Delete the given résumé with its versions and analyses")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyDelete && len(args) == 0 {
		return fmt.Errorf("--delete requires a resume-id")
	}
	var id uuid.UUID
	if len(args) == 1 {
		parsed, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid resume-id: %w", err)
		}
		id = parsed
	}

	ctx := cmd.Context()
	database, err := connectDB(ctx, historyDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	out := cmd.OutOrStdout()

	if historyDelete {
		if err := database.DeleteResume(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Deleted résumé %s\n", id)
		return nil
	}

	if len(args) == 0 {
		resumes, err := database.ListResumesFiltered(ctx, db.ResumeFilters{Name: historyName, Limit: historyLimit})
		if err != nil {
			return err
		}
		if historyJSON {
			return writeJSON(out, resumes)
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "ID\tLABEL\tVERSIONS\tANALYSES\tLATEST\tUPDATED")
		for _, r := range resumes {
			latest := "-"
			if r.LatestScore != nil {
				latest = fmt.Sprintf("%.1f%%", *r.LatestScore)
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n", r.ID, r.Label, r.VersionCount, r.AnalysisCount, latest, r.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	}

	resume, err := database.GetResume(ctx, id)
	if err != nil {
		return err
	}
	if resume == nil {
		return fmt.Errorf("resume not found: %s", id)
	}
	latest, err := database.GetLatestVersion(ctx, id)
	if err != nil {
		return err
	}
	analyses, err := database.ListAnalyses(ctx, id, historyLimit)
	if err != nil {
		return err
	}
	if historyJSON {
		return writeJSON(out, map[string]any{"resume": resume, "latest_version": latest, "analyses": analyses})
	}

	_, _ = fmt.Fprintf(out, "%s (%s), %d version(s)\n", resume.Label, resume.FileName, resume.VersionCount)
	if latest != nil {
		rec := latest.Record
		_, _ = fmt.Fprintf(out, "Latest: v%d, %s <%s>, %d skill line(s), %d job(s), %d project(s)\n",
			latest.Version, rec.Name, rec.Email, len(rec.Skills), len(rec.Experience), len(rec.Projects))
	}
	_, _ = fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "WHEN\tJOB\tSCORE\tBAND\tMISSING SKILLS")
	for _, a := range analyses {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%.1f%%\t%s\t%d\n", a.CreatedAt.Format("2006-01-02 15:04"), a.JobTitle, a.SelectionProbability, a.Band, len(a.Gaps.MissingSkills))
	}
	return tw.Flush()
}
