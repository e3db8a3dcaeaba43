package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/jobs"
	"github.com/spf13/cobra"
)

var jobsJSON bool

var jobsCmd = &cobra.Command{
	Use:   "jobs [title]",
	Short: "List job templates or resolve a title to one",
	Long: `Without arguments, list the built-in job templates and their skills.
With a title, show the template it resolves to. Unknown titles use the generic template.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJobs,
}

func init() {
	jobsCmd.Flags().BoolVar(&jobsJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		templates := jobs.Templates()
		if jobsJSON {
			return writeJSON(out, templates)
		}
		for _, t := range templates {
			_, _ = fmt.Fprintf(out, "%-28s %s\n", t.Key, strings.Join(t.Skills, ", "))
		}
		return nil
	}

	title := strings.Join(args, " ")
	template, matched := jobs.Lookup(title)
	if jobsJSON {
		return writeJSON(out, map[string]any{"title": title, "matched": matched, "template": template})
	}

	if !matched {
		_, _ = fmt.Fprintf(out, "No template matches %q; using the generic template.\n\n", title)
	}
	_, _ = fmt.Fprintf(out, "Template: %s\n", template.Key)
	_, _ = fmt.Fprintf(out, "Skills:   %s\n\n", strings.Join(template.Skills, ", "))
	_, _ = fmt.Fprintln(out, template.Description)
	return nil
}
