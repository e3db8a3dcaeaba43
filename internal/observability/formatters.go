// Package observability renders résumé records and analysis results as boxed text for verbose CLI output.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	boxWidth       = 64
	maxItemsToShow = 5
)

// Printer writes boxed summaries.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // verbose output; write errors are not recoverable
func (p *Printer) printBox(title, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		fmt.Fprintf(sb, "%s: none\n", label)
		return
	}
	fmt.Fprintf(sb, "%s (%d):\n", label, len(items))
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintResumeRecord summarizes the extracted contact details and sections.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:   %s\n", orDash(record.Name))
	fmt.Fprintf(&sb, "Email:  %s\n", orDash(record.Email))
	fmt.Fprintf(&sb, "Phone:  %s\n\n", orDash(record.Phone))
	writeList(&sb, "Skills", record.Skills, maxItemsToShow)
	writeList(&sb, "Education", record.Education, 3)
	writeList(&sb, "Experience", record.Experience, 3)
	writeList(&sb, "Projects", record.Projects, 3)
	writeList(&sb, "Certifications", record.Certifications, 3)

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequirements summarizes the job requirements an analysis ran against.
func (p *Printer) PrintRequirements(title string, reqs *types.JobRequirements) {
	if reqs == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Role:       %s\n", orDash(title))
	fmt.Fprintf(&sb, "Education:  %s\n", reqs.EducationLevel)
	fmt.Fprintf(&sb, "Experience: %d+ years\n", reqs.MinExperience)
	writeList(&sb, "Skills", reqs.Skills, 8)

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis summarizes the score, gaps and top suggestions of a result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Selection probability: %.1f%% (%s)\n", result.Score.SelectionProbability, result.Score.Band)
	fmt.Fprintf(&sb, "Scoring version:       %s\n\n", result.Score.ScoringVersion)

	gaps := result.Gaps
	writeList(&sb, "Missing skills", gaps.MissingSkills, maxItemsToShow)
	for _, msg := range append(append(append([]string{}, gaps.WeakExperience...), gaps.EducationGaps...), gaps.ProjectGaps...) {
		fmt.Fprintf(&sb, "! %s\n", msg)
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range result.Suggestions[:min(len(result.Suggestions), maxItemsToShow)] {
			fmt.Fprintf(&sb, "  [%s] %s\n", s.Priority, s.Suggestion)
		}
	}

	p.printBox("ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrace lists every input line with the class the segmenter assigned it.
func (p *Printer) PrintTrace(trace []types.LineAssignment) {
	if len(trace) == 0 {
		return
	}

	var sb strings.Builder
	for _, a := range trace {
		marker := " "
		if a.EntryStart {
			marker = "+"
		}
		fmt.Fprintf(&sb, "%3d %s %-14s %s\n", a.Index, marker, a.Class, a.Line)
	}

	p.printBox("LINE CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}
