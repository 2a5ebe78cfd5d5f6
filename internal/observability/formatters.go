// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/role-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisResult outputs a human-readable summary of one analysis.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if len(result.ExtractedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:      %s\n", joinCapped(result.ExtractedSkills)))
	} else {
		sb.WriteString("Skills:      (none detected)\n")
	}
	sb.WriteString(fmt.Sprintf("Focus areas: %s\n", strings.Join(result.FocusAreas, ", ")))
	sb.WriteString("\n")

	if len(result.DirectFitJobs) > 0 {
		sb.WriteString("Direct-fit roles:\n")
		for _, job := range result.DirectFitJobs {
			sb.WriteString(fmt.Sprintf("  • %s (%d%%) %s\n", job.Title, job.MatchPercentage, job.Salary))
		}
	} else {
		sb.WriteString("Direct-fit roles: (none)\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Trending roles:\n")
	for _, job := range result.TrendingJobs {
		sb.WriteString(fmt.Sprintf("  • %s (%s growth) %s\n", job.Title, job.Growth, job.Salary))
		if len(job.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    gap: %s\n", joinCapped(job.MissingSkills)))
		}
	}

	p.printBox("Career Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintNotice outputs the fallback advisory, when one occurred.
func (p *Printer) PrintNotice(notice string) {
	if notice == "" {
		return
	}
	p.printBox("Notice", notice)
}

// joinCapped joins up to maxItemsToShow items, noting how many were omitted.
func joinCapped(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	shown := strings.Join(items[:maxItemsToShow], ", ")
	return fmt.Sprintf("%s (+%d more)", shown, len(items)-maxItemsToShow)
}
