// Package tui renders check and fix reports for the terminal.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/designcheck/designcheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	fileStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	ruleStyle     = lipgloss.NewStyle().Foreground(dim)
	skillStyle    = lipgloss.NewStyle().Foreground(faint)
)

// RenderReport formats the full check report. root is the scan root used
// to shorten file paths; commit is the abbreviated HEAD hash or "" when
// the root is not a git repository. In quiet mode warnings are dropped
// from the listing but still counted in the summary.
func RenderReport(root, commit string, results []domain.FileResult, quiet bool) string {
	var b strings.Builder

	// ── Header ──
	b.WriteString(headerStyle.Render("designcheck"))
	b.WriteString("  " + dimStyle.Render(root))
	if commit != "" {
		b.WriteString("  " + faintStyle.Render("@"+commit))
	}
	b.WriteString("\n\n")

	// ── Per-file issues ──
	for _, r := range results {
		issues := r.Issues
		if quiet {
			issues = filterErrors(issues)
		}
		if len(issues) == 0 {
			continue
		}

		b.WriteString("  " + fileStyle.Render(displayPath(root, r.File)) + "\n")
		for _, issue := range issues {
			renderIssue(&b, issue)
		}
		b.WriteString("\n")
	}

	// ── Summary ──
	errs, warns := domain.CountSeverities(results)
	switch {
	case errs == 0 && warns == 0:
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	default:
		b.WriteString("  " + titleStyle.Render("Summary") + "  ")
		if errs > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d error(s)", errs)) + "  ")
		}
		if warns > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warning(s)", warns)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderFixLine formats one per-file fixer report line, e.g.
// "FIXED: css/main.css (3)".
func RenderFixLine(verb, path string, count int) string {
	return fmt.Sprintf("%s %s %s",
		passStyle.Render(verb+":"), path, dimStyle.Render(fmt.Sprintf("(%d)", count)))
}

// RenderFixSummary formats the closing fixer summary line.
func RenderFixSummary(filesChanged, fixesApplied int) string {
	return dimStyle.Render(fmt.Sprintf("%d file(s) changed, %d fix(es) applied", filesChanged, fixesApplied))
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	loc := "-"
	if issue.Line > 0 {
		loc = fmt.Sprintf("%d:%d", issue.Line, issue.Col)
	}

	line := fmt.Sprintf("    %s  %s  %s  %s",
		dimStyle.Render(padRight(loc, 7)),
		severityTag(issue.Severity),
		issue.Message,
		ruleStyle.Render(issue.Rule))
	if issue.Skill != "" {
		line += "  " + skillStyle.Render("["+issue.Skill+"]")
	}
	b.WriteString(line + "\n")
}

func severityTag(severity domain.Severity) string {
	if severity == domain.SeverityError {
		return errorTagStyle.Render("error")
	}
	return warnTagStyle.Render("warn ")
}

func filterErrors(issues []domain.Issue) []domain.Issue {
	var out []domain.Issue
	for _, issue := range issues {
		if issue.Severity == domain.SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

func displayPath(root, path string) string {
	if path == domain.ProjectFile {
		return path
	}
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
