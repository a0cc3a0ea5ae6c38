package domain

import "errors"

// Severity of a reported issue. Errors fail the run; warnings never do.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ErrIssuesFound is returned by the check pipeline when at least one
// error-severity issue was collected. The CLI maps it to exit code 1
// without printing anything beyond the report itself.
var ErrIssuesFound = errors.New("design check found errors")

// ProjectFile is the sentinel path used for project-level issues that do not
// belong to any single scanned file.
const ProjectFile = "(project)"

// Issue is the atomic unit of checker output.
type Issue struct {
	Line     int      `json:"line"` // 1-based; 0 for file/project-level issues
	Col      int      `json:"col"`  // 1-based, best effort
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Skill    string   `json:"skill,omitempty"` // enforcing domain tag, "" for project-specific rules
}

// FileResult groups the issues found in one file.
type FileResult struct {
	File   string  `json:"file"`
	Issues []Issue `json:"issues"`
}

// CountSeverities tallies errors and warnings across a set of results.
func CountSeverities(results []FileResult) (errors, warnings int) {
	for _, r := range results {
		for _, issue := range r.Issues {
			switch issue.Severity {
			case SeverityError:
				errors++
			case SeverityWarning:
				warnings++
			}
		}
	}
	return
}
