package css

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/designcheck/designcheck/internal/domain"
)

// Major section headers are a three-line banner:
//
//	/* ==================
//	   Section Name
//	   ================== */
var (
	sectionTopRe    = regexp.MustCompile(`^\s*/\*\s*={3,}\s*$`)
	sectionBottomRe = regexp.MustCompile(`^\s*={3,}\s*\*/\s*$`)

	// Minor token-category markers inside :root:
	//
	//	/* Colors
	//	   ------------- */
	categoryTopRe    = regexp.MustCompile(`^\s*/\*\s*(\S.*?)\s*$`)
	categoryBottomRe = regexp.MustCompile(`^\s*-{3,}\s*\*/\s*$`)
)

// sectionOrders fixes the expected major-section order per canonical file.
// components.css is handled separately (alphabetical).
var sectionOrders = map[string][]string{
	"reset.css":     {"Box Sizing", "Document", "Typography", "Media", "Forms"},
	"global.css":    {"Tokens", "Base", "Typography", "Links", "Forms", "Utilities"},
	"layouts.css":   {"Page Shell", "Header", "Navigation", "Main", "Sidebar", "Footer"},
	"overrides.css": {"Utilities", "States", "Print"},
}

// tokenCategories is the expected :root token grouping order in global.css.
var tokenCategories = []string{
	"Colors", "Typography", "Spacing", "Borders",
	"Shadows", "Animations", "Z-index", "Breakpoints",
}

type section struct {
	name string
	line int
}

// findSections extracts major section names from the raw lines. This runs on
// the unstripped file: the banners ARE comments.
func findSections(lines []string) []section {
	var sections []section
	for i := 0; i+2 < len(lines); i++ {
		if !sectionTopRe.MatchString(lines[i]) || !sectionBottomRe.MatchString(lines[i+2]) {
			continue
		}
		name := strings.TrimSpace(lines[i+1])
		name = strings.TrimPrefix(name, "*")
		name = strings.TrimSpace(name)
		if name != "" {
			sections = append(sections, section{name: name, line: i + 2})
		}
	}
	return sections
}

// checkSectionOrder verifies major sections appear in the canonical order
// for the five canonical stylesheets; components.css sections must be
// alphabetical. This pre-pass is independent of inline suppression.
func checkSectionOrder(name string, lines []string) []domain.Issue {
	var issues []domain.Issue

	if name == "components.css" {
		sections := findSections(lines)
		for i := 1; i < len(sections); i++ {
			if strings.ToLower(sections[i].name) < strings.ToLower(sections[i-1].name) {
				issues = append(issues, domain.Issue{
					Line: sections[i].line, Col: 1,
					Severity: domain.SeverityWarning,
					Rule:     "css-section-order",
					Message: fmt.Sprintf("section %q after %q — components.css sections must be alphabetical",
						sections[i].name, sections[i-1].name),
				})
			}
		}
		return issues
	}

	expected, ok := sectionOrders[name]
	if !ok {
		return nil
	}

	rank := make(map[string]int, len(expected))
	for i, s := range expected {
		rank[strings.ToLower(s)] = i
	}

	last := -1
	lastName := ""
	for _, s := range findSections(lines) {
		r, known := rank[strings.ToLower(s.name)]
		if !known {
			continue
		}
		if r < last {
			issues = append(issues, domain.Issue{
				Line: s.line, Col: 1,
				Severity: domain.SeverityWarning,
				Rule:     "css-section-order",
				Message: fmt.Sprintf("section %q after %q — expected order in %s: %s",
					s.name, lastName, name, strings.Join(expected, " → ")),
			})
			continue
		}
		last = r
		lastName = s.name
	}
	return issues
}

// checkTokenCategoryOrder verifies the eight token categories inside the
// :root block of global.css appear in their fixed order.
func checkTokenCategoryOrder(name string, lines []string) []domain.Issue {
	if name != "global.css" {
		return nil
	}

	rank := make(map[string]int, len(tokenCategories))
	for i, c := range tokenCategories {
		rank[strings.ToLower(c)] = i
	}

	var issues []domain.Issue
	inRoot := false
	depth := 0
	last := -1
	lastName := ""

	inComment := false
	for i, raw := range lines {
		stripped, nowInComment := StripBlockComments(raw, inComment)

		if !inRoot && rootRe.MatchString(stripped) {
			inRoot = true
			depth = 0
		}
		if inRoot {
			depth += strings.Count(stripped, "{") - strings.Count(stripped, "}")
			if depth <= 0 && strings.Contains(stripped, "}") {
				inRoot = false
			}

			// Category markers are comments; match on the raw line pair.
			if !inComment && i+1 < len(lines) && categoryBottomRe.MatchString(lines[i+1]) {
				if m := categoryTopRe.FindStringSubmatch(raw); m != nil {
					cat := m[1]
					if r, known := rank[strings.ToLower(cat)]; known {
						if r < last {
							issues = append(issues, domain.Issue{
								Line: i + 1, Col: 1,
								Severity: domain.SeverityWarning,
								Rule:     "token-category-order",
								Message: fmt.Sprintf("token category %q after %q — expected: %s",
									cat, lastName, strings.Join(tokenCategories, " → ")),
							})
						} else {
							last = r
							lastName = cat
						}
					}
				}
			}
		}
		inComment = nowInComment
	}
	return issues
}
