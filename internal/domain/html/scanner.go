// Package html implements the markup scanner. Checks are regex/offset based
// over the whole file content, with a precomputed offset→line/col mapping
// and a per-line suppression set built from HTML comment markers.
package html

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/designcheck/designcheck/internal/domain"
	"github.com/designcheck/designcheck/internal/domain/cascade"
	"github.com/designcheck/designcheck/internal/domain/suppress"
)

// Rules lists every rule id this scanner can emit.
var Rules = []string{
	"link-order",
	"no-inline-styles",
	"img-alt",
	"class-bloat",
	"class-naming",
	"doctype-required",
	"title-required",
	"wiki-page-attr",
	"button-type",
	"heading-order",
	"single-h1",
	"no-click-handler",
	"no-positive-tabindex",
}

var (
	// LinkRe matches stylesheet links; shared with the import-order fixer.
	LinkRe = regexp.MustCompile(`<link\b[^>]*\brel\s*=\s*["']stylesheet["'][^>]*>`)

	HrefRe        = regexp.MustCompile(`\bhref\s*=\s*["']([^"']+)["']`)
	inlineStyleRe = regexp.MustCompile(`<[a-zA-Z][^>]*\sstyle\s*=`)
	imgRe         = regexp.MustCompile(`<img\b[^>]*>`)
	altRe         = regexp.MustCompile(`\balt\s*=`)
	classAttrRe   = regexp.MustCompile(`\bclass\s*=\s*["']([^"']*)["']`)
	doctypeRe     = regexp.MustCompile(`(?i)<!DOCTYPE\s+html`)
	titleRe       = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	bodyRe        = regexp.MustCompile(`<body\b[^>]*>`)
	buttonRe      = regexp.MustCompile(`<button\b[^>]*>`)
	typeAttrRe    = regexp.MustCompile(`\btype\s*=`)
	headingRe     = regexp.MustCompile(`<h([1-6])\b`)
	clickableRe   = regexp.MustCompile(`<(div|span)\b[^>]*\bonclick\s*=`)
	tabindexRe    = regexp.MustCompile(`\btabindex\s*=\s*["']?(-?\d+)`)
	camelClassRe  = regexp.MustCompile(`^[a-z][a-z0-9]*(?:[A-Z][a-z0-9]*)+$`)

	doctypeWindow = 500
)

// Scan checks one HTML document and returns its issues in line order.
func Scan(content string) []domain.Issue {
	var issues []domain.Issue

	locate := newLocator(content)
	suppressed := suppress.Lines(content, suppress.NewHTML())

	emit := func(offset int, severity domain.Severity, rule, message string) {
		line, col := locate(offset)
		if suppressed[line] {
			return
		}
		issues = append(issues, domain.Issue{
			Line: line, Col: col,
			Severity: severity, Rule: rule, Message: message,
		})
	}

	// Stylesheet link cascade order, symmetric to the CSS @import check.
	lastCascade := -1
	lastName := ""
	for _, loc := range LinkRe.FindAllStringIndex(content, -1) {
		tag := content[loc[0]:loc[1]]
		m := HrefRe.FindStringSubmatch(tag)
		if m == nil {
			continue
		}
		pos := cascade.Position(m[1])
		if pos < 0 {
			continue
		}
		if pos < lastCascade {
			emit(loc[0], domain.SeverityWarning, "link-order",
				fmt.Sprintf("%q linked after %q — cascade order is %s",
					cascade.Basename(m[1]), lastName, cascade.Expected()))
		}
		lastCascade = pos
		lastName = cascade.Basename(m[1])
	}

	for _, loc := range inlineStyleRe.FindAllStringIndex(content, -1) {
		emit(loc[0], domain.SeverityError, "no-inline-styles",
			"inline style attribute — move styles to a stylesheet")
	}

	for _, loc := range imgRe.FindAllStringIndex(content, -1) {
		if !altRe.MatchString(content[loc[0]:loc[1]]) {
			emit(loc[0], domain.SeverityError, "img-alt",
				"<img> without alt attribute")
		}
	}

	for _, m := range classAttrRe.FindAllStringSubmatchIndex(content, -1) {
		classes := strings.Fields(content[m[2]:m[3]])
		if len(classes) > 4 {
			emit(m[0], domain.SeverityWarning, "class-bloat",
				fmt.Sprintf("%d classes on one element — extract a component class", len(classes)))
		}
		for _, class := range classes {
			if camelClassRe.MatchString(class) {
				emit(m[0], domain.SeverityWarning, "class-naming",
					fmt.Sprintf("camelCase class %q — use %q", class, toKebab(class)))
			}
		}
	}

	if window := min(len(content), doctypeWindow); !doctypeRe.MatchString(content[:window]) {
		issues = append(issues, domain.Issue{
			Line: 1, Col: 1,
			Severity: domain.SeverityError,
			Rule:     "doctype-required",
			Message:  "missing <!DOCTYPE html>",
		})
	}

	if m := titleRe.FindStringSubmatch(content); m == nil || strings.TrimSpace(m[1]) == "" {
		issues = append(issues, domain.Issue{
			Line: 0, Col: 0,
			Severity: domain.SeverityError,
			Rule:     "title-required",
			Message:  "missing or empty <title>",
		})
	}

	if m := bodyRe.FindStringIndex(content); m != nil {
		if !strings.Contains(content[m[0]:m[1]], "data-wiki-page") {
			emit(m[0], domain.SeverityWarning, "wiki-page-attr",
				"<body> missing data-wiki-page attribute")
		}
	}

	for _, loc := range buttonRe.FindAllStringIndex(content, -1) {
		if !typeAttrRe.MatchString(content[loc[0]:loc[1]]) {
			emit(loc[0], domain.SeverityError, "button-type",
				`<button> without type attribute — default is "submit"`)
		}
	}

	lastHeading := 0
	h1Count := 0
	for _, m := range headingRe.FindAllStringSubmatchIndex(content, -1) {
		level, _ := strconv.Atoi(content[m[2]:m[3]])
		if level == 1 {
			h1Count++
		}
		if lastHeading > 0 && level > lastHeading+1 {
			emit(m[0], domain.SeverityWarning, "heading-order",
				fmt.Sprintf("heading skips from h%d to h%d", lastHeading, level))
		}
		lastHeading = level
	}
	if h1Count > 1 {
		issues = append(issues, domain.Issue{
			Line: 0, Col: 0,
			Severity: domain.SeverityWarning,
			Rule:     "single-h1",
			Message:  fmt.Sprintf("%d <h1> elements on one page — keep exactly one", h1Count),
		})
	}

	for _, m := range clickableRe.FindAllStringSubmatchIndex(content, -1) {
		emit(m[0], domain.SeverityWarning, "no-click-handler",
			fmt.Sprintf("onclick on <%s> — use <button type=\"button\"> instead", content[m[2]:m[3]]))
	}

	for _, m := range tabindexRe.FindAllStringSubmatchIndex(content, -1) {
		if v, err := strconv.Atoi(content[m[2]:m[3]]); err == nil && v > 0 {
			emit(m[0], domain.SeverityError, "no-positive-tabindex",
				fmt.Sprintf("tabindex=%d breaks natural tab order — use 0 or -1", v))
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })
	return issues
}

// newLocator precomputes line starts and returns an offset→(line, col)
// function, both 1-based.
func newLocator(content string) func(offset int) (int, int) {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return func(offset int) (int, int) {
		i := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
		return i + 1, offset - starts[i] + 1
	}
}

// toKebab rewrites a camelCase identifier into the project's kebab-case
// class convention.
func toKebab(s string) string {
	parts := camelcase.Split(s)
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, "-")
}
