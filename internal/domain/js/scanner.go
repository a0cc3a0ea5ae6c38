// Package js implements the script scanner for .js, .jsx, .ts and .tsx
// files. Like the CSS scanner it is a line state machine over raw text:
// block comments and string bodies are blanked before most checks, with
// secret detection deliberately running on the original line.
package js

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/designcheck/designcheck/internal/domain"
	"github.com/designcheck/designcheck/internal/domain/suppress"
	"github.com/designcheck/designcheck/internal/domain/tier"
)

// Rules lists every rule id this scanner can emit.
var Rules = []string{
	"no-debugger",
	"no-console",
	"no-var",
	"strict-equality",
	"no-empty-catch",
	"no-document-write",
	"no-inner-html",
	"no-inline-styles-jsx",
	"no-secrets",
	"tier-imports",
}

// ConsoleMethods is the console method list shared with the debug fixer.
var ConsoleMethods = []string{"log", "warn", "error", "info", "debug", "trace", "dir", "table"}

var (
	// ConsoleCallRe matches the start of a console call; shared with the
	// debug fixer so both sides strip the same statements.
	ConsoleCallRe = regexp.MustCompile(`\bconsole\.(` + strings.Join(ConsoleMethods, "|") + `)\s*\(`)

	// DebuggerRe matches a debugger statement; shared with the debug fixer.
	DebuggerRe = regexp.MustCompile(`\bdebugger\b`)

	varRe           = regexp.MustCompile(`^\s*var\s`)
	emptyCatchRe    = regexp.MustCompile(`\bcatch\s*(\([^)]*\))?\s*\{\s*\}`)
	documentWriteRe = regexp.MustCompile(`\bdocument\.write(ln)?\s*\(`)
	innerHTMLRe     = regexp.MustCompile(`\.innerHTML\s*=[^=]`)
	jsxStyleRe      = regexp.MustCompile(`\bstyle\s*=\s*\{\{`)
	importFromRe    = regexp.MustCompile(`(?:from\s+|require\(\s*|import\s*\(\s*)['"]([^'"]+)['"]`)
)

// Scan checks one script file and returns its issues in line order.
// path is used to derive the file's architectural tier.
func Scan(path, content string) []domain.Issue {
	var issues []domain.Issue
	fileTier := tier.Of(path)

	sup := suppress.NewJS()
	inComment := false

	for i, raw := range strings.Split(content, "\n") {
		lineNo := i + 1
		suppressed := sup.Observe(raw)

		code, nowInComment := StripComments(raw, inComment)
		inComment = nowInComment

		if suppressed {
			continue
		}

		stripped := StripStrings(code)

		if loc := DebuggerRe.FindStringIndex(stripped); loc != nil {
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: loc[0] + 1,
				Severity: domain.SeverityError,
				Rule:     "no-debugger",
				Message:  "debugger statement",
			})
		}

		if m := ConsoleCallRe.FindStringSubmatchIndex(stripped); m != nil {
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: m[0] + 1,
				Severity: domain.SeverityWarning,
				Rule:     "no-console",
				Message:  fmt.Sprintf("console.%s call left in source", stripped[m[2]:m[3]]),
			})
		}

		if varRe.MatchString(stripped) {
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: strings.Index(stripped, "var") + 1,
				Severity: domain.SeverityError,
				Rule:     "no-var",
				Message:  `"var" declaration — use const or let`,
			})
		}

		if loc := FindLooseEquality(stripped); loc >= 0 {
			op := stripped[loc : loc+2]
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: loc + 1,
				Severity: domain.SeverityWarning,
				Rule:     "strict-equality",
				Message:  fmt.Sprintf("loose %q — use %s=", op, op),
			})
		}

		if loc := emptyCatchRe.FindStringIndex(stripped); loc != nil {
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: loc[0] + 1,
				Severity: domain.SeverityError,
				Rule:     "no-empty-catch",
				Message:  "empty catch block swallows errors",
			})
		}

		if loc := documentWriteRe.FindStringIndex(stripped); loc != nil {
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: loc[0] + 1,
				Severity: domain.SeverityError,
				Rule:     "no-document-write",
				Message:  "document.write blocks parsing and breaks on re-entry",
			})
		}

		if loc := innerHTMLRe.FindStringIndex(stripped); loc != nil {
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: loc[0] + 1,
				Severity: domain.SeverityWarning,
				Rule:     "no-inner-html",
				Message:  "innerHTML assignment — XSS risk, prefer textContent or DOM APIs",
			})
		}

		if loc := jsxStyleRe.FindStringIndex(stripped); loc != nil {
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: loc[0] + 1,
				Severity: domain.SeverityWarning,
				Rule:     "no-inline-styles-jsx",
				Message:  "inline JSX style object — move styles to a stylesheet",
			})
		}

		// Secrets are matched on the raw line: the patterns look inside the
		// string literals other checks blank out.
		if label := FindSecret(raw); label != "" {
			issues = append(issues, domain.Issue{
				Line: lineNo, Col: 1,
				Severity: domain.SeverityError,
				Rule:     "no-secrets",
				Message:  label + " — load credentials from the environment",
			})
		}

		if fileTier > 0 {
			if m := importFromRe.FindStringSubmatch(code); m != nil {
				importTier := tier.Of(m[1])
				switch tier.Classify(fileTier, importTier) {
				case tier.Reverse:
					issues = append(issues, domain.Issue{
						Line: lineNo, Col: 1,
						Severity: domain.SeverityError,
						Rule:     "tier-imports",
						Message: fmt.Sprintf("Reverse tier import: %s imports %s — dependencies flow %s only",
							tierLabel(fileTier), tierLabel(importTier), "presentation → logic → data"),
					})
				case tier.Skip:
					issues = append(issues, domain.Issue{
						Line: lineNo, Col: 1,
						Severity: domain.SeverityError,
						Rule:     "tier-imports",
						Message: fmt.Sprintf("Layer-skipping import: %s imports %s — route through %s",
							tierLabel(fileTier), tierLabel(importTier), tierLabel(fileTier+1)),
					})
				}
			}
		}
	}

	return issues
}

func tierLabel(t int) string {
	return fmt.Sprintf("0%d-%s", t, tier.Names[t])
}

// FindLooseEquality returns the index of the first loose == or != operator
// in an already-stripped line, or -1. Strict operators (===, !==), relational
// <= and >=, and the idiomatic "== null" nullish check are excluded. Shared
// with the equality fixer.
func FindLooseEquality(line string) int {
	for i := 0; i+1 < len(line); i++ {
		if line[i+1] != '=' || (line[i] != '=' && line[i] != '!') {
			continue
		}
		// Exclude ===, !==, <=, >=, =>, and compound assignment contexts.
		if i > 0 && strings.ContainsRune("=!<>", rune(line[i-1])) {
			continue
		}
		if i+2 < len(line) && line[i+2] == '=' {
			continue
		}
		// Allow the nullish idiom: "x == null" checks null and undefined.
		rest := line[i+2:]
		if len(rest) > 6 {
			rest = rest[:6]
		}
		if strings.Contains(rest, "null") {
			continue
		}
		return i
	}
	return -1
}

// StripComments blanks block-comment content (carrying state across lines)
// and drops everything after a // that sits outside string literals.
func StripComments(line string, inComment bool) (string, bool) {
	var b strings.Builder
	b.Grow(len(line))
	var quote byte

	for i := 0; i < len(line); {
		c := line[i]

		if inComment {
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				inComment = false
				b.WriteString("  ")
				i += 2
				continue
			}
			b.WriteByte(' ')
			i++
			continue
		}

		if quote != 0 {
			if c == '\\' {
				b.WriteString(line[i:min(i+2, len(line))])
				i += 2
				continue
			}
			if c == quote {
				quote = 0
			}
			b.WriteByte(c)
			i++
			continue
		}

		switch {
		case c == '"' || c == '\'' || c == '`':
			quote = c
			b.WriteByte(c)
			i++
		case c == '/' && i+1 < len(line) && line[i+1] == '*':
			inComment = true
			b.WriteString("  ")
			i += 2
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return b.String(), false
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), inComment
}

// StripStrings blanks the bodies of backtick, double and single quoted
// strings, keeping the delimiters so columns stay stable. Shared with the
// fixers that must not edit inside literals.
func StripStrings(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == '\\' {
				b.WriteByte(' ')
				if i+1 < len(line) {
					b.WriteByte(' ')
					i++
				}
				continue
			}
			if c == quote {
				quote = 0
				b.WriteByte(c)
				continue
			}
			b.WriteByte(' ')
			continue
		}
		if c == '"' || c == '\'' || c == '`' {
			quote = c
		}
		b.WriteByte(c)
	}
	return b.String()
}
