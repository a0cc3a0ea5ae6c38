// Package css implements the line-based stylesheet scanner. It deliberately
// works on raw text with brace-depth tracking instead of a parsed AST: the
// section-order and suppression rules are defined in terms of literal
// comment syntax and line positions.
package css

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/designcheck/designcheck/internal/domain"
	"github.com/designcheck/designcheck/internal/domain/cascade"
	"github.com/designcheck/designcheck/internal/domain/suppress"
)

// Rules lists every rule id this scanner can emit. The registry validates
// against this declaration.
var Rules = []string{
	"no-hardcoded-color",
	"no-hardcoded-spacing",
	"no-hardcoded-font-size",
	"no-hardcoded-radius",
	"no-hardcoded-shadow",
	"no-hardcoded-z-index",
	"css-property-order",
	"no-important",
	"no-id-selectors",
	"no-max-width-media",
	"import-order",
	"unit-zero",
	"css-section-order",
	"token-category-order",
}

var (
	DeclRe       = regexp.MustCompile(`(?:^|[{;])\s*(-?[a-zA-Z][a-zA-Z-]*)\s*:\s*([^;{}]+)`)
	customPropRe = regexp.MustCompile(`^\s*--[\w-]+\s*:`)
	ImportRe     = regexp.MustCompile(`@import\s+(?:url\(\s*)?["']([^"']+)["']`)
	rootRe       = regexp.MustCompile(`(?:^|[^\w#.-]):root(?:[^\w-]|$)`)
	maxWidthRe   = regexp.MustCompile(`@media[^{]*\(\s*max-width`)
	idSelectorRe = regexp.MustCompile(`#[A-Za-z_][\w-]*`)
	stringRe     = regexp.MustCompile(`"[^"]*"|'[^']*'`)
	urlRe        = regexp.MustCompile(`url\([^)]*\)`)
	pxValueRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)px`)

	spacingPropRe = regexp.MustCompile(`^(margin|padding|gap|row-gap|column-gap|inset)(-(top|right|bottom|left|block|inline)(-(start|end))?)?$`)
	radiusPropRe  = regexp.MustCompile(`^border(-[a-z]+-[a-z]+)?-radius$`)
	zeroValueRe   = regexp.MustCompile(`^0(px|em|rem|%)?$`)

	// UnitZeroRe matches a zero value carrying a redundant unit. Shared with
	// the unit-zero fixer so detection and repair cannot drift.
	UnitZeroRe = regexp.MustCompile(`(^|[^\d.])(0(?:(?:px|em|rem|vh|vw|vmin|vmax|ch|ex)\b|%))`)
)

var cascadeKeywords = map[string]bool{
	"inherit": true, "initial": true, "unset": true,
	"revert": true, "revert-layer": true,
}

var fontSizeKeywords = map[string]bool{
	"xx-small": true, "x-small": true, "small": true, "medium": true,
	"large": true, "x-large": true, "xx-large": true, "xxx-large": true,
	"smaller": true, "larger": true,
}

// levelState tracks the last ordered declaration seen at one nesting depth.
type levelState struct {
	lastGroup Group
	lastProp  string
}

// Scan checks one stylesheet and returns its issues in line order.
// name is the file's basename; the section-order and token-category
// pre-passes only apply to the canonical stylesheet names.
func Scan(name, content string) []domain.Issue {
	var issues []domain.Issue
	lines := strings.Split(content, "\n")

	sup := suppress.NewCSS()
	inComment := false
	depth := 0
	rootDepth := -1
	pendingRoot := false
	stack := []levelState{{}}
	lastCascade := -1
	lastCascadeName := ""

	for i, raw := range lines {
		lineNo := i + 1
		suppressed := sup.Observe(raw)

		line, nowInComment := StripBlockComments(raw, inComment)
		inComment = nowInComment

		// Cascade position is tracked on every line so later non-suppressed
		// imports compare against correct state; the issue itself is only
		// emitted outside suppressed regions.
		if m := ImportRe.FindStringSubmatchIndex(line); m != nil {
			ref := line[m[2]:m[3]]
			pos := cascade.Position(ref)
			if pos >= 0 {
				if pos < lastCascade && !suppressed {
					issues = append(issues, domain.Issue{
						Line: lineNo, Col: m[0] + 1,
						Severity: domain.SeverityWarning,
						Rule:     "import-order",
						Message: fmt.Sprintf("%q imported after %q — cascade order is %s",
							cascade.Basename(ref), lastCascadeName, cascade.Expected()),
					})
				}
				lastCascade = pos
				lastCascadeName = cascade.Basename(ref)
			}
		}

		stripped := BlankValues(line)

		if IsRootSelector(stripped) && rootDepth == -1 {
			pendingRoot = true
		}

		if !suppressed {
			// Selector portion: before the first opening brace, or a bare
			// selector-list line ending with a comma.
			selectorPart := ""
			if b := strings.IndexByte(stripped, '{'); b >= 0 {
				selectorPart = stripped[:b]
			} else if strings.HasSuffix(strings.TrimSpace(stripped), ",") {
				selectorPart = stripped
			}
			if loc := idSelectorRe.FindStringIndex(selectorPart); loc != nil {
				issues = append(issues, domain.Issue{
					Line: lineNo, Col: loc[0] + 1,
					Severity: domain.SeverityWarning,
					Rule:     "no-id-selectors",
					Message:  fmt.Sprintf("ID selector %q — prefer class selectors", selectorPart[loc[0]:loc[1]]),
				})
			}

			if loc := maxWidthRe.FindStringIndex(stripped); loc != nil {
				issues = append(issues, domain.Issue{
					Line: lineNo, Col: loc[0] + 1,
					Severity: domain.SeverityWarning,
					Rule:     "no-max-width-media",
					Message:  "max-width media query — write mobile-first with min-width",
				})
			}
		}

		// Walk braces and declarations in positional order so same-line
		// blocks like ".card { color: #fff; padding: 16px; }" keep correct
		// depth and ordering state.
		decls := DeclRe.FindAllStringSubmatchIndex(stripped, -1)
		declIdx := 0
		for pos := 0; pos <= len(stripped); pos++ {
			if declIdx < len(decls) && decls[declIdx][2] == pos {
				m := decls[declIdx]
				declIdx++
				prop := strings.ToLower(stripped[m[2]:m[3]])
				value := strings.TrimSpace(stripped[m[4]:m[5]])
				col := m[2] + 1

				insideRoot := rootDepth != -1
				isCustomProp := strings.HasPrefix(prop, "--") || customPropRe.MatchString(stripped)
				if suppressed || insideRoot || isCustomProp || depth == 0 {
					continue
				}
				issues = append(issues, checkDeclaration(lineNo, col, prop, value, &stack[len(stack)-1])...)
			}
			if pos == len(stripped) {
				break
			}
			switch stripped[pos] {
			case '{':
				if pendingRoot {
					rootDepth = depth
					pendingRoot = false
				}
				depth++
				stack = append(stack, levelState{})
			case '}':
				if depth > 0 {
					depth--
					stack = stack[:len(stack)-1]
				}
				if rootDepth != -1 && depth <= rootDepth {
					rootDepth = -1
				}
			}
		}
	}

	issues = append(issues, checkSectionOrder(name, lines)...)
	issues = append(issues, checkTokenCategoryOrder(name, lines)...)

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })
	return issues
}

// checkDeclaration runs the per-declaration value checks and advances the
// ordering state for the current nesting level.
func checkDeclaration(line, col int, prop, value string, level *levelState) []domain.Issue {
	var issues []domain.Issue

	if group := GroupOf(prop); group != GroupNone {
		if level.lastGroup != GroupNone && group < level.lastGroup {
			issues = append(issues, domain.Issue{
				Line: line, Col: col,
				Severity: domain.SeverityWarning,
				Rule:     "css-property-order",
				Message: fmt.Sprintf("%q (%s) after %q (%s) — expected %s",
					prop, group, level.lastProp, level.lastGroup, groupOrderHint),
			})
		} else {
			level.lastGroup = group
			level.lastProp = prop
		}
	}

	if strings.Contains(value, "!important") {
		issues = append(issues, domain.Issue{
			Line: line, Col: col,
			Severity: domain.SeverityWarning,
			Rule:     "no-important",
			Message:  fmt.Sprintf("\"!important\" in %q declaration — raise specificity instead", prop),
		})
	}

	if c := FindHardcodedColor(prop, value); c != "" {
		issues = append(issues, domain.Issue{
			Line: line, Col: col,
			Severity: domain.SeverityError,
			Rule:     "no-hardcoded-color",
			Message:  fmt.Sprintf("hardcoded color %q on %q — use var(--color-*)", c, prop),
		})
	}

	if spacingPropRe.MatchString(prop) {
		for _, m := range pxValueRe.FindAllStringSubmatch(value, -1) {
			if px := parsePx(m[1]); px >= 4 {
				issues = append(issues, domain.Issue{
					Line: line, Col: col,
					Severity: domain.SeverityWarning,
					Rule:     "no-hardcoded-spacing",
					Message:  fmt.Sprintf("hardcoded spacing %q on %q — use var(--space-*)", m[0], prop),
				})
				break
			}
		}
	}

	usesVar := strings.Contains(value, "var(")
	lower := strings.ToLower(value)

	if prop == "font-size" && !usesVar && !fontSizeKeywords[lower] && !cascadeKeywords[lower] {
		issues = append(issues, domain.Issue{
			Line: line, Col: col,
			Severity: domain.SeverityWarning,
			Rule:     "no-hardcoded-font-size",
			Message:  fmt.Sprintf("hardcoded font-size %q — use var(--font-size-*)", value),
		})
	}

	if radiusPropRe.MatchString(prop) && !usesVar && !zeroValueRe.MatchString(lower) && !cascadeKeywords[lower] {
		issues = append(issues, domain.Issue{
			Line: line, Col: col,
			Severity: domain.SeverityWarning,
			Rule:     "no-hardcoded-radius",
			Message:  fmt.Sprintf("hardcoded border radius %q — use var(--radius-*)", value),
		})
	}

	if (prop == "box-shadow" || prop == "text-shadow") && !usesVar && lower != "none" && !cascadeKeywords[lower] {
		issues = append(issues, domain.Issue{
			Line: line, Col: col,
			Severity: domain.SeverityWarning,
			Rule:     "no-hardcoded-shadow",
			Message:  fmt.Sprintf("hardcoded %s — use var(--shadow-*)", prop),
		})
	}

	if prop == "z-index" && !usesVar && lower != "auto" && !cascadeKeywords[lower] {
		issues = append(issues, domain.Issue{
			Line: line, Col: col,
			Severity: domain.SeverityWarning,
			Rule:     "no-hardcoded-z-index",
			Message:  fmt.Sprintf("hardcoded z-index %q — use var(--z-*)", value),
		})
	}

	for _, m := range UnitZeroRe.FindAllStringSubmatch(value, -1) {
		issues = append(issues, domain.Issue{
			Line: line, Col: col,
			Severity: domain.SeverityWarning,
			Rule:     "unit-zero",
			Message:  fmt.Sprintf("%q — use bare 0", m[2]),
		})
	}

	return issues
}

const groupOrderHint = "Positioning → Box Model → Typography → Visual → Animation"

func parsePx(s string) float64 {
	var v float64
	fmt.Sscanf(s, "%f", &v)
	return v
}

// BlankValues blanks string-literal and url() bodies with spaces, keeping
// delimiters and overall length so offsets into the result map back onto
// the source line. Shared with the fixers.
func BlankValues(line string) string {
	blank := func(s string, keepHead, keepTail int) string {
		head := s[:keepHead]
		tail := s[len(s)-keepTail:]
		return head + strings.Repeat(" ", len(s)-keepHead-keepTail) + tail
	}
	line = urlRe.ReplaceAllStringFunc(line, func(s string) string {
		return blank(s, len("url("), 1)
	})
	return stringRe.ReplaceAllStringFunc(line, func(s string) string {
		return blank(s, 1, 1)
	})
}

// IsRootSelector reports whether the line opens a :root block: the token
// must stand alone, not glued to a combinator or another selector.
func IsRootSelector(line string) bool {
	return rootRe.MatchString(line)
}

// StripBlockComments blanks /* ... */ content, carrying open-comment state
// across lines. Comment delimiters are replaced with spaces so columns of
// later tokens stay aligned with the source.
func StripBlockComments(line string, inComment bool) (string, bool) {
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); {
		if inComment {
			if i+1 < len(line) && line[i] == '*' && line[i+1] == '/' {
				inComment = false
				b.WriteString("  ")
				i += 2
				continue
			}
			b.WriteByte(' ')
			i++
			continue
		}
		if i+1 < len(line) && line[i] == '/' && line[i+1] == '*' {
			inComment = true
			b.WriteString("  ")
			i += 2
			continue
		}
		b.WriteByte(line[i])
		i++
	}
	return b.String(), inComment
}
