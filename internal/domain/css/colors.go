package css

import (
	"regexp"
	"strings"
)

var (
	hexColorRe  = regexp.MustCompile(`#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3,4})\b`)
	funcColorRe = regexp.MustCompile(`\b(?:rgb|rgba|hsl|hsla)\(`)
	wordRe      = regexp.MustCompile(`[a-zA-Z]+`)
)

// neverFlagged are value keywords that are legitimate on color-related
// properties and must not be reported as hardcoded colors.
var neverFlagged = map[string]bool{
	"transparent":  true,
	"currentcolor": true,
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
	"none":         true,
	"auto":         true,
}

// namedColors is the full CSS Color Level 4 named-color set.
var namedColors = map[string]bool{
	"aliceblue": true, "antiquewhite": true, "aqua": true, "aquamarine": true,
	"azure": true, "beige": true, "bisque": true, "black": true,
	"blanchedalmond": true, "blue": true, "blueviolet": true, "brown": true,
	"burlywood": true, "cadetblue": true, "chartreuse": true, "chocolate": true,
	"coral": true, "cornflowerblue": true, "cornsilk": true, "crimson": true,
	"cyan": true, "darkblue": true, "darkcyan": true, "darkgoldenrod": true,
	"darkgray": true, "darkgreen": true, "darkgrey": true, "darkkhaki": true,
	"darkmagenta": true, "darkolivegreen": true, "darkorange": true,
	"darkorchid": true, "darkred": true, "darksalmon": true,
	"darkseagreen": true, "darkslateblue": true, "darkslategray": true,
	"darkslategrey": true, "darkturquoise": true, "darkviolet": true,
	"deeppink": true, "deepskyblue": true, "dimgray": true, "dimgrey": true,
	"dodgerblue": true, "firebrick": true, "floralwhite": true,
	"forestgreen": true, "fuchsia": true, "gainsboro": true,
	"ghostwhite": true, "gold": true, "goldenrod": true, "gray": true,
	"green": true, "greenyellow": true, "grey": true, "honeydew": true,
	"hotpink": true, "indianred": true, "indigo": true, "ivory": true,
	"khaki": true, "lavender": true, "lavenderblush": true, "lawngreen": true,
	"lemonchiffon": true, "lightblue": true, "lightcoral": true,
	"lightcyan": true, "lightgoldenrodyellow": true, "lightgray": true,
	"lightgreen": true, "lightgrey": true, "lightpink": true,
	"lightsalmon": true, "lightseagreen": true, "lightskyblue": true,
	"lightslategray": true, "lightslategrey": true, "lightsteelblue": true,
	"lightyellow": true, "lime": true, "limegreen": true, "linen": true,
	"magenta": true, "maroon": true, "mediumaquamarine": true,
	"mediumblue": true, "mediumorchid": true, "mediumpurple": true,
	"mediumseagreen": true, "mediumslateblue": true,
	"mediumspringgreen": true, "mediumturquoise": true,
	"mediumvioletred": true, "midnightblue": true, "mintcream": true,
	"mistyrose": true, "moccasin": true, "navajowhite": true, "navy": true,
	"oldlace": true, "olive": true, "olivedrab": true, "orange": true,
	"orangered": true, "orchid": true, "palegoldenrod": true,
	"palegreen": true, "paleturquoise": true, "palevioletred": true,
	"papayawhip": true, "peachpuff": true, "peru": true, "pink": true,
	"plum": true, "powderblue": true, "purple": true, "rebeccapurple": true,
	"red": true, "rosybrown": true, "royalblue": true, "saddlebrown": true,
	"salmon": true, "sandybrown": true, "seagreen": true, "seashell": true,
	"sienna": true, "silver": true, "skyblue": true, "slateblue": true,
	"slategray": true, "slategrey": true, "snow": true, "springgreen": true,
	"steelblue": true, "tan": true, "teal": true, "thistle": true,
	"tomato": true, "turquoise": true, "violet": true, "wheat": true,
	"white": true, "whitesmoke": true, "yellow": true, "yellowgreen": true,
}

// colorPropertyTokens mark properties whose values may legitimately carry
// color keywords. Named-color detection is restricted to these to avoid
// false positives on unrelated properties.
var colorPropertyTokens = []string{
	"color", "background", "border", "outline", "fill", "stroke",
	"shadow", "text-decoration", "caret", "accent", "column-rule",
}

// IsColorProperty reports whether named-color keywords should be checked on
// the given property.
func IsColorProperty(property string) bool {
	for _, token := range colorPropertyTokens {
		if strings.Contains(property, token) {
			return true
		}
	}
	return false
}

// FindHardcodedColor returns the first hardcoded color occurrence in a
// declaration value, or "" if the value is clean. Hex and rgb/hsl function
// notations are flagged on any property; bare named colors only on
// color-related properties.
func FindHardcodedColor(property, value string) string {
	if m := hexColorRe.FindString(value); m != "" {
		return m
	}
	if m := funcColorRe.FindString(value); m != "" {
		return strings.TrimSuffix(m, "(") + "(...)"
	}
	if !IsColorProperty(property) {
		return ""
	}
	for _, loc := range wordRe.FindAllStringIndex(value, -1) {
		// Words glued to a hyphen are identifier fragments
		// (var(--color-red)), not color keywords.
		if loc[0] > 0 && value[loc[0]-1] == '-' {
			continue
		}
		if loc[1] < len(value) && value[loc[1]] == '-' {
			continue
		}
		word := value[loc[0]:loc[1]]
		lower := strings.ToLower(word)
		if namedColors[lower] && !neverFlagged[lower] {
			return word
		}
	}
	return ""
}
