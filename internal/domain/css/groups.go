package css

import "regexp"

// Group is the ordinal declaration-ordering group of a CSS property.
// Within one block, observed groups must be non-decreasing.
type Group int

const (
	// GroupNone marks properties with no ordering constraint.
	GroupNone Group = iota
	// GroupPositioning covers position, offsets, z-index, float, clear, inset.
	GroupPositioning
	// GroupBoxModel covers display, flex/grid, sizing, margin/padding, overflow.
	GroupBoxModel
	// GroupTypography covers fonts, text properties, color, white-space.
	GroupTypography
	// GroupVisual covers borders, backgrounds, shadows, opacity, transforms.
	GroupVisual
	// GroupAnimation covers transitions, animations, will-change.
	GroupAnimation
)

// String returns the human name used in css-property-order messages.
func (g Group) String() string {
	switch g {
	case GroupPositioning:
		return "Positioning"
	case GroupBoxModel:
		return "Box Model"
	case GroupTypography:
		return "Typography"
	case GroupVisual:
		return "Visual"
	case GroupAnimation:
		return "Animation"
	default:
		return "Unordered"
	}
}

type groupPattern struct {
	re    *regexp.Regexp
	group Group
}

// Exceptions come first: text-shadow reads like Typography but paints, and
// overflow-wrap reads like Box Model but wraps text.
var groupPatterns = []groupPattern{
	{regexp.MustCompile(`^text-shadow$`), GroupVisual},
	{regexp.MustCompile(`^overflow-wrap$`), GroupTypography},

	{regexp.MustCompile(`^(position|top|right|bottom|left|z-index|float|clear|inset(-block|-inline)?(-start|-end)?)$`), GroupPositioning},

	{regexp.MustCompile(`^(display|flex(-[a-z]+)?|grid(-[a-z-]+)?|gap|row-gap|column-gap|justify-(content|items|self)|align-(content|items|self)|place-(content|items|self)|order|(min-|max-)?(width|height)|(min-|max-)?(block|inline)-size|margin(-[a-z-]+)?|padding(-[a-z-]+)?|overflow(-[xy])?|box-sizing|aspect-ratio)$`), GroupBoxModel},

	{regexp.MustCompile(`^(font(-[a-z-]+)?|line-height|letter-spacing|word-(spacing|break|wrap)|text-[a-z-]+|color|white-space|list-style(-[a-z]+)?|content|writing-mode|vertical-align|hyphens|quotes|tab-size|direction|unicode-bidi)$`), GroupTypography},

	{regexp.MustCompile(`^(border(-[a-z-]+)?|background(-[a-z-]+)?|box-shadow|outline(-[a-z]+)?|opacity|visibility|cursor|filter|backdrop-filter|transform(-[a-z]+)?|pointer-events|user-select|resize|object-(fit|position)|mix-blend-mode|isolation|table-layout|caption-side|empty-cells|fill|stroke(-[a-z]+)?|clip(-path)?|mask(-[a-z-]+)?|appearance)$`), GroupVisual},

	{regexp.MustCompile(`^(transition(-[a-z]+)?|animation(-[a-z-]+)?|will-change)$`), GroupAnimation},
}

// GroupOf classifies a property name into its ordering group.
// Unknown properties and custom properties return GroupNone.
func GroupOf(property string) Group {
	for _, p := range groupPatterns {
		if p.re.MatchString(property) {
			return p.group
		}
	}
	return GroupNone
}
