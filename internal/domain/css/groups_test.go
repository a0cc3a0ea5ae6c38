package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/designcheck/designcheck/internal/domain/css"
)

func TestGroupOf(t *testing.T) {
	tests := map[string]struct {
		property string
		want     css.Group
	}{
		"position":         {"position", css.GroupPositioning},
		"inset":            {"inset", css.GroupPositioning},
		"z-index":          {"z-index", css.GroupPositioning},
		"display":          {"display", css.GroupBoxModel},
		"grid-template":    {"grid-template-columns", css.GroupBoxModel},
		"margin shorthand": {"margin", css.GroupBoxModel},
		"margin side":      {"margin-inline-start", css.GroupBoxModel},
		"max-width":        {"max-width", css.GroupBoxModel},
		"font-family":      {"font-family", css.GroupTypography},
		"color":            {"color", css.GroupTypography},
		"content":          {"content", css.GroupTypography},
		"letter-spacing":   {"letter-spacing", css.GroupTypography},
		"border":           {"border", css.GroupVisual},
		"background-color": {"background-color", css.GroupVisual},
		"box-shadow":       {"box-shadow", css.GroupVisual},
		"transform":        {"transform", css.GroupVisual},
		"transition":       {"transition", css.GroupAnimation},
		"animation-delay":  {"animation-delay", css.GroupAnimation},
		"will-change":      {"will-change", css.GroupAnimation},

		// Exceptions: named after typography but painted, and vice versa.
		"text-shadow":   {"text-shadow", css.GroupVisual},
		"overflow-wrap": {"overflow-wrap", css.GroupTypography},

		"unknown":         {"scroll-behavior", css.GroupNone},
		"counter":         {"counter-reset", css.GroupNone},
		"vendor-prefixed": {"-webkit-overflow-scrolling", css.GroupNone},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, css.GroupOf(tc.property))
		})
	}
}

func TestGroupString(t *testing.T) {
	assert.Equal(t, "Positioning", css.GroupPositioning.String())
	assert.Equal(t, "Box Model", css.GroupBoxModel.String())
	assert.Equal(t, "Typography", css.GroupTypography.String())
	assert.Equal(t, "Visual", css.GroupVisual.String())
	assert.Equal(t, "Animation", css.GroupAnimation.String())
	assert.Equal(t, "Unordered", css.GroupNone.String())
}
