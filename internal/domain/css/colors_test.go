package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/designcheck/designcheck/internal/domain/css"
)

func TestFindHardcodedColor(t *testing.T) {
	tests := map[string]struct {
		property string
		value    string
		want     string
	}{
		"hex 3":             {"color", "#fff", "#fff"},
		"hex 6":             {"color", "#ff0000", "#ff0000"},
		"hex 8":             {"background", "#ff000080", "#ff000080"},
		"hex any property":  {"width", "#abc", "#abc"},
		"rgb":               {"color", "rgb(255, 0, 0)", "rgb(...)"},
		"rgba":              {"background", "rgba(0,0,0,.5)", "rgba(...)"},
		"hsl":               {"border-color", "hsl(0 100% 50%)", "hsl(...)"},
		"named on color":    {"color", "red", "red"},
		"named on border":   {"border", "1px solid tomato", "tomato"},
		"named on shadow":   {"box-shadow", "0 1px 2px gray", "gray"},
		"named mixed case":  {"color", "Red", "Red"},
		"var clean":         {"color", "var(--color-fg)", ""},
		"var named segment": {"color", "var(--color-tomato)", ""},
		"transparent":       {"background", "transparent", ""},
		"currentcolor":      {"border-color", "currentcolor", ""},
		"inherit":           {"color", "inherit", ""},
		"named off color":   {"grid-area", "red", ""},
		"solid not a color": {"border", "1px solid var(--color-fg)", ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, css.FindHardcodedColor(tc.property, tc.value))
		})
	}
}

func TestIsColorProperty(t *testing.T) {
	assert.True(t, css.IsColorProperty("color"))
	assert.True(t, css.IsColorProperty("background-color"))
	assert.True(t, css.IsColorProperty("border-top-color"))
	assert.True(t, css.IsColorProperty("text-shadow"))
	assert.True(t, css.IsColorProperty("accent-color"))
	assert.False(t, css.IsColorProperty("width"))
	assert.False(t, css.IsColorProperty("font-family"))
}
