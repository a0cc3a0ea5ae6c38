package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/designcheck/designcheck/internal/domain/cascade"
)

func TestPosition(t *testing.T) {
	assert.Equal(t, 0, cascade.Position("reset.css"))
	assert.Equal(t, 1, cascade.Position("css/global.css"))
	assert.Equal(t, 2, cascade.Position("/assets/layouts.css?v=3"))
	assert.Equal(t, 3, cascade.Position("Components.css"))
	assert.Equal(t, 4, cascade.Position("overrides"))
	assert.Equal(t, -1, cascade.Position("main.css"))
	assert.Equal(t, -1, cascade.Position(""))
}

func TestBasename(t *testing.T) {
	assert.Equal(t, "reset", cascade.Basename("  css/reset.css "))
	assert.Equal(t, "global", cascade.Basename("global.css?cache=1#top"))
	assert.Equal(t, "layouts", cascade.Basename(`styles\layouts.css`))
	assert.Equal(t, "theme", cascade.Basename("THEME.css"))
}

func TestExpected(t *testing.T) {
	assert.Equal(t, "reset → global → layouts → components → overrides", cascade.Expected())
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, cascade.IsCanonical("reset.css"))
	assert.True(t, cascade.IsCanonical("css/overrides.css"))
	assert.False(t, cascade.IsCanonical("normalize.css"))
}
