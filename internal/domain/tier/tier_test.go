package tier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/designcheck/designcheck/internal/domain/tier"
)

func TestOf(t *testing.T) {
	tests := map[string]struct {
		path string
		want int
	}{
		"presentation": {"src/01-presentation/nav.js", 1},
		"logic":        {"src/02-logic/session.js", 2},
		"data":         {"03-data/store.js", 3},
		"relative":     {"../02-logic/loader.js", 2},
		"untiered":     {"scripts/build.js", 0},
		"wrong pair":   {"src/01-logic/x.js", 0},
		"empty":        {"", 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tier.Of(tc.path))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, tier.OK, tier.Classify(1, 2), "adjacent forward")
	assert.Equal(t, tier.OK, tier.Classify(2, 3), "adjacent forward")
	assert.Equal(t, tier.OK, tier.Classify(2, 2), "same tier")
	assert.Equal(t, tier.OK, tier.Classify(0, 3), "untiered file")
	assert.Equal(t, tier.OK, tier.Classify(1, 0), "untiered import")
	assert.Equal(t, tier.Reverse, tier.Classify(2, 1))
	assert.Equal(t, tier.Reverse, tier.Classify(3, 1))
	assert.Equal(t, tier.Skip, tier.Classify(1, 3))
}
