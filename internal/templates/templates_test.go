package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAppliesOverridesWithoutMutatingBase(t *testing.T) {
	base := Default()
	merged := Merge(base, map[string]string{
		"welcome": "Hello from the overridden welcome!",
		"unknown": "ignored",
	})

	assert.Equal(t, "Hello from the overridden welcome!", merged["welcome"].Content)
	assert.NotEqual(t, merged["welcome"].Content, base["welcome"].Content, "base must stay untouched")
	assert.Equal(t, base["follow_up"], merged["follow_up"])
	_, ok := merged["unknown"]
	assert.False(t, ok, "overrides for unknown ids are ignored")
	assert.Len(t, merged, len(base))
}

func TestMergeNilOverrides(t *testing.T) {
	merged := Merge(Default(), nil)
	assert.Equal(t, Default(), merged)
}

func TestListIsSortedByID(t *testing.T) {
	list := Default().List()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
