package itembank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FourItemsPerTrait(t *testing.T) {
	bank := New()
	require.Equal(t, 24, bank.Len())

	for _, trait := range CanonicalOrder {
		ids := bank.ItemsForTrait(trait)
		assert.Lenf(t, ids, 4, "trait %s", trait)
	}
}

func TestNew_BetaStrictlyIncreasing(t *testing.T) {
	bank := New()
	for id := 1; id <= 24; id++ {
		it, err := bank.Lookup(id)
		require.NoError(t, err)
		for i := 1; i < len(it.Beta); i++ {
			assert.Greaterf(t, it.Beta[i], it.Beta[i-1], "item %d threshold %d", id, i)
		}
	}
}

func TestLookup_UnknownItem(t *testing.T) {
	bank := New()
	_, err := bank.Lookup(99)
	require.Error(t, err)
}

func TestHighestDiscrimination_Agreeableness(t *testing.T) {
	bank := New()
	id, ok := bank.HighestDiscrimination(Agreeableness, nil)
	require.True(t, ok)
	it, err := bank.Lookup(id)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.InDelta(t, 1.46, it.Alpha, 1e-9)
}

func TestHighestDiscrimination_ExcludesAdministered(t *testing.T) {
	bank := New()
	id, ok := bank.HighestDiscrimination(Agreeableness, map[int]bool{2: true})
	require.True(t, ok)
	assert.NotEqual(t, 2, id)
}

func TestHighestDiscrimination_AllExcluded(t *testing.T) {
	bank := New()
	_, ok := bank.HighestDiscrimination(Agreeableness, map[int]bool{2: true, 8: true, 14: true, 20: true})
	assert.False(t, ok)
}
