package classical

import (
	"testing"

	"github.com/openassess/cat-engine/internal/itembank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allSevens(bank *itembank.Bank) map[int]int {
	responses := make(map[int]int, bank.Len())
	for id := 1; id <= bank.Len(); id++ {
		responses[id] = 7
	}
	return responses
}

func TestScore_AllSevensReverseKeyedItemsInvert(t *testing.T) {
	bank := itembank.New()
	scores, err := Score(bank, allSevens(bank))
	require.NoError(t, err)

	for _, trait := range itembank.CanonicalOrder {
		ts := scores[trait]
		assert.Equal(t, 4, ts.NumItems)
		assert.GreaterOrEqual(t, ts.Score, 1.0)
		assert.LessOrEqual(t, ts.Score, 7.0)
	}

	// Item 8 (Agreeableness) is reverse-keyed: response 7 -> effective 1.
	item8, err := bank.Lookup(8)
	require.NoError(t, err)
	require.True(t, item8.ReverseKeyed)

	// Every Honesty-Humility item is reverse-keyed, so all sevens score 1.
	assert.InDelta(t, 1.0, scores[itembank.HonestyHumility].Score, 1e-9)
}

func TestScore_IncompleteSurvey(t *testing.T) {
	bank := itembank.New()
	responses := allSevens(bank)
	delete(responses, 1)

	_, err := Score(bank, responses)
	require.Error(t, err)
}

func TestScore_MidpointResponsesYieldMidpointScore(t *testing.T) {
	bank := itembank.New()
	responses := make(map[int]int, bank.Len())
	for id := 1; id <= bank.Len(); id++ {
		responses[id] = 4
	}

	scores, err := Score(bank, responses)
	require.NoError(t, err)
	for _, trait := range itembank.CanonicalOrder {
		assert.InDelta(t, 4.0, scores[trait].Score, 1e-9)
	}
}
