package counterbalance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssign_AlwaysBothConditions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seenSurveyFirst, seenAdaptiveFirst := false, false

	for i := 0; i < 100; i++ {
		order := Assign(rng)
		assert.ElementsMatch(t, []Condition{Survey, Adaptive}, order.Conditions[:])
		if order.Conditions[0] == Survey {
			seenSurveyFirst = true
		} else {
			seenAdaptiveFirst = true
		}
	}

	assert.True(t, seenSurveyFirst)
	assert.True(t, seenAdaptiveFirst)
}

func TestOrder_IndexAndSequenceNumber(t *testing.T) {
	order := Order{Conditions: [2]Condition{Adaptive, Survey}}
	assert.Equal(t, 0, order.IndexOf(Adaptive))
	assert.Equal(t, 1, order.IndexOf(Survey))
	assert.Equal(t, 1, order.SequenceNumber(Adaptive))
	assert.Equal(t, 2, order.SequenceNumber(Survey))
}

func TestOrder_NextCondition(t *testing.T) {
	order := Order{Conditions: [2]Condition{Survey, Adaptive}}

	next, ok := order.NextCondition(map[Condition]bool{})
	assert.True(t, ok)
	assert.Equal(t, Survey, next)

	next, ok = order.NextCondition(map[Condition]bool{Survey: true})
	assert.True(t, ok)
	assert.Equal(t, Adaptive, next)

	_, ok = order.NextCondition(map[Condition]bool{Survey: true, Adaptive: true})
	assert.False(t, ok)
}
