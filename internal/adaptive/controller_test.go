package adaptive

import (
	"testing"

	"github.com/openassess/cat-engine/internal/config"
	"github.com/openassess/cat-engine/internal/itembank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAction_InitialIsPresentItem(t *testing.T) {
	cfg := config.Default()
	cfg.SEThreshold = 10.0
	bank := itembank.New()

	state := NewSession(cfg, RoundRobin)
	action, _ := NextAction(state, bank)

	_, ok := action.(PresentItem)
	require.True(t, ok, "expected PresentItem, got %T", action)
}

func TestProcessResponse_GenerousThresholdCompletesEveryTrait(t *testing.T) {
	cfg := config.Default()
	cfg.SEThreshold = 10.0
	bank := itembank.New()

	state := NewSession(cfg, RoundRobin)
	action, state := NextAction(state, bank)
	present := action.(PresentItem)

	state, err := ProcessResponse(state, bank, cfg, present.ItemID, 4)
	require.NoError(t, err)

	assert.Equal(t, 1, state.TotalItems)
	assert.True(t, state.Done())
	for _, trait := range itembank.CanonicalOrder {
		assert.Truef(t, state.Completed[trait], "trait %s", trait)
	}

	finalAction, _ := NextAction(state, bank)
	_, isComplete := finalAction.(Complete)
	assert.True(t, isComplete)
}

func TestProcessResponse_UnreachableThresholdHitsHardCap(t *testing.T) {
	cfg := config.Default()
	cfg.SEThreshold = 0.0 // unreachable
	bank := itembank.New()

	state := NewSession(cfg, RoundRobin)
	for i := 0; i < 24; i++ {
		action, next := NextAction(state, bank)
		present, ok := action.(PresentItem)
		require.Truef(t, ok, "iteration %d: expected PresentItem, got %T", i, action)
		state, _ = ProcessResponse(next, bank, cfg, present.ItemID, 4)
	}

	assert.True(t, state.Done())
	assert.Equal(t, 24, state.TotalItems)
	for _, trait := range itembank.CanonicalOrder {
		assert.Lenf(t, state.Posteriors[trait].ItemsUsed, 4, "trait %s", trait)
	}

	action, _ := NextAction(state, bank)
	_, isComplete := action.(Complete)
	assert.True(t, isComplete)
}

func TestNextAction_ColdStartPicksHighestDiscrimination(t *testing.T) {
	cfg := config.Default()
	bank := itembank.New()

	state := NewSession(cfg, RoundRobin)
	// Drive round-robin until it reaches Agreeableness.
	for {
		action, next := NextAction(state, bank)
		present := action.(PresentItem)
		if present.Trait == itembank.Agreeableness {
			assert.Equal(t, 2, present.ItemID)
			return
		}
		state, _ = ProcessResponse(next, bank, cfg, present.ItemID, 4)
	}
}

func TestProcessResponse_RejectsUnexpectedItem(t *testing.T) {
	cfg := config.Default()
	bank := itembank.New()

	state := NewSession(cfg, RoundRobin)
	action, state := NextAction(state, bank)
	present := action.(PresentItem)

	wrongItem := present.ItemID + 1
	if wrongItem > 24 {
		wrongItem = present.ItemID - 1
	}
	_, err := ProcessResponse(state, bank, cfg, wrongItem, 4)
	require.Error(t, err)
}

func TestProcessResponse_RejectsAfterCompletion(t *testing.T) {
	cfg := config.Default()
	cfg.SEThreshold = 10.0
	bank := itembank.New()

	state := NewSession(cfg, RoundRobin)
	action, state := NextAction(state, bank)
	present := action.(PresentItem)
	state, err := ProcessResponse(state, bank, cfg, present.ItemID, 4)
	require.NoError(t, err)
	require.True(t, state.Done())

	_, err = ProcessResponse(state, bank, cfg, present.ItemID, 4)
	require.Error(t, err)
}
