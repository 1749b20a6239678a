package simulate

import (
	"testing"

	"github.com/openassess/cat-engine/internal/config"
	"github.com/openassess/cat-engine/internal/itembank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_RecoversTrueTheta(t *testing.T) {
	bank := itembank.New()
	cfg := config.Default()

	results, err := RunBatch(bank, cfg, BatchOptions{Participants: 200, Concurrency: 8, Seed: 42})
	require.NoError(t, err)
	require.Len(t, results, 200)

	recovery, err := AdaptiveRecovery(results)
	require.NoError(t, err)

	for _, trait := range itembank.CanonicalOrder {
		r := recovery[trait]
		assert.Greaterf(t, r.PearsonR, 0.4, "trait %s recovery too weak: %v", trait, r.PearsonR)
		assert.LessOrEqualf(t, r.MeanItemsUsed, 4.0, "trait %s", trait)
	}

	rate, err := ItemReductionRate(results)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rate, 0.0)
}

func TestRunBatch_DeterministicWithSameSeed(t *testing.T) {
	bank := itembank.New()
	cfg := config.Default()

	a, err := RunBatch(bank, cfg, BatchOptions{Participants: 20, Concurrency: 4, Seed: 7})
	require.NoError(t, err)
	b, err := RunBatch(bank, cfg, BatchOptions{Participants: 20, Concurrency: 4, Seed: 7})
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].ItemsAdministered, b[i].ItemsAdministered)
		for _, trait := range itembank.CanonicalOrder {
			assert.InDelta(t, a[i].AdaptiveTheta[trait], b[i].AdaptiveTheta[trait], 1e-12)
		}
	}
}
