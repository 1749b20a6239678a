package scoring

import (
	"testing"

	"github.com/openassess/cat-engine/internal/itembank"
	"github.com/stretchr/testify/assert"
)

func TestThetaToLikert_ClipsAtBounds(t *testing.T) {
	assert.Equal(t, 1.0, ThetaToLikert(-10))
	assert.Equal(t, 7.0, ThetaToLikert(10))
	assert.InDelta(t, 4.0, ThetaToLikert(0), 1e-9)
}

func TestLikertToTheta_IsInverseNearCenter(t *testing.T) {
	for _, theta := range []float64{-2, -1, 0, 1, 2} {
		likert := ThetaToLikert(theta)
		back := LikertToTheta(likert)
		assert.InDelta(t, theta, back, 1e-9)
	}
}

func TestInterpret_Bands(t *testing.T) {
	assert.Equal(t, "Very Low", Interpret(1.0))
	assert.Equal(t, "Low", Interpret(3.0))
	assert.Equal(t, "Average", Interpret(4.0))
	assert.Equal(t, "High", Interpret(5.0))
	assert.Equal(t, "Very High", Interpret(6.5))
}

func traitMap(values ...float64) map[itembank.Trait]float64 {
	out := make(map[itembank.Trait]float64, len(itembank.CanonicalOrder))
	for i, trait := range itembank.CanonicalOrder {
		out[trait] = values[i]
	}
	return out
}

func TestCompare_IdenticalSeriesIsPerfectAgreement(t *testing.T) {
	a := traitMap(1, 2, 3, 4, 5, 6)
	c := Compare(a, a)
	assert.InDelta(t, 1.0, c.PearsonR, 1e-9)
	assert.InDelta(t, 0.0, c.MeanAbsoluteError, 1e-9)
	assert.InDelta(t, 0.0, c.RMSE, 1e-9)
	for _, trait := range itembank.CanonicalOrder {
		assert.InDelta(t, 0.0, c.PerTraitDiff[trait], 1e-9)
	}
}

func TestCompare_ZeroVarianceFallsBackToZero(t *testing.T) {
	a := traitMap(3, 3, 3, 3, 3, 3)
	b := traitMap(1, 2, 3, 4, 5, 6)
	c := Compare(a, b)
	assert.Equal(t, 0.0, c.PearsonR)
	assert.InDelta(t, 3.0-1.0, c.PerTraitDiff[itembank.CanonicalOrder[0]], 1e-9)
}
