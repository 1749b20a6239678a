package scoring

import (
	"math"

	"github.com/openassess/cat-engine/internal/itembank"
	"gonum.org/v1/gonum/stat"
)

// Comparison holds the agreement statistics between two per-trait score
// sets, per compare_scores' contract (spec §6): an overall Pearson
// correlation and error summary across traits, plus the signed per-trait
// difference (a-b) that a population-level correlation alone cannot carry.
type Comparison struct {
	PearsonR          float64
	MeanAbsoluteError float64
	RMSE              float64
	PerTraitDiff      map[itembank.Trait]float64
}

// Compare computes Pearson r, MAE, RMSE and the per-trait difference
// between two per-trait score maps (e.g. classical vs. adaptive theta for
// the same session), ordered by itembank.CanonicalOrder. A trait absent
// from either map contributes its zero value, matching Go's map lookup.
func Compare(a, b map[itembank.Trait]float64) Comparison {
	traits := itembank.CanonicalOrder
	av := make([]float64, len(traits))
	bv := make([]float64, len(traits))
	diff := make(map[itembank.Trait]float64, len(traits))

	for i, trait := range traits {
		av[i] = a[trait]
		bv[i] = b[trait]
		diff[trait] = a[trait] - b[trait]
	}

	return Comparison{
		PearsonR:          PearsonR(av, bv),
		MeanAbsoluteError: meanAbsoluteError(av, bv),
		RMSE:              rootMeanSquaredError(av, bv),
		PerTraitDiff:      diff,
	}
}

// PearsonR computes the Pearson correlation coefficient between a and b,
// falling back to 0 when either series has zero variance or the
// correlation is otherwise non-finite, matching compare_scores' safe_float
// guard; it is a graceful default, not an error, since the caller has no
// recovery action to take.
func PearsonR(a, b []float64) float64 {
	r := stat.Correlation(a, b, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

func meanAbsoluteError(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum / float64(len(a))
}

func rootMeanSquaredError(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(a)))
}
