package irt

import (
	"math/rand"

	"github.com/openassess/cat-engine/internal/itembank"
)

// ItemLogLikelihood computes the log-likelihood of observing raw response
// (1..7) to item at theta, applying the reverse-keying transform exactly
// once.
func ItemLogLikelihood(item itembank.Item, response int, theta float64) float64 {
	effective := EffectiveResponse(response, item.ReverseKeyed)
	return LogLikelihood(effective, theta, item.Alpha, item.Beta)
}

// ItemLikelihood is the non-log counterpart of ItemLogLikelihood, used by
// the expected-posterior-variance criterion which needs raw probabilities.
func ItemLikelihood(item itembank.Item, response int, theta float64) float64 {
	effective := EffectiveResponse(response, item.ReverseKeyed)
	return Likelihood(effective, theta, item.Alpha, item.Beta)
}

// ItemFisherInformation computes the Fisher information item contributes at theta.
func ItemFisherInformation(item itembank.Item, theta float64) float64 {
	return FisherInformation(theta, item.Alpha, item.Beta)
}

// SimulateResponse draws a raw response (1..7) for item at the given true
// theta: a category is sampled in trait direction from the item's GRM
// category probabilities, and for a reverse-keyed item the raw response
// handed back is 8-sample (spec §4.1). rng is an explicit, caller-owned
// source of randomness; the kernel never reads global entropy.
func SimulateResponse(item itembank.Item, theta float64, rng *rand.Rand) int {
	probs := CategoryProbabilities(theta, item.Alpha, item.Beta)
	draw := rng.Float64()
	cumulative := 0.0
	sample := NumCategories
	for k := 0; k < NumCategories; k++ {
		cumulative += probs[k]
		if draw <= cumulative {
			sample = k + 1
			break
		}
	}
	return RawResponseFromSimulatedSample(sample, item.ReverseKeyed)
}
