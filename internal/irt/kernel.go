// Package irt implements Samejima's Graded Response Model: the cumulative
// operating characteristic, per-category response probabilities, Fisher
// information and log-likelihood for a single polytomous item on a 7-point
// Likert scale. All functions are pure and allocation-light so they can run
// a few hundred times per posterior update without materializing garbage.
package irt

import "math"

// clipExponent saturates the logistic exponent to prevent overflow in
// math.Exp, per spec §4.1.
const clipExponent = 700.0

// floorProbability is the minimum category mass after clipping, guarding
// against log(0) downstream.
const floorProbability = 1e-10

// floorLikelihood is the floor applied before taking a log-likelihood.
const floorLikelihood = 1e-300

// NumCategories is the number of ordinal response categories (1..7).
const NumCategories = 7

// NumThresholds is the number of GRM category thresholds for a 7-point scale.
const NumThresholds = 6

// CumulativeProbability computes P*(theta; alpha, beta) = 1 / (1 +
// exp(-alpha*(theta-beta))), the probability of responding at or above the
// threshold beta.
func CumulativeProbability(theta, alpha, beta float64) float64 {
	exponent := -alpha * (theta - beta)
	if exponent > clipExponent {
		exponent = clipExponent
	} else if exponent < -clipExponent {
		exponent = -clipExponent
	}
	return 1.0 / (1.0 + math.Exp(exponent))
}

// CategoryProbabilities returns P(X=k) for k=1..7 given discrimination
// alpha and six ascending thresholds beta. Probabilities are clipped to
// [floorProbability, 1] and renormalized to sum to one (spec §4.1).
func CategoryProbabilities(theta, alpha float64, beta [NumThresholds]float64) [NumCategories]float64 {
	var pStar [NumThresholds]float64
	for i, b := range beta {
		pStar[i] = CumulativeProbability(theta, alpha, b)
	}

	var probs [NumCategories]float64
	probs[0] = 1.0 - pStar[0]
	for k := 1; k < NumThresholds; k++ {
		probs[k] = pStar[k-1] - pStar[k]
	}
	probs[NumCategories-1] = pStar[NumThresholds-1]

	sum := 0.0
	for k := range probs {
		if probs[k] < floorProbability {
			probs[k] = floorProbability
		}
		sum += probs[k]
	}
	for k := range probs {
		probs[k] /= sum
	}
	return probs
}

// FisherInformation computes I(theta) = alpha^2 * sum_j P*_j(1-P*_j), the
// single-item, single-trait diagonal information at theta (spec §4.1).
func FisherInformation(theta, alpha float64, beta [NumThresholds]float64) float64 {
	sum := 0.0
	for _, b := range beta {
		p := CumulativeProbability(theta, alpha, b)
		sum += p * (1.0 - p)
	}
	return alpha * alpha * sum
}

// Likelihood returns P(X=response | theta; alpha, beta) for response in 1..7.
func Likelihood(response int, theta, alpha float64, beta [NumThresholds]float64) float64 {
	probs := CategoryProbabilities(theta, alpha, beta)
	return probs[response-1]
}

// LogLikelihood returns log max(P(X=response), floorLikelihood), guarding
// against log(0) when a category mass underflows (spec §4.1).
func LogLikelihood(response int, theta, alpha float64, beta [NumThresholds]float64) float64 {
	lik := Likelihood(response, theta, alpha, beta)
	if lik < floorLikelihood {
		lik = floorLikelihood
	}
	return math.Log(lik)
}

// EffectiveResponse applies the reverse-keying transform exactly once: for
// a reverse-keyed item the effective response used in likelihood/posterior
// operations is 8-r. Applying this twice (e.g. once in the caller and once
// here) would silently cancel out and is the central correctness bug this
// function exists to prevent (spec §4.1).
func EffectiveResponse(response int, reverseKeyed bool) int {
	if reverseKeyed {
		return 8 - response
	}
	return response
}

// RawResponseFromSimulatedSample inverts EffectiveResponse for response
// simulation: the model samples a category in trait direction and, for a
// reverse-keyed item, the raw response returned to the respondent is
// 8-sample (spec §4.1, "for response simulation ... returned as 8-sample
// when reverse-keyed").
func RawResponseFromSimulatedSample(sample int, reverseKeyed bool) int {
	if reverseKeyed {
		return 8 - sample
	}
	return sample
}
