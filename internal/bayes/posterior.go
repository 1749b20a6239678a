package bayes

import (
	"math"

	"github.com/openassess/cat-engine/internal/apperr"
	"github.com/openassess/cat-engine/internal/config"
	"github.com/openassess/cat-engine/internal/irt"
	"github.com/openassess/cat-engine/internal/itembank"
	"gonum.org/v1/gonum/floats/integrate"
	"gonum.org/v1/gonum/stat/distuv"
)

// Response pairs an administered item with the raw response it received.
type Response struct {
	ItemID int
	Value  int
}

// TraitPosterior is one trait's Bayesian estimate: a log-domain running
// posterior over the theta grid, its normalized density, and the summary
// statistics derived from it. Update returns a new TraitPosterior rather
// than mutating the receiver; sessions hold these as values.
type TraitPosterior struct {
	grid []float64

	logDensity []float64 // shifted, unnormalized log posterior
	Density    []float64 // normalized density over grid, integrates to 1

	ThetaMean float64
	SE        float64

	TotalInformation float64
	ItemsUsed        []int
	Responses        []Response

	// FellBackToPrior is a diagnostic flag, not an error: the most recent
	// update's normalizing constant was non-positive and this trait's
	// posterior was reset to the prior (spec §4.3).
	FellBackToPrior bool
}

// NewTraitPosterior builds the initial posterior for a trait: the prior
// density evaluated over the grid, already normalized.
func NewTraitPosterior(cfg config.Config) TraitPosterior {
	grid := Grid(cfg)
	tp := TraitPosterior{grid: grid, logDensity: make([]float64, len(grid))}
	tp.resetToPrior(cfg)
	return tp
}

// ThetaGrid returns the grid this posterior is defined over.
func (tp TraitPosterior) ThetaGrid() []float64 {
	return tp.grid
}

// Update folds one more response to itemID into the posterior and returns
// the resulting TraitPosterior. The log-likelihood is added to the running
// log posterior (sequential multiplicative update in log domain), then the
// grid is renormalized by trapezoidal quadrature. A non-positive normalizer
// falls back to resetting the posterior to the prior rather than returning
// an error (spec §4.3).
func (tp TraitPosterior) Update(bank *itembank.Bank, cfg config.Config, itemID, response int) (TraitPosterior, error) {
	item, err := bank.Lookup(itemID)
	if err != nil {
		return TraitPosterior{}, err
	}
	if response < 1 || response > irt.NumCategories {
		return TraitPosterior{}, apperr.InvalidResponse(response)
	}

	next := tp.clone()
	for i, theta := range next.grid {
		next.logDensity[i] += irt.ItemLogLikelihood(item, response, theta)
	}
	next.ItemsUsed = append(append([]int(nil), tp.ItemsUsed...), itemID)
	next.Responses = append(append([]Response(nil), tp.Responses...), Response{ItemID: itemID, Value: response})

	if next.renormalize() {
		next.FellBackToPrior = false
	} else {
		next.resetToPrior(cfg)
		next.FellBackToPrior = true
	}

	next.TotalInformation = 0
	for _, id := range next.ItemsUsed {
		it, err := bank.Lookup(id)
		if err != nil {
			return TraitPosterior{}, err
		}
		next.TotalInformation += irt.ItemFisherInformation(it, next.ThetaMean)
	}

	return next, nil
}

func (tp TraitPosterior) clone() TraitPosterior {
	return TraitPosterior{
		grid:             tp.grid,
		logDensity:       append([]float64(nil), tp.logDensity...),
		ThetaMean:        tp.ThetaMean,
		SE:               tp.SE,
		TotalInformation: tp.TotalInformation,
		ItemsUsed:        tp.ItemsUsed,
		Responses:        tp.Responses,
		FellBackToPrior:  tp.FellBackToPrior,
	}
}

// resetToPrior overwrites logDensity with the prior and renormalizes,
// which by construction always yields a positive normalizer.
func (tp *TraitPosterior) resetToPrior(cfg config.Config) {
	prior := distuv.Normal{Mu: cfg.Prior.Mean, Sigma: cfg.Prior.SD}
	for i, theta := range tp.grid {
		tp.logDensity[i] = prior.LogProb(theta)
	}
	tp.renormalize()
}

// renormalize exponentiates the shifted log posterior, integrates it by
// the trapezoidal rule, and derives the EAP mean and SD. It reports
// whether the normalizing constant was positive.
func (tp *TraitPosterior) renormalize() bool {
	maxLog := math.Inf(-1)
	for _, v := range tp.logDensity {
		if v > maxLog {
			maxLog = v
		}
	}

	unnormalized := make([]float64, len(tp.grid))
	for i, v := range tp.logDensity {
		unnormalized[i] = math.Exp(v - maxLog)
	}

	normalizer := integrate.Trapezoidal(tp.grid, unnormalized)
	if normalizer <= 0 {
		return false
	}

	density := make([]float64, len(unnormalized))
	for i, v := range unnormalized {
		density[i] = v / normalizer
	}

	weighted := make([]float64, len(density))
	for i, theta := range tp.grid {
		weighted[i] = density[i] * theta
	}
	mean := integrate.Trapezoidal(tp.grid, weighted)

	sqDeviation := make([]float64, len(density))
	for i, theta := range tp.grid {
		d := theta - mean
		sqDeviation[i] = density[i] * d * d
	}
	variance := integrate.Trapezoidal(tp.grid, sqDeviation)
	if variance < 1e-10 {
		variance = 1e-10
	}

	tp.Density = density
	tp.ThetaMean = mean
	tp.SE = math.Sqrt(variance)
	return true
}
