package simulate

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/montanaflynn/stats"
	"github.com/openassess/cat-engine/internal/config"
	"github.com/openassess/cat-engine/internal/itembank"
	"github.com/openassess/cat-engine/internal/scoring"
)

// BatchOptions configures a Monte-Carlo run.
type BatchOptions struct {
	Participants int
	// Concurrency bounds how many participants simulate at once. Zero
	// means unbounded (errgroup.SetLimit is not called).
	Concurrency int
	// Seed is the base RNG seed; participant i uses Seed+i so a run is
	// fully reproducible without any participant sharing a source.
	Seed int64
}

// RunBatch simulates opts.Participants virtual participants concurrently.
// Each participant is independent and touches no shared mutable state, so
// the batch runs as a bounded worker pool via errgroup (spec §5, "sessions
// are independent; parallelism requires no shared mutable state").
func RunBatch(bank *itembank.Bank, cfg config.Config, opts BatchOptions) ([]ParticipantResult, error) {
	results := make([]ParticipantResult, opts.Participants)

	g, _ := errgroup.WithContext(context.Background())
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i := 0; i < opts.Participants; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(opts.Seed + int64(i)))
			results[i] = SimulateParticipant(bank, cfg, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TraitRecovery summarizes how well one condition recovered true theta for
// a single trait across a batch.
type TraitRecovery struct {
	Trait         itembank.Trait
	PearsonR      float64
	MeanItemsUsed float64
}

// AdaptiveRecovery reports, per trait, the correlation between adaptive
// theta estimates and true theta, and the mean number of items the
// adaptive controller used (spec §8 S5).
func AdaptiveRecovery(results []ParticipantResult) (map[itembank.Trait]TraitRecovery, error) {
	return recovery(results, func(r ParticipantResult) map[itembank.Trait]float64 { return r.AdaptiveTheta },
		func(r ParticipantResult) map[itembank.Trait]int { return r.AdaptiveItemsUsed })
}

// ClassicalRecovery reports, per trait, the correlation between classical
// scores (theta-scale) and true theta.
func ClassicalRecovery(results []ParticipantResult) (map[itembank.Trait]TraitRecovery, error) {
	return recovery(results, func(r ParticipantResult) map[itembank.Trait]float64 { return r.ClassicalTheta }, nil)
}

func recovery(
	results []ParticipantResult,
	estimateOf func(ParticipantResult) map[itembank.Trait]float64,
	itemsOf func(ParticipantResult) map[itembank.Trait]int,
) (map[itembank.Trait]TraitRecovery, error) {
	out := make(map[itembank.Trait]TraitRecovery, len(itembank.CanonicalOrder))

	for _, trait := range itembank.CanonicalOrder {
		truth := make([]float64, 0, len(results))
		estimate := make([]float64, 0, len(results))
		itemCounts := make([]float64, 0, len(results))

		for _, r := range results {
			truth = append(truth, r.TrueTheta[trait])
			estimate = append(estimate, estimateOf(r)[trait])
			if itemsOf != nil {
				itemCounts = append(itemCounts, float64(itemsOf(r)[trait]))
			}
		}

		r := scoring.PearsonR(truth, estimate)

		meanItems := 0.0
		if len(itemCounts) > 0 {
			m, err := stats.Mean(itemCounts)
			if err != nil {
				return nil, err
			}
			meanItems = m
		}

		out[trait] = TraitRecovery{Trait: trait, PearsonR: r, MeanItemsUsed: meanItems}
	}
	return out, nil
}

// ItemReductionRate is the fraction of the full 24-item inventory the
// adaptive condition skipped on average across the batch.
func ItemReductionRate(results []ParticipantResult) (float64, error) {
	if len(results) == 0 {
		return 0, nil
	}
	counts := make([]float64, len(results))
	for i, r := range results {
		counts[i] = float64(r.ItemsAdministered)
	}
	mean, err := stats.Mean(counts)
	if err != nil {
		return 0, err
	}
	return 1 - mean/float64(len(itembank.CanonicalOrder)*4), nil
}
