package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/openassess/cat-engine/internal/adaptive"
	"github.com/openassess/cat-engine/internal/applog"
	"github.com/openassess/cat-engine/internal/config"
	"github.com/openassess/cat-engine/internal/irt"
	"github.com/openassess/cat-engine/internal/itembank"
	"github.com/openassess/cat-engine/internal/simulate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "catsim",
		Short: "Reference driver for the adaptive personality-measurement engine",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newMonteCarloCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var trueThetaFlag float64
	var seed int64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive one simulated adaptive session end to end and print its final estimates (per-item trajectory at LOG_LEVEL=DEBUG)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(seed, trueThetaFlag)
		},
	}

	cmd.Flags().Float64Var(&trueThetaFlag, "theta", 0.0, "true theta applied to every trait for the simulated respondent")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for response simulation")

	return cmd
}

func newMonteCarloCmd() *cobra.Command {
	var participants int
	var concurrency int
	var seed int64

	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Run the batch recovery validation across simulated participants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonteCarlo(participants, concurrency, seed)
		},
	}

	cmd.Flags().IntVar(&participants, "participants", 1000, "number of virtual participants to simulate")
	cmd.Flags().IntVar(&concurrency, "concurrency", 8, "maximum participants simulated concurrently")
	cmd.Flags().Int64Var(&seed, "seed", 42, "base random seed")

	return cmd
}

func runSession(seed int64, trueTheta float64) error {
	logger := applog.FromEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bank := itembank.New()

	state := adaptive.NewSession(cfg, adaptive.RoundRobin)
	logger.Info("session %s started", state.SessionID)

	rng := rand.New(rand.NewSource(seed))
	for {
		action, next := adaptive.NextAction(state, bank)
		present, ok := action.(adaptive.PresentItem)
		if !ok {
			complete := action.(adaptive.Complete)
			logger.Info("session complete after %d items (reduction rate %.1f%%)", complete.TotalItems, complete.ItemReductionRate*100)
			for _, est := range complete.Estimates {
				logger.Info("%-18s theta=%.3f se=%.3f likert=%.2f items=%d",
					est.Trait, est.Theta, est.SE, est.Likert, est.ItemsAdministered)
			}
			return nil
		}

		item, err := bank.Lookup(present.ItemID)
		if err != nil {
			return err
		}
		response := irt.SimulateResponse(item, trueTheta, rng)
		logger.Debug("item %2d [%-18s] alpha=%.2f -> response %d", present.ItemID, present.Trait, item.Alpha, response)

		state, err = adaptive.ProcessResponse(next, bank, cfg, present.ItemID, response)
		if err != nil {
			return err
		}
	}
}

func runMonteCarlo(participants, concurrency int, seed int64) error {
	logger := applog.FromEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bank := itembank.New()

	results, err := simulate.RunBatch(bank, cfg, simulate.BatchOptions{
		Participants: participants,
		Concurrency:  concurrency,
		Seed:         seed,
	})
	if err != nil {
		return err
	}

	recovery, err := simulate.AdaptiveRecovery(results)
	if err != nil {
		return err
	}
	rate, err := simulate.ItemReductionRate(results)
	if err != nil {
		return err
	}

	logger.Info("simulated %d participants", len(results))
	for _, trait := range itembank.CanonicalOrder {
		r := recovery[trait]
		logger.Info("%-18s r=%.3f mean_items=%.2f", trait, r.PearsonR, r.MeanItemsUsed)
	}
	logger.Info("item reduction rate: %.1f%%", rate*100)

	return nil
}
