// Package bayes implements the grid-based Bayesian posterior updater: a
// discretized theta grid, sequential multiplicative log-domain updates and
// trapezoidal-rule quadrature for the posterior mean and standard error.
package bayes

import (
	"github.com/openassess/cat-engine/internal/config"
)

// Grid returns the G evenly spaced theta points in [cfg.Grid.Min,
// cfg.Grid.Max] used for numerical integration throughout this package.
func Grid(cfg config.Config) []float64 {
	g := cfg.Grid
	points := make([]float64, g.Points)
	if g.Points == 1 {
		points[0] = g.Min
		return points
	}
	step := (g.Max - g.Min) / float64(g.Points-1)
	for i := range points {
		points[i] = g.Min + step*float64(i)
	}
	return points
}
