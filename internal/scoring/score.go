// Package scoring blends a player's statistical rank with market odds into a
// single expected-quality score. Lower scores are better.
package scoring

import (
	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/odds"
	"github.com/yourusername/fairway-edge/internal/ranking"
	"github.com/yourusername/fairway-edge/internal/stats"
)

// Blend and variance constants. The market term dominates the statistical term.
const (
	StatsWeight    = 0.30
	MarketWeight   = 0.70
	BaseVariance   = 0.2
	MarketVariance = 0.5
)

// AverageStatsRank returns the weight-normalized average rank of a player over
// the active metrics. Metrics without a rank for the player are skipped.
// The second return is false when no active metric contributed.
func AverageStatsRank(p *models.Player, weights models.WeightSet, table ranking.Table) (float64, bool) {
	if p == nil {
		return 0, false
	}
	sum, fractions := 0.0, 0.0
	for _, w := range weights.Active() {
		rank, ok := table.Rank(p.ID, w.Metric)
		if !ok {
			continue
		}
		fraction := w.Weight / 100
		sum += float64(rank) * fraction
		fractions += fraction
	}
	if fractions == 0 {
		return 0, false
	}
	return sum / fractions, true
}

// NormalizedRank maps an average rank onto a 0–100 scale for the cohort size.
// With no contributing metrics the statistical term is 0, leaving the market
// term alone.
func NormalizedRank(p *models.Player, weights models.WeightSet, table ranking.Table, cohortSize int) float64 {
	avg, ok := AverageStatsRank(p, weights, table)
	if !ok || cohortSize <= 0 {
		return 0
	}
	return avg / float64(cohortSize) * 100
}

// Blend combines a normalized rank with a market implied probability
func Blend(normRank, impliedProbability float64) float64 {
	return normRank*StatsWeight + (1-impliedProbability)*100*MarketWeight
}

// Base returns the unperturbed composite score
func Base(p *models.Player, weights models.WeightSet, table ranking.Table, cohortSize int) float64 {
	return Blend(NormalizedRank(p, weights, table, cohortSize), impliedOf(p))
}

// Perturb scales a base score by a random draw in [-0.5, 0.5).
// Players the market is less sure about get wider swings.
func Perturb(base, impliedProbability, draw float64) float64 {
	component := draw * (BaseVariance + (1-impliedProbability)*MarketVariance)
	return base * (1 + component)
}

// WeightedSum is the single-player fallback: a weighted sum over raw metric
// values, with no rank normalization and no market blending. Missing values
// count as 0.
func WeightedSum(p *models.Player, weights models.WeightSet) float64 {
	sum := 0.0
	for _, w := range weights.Active() {
		sum += stats.ValueOf(p, w.Metric) * (w.Weight / 100)
	}
	return sum
}

// Score returns a player's perturbed composite score for one trial.
// Cohorts of one (or none) skip ranking and use WeightedSum.
func Score(p *models.Player, weights models.WeightSet, table ranking.Table, cohortSize int, draw float64) float64 {
	if cohortSize <= 1 {
		return WeightedSum(p, weights)
	}
	base := Base(p, weights, table, cohortSize)
	return Perturb(base, impliedOf(p), draw)
}

func impliedOf(p *models.Player) float64 {
	if p == nil {
		return 0
	}
	return odds.ImpliedProbabilityOf(p.Odds)
}
