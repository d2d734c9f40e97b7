package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/ranking"
)

func scenarioCohort() []*models.Player {
	return []*models.Player{
		{ID: "A", Name: "A", General: models.GeneralStats{StrokesGainedTotal: models.Float(2.0)}},
		{ID: "B", Name: "B", General: models.GeneralStats{StrokesGainedTotal: models.Float(1.0)}},
		{ID: "C", Name: "C", General: models.GeneralStats{StrokesGainedTotal: models.Float(0.0)}},
	}
}

var totalOnly = models.WeightSet{{Metric: models.MetricSGTotal, Weight: 100}}

func TestBaseScenario(t *testing.T) {
	cohort := scenarioCohort()
	table := ranking.Rank(cohort, []models.MetricID{models.MetricSGTotal})

	// normRank = rank/3*100, no market → base = 0.3*normRank + 70
	want := map[string]float64{"A": 80, "B": 90, "C": 100}
	for _, p := range cohort {
		assert.InDelta(t, want[p.ID], Base(p, totalOnly, table, len(cohort)), 1e-9, "player %s", p.ID)
		assert.InDelta(t, want[p.ID], Score(p, totalOnly, table, len(cohort), 0), 1e-9, "player %s", p.ID)
	}
}

func TestAverageStatsRankWeightsNeedNotSumTo100(t *testing.T) {
	cohort := []*models.Player{
		{ID: "A", General: models.GeneralStats{StrokesGainedTotal: models.Float(2), Putting: models.Float(-0.5)}},
		{ID: "B", General: models.GeneralStats{StrokesGainedTotal: models.Float(1), Putting: models.Float(0.1)}},
		{ID: "C", General: models.GeneralStats{StrokesGainedTotal: models.Float(0), Putting: models.Float(0.4)}},
	}
	weights := models.WeightSet{
		{Metric: models.MetricSGTotal, Weight: 50},
		{Metric: models.MetricSGPutting, Weight: 25},
	}
	table := ranking.Rank(cohort, []models.MetricID{models.MetricSGTotal, models.MetricSGPutting})

	avg, ok := AverageStatsRank(cohort[0], weights, table)
	require.True(t, ok)
	// A is 1st on Total, 3rd on Putting: (1*0.5 + 3*0.25) / 0.75
	assert.InDelta(t, 1.25/0.75, avg, 1e-9)

	// Scaling every weight by the same factor must not change the average.
	scaled := models.WeightSet{
		{Metric: models.MetricSGTotal, Weight: 100},
		{Metric: models.MetricSGPutting, Weight: 50},
	}
	avgScaled, ok := AverageStatsRank(cohort[0], scaled, table)
	require.True(t, ok)
	assert.InDelta(t, avg, avgScaled, 1e-9)
}

func TestAverageStatsRankSkipsUnrankedMetrics(t *testing.T) {
	cohort := scenarioCohort()
	weights := models.WeightSet{
		{Metric: models.MetricSGTotal, Weight: 60},
		{Metric: "Not A Metric", Weight: 40},
	}
	table := ranking.Rank(cohort, []models.MetricID{models.MetricSGTotal, "Not A Metric"})

	avg, ok := AverageStatsRank(cohort[1], weights, table)
	require.True(t, ok)
	assert.InDelta(t, 2.0, avg, 1e-9)
}

func TestAllZeroWeightsFallBackToMarketOnly(t *testing.T) {
	cohort := scenarioCohort()
	cohort[0].Odds = models.MoneyLineOf(150)
	weights := models.WeightSet{{Metric: models.MetricSGTotal, Weight: 0}}
	table := ranking.Rank(cohort, nil)

	_, ok := AverageStatsRank(cohort[0], weights, table)
	assert.False(t, ok)

	// (1 - 0.4) * 100 * 0.7
	assert.InDelta(t, 42.0, Base(cohort[0], weights, table, len(cohort)), 1e-9)
	// No market and no stats: worst possible market term.
	assert.InDelta(t, 70.0, Base(cohort[1], weights, table, len(cohort)), 1e-9)
}

func TestMarketDominatesBlend(t *testing.T) {
	// Best possible stats with no market still trail a heavy favorite with the worst stats.
	best := Blend(100.0/3, 0)
	favorite := Blend(100, impliedFromLine(-400))
	assert.Less(t, favorite, best)
}

func impliedFromLine(american int) float64 {
	p := &models.Player{Odds: models.MoneyLineOf(american)}
	return impliedOf(p)
}

func TestPerturbBounds(t *testing.T) {
	tests := []struct {
		name     string
		implied  float64
		maxSwing float64
	}{
		{"No market", 0, 0.35},
		{"Coin flip", 0.5, 0.225},
		{"Certain", 1, 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := 80.0
			assert.Equal(t, base, Perturb(base, tt.implied, 0))
			assert.InDelta(t, base*(1-tt.maxSwing), Perturb(base, tt.implied, -0.5), 1e-9)
			assert.InDelta(t, base*(1+tt.maxSwing), Perturb(base, tt.implied, 0.5), 1e-9)
		})
	}
}

func TestLowerConfidenceGetsMoreVariance(t *testing.T) {
	draw := 0.4
	longshot := math.Abs(Perturb(100, 0.02, draw) - 100)
	favorite := math.Abs(Perturb(100, 0.45, draw) - 100)
	assert.Greater(t, longshot, favorite)
}

func TestSinglePlayerFallback(t *testing.T) {
	p := &models.Player{
		ID:      "solo",
		Odds:    models.MoneyLineOf(-200),
		General: models.GeneralStats{StrokesGainedTotal: models.Float(1.5), Putting: models.Float(0.4)},
	}
	weights := models.WeightSet{
		{Metric: models.MetricSGTotal, Weight: 60},
		{Metric: models.MetricSGPutting, Weight: 40},
		{Metric: models.MetricScrambling, Weight: 10},
	}

	for _, size := range []int{0, 1} {
		score := Score(p, weights, nil, size, 0.49)
		require.False(t, math.IsNaN(score))
		require.False(t, math.IsInf(score, 0))
		// 1.5*0.6 + 0.4*0.4 + missing scrambling as 0
		assert.InDelta(t, 1.06, score, 1e-9)
	}
}

func TestSinglePlayerNoWeights(t *testing.T) {
	p := &models.Player{ID: "solo"}
	score := Score(p, nil, nil, 1, 0.3)
	assert.Equal(t, 0.0, score)
}

func TestNilPlayerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Base(nil, totalOnly, ranking.Table{}, 3)
		Score(nil, totalOnly, ranking.Table{}, 1, 0)
	})
}
