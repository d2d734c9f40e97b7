// Package simulation runs repeated randomized trials over a cohort and
// aggregates finish position, win and top-10 frequencies per player.
//
// The engine is synchronous and performs no I/O. Each call to Simulate ranks
// the cohort from scratch and returns a fresh Result; inputs are never mutated.
package simulation

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/odds"
	"github.com/yourusername/fairway-edge/internal/ranking"
	"github.com/yourusername/fairway-edge/internal/scoring"
	"github.com/yourusername/fairway-edge/internal/stats"
)

// MaxTopN caps the top-N finish bucket
const MaxTopN = 10

// EngineConfig configures the trial runner
type EngineConfig struct {
	// Seed for the default source. 0 seeds from the clock.
	Seed int64
	// Source overrides Seed when set.
	Source DrawSource
	// Stake used for expected value. Defaults to 100.
	Stake decimal.Decimal
}

// Engine is the Monte Carlo trial runner. An Engine owns its draw source and
// is not safe for concurrent use.
type Engine struct {
	source DrawSource
	stake  decimal.Decimal
}

// NewEngine creates a trial runner
func NewEngine(cfg EngineConfig) *Engine {
	source := cfg.Source
	if source == nil {
		source = NewSeededSource(cfg.Seed)
	}
	stake := cfg.Stake
	if !stake.IsPositive() {
		stake = decimal.NewFromInt(100)
	}
	return &Engine{source: source, stake: stake}
}

type contender struct {
	player  *models.Player
	base    float64
	implied float64
}

// Simulate runs the given number of trials over the cohort and returns the
// per-player aggregates. Nil players are ignored. Trials <= 0 produce zeroed
// aggregates.
func (e *Engine) Simulate(cohort []*models.Player, weights models.WeightSet, trials int) *Result {
	start := time.Now()

	players := make([]*models.Player, 0, len(cohort))
	for _, p := range cohort {
		if p != nil {
			players = append(players, p)
		}
	}
	n := len(players)

	active, unknown := splitMetrics(weights)
	table := ranking.Rank(players, active)

	contenders := make([]contender, n)
	for i, p := range players {
		contenders[i] = contender{
			player:  p,
			base:    scoring.Base(p, weights, table, n),
			implied: odds.ImpliedProbabilityOf(p.Odds),
		}
	}

	topN := n
	if topN > MaxTopN {
		topN = MaxTopN
	}

	result := &Result{
		RunID:          uuid.New(),
		Trials:         max(trials, 0),
		CohortSize:     n,
		TopN:           topN,
		Degenerate:     n <= 1,
		ActiveMetrics:  active,
		UnknownMetrics: unknown,
	}

	wins := make([]int, n)
	topHits := make([]int, n)
	rankSums := make([]int, n)

	if n > 0 && trials > 0 {
		scores := make([]float64, n)
		order := make([]int, n)

		for t := 0; t < trials; t++ {
			for i, c := range contenders {
				draw := e.source.Draw()
				if n == 1 {
					scores[i] = scoring.WeightedSum(c.player, weights)
				} else {
					scores[i] = scoring.Perturb(c.base, c.implied, draw)
				}
				order[i] = i
			}

			sort.SliceStable(order, func(a, b int) bool {
				return scores[order[a]] < scores[order[b]]
			})

			if n == 1 || scores[order[0]] < scores[order[1]] {
				wins[order[0]]++
			} else {
				result.TiedTrials++
			}

			for pos, idx := range order {
				rank := pos + 1
				rankSums[idx] += rank
				if rank <= topN {
					topHits[idx]++
				}
			}
		}
	}

	result.Players = make([]models.PlayerResult, n)
	for i, c := range contenders {
		result.Players[i] = e.aggregate(c, trials, wins[i], topHits[i], rankSums[i])
	}

	result.CompletedAt = time.Now()
	result.Duration = time.Since(start)
	return result
}

func (e *Engine) aggregate(c contender, trials, wins, topHits, rankSum int) models.PlayerResult {
	res := models.PlayerResult{
		PlayerID:           c.player.ID,
		Name:               c.player.Name,
		Odds:               c.player.MoneyLine(),
		ImpliedProbability: c.implied,
		HasMarket:          c.player.HasMarket(),
	}
	if trials > 0 {
		res.AverageFinish = float64(rankSum) / float64(trials)
		res.WinPercentage = 100 * float64(wins) / float64(trials)
		res.Top10Percentage = 100 * float64(topHits) / float64(trials)
	}
	res.Edge = odds.Edge(res.WinPercentage, c.implied)
	res.FairOdds = odds.ProbabilityToAmerican(res.ModelProbability())
	if res.HasMarket {
		ev := odds.ExpectedValue(res.Odds, e.stake, res.ModelProbability())
		res.ExpectedValue = ev.Round(2).InexactFloat64()
	}
	return res
}

// splitMetrics separates the active metrics into ones the resolver knows and
// ones it does not.
func splitMetrics(weights models.WeightSet) (known, unknown []models.MetricID) {
	for _, w := range weights.Active() {
		if stats.IsKnown(w.Metric) {
			known = append(known, w.Metric)
		} else {
			unknown = append(unknown, w.Metric)
		}
	}
	return known, unknown
}
