// Package ranking ranks every player in a cohort on each active metric.
package ranking

import (
	"sort"

	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/stats"
)

// Table maps player id → metric → rank (1 = best)
type Table map[string]map[models.MetricID]int

// Rank returns the rank of a player on a metric, if one was assigned
func (t Table) Rank(playerID string, metric models.MetricID) (int, bool) {
	ranks, ok := t[playerID]
	if !ok {
		return 0, false
	}
	rank, ok := ranks[metric]
	return rank, ok
}

type entry struct {
	id      string
	value   float64
	present bool
}

// Rank builds a fresh rank table for the cohort.
//
// Each metric is ranked independently, 1..N with no duplicates. Players with a
// value come first, ordered by the metric's polarity; players without a value
// take the remaining worst ranks. Ties keep input order. Metrics outside the
// catalog are skipped, as are nil players.
func Rank(cohort []*models.Player, metrics []models.MetricID) Table {
	table := make(Table, len(cohort))
	for _, p := range cohort {
		if p != nil {
			table[p.ID] = make(map[models.MetricID]int, len(metrics))
		}
	}

	for _, metric := range metrics {
		if !stats.IsKnown(metric) {
			continue
		}
		for id, rank := range RankMetric(cohort, metric) {
			table[id][metric] = rank
		}
	}
	return table
}

// RankMetric ranks the cohort on a single metric
func RankMetric(cohort []*models.Player, metric models.MetricID) map[string]int {
	entries := make([]entry, 0, len(cohort))
	for _, p := range cohort {
		if p == nil {
			continue
		}
		v, ok := stats.Resolve(p, metric)
		entries = append(entries, entry{id: p.ID, value: v, present: ok})
	}

	lowerIsBetter := stats.PolarityOf(metric) == stats.LowerIsBetter
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.present != b.present {
			return a.present
		}
		if !a.present {
			return false
		}
		if lowerIsBetter {
			return a.value < b.value
		}
		return a.value > b.value
	})

	ranks := make(map[string]int, len(entries))
	for i, e := range entries {
		ranks[e.id] = i + 1
	}
	return ranks
}
