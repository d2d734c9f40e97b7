package simulation

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/odds"
)

// Result is an immutable snapshot of one simulation run
type Result struct {
	RunID          uuid.UUID             `json:"run_id"`
	Trials         int                   `json:"trials"`
	CohortSize     int                   `json:"cohort_size"`
	TopN           int                   `json:"top_n"`
	TiedTrials     int                   `json:"tied_trials"`
	Degenerate     bool                  `json:"degenerate"`
	ActiveMetrics  []models.MetricID     `json:"active_metrics"`
	UnknownMetrics []models.MetricID     `json:"unknown_metrics,omitempty"`
	Players        []models.PlayerResult `json:"players"`
	CompletedAt    time.Time             `json:"completed_at"`
	Duration       time.Duration         `json:"duration"`
}

// ByPlayer looks up a player's aggregate by id
func (r *Result) ByPlayer(playerID string) (models.PlayerResult, bool) {
	for _, p := range r.Players {
		if p.PlayerID == playerID {
			return p, true
		}
	}
	return models.PlayerResult{}, false
}

// SumWinPercentage adds up win percentages across the cohort.
// Equals 100 minus the share of tied trials.
func (r *Result) SumWinPercentage() float64 {
	sum := 0.0
	for _, p := range r.Players {
		sum += p.WinPercentage
	}
	return sum
}

// RankedByWin returns the players ordered by win percentage, best first.
// Average finish breaks ties.
func (r *Result) RankedByWin() []models.PlayerResult {
	ranked := append([]models.PlayerResult(nil), r.Players...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].WinPercentage != ranked[j].WinPercentage {
			return ranked[i].WinPercentage > ranked[j].WinPercentage
		}
		return ranked[i].AverageFinish < ranked[j].AverageFinish
	})
	return ranked
}

// ValueBets returns players with a market whose edge clears minEdge, largest edge first
func (r *Result) ValueBets(minEdge float64) []models.PlayerResult {
	var bets []models.PlayerResult
	for _, p := range r.Players {
		if p.HasMarket && odds.IsValue(p.Edge, minEdge) {
			bets = append(bets, p)
		}
	}
	sort.SliceStable(bets, func(i, j int) bool {
		return bets[i].Edge > bets[j].Edge
	})
	return bets
}
