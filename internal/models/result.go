package models

// PlayerResult is the per-player output of one simulation run.
type PlayerResult struct {
	PlayerID           string  `json:"player_id"`
	Name               string  `json:"name"`
	Odds               int     `json:"odds"`
	AverageFinish      float64 `json:"average_finish"`
	WinPercentage      float64 `json:"win_percentage"`
	Top10Percentage    float64 `json:"top10_percentage"`
	ImpliedProbability float64 `json:"implied_probability"`
	Edge               float64 `json:"edge"`
	HasMarket          bool    `json:"has_market"`
	FairOdds           int     `json:"fair_odds"`
	ExpectedValue      float64 `json:"expected_value"`
}

// ModelProbability returns the simulated win probability in [0, 1]
func (r PlayerResult) ModelProbability() float64 {
	return r.WinPercentage / 100
}
