// Package odds converts American moneylines to probabilities and payouts and
// measures model edge against the market.
package odds

import "math"

// ToImpliedProbability converts American odds to implied probability
// +150 → 0.40, -150 → 0.60, 0 → 0 (no market)
func ToImpliedProbability(american int) float64 {
	switch {
	case american > 0:
		return 100.0 / (float64(american) + 100.0)
	case american < 0:
		abs := math.Abs(float64(american))
		return abs / (abs + 100.0)
	default:
		return 0
	}
}

// ImpliedProbabilityOf is ToImpliedProbability for an optional moneyline
func ImpliedProbabilityOf(american *int) float64 {
	if american == nil {
		return 0
	}
	return ToImpliedProbability(*american)
}

// ProbabilityToAmerican converts a probability to fair American odds.
// 0.40 → +150, 0.60 → -150. Probabilities outside (0, 1) return 0.
func ProbabilityToAmerican(probability float64) int {
	if probability <= 0 || probability >= 1 || math.IsNaN(probability) {
		return 0
	}
	if probability > 0.5 {
		return int(math.Round(-probability / (1 - probability) * 100))
	}
	return int(math.Round((1 - probability) / probability * 100))
}

// IsValidAmerican reports whether a moneyline is well formed. 0 means no
// market; anything else must be at least 100 in magnitude.
func IsValidAmerican(american int) bool {
	return american == 0 || american >= 100 || american <= -100
}
