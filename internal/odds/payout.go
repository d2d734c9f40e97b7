package odds

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PayoutDecimal returns the profit on a winning stake at American odds.
// +150 on 100 → 150, -150 on 100 → 66.66..., 0 → 0
func PayoutDecimal(american int, stake decimal.Decimal) decimal.Decimal {
	switch {
	case american > 0:
		return stake.Mul(decimal.NewFromInt(int64(american))).Div(hundred)
	case american < 0:
		return stake.Mul(hundred).Div(decimal.NewFromInt(int64(-american)))
	default:
		return decimal.Zero
	}
}

// ToPayout is PayoutDecimal for float stakes
func ToPayout(american int, stake float64) float64 {
	payout, _ := PayoutDecimal(american, decimal.NewFromFloat(stake)).Float64()
	return payout
}

// ExpectedValue returns the expected profit of a stake given a win probability:
// EV = p × payout − (1 − p) × stake. Without a market the EV is 0.
func ExpectedValue(american int, stake decimal.Decimal, winProbability float64) decimal.Decimal {
	if american == 0 {
		return decimal.Zero
	}
	p := decimal.NewFromFloat(winProbability)
	win := p.Mul(PayoutDecimal(american, stake))
	lose := decimal.NewFromInt(1).Sub(p).Mul(stake)
	return win.Sub(lose)
}
