package models

import (
	"github.com/google/uuid"
)

// GeneralStats holds strokes-gained and ball-striking numbers
type GeneralStats struct {
	StrokesGainedTotal *float64 `json:"sg_total"`
	TeeToGreen         *float64 `json:"sg_tee_to_green"`
	OffTheTee          *float64 `json:"sg_off_the_tee"`
	Approach           *float64 `json:"sg_approach"`
	AroundTheGreen     *float64 `json:"sg_around_the_green"`
	Putting            *float64 `json:"sg_putting"`
	DrivingDistance    *float64 `json:"driving_distance"`
	DrivingAccuracy    *float64 `json:"driving_accuracy"`
	GreensInRegulation *float64 `json:"greens_in_regulation"`
	Scrambling         *float64 `json:"scrambling"`
}

// ProximityStats holds average proximity to the hole (feet) per approach distance band (yards)
type ProximityStats struct {
	Yards75To100  *float64 `json:"75_100"`
	Yards100To125 *float64 `json:"100_125"`
	Yards125To150 *float64 `json:"125_150"`
	Yards150To175 *float64 `json:"150_175"`
	Yards175To200 *float64 `json:"175_200"`
	YardsOver200  *float64 `json:"200_plus"`
}

// ScoringStats holds scoring-pattern numbers
type ScoringStats struct {
	BirdieOrBetterPct   *float64 `json:"birdie_or_better_pct"`
	BirdieConversionPct *float64 `json:"birdie_conversion_pct"`
	BogeyAvoidance      *float64 `json:"bogey_avoidance"`
	Par3ScoringAvg      *float64 `json:"par3_scoring_avg"`
	Par4ScoringAvg      *float64 `json:"par4_scoring_avg"`
	Par5ScoringAvg      *float64 `json:"par5_scoring_avg"`
	ScoringAverage      *float64 `json:"scoring_average"`
	BounceBackPct       *float64 `json:"bounce_back_pct"`
	SandSavePct         *float64 `json:"sand_save_pct"`
	ThreePuttAvoidance  *float64 `json:"three_putt_avoidance"`
	ParBreakersPct      *float64 `json:"par_breakers_pct"`
	HolesPerEagle       *float64 `json:"holes_per_eagle"`
}

// Player represents one competitor in an event cohort.
// A nil metric pointer means the statistic is not available.
type Player struct {
	ID        string         `json:"id" validate:"required"`
	Name      string         `json:"name" validate:"required"`
	General   GeneralStats   `json:"general"`
	Proximity ProximityStats `json:"proximity"`
	Scoring   ScoringStats   `json:"scoring"`
	Odds      *int           `json:"odds,omitempty" validate:"omitempty,moneyline"` // American moneyline
}

// MoneyLine returns the American odds or 0 if no market is available
func (p *Player) MoneyLine() int {
	if p == nil || p.Odds == nil {
		return 0
	}
	return *p.Odds
}

// HasMarket reports whether the player carries a usable moneyline
func (p *Player) HasMarket() bool {
	return p.MoneyLine() != 0
}

// StablePlayerID derives a deterministic identifier from a display name.
func StablePlayerID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// Float returns a pointer to v. Handy for building players in code.
func Float(v float64) *float64 {
	return &v
}

// MoneyLineOf returns a pointer to an American odds value.
func MoneyLineOf(v int) *int {
	return &v
}
