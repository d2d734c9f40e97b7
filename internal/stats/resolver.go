// Package stats resolves named performance metrics against player records.
package stats

import (
	"math"

	"github.com/yourusername/fairway-edge/internal/models"
)

// Polarity tells the ranker which direction is better for a metric
type Polarity int

const (
	HigherIsBetter Polarity = iota
	LowerIsBetter
)

// String implements fmt.Stringer
func (p Polarity) String() string {
	if p == LowerIsBetter {
		return "lower"
	}
	return "higher"
}

// Family groups metrics by the statistic block they are read from
type Family string

const (
	FamilyGeneral   Family = "general"
	FamilyProximity Family = "proximity"
	FamilyScoring   Family = "scoring"
)

type definition struct {
	family   Family
	polarity Polarity
	extract  func(p *models.Player) *float64
}

var registry = map[models.MetricID]definition{
	models.MetricSGTotal:            general(func(p *models.Player) *float64 { return p.General.StrokesGainedTotal }),
	models.MetricSGTeeToGreen:       general(func(p *models.Player) *float64 { return p.General.TeeToGreen }),
	models.MetricSGOffTheTee:        general(func(p *models.Player) *float64 { return p.General.OffTheTee }),
	models.MetricSGApproach:         general(func(p *models.Player) *float64 { return p.General.Approach }),
	models.MetricSGAroundTheGreen:   general(func(p *models.Player) *float64 { return p.General.AroundTheGreen }),
	models.MetricSGPutting:          general(func(p *models.Player) *float64 { return p.General.Putting }),
	models.MetricDrivingDistance:    general(func(p *models.Player) *float64 { return p.General.DrivingDistance }),
	models.MetricDrivingAccuracy:    general(func(p *models.Player) *float64 { return p.General.DrivingAccuracy }),
	models.MetricGreensInRegulation: general(func(p *models.Player) *float64 { return p.General.GreensInRegulation }),
	models.MetricScrambling:         general(func(p *models.Player) *float64 { return p.General.Scrambling }),

	models.MetricProximity75To100:  proximity(func(p *models.Player) *float64 { return p.Proximity.Yards75To100 }),
	models.MetricProximity100To125: proximity(func(p *models.Player) *float64 { return p.Proximity.Yards100To125 }),
	models.MetricProximity125To150: proximity(func(p *models.Player) *float64 { return p.Proximity.Yards125To150 }),
	models.MetricProximity150To175: proximity(func(p *models.Player) *float64 { return p.Proximity.Yards150To175 }),
	models.MetricProximity175To200: proximity(func(p *models.Player) *float64 { return p.Proximity.Yards175To200 }),
	models.MetricProximityOver200:  proximity(func(p *models.Player) *float64 { return p.Proximity.YardsOver200 }),

	models.MetricBirdieOrBetterPct:   scoring(HigherIsBetter, func(p *models.Player) *float64 { return p.Scoring.BirdieOrBetterPct }),
	models.MetricBirdieConversionPct: scoring(HigherIsBetter, func(p *models.Player) *float64 { return p.Scoring.BirdieConversionPct }),
	models.MetricBogeyAvoidance:      scoring(LowerIsBetter, func(p *models.Player) *float64 { return p.Scoring.BogeyAvoidance }),
	models.MetricPar3ScoringAvg:      scoring(LowerIsBetter, func(p *models.Player) *float64 { return p.Scoring.Par3ScoringAvg }),
	models.MetricPar4ScoringAvg:      scoring(LowerIsBetter, func(p *models.Player) *float64 { return p.Scoring.Par4ScoringAvg }),
	models.MetricPar5ScoringAvg:      scoring(LowerIsBetter, func(p *models.Player) *float64 { return p.Scoring.Par5ScoringAvg }),
	models.MetricScoringAverage:      scoring(LowerIsBetter, func(p *models.Player) *float64 { return p.Scoring.ScoringAverage }),
	models.MetricBounceBackPct:       scoring(HigherIsBetter, func(p *models.Player) *float64 { return p.Scoring.BounceBackPct }),
	models.MetricSandSavePct:         scoring(HigherIsBetter, func(p *models.Player) *float64 { return p.Scoring.SandSavePct }),
	models.MetricThreePuttAvoidance:  scoring(LowerIsBetter, func(p *models.Player) *float64 { return p.Scoring.ThreePuttAvoidance }),
	models.MetricParBreakersPct:      scoring(HigherIsBetter, func(p *models.Player) *float64 { return p.Scoring.ParBreakersPct }),
	models.MetricHolesPerEagle:       scoring(LowerIsBetter, func(p *models.Player) *float64 { return p.Scoring.HolesPerEagle }),
}

func general(extract func(p *models.Player) *float64) definition {
	return definition{family: FamilyGeneral, polarity: HigherIsBetter, extract: extract}
}

// proximity bands are measured in feet from the hole, so closer wins
func proximity(extract func(p *models.Player) *float64) definition {
	return definition{family: FamilyProximity, polarity: LowerIsBetter, extract: extract}
}

func scoring(polarity Polarity, extract func(p *models.Player) *float64) definition {
	return definition{family: FamilyScoring, polarity: polarity, extract: extract}
}

// Resolve returns the metric value for a player and whether it is present.
// Unknown metrics, nil players, missing values and non-finite values all
// report false.
func Resolve(p *models.Player, id models.MetricID) (float64, bool) {
	if p == nil {
		return 0, false
	}
	def, ok := registry[id]
	if !ok {
		return 0, false
	}
	v := def.extract(p)
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

// ValueOf returns the metric value, or 0 when it cannot be resolved.
// A 0 here means "no information", not a measured zero.
func ValueOf(p *models.Player, id models.MetricID) float64 {
	v, _ := Resolve(p, id)
	return v
}

// IsKnown reports whether the identifier is part of the metric catalog
func IsKnown(id models.MetricID) bool {
	_, ok := registry[id]
	return ok
}

// PolarityOf returns the ranking direction. Unknown metrics default to higher-is-better.
func PolarityOf(id models.MetricID) Polarity {
	return registry[id].polarity
}

// FamilyOf returns the family of a known metric
func FamilyOf(id models.MetricID) (Family, bool) {
	def, ok := registry[id]
	return def.family, ok
}

// Describe lists every catalog metric with its family and polarity
func Describe() []Descriptor {
	out := make([]Descriptor, 0, len(models.AllMetrics))
	for _, id := range models.AllMetrics {
		def := registry[id]
		out = append(out, Descriptor{ID: id, Family: def.family, Polarity: def.polarity})
	}
	return out
}

// Descriptor is a read-only view of a catalog entry
type Descriptor struct {
	ID       models.MetricID
	Family   Family
	Polarity Polarity
}
