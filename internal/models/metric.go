package models

// MetricID identifies a single performance metric a player can be ranked on.
type MetricID string

// General strokes-gained and ball-striking metrics
const (
	MetricSGTotal            MetricID = "Total"
	MetricSGTeeToGreen       MetricID = "Tee to Green"
	MetricSGOffTheTee        MetricID = "Off the Tee"
	MetricSGApproach         MetricID = "Approach"
	MetricSGAroundTheGreen   MetricID = "Around the Green"
	MetricSGPutting          MetricID = "Putting"
	MetricDrivingDistance    MetricID = "Driving Distance"
	MetricDrivingAccuracy    MetricID = "Driving Accuracy"
	MetricGreensInRegulation MetricID = "Greens in Regulation"
	MetricScrambling         MetricID = "Scrambling"
)

// Approach proximity by distance band, in feet to the hole
const (
	MetricProximity75To100  MetricID = "Proximity 75-100"
	MetricProximity100To125 MetricID = "Proximity 100-125"
	MetricProximity125To150 MetricID = "Proximity 125-150"
	MetricProximity150To175 MetricID = "Proximity 150-175"
	MetricProximity175To200 MetricID = "Proximity 175-200"
	MetricProximityOver200  MetricID = "Proximity 200+"
)

// Scoring-pattern metrics
const (
	MetricBirdieOrBetterPct   MetricID = "Birdie or Better %"
	MetricBirdieConversionPct MetricID = "Birdie Conversion %"
	MetricBogeyAvoidance      MetricID = "Bogey Avoidance"
	MetricPar3ScoringAvg      MetricID = "Par 3 Scoring Avg"
	MetricPar4ScoringAvg      MetricID = "Par 4 Scoring Avg"
	MetricPar5ScoringAvg      MetricID = "Par 5 Scoring Avg"
	MetricScoringAverage      MetricID = "Scoring Average"
	MetricBounceBackPct       MetricID = "Bounce Back %"
	MetricSandSavePct         MetricID = "Sand Save %"
	MetricThreePuttAvoidance  MetricID = "Three Putt Avoidance"
	MetricParBreakersPct      MetricID = "Par Breakers %"
	MetricHolesPerEagle       MetricID = "Holes per Eagle"
)

// AllMetrics lists every metric identifier in catalog order.
var AllMetrics = []MetricID{
	MetricSGTotal,
	MetricSGTeeToGreen,
	MetricSGOffTheTee,
	MetricSGApproach,
	MetricSGAroundTheGreen,
	MetricSGPutting,
	MetricDrivingDistance,
	MetricDrivingAccuracy,
	MetricGreensInRegulation,
	MetricScrambling,
	MetricProximity75To100,
	MetricProximity100To125,
	MetricProximity125To150,
	MetricProximity150To175,
	MetricProximity175To200,
	MetricProximityOver200,
	MetricBirdieOrBetterPct,
	MetricBirdieConversionPct,
	MetricBogeyAvoidance,
	MetricPar3ScoringAvg,
	MetricPar4ScoringAvg,
	MetricPar5ScoringAvg,
	MetricScoringAverage,
	MetricBounceBackPct,
	MetricSandSavePct,
	MetricThreePuttAvoidance,
	MetricParBreakersPct,
	MetricHolesPerEagle,
}
