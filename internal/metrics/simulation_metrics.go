package metrics

import "github.com/prometheus/client_golang/prometheus"

// Simulation counter vectors
var (
	SimulationRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulation_runs_total",
		Help:      "Total number of simulation runs by trigger",
	}, []string{"trigger"})
)

// Simulation gauge vectors
var (
	PlayerWinPercentage = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "player_win_percentage",
		Help:      "Simulated win percentage per player from the last run",
	}, []string{"player_id", "player_name"})

	PlayerEdge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "player_edge_points",
		Help:      "Model edge over the market in percentage points per player",
	}, []string{"player_id", "player_name"})

	ValueBets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "value_bets",
		Help:      "Players whose edge clears the configured minimum in the last run",
	})
)

// RunSummary carries what a finished run reports to Prometheus
type RunSummary struct {
	Trigger         string
	DurationSeconds float64
	Trials          int
	TiedTrials      int
	CohortSize      int
	ActiveMetrics   int
	ValueBets       int
	CompletedUnix   float64
}

// PlayerSample is one player's aggregate from a run
type PlayerSample struct {
	ID            string
	Name          string
	WinPercentage float64
	Edge          float64
	HasMarket     bool
}

// RecordSimulationRun records a completed simulation.
// trigger should be one of: "cli", "schedule", "startup"
func RecordSimulationRun(s RunSummary) {
	SimulationRunsTotal.WithLabelValues(s.Trigger).Inc()
	SimulationDuration.Observe(s.DurationSeconds)
	TrialsTotal.Add(float64(s.Trials))
	TiedTrialsTotal.Add(float64(s.TiedTrials))
	CohortSize.Set(float64(s.CohortSize))
	ActiveMetrics.Set(float64(s.ActiveMetrics))
	ValueBets.Set(float64(s.ValueBets))
	LastRunTimestamp.Set(s.CompletedUnix)
}

// UpdatePlayerGauges replaces the per-player gauges with the given samples.
// Players without a market get no edge series.
func UpdatePlayerGauges(samples []PlayerSample) {
	PlayerWinPercentage.Reset()
	PlayerEdge.Reset()
	for _, s := range samples {
		PlayerWinPercentage.WithLabelValues(s.ID, s.Name).Set(s.WinPercentage)
		if s.HasMarket {
			PlayerEdge.WithLabelValues(s.ID, s.Name).Set(s.Edge)
		}
	}
}
