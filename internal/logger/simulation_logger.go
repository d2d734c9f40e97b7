package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// SimulationLogger provides dedicated logging for simulation runs.
type SimulationLogger struct {
	*logrus.Entry
}

// NewSimulationLogger creates a new simulation logger.
func NewSimulationLogger(baseLogger *logrus.Logger) *SimulationLogger {
	return &SimulationLogger{
		Entry: baseLogger.WithField("component", "simulation"),
	}
}

// LogRunStarted logs the start of a recompute.
func (sl *SimulationLogger) LogRunStarted(trigger string, cohortSize, activeMetrics, trials int) {
	sl.WithFields(logrus.Fields{
		"trigger":        trigger,
		"cohort_size":    cohortSize,
		"active_metrics": activeMetrics,
		"trials":         trials,
	}).Debug("Simulation started")
}

// LogRunCompleted logs a finished recompute.
func (sl *SimulationLogger) LogRunCompleted(runID, trigger string, cohortSize, trials, tiedTrials, valueBets int, duration time.Duration) {
	sl.WithFields(logrus.Fields{
		"run_id":      runID,
		"trigger":     trigger,
		"cohort_size": cohortSize,
		"trials":      trials,
		"tied_trials": tiedTrials,
		"value_bets":  valueBets,
		"duration_ms": float64(duration.Microseconds()) / 1000,
	}).Info("Simulation completed")
}

// LogDegenerateCohort warns when the cohort is too small to rank.
func (sl *SimulationLogger) LogDegenerateCohort(runID string, cohortSize int) {
	sl.WithFields(logrus.Fields{
		"run_id":      runID,
		"cohort_size": cohortSize,
	}).Warn("Cohort too small to rank, using weighted sum fallback")
}

// LogUnknownMetric warns about a weighted metric the resolver does not know.
func (sl *SimulationLogger) LogUnknownMetric(metric string, weight float64) {
	sl.WithFields(logrus.Fields{
		"metric": metric,
		"weight": weight,
	}).Warn("Ignoring unknown metric")
}

// LogEdgeDetected logs a player whose edge clears the configured minimum.
func (sl *SimulationLogger) LogEdgeDetected(runID, playerID, playerName string, odds int, winPercentage, impliedProbability, edge float64) {
	sl.WithFields(logrus.Fields{
		"run_id":              runID,
		"player_id":           playerID,
		"player_name":         playerName,
		"odds":                odds,
		"win_percentage":      winPercentage,
		"implied_probability": impliedProbability,
		"edge":                edge,
	}).Info("Value edge detected")
}
