// Package service orchestrates cohort loading, simulation runs and the
// published result snapshot.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fairway-edge/internal/cohort"
	"github.com/yourusername/fairway-edge/internal/logger"
	"github.com/yourusername/fairway-edge/internal/metrics"
	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/simulation"
)

// Recompute triggers
const (
	TriggerCLI      = "cli"
	TriggerSchedule = "schedule"
	TriggerStartup  = "startup"
)

// CohortSource supplies the cohort for a recompute
type CohortSource interface {
	Load(path string) (*cohort.File, bool, error)
}

// SimulationConfig holds the run parameters the service applies to every recompute
type SimulationConfig struct {
	CohortPath     string
	Trials         int
	MinEdgePercent float64
}

// SimulationService runs recomputes and publishes the latest result.
// Readers always see a complete snapshot; a recompute swaps it whole.
type SimulationService struct {
	engine      *simulation.Engine
	source      CohortSource
	cfg         SimulationConfig
	logger      *logrus.Logger
	simLogger   *logger.SimulationLogger
	auditLogger *logger.AuditLogger

	runMu sync.Mutex // serializes recomputes; the engine is single threaded

	mu      sync.RWMutex
	weights models.WeightSet
	latest  *simulation.Result
	event   string
}

// NewSimulationService creates a new simulation service
func NewSimulationService(
	engine *simulation.Engine,
	source CohortSource,
	weights models.WeightSet,
	cfg SimulationConfig,
	log *logrus.Logger,
) *SimulationService {
	return &SimulationService{
		engine:      engine,
		source:      source,
		cfg:         cfg,
		weights:     append(models.WeightSet(nil), weights...),
		logger:      log,
		simLogger:   logger.NewSimulationLogger(log),
		auditLogger: logger.NewAuditLogger(log),
	}
}

// Recompute loads the configured cohort and runs a fresh simulation
func (s *SimulationService) Recompute(ctx context.Context, trigger string) (*simulation.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, cached, err := s.source.Load(s.cfg.CohortPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load cohort: %w", err)
	}
	if !cached {
		s.auditLogger.LogCohortReloaded(s.cfg.CohortPath, len(file.Players))
	}

	result := s.run(file.Players, trigger)

	s.mu.Lock()
	s.latest = result
	s.event = file.Event
	s.mu.Unlock()

	return result, nil
}

// Simulate runs the engine over the given players with the current weights.
// The result is not published.
func (s *SimulationService) Simulate(players []*models.Player, trigger string) (*simulation.Result, error) {
	if err := cohort.Validate(players); err != nil {
		return nil, err
	}
	return s.run(players, trigger), nil
}

func (s *SimulationService) run(players []*models.Player, trigger string) *simulation.Result {
	weights := s.Weights()

	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.simLogger.LogRunStarted(trigger, len(players), len(weights.Active()), s.cfg.Trials)
	result := s.engine.Simulate(players, weights, s.cfg.Trials)

	runID := result.RunID.String()
	for _, id := range result.UnknownMetrics {
		s.simLogger.LogUnknownMetric(string(id), weights.Weight(id))
	}
	if result.Degenerate {
		s.simLogger.LogDegenerateCohort(runID, result.CohortSize)
	}

	valueBets := result.ValueBets(s.cfg.MinEdgePercent)
	for _, p := range valueBets {
		s.simLogger.LogEdgeDetected(runID, p.PlayerID, p.Name, p.Odds, p.WinPercentage, p.ImpliedProbability, p.Edge)
	}

	s.simLogger.LogRunCompleted(runID, trigger, result.CohortSize, result.Trials, result.TiedTrials, len(valueBets), result.Duration)
	recordRun(result, trigger, len(valueBets))

	return result
}

// Latest returns the most recent published result
func (s *SimulationService) Latest() (*simulation.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil, models.ErrNoSnapshot
	}
	return s.latest, nil
}

// Event returns the event name of the most recent published cohort
func (s *SimulationService) Event() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.event
}

// Weights returns a copy of the current weight configuration
func (s *SimulationService) Weights() models.WeightSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(models.WeightSet(nil), s.weights...)
}

// UpdateWeights replaces the weight configuration and audits every changed
// metric. It reports whether anything changed.
func (s *SimulationService) UpdateWeights(weights models.WeightSet, source string) bool {
	s.mu.Lock()
	old := s.weights
	if old.Equal(weights) {
		s.mu.Unlock()
		return false
	}
	s.weights = append(models.WeightSet(nil), weights...)
	s.mu.Unlock()

	for _, id := range changedMetrics(old, weights) {
		s.auditLogger.LogWeightChange(string(id), old.Weight(id), weights.Weight(id), source)
	}
	return true
}

// MinEdgePercent returns the configured value threshold
func (s *SimulationService) MinEdgePercent() float64 {
	return s.cfg.MinEdgePercent
}

// Check reports whether a snapshot has been published. It backs the
// readiness probe.
func (s *SimulationService) Check(ctx context.Context) error {
	_, err := s.Latest()
	return err
}

// changedMetrics lists metrics whose effective weight differs, in first-seen order
func changedMetrics(old, updated models.WeightSet) []models.MetricID {
	var ids []models.MetricID
	seen := make(map[models.MetricID]bool)
	for _, set := range []models.WeightSet{old, updated} {
		for _, w := range set {
			if seen[w.Metric] {
				continue
			}
			seen[w.Metric] = true
			if old.Weight(w.Metric) != updated.Weight(w.Metric) {
				ids = append(ids, w.Metric)
			}
		}
	}
	return ids
}

func recordRun(result *simulation.Result, trigger string, valueBets int) {
	metrics.RecordSimulationRun(metrics.RunSummary{
		Trigger:         trigger,
		DurationSeconds: result.Duration.Seconds(),
		Trials:          result.Trials,
		TiedTrials:      result.TiedTrials,
		CohortSize:      result.CohortSize,
		ActiveMetrics:   len(result.ActiveMetrics),
		ValueBets:       valueBets,
		CompletedUnix:   float64(result.CompletedAt.Unix()),
	})

	samples := make([]metrics.PlayerSample, 0, len(result.Players))
	for _, p := range result.Players {
		samples = append(samples, metrics.PlayerSample{
			ID:            p.PlayerID,
			Name:          p.Name,
			WinPercentage: p.WinPercentage,
			Edge:          p.Edge,
			HasMarket:     p.HasMarket,
		})
	}
	metrics.UpdatePlayerGauges(samples)
}
