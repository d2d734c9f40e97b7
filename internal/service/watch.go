package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fairway-edge/internal/models"
)

// WeightsLoader re-reads the weight configuration
type WeightsLoader func() (models.WeightSet, error)

// WatchJob is the scheduled recompute. Each run picks up weight changes and
// then recomputes from the current cohort file.
type WatchJob struct {
	svc         *SimulationService
	loadWeights WeightsLoader
	logger      *logrus.Logger
}

// NewWatchJob creates a watch job. loadWeights may be nil to keep weights fixed.
func NewWatchJob(svc *SimulationService, loadWeights WeightsLoader, logger *logrus.Logger) *WatchJob {
	return &WatchJob{
		svc:         svc,
		loadWeights: loadWeights,
		logger:      logger,
	}
}

// Run executes one watch cycle
func (j *WatchJob) Run(ctx context.Context) error {
	if j.loadWeights != nil {
		weights, err := j.loadWeights()
		if err != nil {
			// A broken edit keeps the last good weights.
			j.logger.WithError(err).Warn("Failed to reload weights, keeping current configuration")
		} else if j.svc.UpdateWeights(weights, "config_reload") {
			j.logger.WithField("active_metrics", len(weights.Active())).Info("Weights reloaded")
		}
	}

	if _, err := j.svc.Recompute(ctx, TriggerSchedule); err != nil {
		return fmt.Errorf("scheduled recompute failed: %w", err)
	}
	return nil
}
