package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/fairway-edge/internal/cohort"
	"github.com/yourusername/fairway-edge/internal/config"
	"github.com/yourusername/fairway-edge/internal/health"
	"github.com/yourusername/fairway-edge/internal/metrics"
	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/scheduler"
	"github.com/yourusername/fairway-edge/internal/service"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute on a schedule and serve results, health and metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateConfig(); err != nil {
			return err
		}
		return runWatch()
	},
}

func runWatch() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.InitRegistry()

	svc := service.NewSimulationService(
		newEngine(),
		cohort.NewCachedLoader(cfg.Watch.CacheTTL()),
		cfg.Weights,
		service.SimulationConfig{
			CohortPath:     cfg.Simulation.CohortPath,
			Trials:         cfg.Simulation.Trials,
			MinEdgePercent: cfg.Simulation.MinEdgePercent,
		},
		appLog,
	)

	handlers := map[string]http.Handler{
		"/results": resultsHandler(svc),
	}
	if cfg.Metrics.Enabled {
		handlers[cfg.Metrics.Path] = metrics.Handler()
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: "edge-sim",
		Version:     Version,
		Commit:      GitCommit,
		Port:        strconv.Itoa(cfg.Watch.HealthPort),
		Logger:      appLog,
		Checks:      map[string]health.Checker{"snapshot": svc},
		Handlers:    handlers,
	})
	if err := healthServer.Start(ctx); err != nil {
		return err
	}

	job := service.NewWatchJob(svc, reloadWeights, appLog)

	sched := scheduler.NewScheduler(appLog, time.Minute)
	if _, err := sched.ScheduleRecompute(cfg.Watch.Schedule, "recompute", job.Run); err != nil {
		return err
	}

	if cfg.Watch.RecomputeOnStart {
		if _, err := svc.Recompute(ctx, service.TriggerStartup); err != nil {
			appLog.WithError(err).Error("Initial recompute failed")
		}
	}

	if err := sched.Start(); err != nil {
		return err
	}
	healthServer.SetReady(true)

	appLog.WithFields(logrus.Fields{
		"schedule": cfg.Watch.Schedule,
		"next_run": sched.GetNextRun(),
		"cohort":   cfg.Simulation.CohortPath,
	}).Info("Watching cohort")

	<-ctx.Done()
	appLog.Info("Shutdown signal received")

	healthServer.SetReady(false)
	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Failed to stop scheduler")
	}
	return healthServer.Shutdown()
}

// reloadWeights re-reads the weight section of the config file. Invalid edits
// are rejected so the running weights stay in effect.
func reloadWeights() (models.WeightSet, error) {
	fresh, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(fresh); err != nil {
		return nil, err
	}
	return fresh.Weights, nil
}

func resultsHandler(svc *service.SimulationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Latest()
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		body := struct {
			Event     string      `json:"event,omitempty"`
			ValueBets interface{} `json:"value_bets"`
			Result    interface{} `json:"result"`
		}{
			Event:     svc.Event(),
			ValueBets: result.ValueBets(svc.MinEdgePercent()),
			Result:    result,
		}
		json.NewEncoder(w).Encode(body)
	})
}
