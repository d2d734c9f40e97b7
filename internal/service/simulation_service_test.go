package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fairway-edge/internal/cohort"
	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/simulation"
)

type stubSource struct {
	mu    sync.Mutex
	file  *cohort.File
	err   error
	calls int
}

func (s *stubSource) Load(path string) (*cohort.File, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, false, s.err
	}
	return s.file, s.calls > 1, nil
}

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func findEntries(entries []map[string]interface{}, msg string) []map[string]interface{} {
	var found []map[string]interface{}
	for _, e := range entries {
		if e["msg"] == msg {
			found = append(found, e)
		}
	}
	return found
}

func scenarioFile() *cohort.File {
	return &cohort.File{
		Event: "Test Open",
		Players: []*models.Player{
			{ID: "A", Name: "A", Odds: models.MoneyLineOf(150), General: models.GeneralStats{StrokesGainedTotal: models.Float(2.0)}},
			{ID: "B", Name: "B", Odds: models.MoneyLineOf(300), General: models.GeneralStats{StrokesGainedTotal: models.Float(1.0)}},
			{ID: "C", Name: "C", General: models.GeneralStats{StrokesGainedTotal: models.Float(0.0)}},
		},
	}
}

func newTestService(source CohortSource, weights models.WeightSet) (*SimulationService, *bytes.Buffer) {
	log, buf := testLogger()
	engine := simulation.NewEngine(simulation.EngineConfig{Source: simulation.NoVariance})
	svc := NewSimulationService(engine, source, weights, SimulationConfig{
		CohortPath:     "cohort.json",
		Trials:         200,
		MinEdgePercent: 5,
	}, log)
	return svc, buf
}

var totalOnly = models.WeightSet{{Metric: models.MetricSGTotal, Weight: 100}}

func TestLatestBeforeRecompute(t *testing.T) {
	svc, _ := newTestService(&stubSource{file: scenarioFile()}, totalOnly)

	_, err := svc.Latest()
	assert.ErrorIs(t, err, models.ErrNoSnapshot)
	assert.ErrorIs(t, svc.Check(context.Background()), models.ErrNoSnapshot)
}

func TestRecomputePublishesSnapshot(t *testing.T) {
	svc, buf := newTestService(&stubSource{file: scenarioFile()}, totalOnly)

	result, err := svc.Recompute(context.Background(), TriggerCLI)
	require.NoError(t, err)

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Same(t, result, latest)
	assert.Equal(t, "Test Open", svc.Event())
	assert.NoError(t, svc.Check(context.Background()))

	a, ok := latest.ByPlayer("A")
	require.True(t, ok)
	assert.Equal(t, 100.0, a.WinPercentage)

	entries := logEntries(t, buf)
	require.Len(t, findEntries(entries, "Simulation completed"), 1)
	require.Len(t, findEntries(entries, "Cohort reloaded"), 1)

	edges := findEntries(entries, "Value edge detected")
	require.Len(t, edges, 1)
	assert.Equal(t, "A", edges[0]["player_id"])
}

func TestRecomputeKeepsPreviousSnapshotOnError(t *testing.T) {
	source := &stubSource{file: scenarioFile()}
	svc, _ := newTestService(source, totalOnly)

	first, err := svc.Recompute(context.Background(), TriggerStartup)
	require.NoError(t, err)

	source.err = errors.New("disk gone")
	_, err = svc.Recompute(context.Background(), TriggerSchedule)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Same(t, first, latest)
}

func TestRecomputeHonorsCancelledContext(t *testing.T) {
	source := &stubSource{file: scenarioFile()}
	svc, _ := newTestService(source, totalOnly)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Recompute(ctx, TriggerCLI)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, source.calls)
}

func TestSimulateDoesNotPublish(t *testing.T) {
	svc, _ := newTestService(&stubSource{}, totalOnly)

	result, err := svc.Simulate(scenarioFile().Players, TriggerCLI)
	require.NoError(t, err)
	assert.Len(t, result.Players, 3)

	_, err = svc.Latest()
	assert.ErrorIs(t, err, models.ErrNoSnapshot)

	_, err = svc.Simulate(nil, TriggerCLI)
	assert.ErrorIs(t, err, models.ErrEmptyCohort)
}

func TestUnknownAndDegenerateAreLogged(t *testing.T) {
	weights := models.WeightSet{
		{Metric: models.MetricSGTotal, Weight: 80},
		{Metric: "Fairway Bunker Saves", Weight: 20},
	}
	solo := &cohort.File{Players: []*models.Player{{ID: "solo", Name: "Solo"}}}
	svc, buf := newTestService(&stubSource{file: solo}, weights)

	_, err := svc.Recompute(context.Background(), TriggerCLI)
	require.NoError(t, err)

	entries := logEntries(t, buf)
	unknown := findEntries(entries, "Ignoring unknown metric")
	require.Len(t, unknown, 1)
	assert.Equal(t, "Fairway Bunker Saves", unknown[0]["metric"])
	assert.Equal(t, float64(20), unknown[0]["weight"])
	assert.Len(t, findEntries(entries, "Cohort too small to rank, using weighted sum fallback"), 1)
}

func TestUpdateWeightsAuditsChanges(t *testing.T) {
	initial := models.WeightSet{
		{Metric: models.MetricSGTotal, Weight: 60},
		{Metric: models.MetricSGPutting, Weight: 40},
	}
	svc, buf := newTestService(&stubSource{file: scenarioFile()}, initial)

	assert.False(t, svc.UpdateWeights(append(models.WeightSet(nil), initial...), "test"))
	assert.Zero(t, buf.Len())

	updated := models.WeightSet{
		{Metric: models.MetricSGTotal, Weight: 60},
		{Metric: models.MetricSGPutting, Weight: 25},
		{Metric: models.MetricScrambling, Weight: 15},
	}
	require.True(t, svc.UpdateWeights(updated, "config_reload"))
	assert.True(t, svc.Weights().Equal(updated))

	changes := findEntries(logEntries(t, buf), "Metric weight changed")
	require.Len(t, changes, 2)
	assert.Equal(t, "Putting", changes[0]["metric"])
	assert.Equal(t, float64(40), changes[0]["old_weight"])
	assert.Equal(t, float64(25), changes[0]["new_weight"])
	assert.Equal(t, "Scrambling", changes[1]["metric"])
	assert.Equal(t, float64(0), changes[1]["old_weight"])
	assert.Equal(t, "config_reload", changes[1]["source"])
}

func TestWeightsReturnsCopy(t *testing.T) {
	svc, _ := newTestService(&stubSource{}, totalOnly)

	w := svc.Weights()
	w[0].Weight = 1
	assert.Equal(t, 100.0, svc.Weights()[0].Weight)
}

func TestConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	svc, _ := newTestService(&stubSource{file: scenarioFile()}, totalOnly)
	_, err := svc.Recompute(context.Background(), TriggerStartup)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_, _ = svc.Recompute(context.Background(), TriggerSchedule)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				latest, err := svc.Latest()
				if err != nil {
					t.Error(err)
					return
				}
				if len(latest.Players) != 3 || latest.Trials != 200 {
					t.Errorf("torn snapshot: %d players, %d trials", len(latest.Players), latest.Trials)
					return
				}
			}
		}()
	}
	wg.Wait()
}
