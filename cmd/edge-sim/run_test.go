package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fairway-edge/internal/models"
	"github.com/yourusername/fairway-edge/internal/simulation"
)

func sampleResult() *simulation.Result {
	cohort := []*models.Player{
		{ID: "A", Name: "Alpha", Odds: models.MoneyLineOf(150), General: models.GeneralStats{StrokesGainedTotal: models.Float(2)}},
		{ID: "B", Name: "Bravo", Odds: models.MoneyLineOf(300), General: models.GeneralStats{StrokesGainedTotal: models.Float(1)}},
		{ID: "C", Name: "Charlie", General: models.GeneralStats{StrokesGainedTotal: models.Float(0)}},
	}
	weights := models.WeightSet{
		{Metric: models.MetricSGTotal, Weight: 100},
		{Metric: "Driving Style", Weight: 5},
	}
	return simulation.NewEngine(simulation.EngineConfig{Source: simulation.NoVariance}).Simulate(cohort, weights, 50)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, "Test Open", sampleResult(), 5, false))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Test Open\n"))
	assert.Contains(t, out, "3 players, 50 trials, top 3")
	assert.Contains(t, out, "+150")
	assert.Contains(t, out, "+60.00")
	assert.Contains(t, out, "Ignored unknown metrics: [Driving Style]")

	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.Contains(l, "Alpha") || strings.Contains(l, "Bravo") || strings.Contains(l, "Charlie") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 3)
	assert.Contains(t, rows[0], "Alpha")
}

func TestWriteTableValueOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, "", sampleResult(), 5, true))

	out := buf.String()
	assert.Contains(t, out, "Alpha")
	assert.NotContains(t, out, "Bravo")
	assert.NotContains(t, out, "Charlie")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleResult()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(50), decoded["trials"])
	assert.Len(t, decoded["players"], 3)
}

func TestFormatAmerican(t *testing.T) {
	assert.Equal(t, "+150", formatAmerican(150))
	assert.Equal(t, "-110", formatAmerican(-110))
	assert.Equal(t, "-", formatAmerican(0))
}
