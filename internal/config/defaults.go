package config

import "github.com/yourusername/fairway-edge/internal/models"

// DefaultWeights is the weight configuration used when none is supplied
func DefaultWeights() []map[string]interface{} {
	return []map[string]interface{}{
		{"metric": string(models.MetricSGTotal), "weight": 40},
		{"metric": string(models.MetricSGApproach), "weight": 20},
		{"metric": string(models.MetricSGPutting), "weight": 15},
		{"metric": string(models.MetricProximity150To175), "weight": 10},
		{"metric": string(models.MetricBirdieOrBetterPct), "weight": 10},
		{"metric": string(models.MetricBogeyAvoidance), "weight": 5},
	}
}
