package models

// MetricWeight assigns a weight in [0, 100] to a metric.
type MetricWeight struct {
	Metric MetricID `json:"metric" mapstructure:"metric" validate:"required,metric"`
	Weight float64  `json:"weight" mapstructure:"weight" validate:"gte=0,lte=100"`
}

// WeightSet is an ordered metric weight configuration.
//
// Weights are NOT required to sum to 100. Callers that want percentages must
// call Normalized themselves; the simulation engine uses the weights as given.
type WeightSet []MetricWeight

// Active returns the metrics with a positive weight, in configuration order.
// A metric listed more than once keeps its first position and its last weight.
func (ws WeightSet) Active() []MetricWeight {
	index := make(map[MetricID]int, len(ws))
	merged := make([]MetricWeight, 0, len(ws))
	for _, w := range ws {
		if i, ok := index[w.Metric]; ok {
			merged[i].Weight = w.Weight
			continue
		}
		index[w.Metric] = len(merged)
		merged = append(merged, w)
	}

	active := merged[:0]
	for _, w := range merged {
		if w.Weight > 0 {
			active = append(active, w)
		}
	}
	return active
}

// Weight returns the effective weight of a metric, 0 when absent
func (ws WeightSet) Weight(id MetricID) float64 {
	weight := 0.0
	for _, w := range ws {
		if w.Metric == id {
			weight = w.Weight
		}
	}
	return weight
}

// Total sums the active weights
func (ws WeightSet) Total() float64 {
	total := 0.0
	for _, w := range ws.Active() {
		total += w.Weight
	}
	return total
}

// Normalized rescales the active weights so they sum to 100.
// Inactive metrics are dropped. An all-zero set is returned empty.
func (ws WeightSet) Normalized() WeightSet {
	active := ws.Active()
	total := 0.0
	for _, w := range active {
		total += w.Weight
	}
	out := make(WeightSet, 0, len(active))
	if total == 0 {
		return out
	}
	for _, w := range active {
		out = append(out, MetricWeight{Metric: w.Metric, Weight: w.Weight / total * 100})
	}
	return out
}

// Equal reports whether two weight sets have the same effective configuration
func (ws WeightSet) Equal(other WeightSet) bool {
	a, b := ws.Active(), other.Active()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
