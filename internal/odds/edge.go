package odds

// Edge returns the model's advantage over the market in percentage points.
// winPercentage is 0–100, impliedProbability is 0–1.
// Positive means the model likes the player more than the book does.
//
// With no market (impliedProbability 0) the edge equals winPercentage; callers
// should gate on market availability before acting on it.
func Edge(winPercentage, impliedProbability float64) float64 {
	return (winPercentage/100 - impliedProbability) * 100
}

// IsValue reports whether an edge clears the minimum threshold (percentage points)
func IsValue(edge, minEdge float64) bool {
	return edge > 0 && edge >= minEdge
}
