package domain

import "math"

const (
	// DefaultDecay controls how quickly the recency score falls off
	// per day since the last visit.
	DefaultDecay = 0.1

	// FrequencySaturation caps the frequency contribution: beyond this
	// many visits in the window, more visits do not raise the score.
	FrequencySaturation = 50.0

	// Weights of the combined score blend.
	FrequencyWeight = 0.6
	RecencyWeight   = 0.4
)

// RecencyScore computes an exponential-decay score for a visit daysAgo
// days in the past. The result is in (0, 1], equals 1 at daysAgo = 0 and
// is strictly decreasing in daysAgo.
func RecencyScore(daysAgo int, decay float64) float64 {
	return math.Exp(-decay * float64(daysAgo))
}

// CombinedScore blends normalized visit frequency with a recency score.
// The frequency contribution saturates at FrequencySaturation visits.
// For non-negative inputs the result is in [0, 1].
//
// No rounding happens here; records round to 3 decimals at construction
// so repeated computation stays deterministic and comparable.
func CombinedScore(visitCount int, recency float64) float64 {
	frequency := math.Min(float64(visitCount)/FrequencySaturation, 1.0)
	return FrequencyWeight*frequency + RecencyWeight*recency
}

// Round3 rounds to 3 decimal places, the precision persisted in exports.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
