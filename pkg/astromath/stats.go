package astromath

import "gonum.org/v1/gonum/stat"

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// WeightedMean calculates the weighted mean of values. Returns the given
// fallback when there are no values or the weights sum to zero.
func WeightedMean(values, weights []float64, fallback float64) float64 {
	if len(values) == 0 || len(values) != len(weights) {
		return fallback
	}

	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	if weightSum == 0 {
		return fallback
	}

	return stat.Mean(values, weights)
}
