// Package utils contains the worker pool and small numeric helpers used across the module.
package utils

import (
	"math"

	"github.com/montanaflynn/stats"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// FiniteMean averages the finite values among values. ok is false when there are none.
func FiniteMean(values []float64) (mean float64, ok bool) {
	finite := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return math.NaN(), false
	}
	m, err := finite.Mean()
	if err != nil {
		return math.NaN(), false
	}
	return m, true
}
