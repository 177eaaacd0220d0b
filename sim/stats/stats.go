// Package stats provides the summary statistics the reporting layer computes
// over the raw series a simulation run produces.
// This package has no dependencies on sim/.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidenceLevel is the confidence level used by the reports.
const DefaultConfidenceLevel = 0.95

// Number covers the element types of the metric series.
type Number interface {
	int | int64 | float64
}

// ToFloat64 converts a series to float64.
func ToFloat64[T Number](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// Mean returns the arithmetic mean, or 0 for an empty series.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// ConfidenceInterval returns the sample mean and the half-width of its
// normal-approximation confidence interval at the given level.
// The margin is 0 when fewer than two observations are available.
func ConfidenceInterval(data []float64, level float64) (mean, margin float64) {
	n := len(data)
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return data[0], 0
	}
	mean, std := stat.MeanStdDev(data, nil)
	z := distuv.UnitNormal.Quantile(1 - (1-level)/2)
	return mean, z * std / math.Sqrt(float64(n))
}

// MovingAverage returns the simple moving average of data.
// When data is shorter than window, the window shrinks to max(1, len/2);
// a window of 1 returns a copy of data.
func MovingAverage(data []float64, window int) []float64 {
	if len(data) < window {
		window = max(1, len(data)/2)
	}
	if window <= 1 {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}
	out := make([]float64, 0, len(data)-window+1)
	sum := floats.Sum(data[:window])
	out = append(out, sum/float64(window))
	for i := window; i < len(data); i++ {
		sum += data[i] - data[i-window]
		out = append(out, sum/float64(window))
	}
	return out
}

// Utilization returns the fraction of samples in which the stage was non-empty.
func Utilization(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}
	busy := 0
	for _, s := range samples {
		if s > 0 {
			busy++
		}
	}
	return float64(busy) / float64(len(samples))
}

// Histogram bins data into bins equal-width buckets spanning [min, max].
// edges has bins+1 entries; counts has bins entries.
func Histogram(data []float64, bins int) (edges, counts []float64) {
	if len(data) == 0 || bins <= 0 {
		return nil, nil
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if hi == lo {
		hi = lo + 1
	}
	edges = floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram requires the last divider to be strictly greater than every value.
	edges[bins] = math.Nextafter(edges[bins], math.Inf(1))
	counts = stat.Histogram(nil, edges, sorted, nil)
	return edges, counts
}

// Point is one step of a cumulative count curve.
type Point struct {
	Time  float64 `json:"time"`
	Count int     `json:"count"`
}

// Cumulative turns ordered event timestamps into a cumulative count curve.
func Cumulative(times []float64) []Point {
	out := make([]Point, len(times))
	for i, t := range times {
		out[i] = Point{Time: t, Count: i + 1}
	}
	return out
}
