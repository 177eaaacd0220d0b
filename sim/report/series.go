package report

import (
	"github.com/tandem-sim/tandem-sim/sim"
	"github.com/tandem-sim/tandem-sim/sim/stats"
)

// DefaultSmoothingWindow is the moving-average window applied to sampled queue lengths.
const DefaultSmoothingWindow = 100

// DefaultHistogramBins is the number of sojourn-time histogram buckets.
const DefaultHistogramBins = 30

// StageSeries holds the plottable time series of one stage.
type StageSeries struct {
	ID                   int           `json:"id"`
	QueueLengths         []int         `json:"queue_lengths"`
	SmoothedQueueLengths []float64     `json:"smoothed_queue_lengths"`
	Departures           []stats.Point `json:"departures"`
}

// Series is the raw material for queue-length, throughput and sojourn plots.
type Series struct {
	SampleTimes   []float64     `json:"sample_times"`
	Window        int           `json:"window"`
	Stages        []StageSeries `json:"stages"`
	SojournEdges  []float64     `json:"sojourn_edges"`
	SojournCounts []float64     `json:"sojourn_counts"`
}

// BuildSeries extracts the plot series from a stopped simulator.
// window <= 0 uses DefaultSmoothingWindow.
func BuildSeries(s *sim.Simulator, window int) *Series {
	if window <= 0 {
		window = DefaultSmoothingWindow
	}
	m := s.Metrics()
	out := &Series{
		SampleTimes: append([]float64(nil), m.SampleTimes...),
		Window:      window,
		Stages:      make([]StageSeries, s.Network.Len()),
	}
	for i := range out.Stages {
		out.Stages[i] = StageSeries{
			ID:                   s.Network.Stage(i).ID,
			QueueLengths:         append([]int(nil), m.QueueLengths[i]...),
			SmoothedQueueLengths: stats.MovingAverage(stats.ToFloat64(m.QueueLengths[i]), window),
			Departures:           stats.Cumulative(m.DepartureTimes[i]),
		}
	}
	out.SojournEdges, out.SojournCounts = stats.Histogram(m.SojournTimes, DefaultHistogramBins)
	return out
}

// SaveJSON writes the series to path.
func (se *Series) SaveJSON(path string) error {
	return writeJSON(path, se)
}
