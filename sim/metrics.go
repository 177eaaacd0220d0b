// Tracks simulation-wide and per-job measurements: queue-length samples,
// throughput, departure timestamps and sojourn times.

package sim

// JobRecord holds the timing of a single job.
type JobRecord struct {
	ID             JobID
	ArrivalTime    float64 // time the job entered stage 0
	StageEntryTime float64 // time the job entered its current stage
	DepartureTime  float64 // time the job left the last stage; valid once Completed
	Completed      bool
}

// Sojourn returns DepartureTime - ArrivalTime. Only meaningful for completed jobs.
func (r JobRecord) Sojourn() float64 {
	return r.DepartureTime - r.ArrivalTime
}

// Metrics aggregates raw measurements for the reporting layer.
// The engine only appends; readers must not mutate the slices.
type Metrics struct {
	QueueLengths      [][]int     // per stage: sampled job counts, one entry per snapshot
	SampleTimes       []float64   // simulated time of each snapshot
	Throughput        []int64     // per stage: completed departures
	DepartureTimes    [][]float64 // per stage: departure timestamps in order
	SojournTimes      []float64   // end-to-end sojourn of every completed job
	StageSojournTimes [][]float64 // per stage: time from entering to leaving the stage

	ArrivalsProcessed int64
	CompletedJobs     int64
	EventsProcessed   int64

	QueueLengthArea []float64 // per stage: integral of job count over simulated time
	lastAccrual     float64
	SimEndedTime    float64 // time up to which QueueLengthArea is integrated
}

// NewMetrics creates empty accumulators for a network of numStages stages.
func NewMetrics(numStages int) *Metrics {
	return &Metrics{
		QueueLengths:      make([][]int, numStages),
		SampleTimes:       make([]float64, 0),
		Throughput:        make([]int64, numStages),
		DepartureTimes:    make([][]float64, numStages),
		SojournTimes:      make([]float64, 0),
		StageSojournTimes: make([][]float64, numStages),
		QueueLengthArea:   make([]float64, numStages),
	}
}

// accrue integrates the current stage lengths up to time now.
func (m *Metrics) accrue(now float64, lengths []int) {
	dt := now - m.lastAccrual
	if dt <= 0 {
		return
	}
	for i, l := range lengths {
		m.QueueLengthArea[i] += float64(l) * dt
	}
	m.lastAccrual = now
}

// snapshot appends the current stage lengths to the sampled series.
func (m *Metrics) snapshot(now float64, lengths []int) {
	for i, l := range lengths {
		m.QueueLengths[i] = append(m.QueueLengths[i], l)
	}
	m.SampleTimes = append(m.SampleTimes, now)
}

// TimeAverageQueueLength returns the time-weighted mean job count of stage i
// over [0, SimEndedTime].
func (m *Metrics) TimeAverageQueueLength(i int) float64 {
	if m.SimEndedTime <= 0 {
		return 0
	}
	return m.QueueLengthArea[i] / m.SimEndedTime
}

// TimeAverageJobsInSystem returns the time-weighted mean number of jobs in the network.
func (m *Metrics) TimeAverageJobsInSystem() float64 {
	total := 0.0
	for i := range m.QueueLengthArea {
		total += m.TimeAverageQueueLength(i)
	}
	return total
}

// SimulationContext owns all simulation-wide accumulators: the job timing
// table and the metrics. It is owned by a single Simulator.
type SimulationContext struct {
	jobs      map[JobID]*JobRecord // jobs still in the network
	Completed []JobRecord          // archived records, in completion order
	Metrics   *Metrics
}

// NewSimulationContext creates an empty context for numStages stages.
func NewSimulationContext(numStages int) *SimulationContext {
	return &SimulationContext{
		jobs:      make(map[JobID]*JobRecord),
		Completed: make([]JobRecord, 0),
		Metrics:   NewMetrics(numStages),
	}
}

// ActiveJobs returns the number of jobs that arrived but have not completed.
func (c *SimulationContext) ActiveJobs() int {
	return len(c.jobs)
}
