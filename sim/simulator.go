// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tandem-sim/tandem-sim/sim/trace"
)

// ErrInvariantViolation signals a bug in event scheduling, such as a departure
// from a stage that holds no job. It is never a recoverable runtime condition.
var ErrInvariantViolation = errors.New("invariant violation")

// StopReason records why a run ended.
type StopReason string

const (
	StopNone              StopReason = ""
	StopHorizonReached    StopReason = "horizon"
	StopTargetReached     StopReason = "target"
	StopDrained           StopReason = "drained"
	StopInvariantViolated StopReason = "invariant"
)

// Observer is called after each processed event with the post-event network.
// Observers are presentation only (logging, pacing) and must not mutate the network.
type Observer func(ev Event, net *Network)

// Simulator is the core object that holds simulated time, network state, and the event loop.
type Simulator struct {
	Clock   float64
	Config  SimConfig
	Events  *EventList
	Network *Network
	Context *SimulationContext
	// Sampler draws inter-arrival and service durations. Replace before the first Step.
	Sampler Sampler
	// Trace records every processed event when non-nil.
	Trace    *trace.SimulationTrace
	Observer Observer

	StopReason  StopReason
	sampleEvery int64
	started     bool
	stopped     bool
}

// NewSimulator validates cfg and returns a simulator with an empty network.
// The first arrival is scheduled lazily by the first Step.
func NewSimulator(cfg SimConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	return &Simulator{
		Clock:       0,
		Config:      cfg,
		Events:      NewEventList(),
		Network:     NewNetwork(cfg),
		Context:     NewSimulationContext(len(cfg.Stages)),
		Sampler:     NewExponentialSampler(rng),
		sampleEvery: cfg.EffectiveSampleEvery(),
	}, nil
}

// Metrics is shorthand for sim.Context.Metrics.
func (sim *Simulator) Metrics() *Metrics {
	return sim.Context.Metrics
}

// Stopped reports whether a stopping condition has been reached.
func (sim *Simulator) Stopped() bool {
	return sim.stopped
}

// Schedule pushes an event into the simulator's EventList.
func (sim *Simulator) Schedule(ev Event) {
	sim.Events.Insert(ev)
}

func (sim *Simulator) start() {
	if sim.started {
		return
	}
	sim.started = true
	first := sim.Sampler.InterArrival(sim.Config.ArrivalRate)
	sim.Schedule(NewArrivalEvent(first, 1))
	logrus.Infof("Starting simulation: %d stages, arrival rate %.4f, stop=%s",
		sim.Network.Len(), sim.Config.ArrivalRate, sim.Config.Stop.Mode)
}

// Run steps the simulation until a stopping condition is reached.
func (sim *Simulator) Run() error {
	for {
		running, err := sim.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// Step processes at most one event and reports whether the simulation can continue.
// In time-bound mode an event at or past the horizon is left pending and not processed.
// In count-bound mode the event completing the target job is processed before stopping.
func (sim *Simulator) Step() (running bool, err error) {
	if sim.stopped {
		return false, nil
	}
	sim.start()

	next := sim.Events.Peek()
	if next == nil {
		sim.stop(StopDrained, sim.Clock)
		return false, nil
	}
	if sim.Config.Stop.Mode == StopTimeBound && next.Timestamp() >= sim.Config.Stop.Horizon {
		sim.stop(StopHorizonReached, sim.Config.Stop.Horizon)
		return false, nil
	}

	ev, _ := sim.Events.PopEarliest()
	m := sim.Context.Metrics
	m.accrue(ev.Timestamp(), sim.Network.Lengths())
	sim.Clock = ev.Timestamp()
	logrus.Debugf("[t=%.4f] Executing %s", sim.Clock, ev.Type())

	moved, err := sim.dispatch(ev)
	if err != nil {
		sim.stop(StopInvariantViolated, sim.Clock)
		return false, err
	}
	m.EventsProcessed++

	if sim.Trace != nil {
		sim.recordTrace(ev, moved)
	}
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("state after %s:\n%s", ev.Type(), sim.Network)
	}
	if sim.Observer != nil {
		sim.Observer(ev, sim.Network)
	}

	if sim.Config.Stop.Mode == StopCountBound && m.CompletedJobs >= sim.Config.Stop.TargetCompletions {
		sim.stop(StopTargetReached, sim.Clock)
		return false, nil
	}
	return true, nil
}

func (sim *Simulator) stop(reason StopReason, end float64) {
	m := sim.Context.Metrics
	m.accrue(end, sim.Network.Lengths())
	m.SimEndedTime = end
	sim.StopReason = reason
	sim.stopped = true
	logrus.Infof("[t=%.4f] Simulation ended (%s): %d arrivals, %d completed, %d still in system, %d events",
		end, reason, m.ArrivalsProcessed, m.CompletedJobs, sim.Context.ActiveJobs(), m.EventsProcessed)
}

// dispatch applies ev and returns the job it moved.
func (sim *Simulator) dispatch(ev Event) (JobID, error) {
	switch e := ev.(type) {
	case *ArrivalEvent:
		return sim.handleArrival(e)
	case *DepartureEvent:
		return sim.handleDeparture(e)
	default:
		return 0, fmt.Errorf("%w: unknown event type %T", ErrInvariantViolation, ev)
	}
}

// handleArrival places a new job at stage 0 and schedules the next arrival.
func (sim *Simulator) handleArrival(e *ArrivalEvent) (JobID, error) {
	t := e.Timestamp()
	logrus.Debugf("<< Arrival: job %d at %.4f", e.JobID, t)

	ctx := sim.Context
	if _, dup := ctx.jobs[e.JobID]; dup {
		return 0, fmt.Errorf("%w: job %d arrived twice", ErrInvariantViolation, e.JobID)
	}
	ctx.jobs[e.JobID] = &JobRecord{ID: e.JobID, ArrivalTime: t, StageEntryTime: t}
	ctx.Metrics.ArrivalsProcessed++
	sim.enterStage(0, e.JobID, t)

	gap := sim.Sampler.InterArrival(sim.Config.ArrivalRate)
	sim.Schedule(NewArrivalEvent(t+gap, e.JobID+1))
	return e.JobID, nil
}

// handleDeparture removes the head job from its stage and forwards it,
// or completes it if the stage is the last one. The head leaves even when the
// event was scheduled for a later job, so every stage stays FIFO.
func (sim *Simulator) handleDeparture(e *DepartureEvent) (JobID, error) {
	t := e.Timestamp()
	i := e.Stage
	logrus.Debugf("<< Departure: job %d from stage %d at %.4f", e.JobID, i, t)

	if i < 0 || i >= sim.Network.Len() {
		return 0, fmt.Errorf("%w: departure for job %d names stage index %d outside [0, %d)",
			ErrInvariantViolation, e.JobID, i, sim.Network.Len())
	}
	stage := sim.Network.Stage(i)
	head, ok := stage.Dequeue()
	if !ok {
		return 0, fmt.Errorf("%w: departure of job %d from empty stage %d", ErrInvariantViolation, e.JobID, stage.ID)
	}
	if head != e.JobID {
		logrus.Debugf("   stage %d releases head job %d", stage.ID, head)
	}
	ctx := sim.Context
	rec, ok := ctx.jobs[head]
	if !ok {
		return 0, fmt.Errorf("%w: no record for departing job %d", ErrInvariantViolation, head)
	}

	m := ctx.Metrics
	m.Throughput[i]++
	m.DepartureTimes[i] = append(m.DepartureTimes[i], t)
	m.StageSojournTimes[i] = append(m.StageSojournTimes[i], t-rec.StageEntryTime)

	if !sim.Network.IsLast(i) {
		rec.StageEntryTime = t
		sim.enterStage(i+1, head, t)
		return head, nil
	}

	rec.DepartureTime = t
	rec.Completed = true
	m.SojournTimes = append(m.SojournTimes, rec.Sojourn())
	ctx.Completed = append(ctx.Completed, *rec)
	delete(ctx.jobs, head)
	m.CompletedJobs++
	if m.CompletedJobs%sim.sampleEvery == 0 {
		m.snapshot(t, sim.Network.Lengths())
	}
	return head, nil
}

// enterStage appends job to stage i and schedules its departure after one service draw.
func (sim *Simulator) enterStage(i int, job JobID, t float64) {
	stage := sim.Network.Stage(i)
	stage.Enqueue(job)
	s := sim.Sampler.Service(i, stage.ServiceRate)
	sim.Schedule(NewDepartureEvent(t+s, job, i))
}

func (sim *Simulator) recordTrace(ev Event, job JobID) {
	rec := trace.EventRecord{
		Seq:          sim.Context.Metrics.EventsProcessed,
		Type:         string(ev.Type()),
		Time:         ev.Timestamp(),
		JobID:        int64(job),
		Stage:        -1,
		QueueLengths: sim.Network.Lengths(),
	}
	if d, ok := ev.(*DepartureEvent); ok {
		rec.Stage = d.Stage
	}
	sim.Trace.RecordEvent(rec)
}
