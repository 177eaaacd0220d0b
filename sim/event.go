package sim

import "fmt"

// JobID identifies a job. Ids are assigned sequentially from 1 in arrival order.
type JobID int64

// EventType tags the two kinds of simulation events.
type EventType string

const (
	EventTypeArrival   EventType = "Arrival"
	EventTypeDeparture EventType = "Departure"
)

// Event is a scheduled state change. Events are immutable once created
// and consumed exactly once when popped from the EventList.
// The concrete types are *ArrivalEvent and *DepartureEvent.
type Event interface {
	Timestamp() float64
	Type() EventType
	Job() JobID
}

// ArrivalEvent is the arrival of a new job at stage 0.
type ArrivalEvent struct {
	time  float64
	JobID JobID
}

// NewArrivalEvent creates an arrival of job at simulated time t.
func NewArrivalEvent(t float64, job JobID) *ArrivalEvent {
	return &ArrivalEvent{time: t, JobID: job}
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }
func (e *ArrivalEvent) Type() EventType    { return EventTypeArrival }
func (e *ArrivalEvent) Job() JobID         { return e.JobID }

func (e *ArrivalEvent) String() string {
	return fmt.Sprintf("Arrival(job=%d, t=%.4f)", e.JobID, e.time)
}

// DepartureEvent is the service completion of a job at a stage.
type DepartureEvent struct {
	time  float64
	JobID JobID
	Stage int // index into the network, 0..N-1
}

// NewDepartureEvent creates a departure of job from stage index at simulated time t.
func NewDepartureEvent(t float64, job JobID, stage int) *DepartureEvent {
	return &DepartureEvent{time: t, JobID: job, Stage: stage}
}

func (e *DepartureEvent) Timestamp() float64 { return e.time }
func (e *DepartureEvent) Type() EventType    { return EventTypeDeparture }
func (e *DepartureEvent) Job() JobID         { return e.JobID }

func (e *DepartureEvent) String() string {
	return fmt.Sprintf("Departure(job=%d, stage=%d, t=%.4f)", e.JobID, e.Stage, e.time)
}
