// Package trace provides event-trace recording for simulation runs.
// It stores pure data types and does not import sim/.
package trace

// EventRecord captures a single processed event and the network state right after it.
type EventRecord struct {
	Seq          int64   `msgpack:"seq" json:"seq"`
	Type         string  `msgpack:"type" json:"type"`
	Time         float64 `msgpack:"time" json:"time"`
	JobID        int64   `msgpack:"job" json:"job"`
	Stage        int     `msgpack:"stage" json:"stage"` // stage index for departures, -1 for arrivals
	QueueLengths []int   `msgpack:"queue_lengths" json:"queue_lengths"`
}
