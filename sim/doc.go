// Package sim provides the core discrete-event simulation engine for tandem
// networks of single-server FIFO queues.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: Event types that drive the simulation (Arrival, Departure)
//   - event_list.go: The time-ordered pending-event list
//   - simulator.go: The event loop, stopping conditions, and state transitions
//
// # Architecture
//
// The sim package owns the kernel; collaborators live in sub-packages and
// only read finished results:
//   - sim/trace/: Per-event trace recording and msgpack export
//   - sim/stats/: Means, confidence intervals, smoothing, histograms
//   - sim/report/: Observed-versus-theoretical run reports
//   - sim/topology/: YAML network specs and named presets
//
// # Key Types
//
//   - SimConfig: stages, arrival rate, stop condition, seed, snapshot cadence
//   - Network / QueueStage: per-stage FIFO job lists; a departure always removes the head
//   - Sampler: inter-arrival and service durations (ExponentialSampler by default)
//   - PartitionedRNG: independent random streams per subsystem
//   - Metrics: queue-length snapshots, throughput, departure and sojourn times
//
// A Simulator is single-threaded and owns all of its state. Independent
// Simulators may run concurrently.
package sim
