// Implements the tandem network: an ordered list of single-server FIFO stations.
// A job finishing service at stage i joins stage i+1, or leaves the system after the last stage.

package sim

import (
	"fmt"
	"strings"
)

// QueueStage is one station. jobs holds the jobs present in arrival order;
// every departure from the stage removes the head.
type QueueStage struct {
	ID          int
	ServiceRate float64
	jobs        []JobID
}

// NewQueueStage creates an empty stage.
func NewQueueStage(id int, serviceRate float64) *QueueStage {
	return &QueueStage{ID: id, ServiceRate: serviceRate}
}

// Enqueue adds a job at the tail.
func (q *QueueStage) Enqueue(job JobID) {
	q.jobs = append(q.jobs, job)
}

// Dequeue removes and returns the head job.
// ok is false if the stage is empty.
func (q *QueueStage) Dequeue() (job JobID, ok bool) {
	if len(q.jobs) == 0 {
		return 0, false
	}
	job = q.jobs[0]
	q.jobs = q.jobs[1:]
	return job, true
}

// Len returns the number of jobs present.
func (q *QueueStage) Len() int {
	return len(q.jobs)
}

func (q *QueueStage) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Queue %d: [", q.ID)
	for i, j := range q.jobs {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprint(&sb, int64(j))
	}
	sb.WriteString("]")
	return sb.String()
}

// Network is the fixed tandem topology, index 0..N-1.
type Network struct {
	stages []*QueueStage
}

// NewNetwork builds an empty network from validated stage configs.
func NewNetwork(cfg SimConfig) *Network {
	stages := make([]*QueueStage, len(cfg.Stages))
	for i, st := range cfg.Stages {
		stages[i] = NewQueueStage(cfg.StageID(i), st.ServiceRate)
	}
	return &Network{stages: stages}
}

// Len returns the number of stages.
func (n *Network) Len() int { return len(n.stages) }

// Stage returns the stage at index i.
func (n *Network) Stage(i int) *QueueStage { return n.stages[i] }

// IsLast reports whether index i is the final stage.
func (n *Network) IsLast(i int) bool { return i == len(n.stages)-1 }

// Lengths returns the current number of jobs at each stage.
func (n *Network) Lengths() []int {
	out := make([]int, len(n.stages))
	for i, st := range n.stages {
		out[i] = st.Len()
	}
	return out
}

// JobsInSystem returns the total number of jobs across all stages.
func (n *Network) JobsInSystem() int {
	total := 0
	for _, st := range n.stages {
		total += st.Len()
	}
	return total
}

func (n *Network) String() string {
	parts := make([]string, len(n.stages))
	for i, st := range n.stages {
		parts[i] = st.String()
	}
	return strings.Join(parts, "\n")
}
