package sim

import "container/heap"

// scheduledEvent pairs an event with its insertion sequence number.
type scheduledEvent struct {
	ev  Event
	seq uint64
}

// eventHeap implements heap.Interface.
// Ordering: timestamp, then insertion sequence (FIFO among equal timestamps).
type eventHeap []scheduledEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	ti, tj := h[i].ev.Timestamp(), h[j].ev.Timestamp()
	if ti != tj {
		return ti < tj
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(scheduledEvent))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduledEvent{}
	*h = old[0 : n-1]
	return item
}

// EventList holds pending events ordered by ascending time with stable
// FIFO tie-breaking. Insert and PopEarliest are O(log n).
//
// Thread-safety: NOT thread-safe. The simulator is its only producer and consumer.
type EventList struct {
	events  eventHeap
	nextSeq uint64
}

// NewEventList creates an empty event list.
func NewEventList() *EventList {
	return &EventList{events: make(eventHeap, 0)}
}

// Insert adds an event. It always succeeds.
func (l *EventList) Insert(ev Event) {
	heap.Push(&l.events, scheduledEvent{ev: ev, seq: l.nextSeq})
	l.nextSeq++
}

// PopEarliest removes and returns the earliest event.
// ok is false when the list is empty, which is a normal terminal condition.
func (l *EventList) PopEarliest() (ev Event, ok bool) {
	if len(l.events) == 0 {
		return nil, false
	}
	return heap.Pop(&l.events).(scheduledEvent).ev, true
}

// Peek returns the earliest event without removing it, or nil if the list is empty.
func (l *EventList) Peek() Event {
	if len(l.events) == 0 {
		return nil
	}
	return l.events[0].ev
}

// IsEmpty reports whether no events are pending.
func (l *EventList) IsEmpty() bool {
	return len(l.events) == 0
}

// Len returns the number of pending events.
func (l *EventList) Len() int {
	return len(l.events)
}
