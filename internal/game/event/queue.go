package event

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// SinkFunc adapts a function to Sink.
type SinkFunc func(ev Event)

// Send implements Sink.
func (f SinkFunc) Send(ev Event) { f(ev) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Queue — буферизованная очередь исходящих событий.
// Send never blocks: when the buffer is full the event is dropped and
// counted. Run drains the buffer into the downstream sink until ctx is done.
type Queue struct {
	ch      chan Event
	next    Sink
	dropped atomic.Uint64
}

// NewQueue creates a queue delivering into next.
func NewQueue(size int, next Sink) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{ch: make(chan Event, size), next: next}
}

// Send implements Sink.
func (q *Queue) Send(ev Event) {
	select {
	case q.ch <- ev:
	default:
		if q.dropped.Add(1) == 1 {
			slog.Warn("event queue full, dropping events", "kind", ev.Kind().String())
		}
	}
}

// Dropped returns the number of events lost to overflow.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Run delivers queued events until ctx is cancelled, then flushes what is
// already buffered.
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case ev := <-q.ch:
			q.next.Send(ev)
		case <-ctx.Done():
			for {
				select {
				case ev := <-q.ch:
					q.next.Send(ev)
				default:
					return nil
				}
			}
		}
	}
}

// LogSink writes every event at debug level.
type LogSink struct {
	Logger *slog.Logger
}

// Send implements Sink.
func (s LogSink) Send(ev Event) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Debug("event", "kind", ev.Kind().String(), "payload", ev)
}

// Recorder keeps every event in memory. Used by tests and the simulator.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Send implements Sink.
func (r *Recorder) Send(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfKind returns recorded events of kind k in order.
func (r *Recorder) OfKind(k Kind) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, ev := range r.events {
		if ev.Kind() == k {
			out = append(out, ev)
		}
	}
	return out
}

// Count returns the number of recorded events of kind k.
func (r *Recorder) Count(k Kind) int {
	return len(r.OfKind(k))
}

// Reset clears the recorder.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
