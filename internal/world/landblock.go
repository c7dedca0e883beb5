package world

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/udisondev/acego/internal/game/creature"
)

var (
	// ErrLandblockStopped is returned when enqueueing into a stopped landblock.
	ErrLandblockStopped = errors.New("landblock stopped")
	// ErrQueueFull is returned when a landblock action queue is full.
	ErrQueueFull = errors.New("landblock action queue full")
	// ErrUnknownObject is returned for object ids the world does not track.
	ErrUnknownObject = errors.New("unknown object")
)

// Action is work executed on the landblock's tick, serialized with every
// other action of the same landblock.
type Action func(ctx context.Context)

// Landblock owns the agents standing in one landblock. Every mutation of an
// owned agent that originates elsewhere goes through the action queue and
// runs during Tick.
type Landblock struct {
	id      uint16
	actions chan Action
	tracer  trace.Tracer

	mu      sync.RWMutex
	objects map[uint32]creature.Combatant

	stopped   atomic.Bool
	processed atomic.Uint64
}

// NewLandblock creates a landblock with a bounded action queue.
func NewLandblock(id uint16, queueSize int, tracer trace.Tracer) *Landblock {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Landblock{
		id:      id,
		actions: make(chan Action, queueSize),
		tracer:  tracer,
		objects: make(map[uint32]creature.Combatant),
	}
}

// ID returns landblock id.
func (lb *Landblock) ID() uint16 {
	return lb.id
}

// Enqueue schedules an action for the next tick. Never blocks.
func (lb *Landblock) Enqueue(a Action) error {
	if lb.stopped.Load() {
		return ErrLandblockStopped
	}
	select {
	case lb.actions <- a:
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending returns the number of queued actions.
func (lb *Landblock) Pending() int {
	return len(lb.actions)
}

// Processed returns the number of actions executed so far.
func (lb *Landblock) Processed() uint64 {
	return lb.processed.Load()
}

// Tick runs the actions queued before the call. Actions enqueued by the
// running actions wait for the next tick.
func (lb *Landblock) Tick(ctx context.Context) error {
	n := len(lb.actions)
	if n == 0 {
		return nil
	}

	ctx, span := lb.tracer.Start(ctx, "landblock.Tick",
		trace.WithAttributes(
			attribute.Int("landblock.id", int(lb.id)),
			attribute.Int("landblock.actions", n),
		))
	defer span.End()

	for range n {
		if err := ctx.Err(); err != nil {
			return err
		}
		a := <-lb.actions
		a(ctx)
		lb.processed.Add(1)
	}
	return nil
}

// Stop rejects further actions and discards the pending ones.
func (lb *Landblock) Stop() {
	if !lb.stopped.CompareAndSwap(false, true) {
		return
	}
	dropped := 0
	for {
		select {
		case <-lb.actions:
			dropped++
		default:
			if dropped > 0 {
				slog.Warn("landblock stopped with pending actions",
					"landblock", lb.id,
					"dropped", dropped)
			}
			return
		}
	}
}

// Stopped reports whether Stop was called.
func (lb *Landblock) Stopped() bool {
	return lb.stopped.Load()
}

// Add places an agent into the landblock.
func (lb *Landblock) Add(c creature.Combatant) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.objects[c.ObjectID()] = c
}

// Remove removes an agent. Returns false if it was not here.
func (lb *Landblock) Remove(objectID uint32) bool {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if _, ok := lb.objects[objectID]; !ok {
		return false
	}
	delete(lb.objects, objectID)
	return true
}

// Get returns an agent by id.
func (lb *Landblock) Get(objectID uint32) (creature.Combatant, bool) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	c, ok := lb.objects[objectID]
	return c, ok
}

// Len returns the number of agents.
func (lb *Landblock) Len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	return len(lb.objects)
}

// Objects returns the agents ordered by object id.
func (lb *Landblock) Objects() []creature.Combatant {
	lb.mu.RLock()
	out := make([]creature.Combatant, 0, len(lb.objects))
	for _, c := range lb.objects {
		out = append(out, c)
	}
	lb.mu.RUnlock()

	slices.SortFunc(out, func(a, b creature.Combatant) int {
		return cmp.Compare(a.ObjectID(), b.ObjectID())
	})
	return out
}
