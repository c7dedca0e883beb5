package combat

import (
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/acego/internal/game/event"
)

// DefaultLifestoneDuration is how long a resurrected agent stays protected.
const DefaultLifestoneDuration = 60 * time.Second

// Protectable is an agent that can carry lifestone protection.
type Protectable interface {
	ObjectID() uint32
	Name() string
	SetLifestoneProtection(on bool)
	UnderLifestoneProtection() bool
}

type protection struct {
	agent Protectable
	until time.Time
}

// LifestoneTracker expires lifestone protection of recently resurrected
// agents. Protection also ends early when the agent attacks.
//
// Thread-safety: sync.Map, agents are protected from several landblocks
// concurrently.
type LifestoneTracker struct {
	duration time.Duration
	entries  sync.Map // key: uint32 objectID, value: protection
	stopCh   chan struct{}
	wg       sync.WaitGroup
	sink     event.Sink
	now      func() time.Time
}

// NewLifestoneTracker creates a tracker. Must call Start() to begin the
// cleanup goroutine.
func NewLifestoneTracker(duration time.Duration, sink event.Sink) *LifestoneTracker {
	if duration <= 0 {
		duration = DefaultLifestoneDuration
	}
	if sink == nil {
		sink = event.Discard
	}
	return &LifestoneTracker{
		duration: duration,
		stopCh:   make(chan struct{}),
		sink:     sink,
		now:      time.Now,
	}
}

// Start launches the cleanup goroutine (ticker 1 second).
func (t *LifestoneTracker) Start() {
	t.wg.Add(1)
	go t.run()
}

// Stop terminates the cleanup goroutine and waits for it.
func (t *LifestoneTracker) Stop() {
	close(t.stopCh)
	t.wg.Wait()
}

// Protect grants protection to agent, extending it if already protected.
func (t *LifestoneTracker) Protect(agent Protectable) {
	agent.SetLifestoneProtection(true)
	t.entries.Store(agent.ObjectID(), protection{agent: agent, until: t.now().Add(t.duration)})
	t.sink.Send(event.DescriptionChanged{AgentID: agent.ObjectID()})
}

// Remove ends protection of the agent immediately. No-op if not protected.
func (t *LifestoneTracker) Remove(objectID uint32) {
	v, ok := t.entries.LoadAndDelete(objectID)
	if !ok {
		return
	}
	p := v.(protection)
	p.agent.SetLifestoneProtection(false)
	t.sink.Send(event.DescriptionChanged{AgentID: objectID})
}

// IsProtected reports whether the tracker holds protection for objectID.
func (t *LifestoneTracker) IsProtected(objectID uint32) bool {
	_, ok := t.entries.Load(objectID)
	return ok
}

func (t *LifestoneTracker) run() {
	defer t.wg.Done()

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.cleanup()
		case <-t.stopCh:
			return
		}
	}
}

// cleanup removes expired protection entries.
func (t *LifestoneTracker) cleanup() {
	now := t.now()

	t.entries.Range(func(key, value any) bool {
		p := value.(protection)
		if now.Before(p.until) {
			return true
		}
		if t.entries.CompareAndDelete(key, value) {
			p.agent.SetLifestoneProtection(false)
			t.sink.Send(event.DescriptionChanged{AgentID: p.agent.ObjectID()})
			slog.Debug("lifestone protection expired", "agent", p.agent.Name())
		}
		return true
	})
}
