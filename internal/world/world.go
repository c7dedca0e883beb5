// Package world runs the simulated world: landblocks own their agents and
// execute queued actions on a shared tick, so an attack on an agent never
// races with the agent's own updates.
package world

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/acego/internal/config"
	"github.com/udisondev/acego/internal/data"
	"github.com/udisondev/acego/internal/game/combat"
	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/game/equipment"
	"github.com/udisondev/acego/internal/game/event"
	"github.com/udisondev/acego/internal/game/treasure"
	"github.com/udisondev/acego/internal/model"
)

const tracerName = "github.com/udisondev/acego/internal/world"

// World holds the landblocks and routes actions between them.
type World struct {
	cfg        config.World
	ids        *ObjectIDGenerator
	resolver   *combat.Resolver
	treasure   *treasure.Generator
	lifestones *combat.LifestoneTracker
	sink       event.Sink
	tracer     trace.Tracer

	mu         sync.RWMutex
	landblocks map[uint16]*Landblock
	objects    sync.Map // map[uint32]uint16 — objectID → landblock id
}

// Option configures a World.
type Option func(*World)

// WithTreasure enables wielded treasure generation at spawn.
func WithTreasure(g *treasure.Generator) Option {
	return func(w *World) { w.treasure = g }
}

// WithLifestones grants lifestone protection to players entering the world.
func WithLifestones(t *combat.LifestoneTracker) Option {
	return func(w *World) { w.lifestones = t }
}

// WithIDGenerator shares an id generator, e.g. with the item factory.
func WithIDGenerator(ids *ObjectIDGenerator) Option {
	return func(w *World) { w.ids = ids }
}

// WithSink sets the sink for equipment events of spawned agents.
func WithSink(s event.Sink) Option {
	return func(w *World) { w.sink = s }
}

// WithTracer overrides the OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(w *World) { w.tracer = t }
}

// New creates an empty world.
func New(cfg config.World, resolver *combat.Resolver, opts ...Option) *World {
	w := &World{
		cfg:        cfg,
		resolver:   resolver,
		sink:       event.Discard,
		tracer:     otel.Tracer(tracerName),
		landblocks: make(map[uint16]*Landblock),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.ids == nil {
		w.ids = NewObjectIDGenerator()
	}
	return w
}

// IDs returns the world's object id generator.
func (w *World) IDs() *ObjectIDGenerator {
	return w.ids
}

// Landblock returns the landblock with the given id, creating it on first use.
func (w *World) Landblock(id uint16) *Landblock {
	w.mu.RLock()
	lb, ok := w.landblocks[id]
	w.mu.RUnlock()
	if ok {
		return lb
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if lb, ok := w.landblocks[id]; ok {
		return lb
	}
	lb = NewLandblock(id, w.cfg.LandblockQueueSize, w.tracer)
	w.landblocks[id] = lb
	return lb
}

// Landblocks returns all landblocks ordered by id.
func (w *World) Landblocks() []*Landblock {
	w.mu.RLock()
	out := make([]*Landblock, 0, len(w.landblocks))
	for _, lb := range w.landblocks {
		out = append(out, lb)
	}
	w.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Landblock) int { return int(a.id) - int(b.id) })
	return out
}

// SpawnCreature creates a creature from its definition, generates its
// wielded treasure and equips it, then places it at loc. Treasure is rolled
// before the creature becomes reachable, so it never overlaps combat.
func (w *World) SpawnCreature(ctx context.Context, def *data.CreatureDef, loc model.Location) (*creature.Creature, error) {
	lb := w.Landblock(loc.Landblock)
	if lb.Stopped() {
		return nil, ErrLandblockStopped
	}

	c := creature.New(w.ids.NextCreatureID(), def.Stats(), equipment.WithSink(w.sink))
	c.SetLocation(loc)

	if w.treasure != nil {
		items, err := w.treasure.GenerateWieldedTreasure(ctx, c)
		switch {
		case errors.Is(err, treasure.ErrTableNotFound):
			slog.Warn("creature treasure table not found",
				"creature", def.Name,
				"table", def.TreasureTableID)
		case err != nil:
			return nil, fmt.Errorf("generating treasure for %s: %w", def.Name, err)
		default:
			equipped := c.EquipInventoryItems()
			slog.Debug("creature spawned with treasure",
				"creature", def.Name,
				"objectID", c.ObjectID(),
				"items", len(items),
				"equipped", equipped)
		}
	}

	w.place(c, lb)
	return c, nil
}

// AddPlayer places a player at loc. With WithLifestones the player enters
// under lifestone protection.
func (w *World) AddPlayer(p *creature.Player, loc model.Location) error {
	lb := w.Landblock(loc.Landblock)
	if lb.Stopped() {
		return ErrLandblockStopped
	}
	p.SetLocation(loc)
	w.place(p, lb)
	if w.lifestones != nil {
		w.lifestones.Protect(p)
	}
	return nil
}

func (w *World) place(c creature.Combatant, lb *Landblock) {
	lb.Add(c)
	w.objects.Store(c.ObjectID(), lb.id)
}

// Remove removes an agent from the world.
func (w *World) Remove(objectID uint32) error {
	v, ok := w.objects.LoadAndDelete(objectID)
	if !ok {
		return fmt.Errorf("removing object %d: %w", objectID, ErrUnknownObject)
	}
	w.Landblock(v.(uint16)).Remove(objectID)
	if w.lifestones != nil {
		w.lifestones.Remove(objectID)
	}
	return nil
}

// Object returns an agent and its landblock.
func (w *World) Object(objectID uint32) (creature.Combatant, *Landblock, bool) {
	v, ok := w.objects.Load(objectID)
	if !ok {
		return nil, nil, false
	}
	lb := w.Landblock(v.(uint16))
	c, ok := lb.Get(objectID)
	if !ok {
		return nil, nil, false
	}
	return c, lb, true
}

// Attack hands the attack off to the target's landblock. The outcome is
// reported through the resolver's observer and events. After the strike the
// attacker's dual wield alternation flips.
func (w *World) Attack(attackerID, targetID uint32) error {
	attacker, _, ok := w.Object(attackerID)
	if !ok {
		return fmt.Errorf("attacker %d: %w", attackerID, ErrUnknownObject)
	}
	target, lb, ok := w.Object(targetID)
	if !ok {
		return fmt.Errorf("target %d: %w", targetID, ErrUnknownObject)
	}

	err := lb.Enqueue(func(ctx context.Context) {
		w.resolver.Attack(ctx, attacker, target)
		// next strike of a dual wield sequence uses the other hand
		if dw, ok := attacker.(interface{ ToggleDualWield() }); ok {
			dw.ToggleDualWield()
		}
	})
	if err != nil {
		return fmt.Errorf("queueing attack on %d: %w", targetID, err)
	}
	return nil
}

// DamageOverTime queues a periodic damage tick on the target's landblock.
func (w *World) DamageOverTime(targetID uint32, amount float64, d model.DamageType) error {
	target, lb, ok := w.Object(targetID)
	if !ok {
		return fmt.Errorf("target %d: %w", targetID, ErrUnknownObject)
	}
	err := lb.Enqueue(func(context.Context) {
		w.resolver.TakeDamageOverTime(target, amount, d)
	})
	if err != nil {
		return fmt.Errorf("queueing damage over time on %d: %w", targetID, err)
	}
	return nil
}

// Tick runs one tick of every landblock concurrently.
func (w *World) Tick(ctx context.Context) error {
	landblocks := w.Landblocks()

	ctx, span := w.tracer.Start(ctx, "world.Tick",
		trace.WithAttributes(attribute.Int("world.landblocks", len(landblocks))))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	for _, lb := range landblocks {
		g.Go(func() error {
			return lb.Tick(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("world tick: %w", err)
	}
	return nil
}

// Run ticks the world every TickInterval until ctx is cancelled.
func (w *World) Run(ctx context.Context) error {
	interval := w.cfg.TickInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("world started", "tick", interval)
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			slog.Info("world stopped")
			return nil
		case <-ticker.C:
			if err := w.Tick(ctx); err != nil && ctx.Err() == nil {
				return err
			}
		}
	}
}

// Stop stops every landblock.
func (w *World) Stop() {
	for _, lb := range w.Landblocks() {
		lb.Stop()
	}
}
