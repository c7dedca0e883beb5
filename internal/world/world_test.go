package world

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/udisondev/acego/internal/config"
	"github.com/udisondev/acego/internal/data"
	"github.com/udisondev/acego/internal/game/combat"
	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/game/event"
	"github.com/udisondev/acego/internal/game/treasure"
	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/rnd"
	"github.com/udisondev/acego/internal/testutil"
)

type outcomes struct {
	mu   sync.Mutex
	list []combat.Outcome
}

func (o *outcomes) observe(out combat.Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.list = append(o.list, out)
}

func (o *outcomes) all() []combat.Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]combat.Outcome(nil), o.list...)
}

type fixture struct {
	world   *World
	catalog *data.Catalog
	seen    *outcomes
	events  *event.Recorder
}

func newFixture(t *testing.T, seed uint64) *fixture {
	t.Helper()

	catalog, err := data.Defaults()
	require.NoError(t, err)

	rng := rnd.New(seed)
	ids := NewObjectIDGenerator()
	rec := &event.Recorder{}
	seen := &outcomes{}

	resolver := combat.NewResolver(rng, rec, config.DefaultCombat(), combat.WithObserver(seen.observe))
	gen := treasure.NewGenerator(rng, treasure.NewCache(catalog.Treasure, 16), data.NewFactory(catalog.Items, ids))

	cfg := config.DefaultGameServer().World
	w := New(cfg, resolver, WithTreasure(gen), WithIDGenerator(ids), WithSink(rec))
	return &fixture{world: w, catalog: catalog, seen: seen, events: rec}
}

func (f *fixture) def(t *testing.T, classID uint32) *data.CreatureDef {
	t.Helper()
	def, ok := f.catalog.Creature(classID)
	require.True(t, ok, "creature %d", classID)
	return def
}

func TestObjectIDGenerator(t *testing.T) {
	g := NewObjectIDGenerator()

	p := g.NextPlayerID()
	c := g.NextCreatureID()
	i := g.Next()

	assert.True(t, IsPlayerID(p))
	assert.False(t, IsPlayerID(c))
	assert.False(t, IsPlayerID(i))
	assert.Less(t, p, c)
	assert.Less(t, c, i)

	var wg sync.WaitGroup
	ids := make([][]uint32, 8)
	for n := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				ids[n] = append(ids[n], g.NextItemID())
			}
		}()
	}
	wg.Wait()

	seen := make(map[uint32]bool)
	for _, batch := range ids {
		for _, id := range batch {
			assert.False(t, seen[id], "duplicate id %x", id)
			seen[id] = true
		}
	}
}

func TestWorld_SpawnCreatureEquipsTreasure(t *testing.T) {
	f := newFixture(t, 1)
	loc := model.NewLocation(0xA9B4, 10, 20, 0, 0)

	scout, err := f.world.SpawnCreature(context.Background(), f.def(t, 2003), loc)
	require.NoError(t, err)

	eq := scout.Equipment()
	require.NotNil(t, eq.MissileWeapon())
	assert.Equal(t, "Yumi", eq.MissileWeapon().Name())
	require.NotNil(t, eq.Ammo())
	assert.Equal(t, "Arrow", eq.Ammo().Name())
	assert.Equal(t, model.CombatTypeMissile, scout.AttackType())

	got, lb, ok := f.world.Object(scout.ObjectID())
	require.True(t, ok)
	assert.Same(t, scout, got)
	assert.Equal(t, uint16(0xA9B4), lb.ID())
	assert.Equal(t, loc, scout.Location())
	assert.NotEmpty(t, f.events.OfKind(event.KindEquipVisualChanged))
}

func TestWorld_SpawnWithMissingTreasureTable(t *testing.T) {
	f := newFixture(t, 1)

	def := *f.def(t, 2001)
	def.TreasureTableID = 999

	c, err := f.world.SpawnCreature(context.Background(), &def, model.NewLocation(1, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, c.Equipment().Len())
	assert.Equal(t, 1, f.world.Landblock(1).Len())
}

func TestWorld_AttackRunsOnTargetTick(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	drudge, err := f.world.SpawnCreature(ctx, f.def(t, 2001), model.NewLocation(1, 0, 0, 0, 0))
	require.NoError(t, err)
	scout, err := f.world.SpawnCreature(ctx, f.def(t, 2003), model.NewLocation(2, 0, 0, 0, 0))
	require.NoError(t, err)

	require.NoError(t, f.world.Attack(drudge.ObjectID(), scout.ObjectID()))
	assert.Equal(t, 1, f.world.Landblock(2).Pending())
	assert.Zero(t, f.world.Landblock(1).Pending())
	assert.Empty(t, f.seen.all(), "nothing resolves before the tick")

	require.NoError(t, f.world.Tick(ctx))

	out := f.seen.all()
	require.Len(t, out, 1)
	assert.Equal(t, drudge.ObjectID(), out[0].AttackerID)
	assert.Equal(t, scout.ObjectID(), out[0].TargetID)
	assert.Contains(t, []combat.Result{combat.ResultHit, combat.ResultEvaded}, out[0].Result)
	assert.Equal(t, uint64(1), f.world.Landblock(2).Processed())
}

func TestWorld_ConcurrentAttackersKillOnce(t *testing.T) {
	f := newFixture(t, 7)
	ctx := context.Background()

	victimDef := *f.def(t, 2001)
	victimDef.Health = 1
	victimDef.BodyArmor = nil
	victimDef.TreasureTableID = 0
	victim, err := f.world.SpawnCreature(ctx, &victimDef, model.NewLocation(5, 0, 0, 0, 0))
	require.NoError(t, err)

	lugianDef := *f.def(t, 2002)
	lugianDef.TreasureTableID = 0

	var wg sync.WaitGroup
	for i := range 20 {
		lugian, err := f.world.SpawnCreature(ctx, &lugianDef, model.NewLocation(uint16(10+i%4), 0, 0, 0, 0))
		require.NoError(t, err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.world.Attack(lugian.ObjectID(), victim.ObjectID()))
		}()
	}
	wg.Wait()

	require.NoError(t, f.world.Tick(ctx))

	var hits, kills int
	for _, out := range f.seen.all() {
		if out.Result == combat.ResultHit {
			hits++
		}
		if out.Killed {
			kills++
		}
	}
	assert.LessOrEqual(t, kills, 1)
	assert.Equal(t, hits, kills, "every hit on a 1-health target kills it")
	assert.Len(t, f.events.OfKind(event.KindDied), kills)
	if kills == 1 {
		assert.True(t, victim.IsDead())
	}
}

func TestWorld_DamageOverTime(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	def := *f.def(t, 2001)
	def.TreasureTableID = 0
	c, err := f.world.SpawnCreature(ctx, &def, model.NewLocation(3, 0, 0, 0, 0))
	require.NoError(t, err)

	require.NoError(t, f.world.DamageOverTime(c.ObjectID(), 10, model.DamageNether))
	assert.Equal(t, def.Health, c.Vital(model.VitalHealth).Current)

	require.NoError(t, f.world.Tick(ctx))
	assert.Equal(t, def.Health-10, c.Vital(model.VitalHealth).Current)
	assert.Len(t, f.events.OfKind(event.KindPeriodicDamage), 1)
}

func TestWorld_UnknownObjects(t *testing.T) {
	f := newFixture(t, 1)

	err := f.world.Attack(1, 2)
	assert.ErrorIs(t, err, ErrUnknownObject)

	err = f.world.DamageOverTime(3, 1, model.DamageFire)
	assert.ErrorIs(t, err, ErrUnknownObject)

	err = f.world.Remove(4)
	assert.ErrorIs(t, err, ErrUnknownObject)
}

func TestWorld_AddAndRemovePlayer(t *testing.T) {
	f := newFixture(t, 1)

	p := creature.NewPlayer(f.world.IDs().NextPlayerID(), f.def(t, 2001).Stats())
	require.NoError(t, f.world.AddPlayer(p, model.NewLocation(7, 1, 2, 3, 0)))

	got, lb, ok := f.world.Object(p.ObjectID())
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Equal(t, uint16(7), lb.ID())

	require.NoError(t, f.world.Remove(p.ObjectID()))
	_, _, ok = f.world.Object(p.ObjectID())
	assert.False(t, ok)
	assert.Zero(t, lb.Len())
}

func TestWorld_PlayerEntersUnderLifestoneProtection(t *testing.T) {
	catalog, err := data.Defaults()
	require.NoError(t, err)

	rec := &event.Recorder{}
	seen := &outcomes{}
	lifestones := combat.NewLifestoneTracker(time.Minute, rec)
	resolver := combat.NewResolver(rnd.New(5), rec, config.DefaultCombat(),
		combat.WithLifestoneTracker(lifestones),
		combat.WithObserver(seen.observe))
	w := New(config.DefaultGameServer().World, resolver, WithLifestones(lifestones), WithSink(rec))
	ctx := context.Background()

	def, ok := catalog.Creature(2001)
	require.True(t, ok)
	drudgeDef := *def
	drudgeDef.TreasureTableID = 0
	drudge, err := w.SpawnCreature(ctx, &drudgeDef, model.NewLocation(1, 0, 0, 0, 0))
	require.NoError(t, err)

	p := creature.NewPlayer(w.IDs().NextPlayerID(), drudgeDef.Stats())
	require.NoError(t, w.AddPlayer(p, model.NewLocation(1, 5, 0, 0, 0)))
	assert.True(t, p.UnderLifestoneProtection())
	assert.True(t, lifestones.IsProtected(p.ObjectID()))

	require.NoError(t, w.Attack(drudge.ObjectID(), p.ObjectID()))
	require.NoError(t, w.Tick(ctx))
	out := seen.all()
	require.Len(t, out, 1)
	assert.Equal(t, combat.ResultProtected, out[0].Result)
	assert.Equal(t, drudgeDef.Health, p.Vital(model.VitalHealth).Current)

	require.NoError(t, w.Attack(p.ObjectID(), drudge.ObjectID()))
	require.NoError(t, w.Tick(ctx))
	assert.False(t, p.UnderLifestoneProtection(), "attacking ends protection")
	assert.False(t, lifestones.IsProtected(p.ObjectID()))
}

func TestWorld_RemoveEndsLifestoneProtection(t *testing.T) {
	catalog, err := data.Defaults()
	require.NoError(t, err)
	def, ok := catalog.Creature(2001)
	require.True(t, ok)

	lifestones := combat.NewLifestoneTracker(time.Minute, nil)
	resolver := combat.NewResolver(rnd.New(1), nil, config.DefaultCombat(), combat.WithLifestoneTracker(lifestones))
	w := New(config.DefaultGameServer().World, resolver, WithLifestones(lifestones))

	p := creature.NewPlayer(w.IDs().NextPlayerID(), def.Stats())
	require.NoError(t, w.AddPlayer(p, model.NewLocation(2, 0, 0, 0, 0)))
	require.True(t, lifestones.IsProtected(p.ObjectID()))

	require.NoError(t, w.Remove(p.ObjectID()))
	assert.False(t, lifestones.IsProtected(p.ObjectID()))
	assert.False(t, p.UnderLifestoneProtection())
}

func TestWorld_AttackAlternatesDualWield(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	axe := &model.ItemTemplate{
		ClassID:     9001,
		Name:        "Axe",
		Type:        model.ItemTypeMeleeWeapon,
		ValidSlots:  model.NewSlotSet(model.SlotMeleeWeapon, model.SlotShield),
		CombatStyle: model.CombatStyleOneHanded,
		DamageMin:   5,
		DamageMax:   10,
		DamageType:  model.DamageSlash,
	}

	def := *f.def(t, 2002)
	def.TreasureTableID = 0
	attacker, err := f.world.SpawnCreature(ctx, &def, model.NewLocation(4, 0, 0, 0, 0))
	require.NoError(t, err)
	target, err := f.world.SpawnCreature(ctx, &def, model.NewLocation(4, 1, 0, 0, 0))
	require.NoError(t, err)

	main, err := model.NewItem(f.world.IDs().NextItemID(), axe)
	require.NoError(t, err)
	off, err := model.NewItem(f.world.IDs().NextItemID(), axe)
	require.NoError(t, err)
	require.True(t, attacker.Equipment().TryEquip(main, model.SlotMeleeWeapon))
	require.True(t, attacker.Equipment().TryEquip(off, model.SlotShield))
	attacker.SetAttack(creature.AttackContext{Mode: model.CombatModeMelee, DualWieldAttack: true})

	assert.Same(t, main, attacker.Weapon())
	require.NoError(t, f.world.Attack(attacker.ObjectID(), target.ObjectID()))
	require.NoError(t, f.world.Tick(ctx))
	assert.True(t, attacker.Attack().DualWieldAlternate)
	assert.Same(t, off, attacker.Weapon(), "second strike uses the off hand")

	require.NoError(t, f.world.Attack(attacker.ObjectID(), target.ObjectID()))
	require.NoError(t, f.world.Tick(ctx))
	assert.Same(t, main, attacker.Weapon())
}

func TestWorld_StoppedLandblockRejectsWork(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	a, err := f.world.SpawnCreature(ctx, f.def(t, 2002), model.NewLocation(1, 0, 0, 0, 0))
	require.NoError(t, err)
	b, err := f.world.SpawnCreature(ctx, f.def(t, 2001), model.NewLocation(1, 0, 0, 0, 0))
	require.NoError(t, err)

	f.world.Stop()

	err = f.world.Attack(a.ObjectID(), b.ObjectID())
	assert.ErrorIs(t, err, ErrLandblockStopped)

	_, err = f.world.SpawnCreature(ctx, f.def(t, 2001), model.NewLocation(1, 0, 0, 0, 0))
	assert.ErrorIs(t, err, ErrLandblockStopped)
}

func TestWorld_RunStopsOnCancel(t *testing.T) {
	cfg := config.DefaultGameServer().World
	cfg.TickInterval = time.Millisecond
	w := New(cfg, combat.NewResolver(rnd.New(1), nil, config.DefaultCombat()))

	ran := make(chan struct{})
	require.NoError(t, w.Landblock(1).Enqueue(func(context.Context) { close(ran) }))

	ctx, cancel := testutil.ContextWithCancel(t)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("queued action did not run")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, w.Landblock(1).Stopped())
}

func TestLandblock_Queue(t *testing.T) {
	lb := NewLandblock(1, 2, New(config.World{}, nil).tracer)
	ctx := context.Background()

	var order []int
	require.NoError(t, lb.Enqueue(func(context.Context) {
		order = append(order, 1)
		// runs on the next tick
		require.NoError(t, lb.Enqueue(func(context.Context) { order = append(order, 3) }))
	}))
	require.NoError(t, lb.Enqueue(func(context.Context) { order = append(order, 2) }))
	assert.ErrorIs(t, lb.Enqueue(func(context.Context) {}), ErrQueueFull)

	require.NoError(t, lb.Tick(ctx))
	assert.Equal(t, []int{1, 2}, order)

	require.NoError(t, lb.Tick(ctx))
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, uint64(3), lb.Processed())
}

func TestLandblock_TickHonoursCancel(t *testing.T) {
	lb := NewLandblock(1, 4, New(config.World{}, nil).tracer)
	require.NoError(t, lb.Enqueue(func(context.Context) {}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := lb.Tick(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, lb.Processed())
}

func TestWorld_TickSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	w := New(config.World{LandblockQueueSize: 4},
		combat.NewResolver(rnd.New(1), nil, config.DefaultCombat()),
		WithTracer(tp.Tracer("test")))
	require.NoError(t, w.Landblock(9).Enqueue(func(context.Context) {}))
	w.Landblock(10) // idle landblocks produce no span

	require.NoError(t, w.Tick(context.Background()))

	names := make(map[string]int)
	for _, s := range exporter.GetSpans() {
		names[s.Name]++
	}
	assert.Equal(t, map[string]int{"world.Tick": 1, "landblock.Tick": 1}, names)
}
