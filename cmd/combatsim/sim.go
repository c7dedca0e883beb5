package main

import (
	"context"
	"fmt"

	"github.com/udisondev/acego/internal/config"
	"github.com/udisondev/acego/internal/data"
	"github.com/udisondev/acego/internal/game/combat"
	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/game/treasure"
	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/rnd"
	"github.com/udisondev/acego/internal/world"
)

// duelLandblock hosts both duelists so their attacks resolve in queue order.
const duelLandblock = 1

// Simulate runs every duel of the scenario. The same scenario and catalog
// always produce the same report.
func Simulate(ctx context.Context, s Scenario, catalog *data.Catalog, tuning config.Combat) (Report, error) {
	attackerDef, ok := catalog.Creature(s.Attacker.Creature)
	if !ok {
		return Report{}, fmt.Errorf("unknown attacker creature %d", s.Attacker.Creature)
	}
	defenderDef, ok := catalog.Creature(s.Defender.Creature)
	if !ok {
		return Report{}, fmt.Errorf("unknown defender creature %d", s.Defender.Creature)
	}
	attackerCtx, err := s.Attacker.attackContext()
	if err != nil {
		return Report{}, err
	}
	defenderCtx, err := s.Defender.attackContext()
	if err != nil {
		return Report{}, err
	}

	report := Report{Seed: s.Seed, Duels: s.Duels}
	report.Sides[0].Name = attackerDef.Name
	report.Sides[1].Name = defenderDef.Name

	rng := rnd.New(s.Seed)
	cache := treasure.NewCache(catalog.Treasure, 0)

	for range s.Duels {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		ids := world.NewObjectIDGenerator()
		sides := map[uint32]*SideStats{}
		observe := func(out combat.Outcome) {
			st, ok := sides[out.AttackerID]
			if !ok {
				return
			}
			st.record(out)
		}

		resolver := combat.NewResolver(rng, nil, tuning, combat.WithObserver(observe))
		gen := treasure.NewGenerator(rng, cache, data.NewFactory(catalog.Items, ids))
		w := world.New(config.World{LandblockQueueSize: 4}, resolver,
			world.WithTreasure(gen),
			world.WithIDGenerator(ids))

		loc := model.NewLocation(duelLandblock, 0, 0, 0, 0)
		a, err := w.SpawnCreature(ctx, attackerDef, loc)
		if err != nil {
			return report, err
		}
		d, err := w.SpawnCreature(ctx, defenderDef, loc.WithHeading(32768))
		if err != nil {
			return report, err
		}
		a.SetAttack(attackerCtx)
		d.SetAttack(defenderCtx)
		sides[a.ObjectID()] = &report.Sides[0]
		sides[d.ObjectID()] = &report.Sides[1]

		rounds, err := duel(ctx, w, a, d, s.MaxRounds)
		if err != nil {
			return report, err
		}
		report.Rounds += rounds

		switch {
		case d.IsDead():
			report.Sides[0].Wins++
		case a.IsDead():
			report.Sides[1].Wins++
		default:
			report.Draws++
		}
	}
	return report, nil
}

// duel alternates attacks until one side dies or maxRounds pass.
func duel(ctx context.Context, w *world.World, a, d *creature.Creature, maxRounds int) (int, error) {
	for round := 1; round <= maxRounds; round++ {
		if err := w.Attack(a.ObjectID(), d.ObjectID()); err != nil {
			return round, err
		}
		if err := w.Attack(d.ObjectID(), a.ObjectID()); err != nil {
			return round, err
		}
		if err := w.Tick(ctx); err != nil {
			return round, err
		}
		if a.IsDead() || d.IsDead() {
			return round, nil
		}
	}
	return maxRounds, nil
}
