package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/udisondev/acego/internal/data"
	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/rnd"
	"github.com/udisondev/acego/internal/world"
)

// arenaLandblock hosts the demo population.
const arenaLandblock = 0xA9B4

// populate spawns one of every catalog creature into the arena.
func populate(ctx context.Context, w *world.World, catalog *data.Catalog) ([]*creature.Creature, error) {
	ids := make([]uint32, 0, len(catalog.Creatures))
	for id := range catalog.Creatures {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]*creature.Creature, 0, len(ids))
	for i, id := range ids {
		def := catalog.Creatures[id]
		loc := model.NewLocation(arenaLandblock, float32(10*i), 0, 0, 0)
		c, err := w.SpawnCreature(ctx, def, loc)
		if err != nil {
			return nil, fmt.Errorf("spawning %s: %w", def.Name, err)
		}
		c.SetCombatMode(model.CombatModeMelee)
		out = append(out, c)
	}
	return out, nil
}

// addChampion places a player built from the first catalog creature in the
// arena. The player enters under lifestone protection and keeps it until its
// own first attack.
func addChampion(w *world.World, catalog *data.Catalog) (*creature.Player, error) {
	ids := slices.Sorted(maps.Keys(catalog.Creatures))
	if len(ids) == 0 {
		return nil, errors.New("catalog has no creatures")
	}
	stats := catalog.Creatures[ids[0]].Stats()
	stats.Name = "Champion"
	stats.TreasureTableID = 0

	p := creature.NewPlayer(w.IDs().NextPlayerID(), stats)
	p.SetCombatMode(model.CombatModeMelee)
	if err := w.AddPlayer(p, model.NewLocation(arenaLandblock, -10, 0, 0, 0)); err != nil {
		return nil, fmt.Errorf("adding champion: %w", err)
	}
	return p, nil
}

// skirmish makes every living creature attack a random living opponent once
// per interval, until ctx is cancelled or a single creature is left standing.
func skirmish(ctx context.Context, w *world.World, rng rnd.Source, fighters []*creature.Creature, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		alive := fighters[:0:0]
		for _, c := range fighters {
			if !c.IsDead() {
				alive = append(alive, c)
			}
		}
		if len(alive) < 2 {
			if len(alive) == 1 {
				slog.Info("skirmish over", "winner", alive[0].Name())
			}
			return nil
		}

		for i, attacker := range alive {
			j := rng.IntRange(0, len(alive)-2)
			if j >= i {
				j++
			}
			err := w.Attack(attacker.ObjectID(), alive[j].ObjectID())
			if errors.Is(err, world.ErrLandblockStopped) {
				return nil
			}
			if err != nil {
				slog.Warn("skirmish attack", "attacker", attacker.Name(), "error", err)
			}
		}
	}
}
