package treasure

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/rnd"
)

// rockName is the template whose single-stack entries get a real stack.
const rockName = "Rock"

// ItemFactory creates item instances from template class ids.
type ItemFactory interface {
	Create(classID uint32) (*model.Item, error)
}

// Holder receives generated items.
type Holder interface {
	ObjectID() uint32
	TreasureTableID() uint32
	AddToInventory(item *model.Item) bool
}

// Generator rolls wielded treasure.
type Generator struct {
	rng     rnd.Source
	cache   *Cache
	factory ItemFactory
}

// NewGenerator creates a generator.
func NewGenerator(rng rnd.Source, cache *Cache, factory ItemFactory) *Generator {
	return &Generator{rng: rng, cache: cache, factory: factory}
}

// GenerateWieldedTreasure rolls every set of the holder's table and adds the
// created items to its inventory. A holder without a table gets nothing.
func (g *Generator) GenerateWieldedTreasure(ctx context.Context, holder Holder) ([]*model.Item, error) {
	id := holder.TreasureTableID()
	if id == 0 {
		return nil, nil
	}
	table, err := g.cache.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("generating wielded treasure for %d: %w", holder.ObjectID(), err)
	}

	var created []*model.Item
	for _, set := range table.Sets {
		created = g.generateSet(set, holder, created)
	}

	slog.Debug("wielded treasure generated",
		"holder", holder.ObjectID(),
		"table", id,
		"items", len(created))
	return created, nil
}

// GenerateSet rolls one set and returns the created items, subset included.
func (g *Generator) GenerateSet(set *Set, holder Holder) []*model.Item {
	return g.generateSet(set, holder, nil)
}

func (g *Generator) generateSet(set *Set, holder Holder, out []*model.Item) []*model.Item {
	if set == nil || len(set.Items) == 0 || set.TotalProbability <= 0 {
		return out
	}

	draw := g.rng.Range(0, set.TotalProbability)
	cumulative := 0.0
	for _, it := range set.Items {
		cumulative += it.Entry.Probability
		if draw > cumulative {
			continue
		}

		item, ok := g.createWieldedTreasure(it.Entry, holder)
		if !ok {
			continue
		}
		out = append(out, item)

		if it.Subset != nil {
			out = g.generateSet(it.Subset, holder, out)
		}
		break
	}
	return out
}

func (g *Generator) createWieldedTreasure(e Entry, holder Holder) (*model.Item, bool) {
	item, err := g.factory.Create(e.ClassID)
	if err != nil {
		slog.Warn("creating wielded treasure",
			"holder", holder.ObjectID(),
			"class", e.ClassID,
			"error", err)
		return nil, false
	}

	if e.Palette > 0 || e.Shade > 0 {
		palette, shade := item.Palette(), item.Shade()
		if e.Palette > 0 {
			palette = e.Palette
		}
		if e.Shade > 0 {
			shade = e.Shade
		}
		item.SetAppearance(palette, shade)
	}

	if e.StackSize > 0 {
		if err := item.SetStackSize(g.stackSize(item.Name(), e)); err != nil {
			slog.Warn("setting treasure stack size", "class", e.ClassID, "error", err)
		}
	}

	if !holder.AddToInventory(item) {
		return nil, false
	}
	return item, true
}

// stackSize returns the rolled stack size: fixed, or uniform in
// [round(size × variance), size] with a variance.
func (g *Generator) stackSize(name string, e Entry) int32 {
	size, variance := e.StackSize, e.StackSizeVariance
	if name == rockName && size == 1 && variance == 0 {
		size, variance = 10, 0.1
	}
	if variance <= 0 {
		return size
	}
	lo := int(math.Round(float64(size) * variance))
	n := g.rng.IntRange(lo, int(size))
	return int32(max(n, 1))
}
