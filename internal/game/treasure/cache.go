package treasure

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrTableNotFound is returned when a table id has no entries.
var ErrTableNotFound = errors.New("treasure table not found")

// Source loads the flat entries of a wielded treasure table.
//
//go:generate mockgen -destination=mock/mock_source.go -package=mocktreasure -source=cache.go
type Source interface {
	WieldedTreasure(ctx context.Context, tableID uint32) ([]Entry, error)
}

// StaticSource serves tables from memory.
type StaticSource map[uint32][]Entry

// WieldedTreasure implements Source.
func (s StaticSource) WieldedTreasure(_ context.Context, tableID uint32) ([]Entry, error) {
	return s[tableID], nil
}

// Cache keeps built tables by id. Concurrent misses for the same id share a
// single load.
type Cache struct {
	src   Source
	limit int

	mu     sync.RWMutex
	tables map[uint32]*Table
	group  singleflight.Group
}

// NewCache creates a cache over src. limit <= 0 means unbounded.
func NewCache(src Source, limit int) *Cache {
	return &Cache{
		src:    src,
		limit:  limit,
		tables: make(map[uint32]*Table),
	}
}

// Get returns the table, loading and building it on a miss.
func (c *Cache) Get(ctx context.Context, id uint32) (*Table, error) {
	c.mu.RLock()
	t, ok := c.tables[id]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	v, err, _ := c.group.Do(strconv.FormatUint(uint64(id), 10), func() (any, error) {
		entries, err := c.src.WieldedTreasure(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading treasure table %d: %w", id, err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("treasure table %d: %w", id, ErrTableNotFound)
		}
		t, err := BuildTable(id, entries)
		if err != nil {
			return nil, err
		}
		c.store(t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

func (c *Cache) store(t *Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.limit > 0 && len(c.tables) >= c.limit {
		for id := range c.tables {
			delete(c.tables, id)
			break
		}
	}
	c.tables[t.ID] = t
}

// Invalidate drops a cached table.
func (c *Cache) Invalidate(id uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, id)
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}
