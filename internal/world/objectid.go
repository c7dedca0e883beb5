package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for all world entities.
//
// ID ranges (convention):
//
//	0x00000000 - 0x4FFFFFFF: Reserved (0 = invalid)
//	0x50000000 - 0x6FFFFFFF: Players
//	0x80000000 - 0xBFFFFFFF: Creatures
//	0xC0000000 - 0xFFFFFFFF: Items
type ObjectIDGenerator struct {
	nextPlayerID   atomic.Uint32
	nextCreatureID atomic.Uint32
	nextItemID     atomic.Uint32
}

const (
	playerIDBase   = 0x50000000
	creatureIDBase = 0x80000000
	itemIDBase     = 0xC0000000
)

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(playerIDBase)
	gen.nextCreatureID.Store(creatureIDBase)
	gen.nextItemID.Store(itemIDBase)
	return gen
}

// NextPlayerID generates next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextCreatureID generates next unique creature object ID.
func (g *ObjectIDGenerator) NextCreatureID() uint32 {
	return g.nextCreatureID.Add(1)
}

// NextItemID generates next unique item object ID.
func (g *ObjectIDGenerator) NextItemID() uint32 {
	return g.nextItemID.Add(1)
}

// Next allocates an item id. Lets the generator serve as the item
// factory's allocator.
func (g *ObjectIDGenerator) Next() uint32 {
	return g.NextItemID()
}

// IsPlayerID reports whether id lies in the player range.
func IsPlayerID(id uint32) bool {
	return id > playerIDBase && id < creatureIDBase
}
