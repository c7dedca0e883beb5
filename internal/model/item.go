package model

import (
	"fmt"
	"sync"
)

// Item — конкретный экземпляр предмета (weapon, armor, ammo, etc.).
// Items are created by an external factory; the equipment manager only
// changes their wield and child-attachment fields.
type Item struct {
	objectID uint32
	template *ItemTemplate

	wielderID uint32   // 0 если не надет
	slot      SlotKind // SlotNone если не надет
	placement Placement
	parent    ParentLocation

	stackSize int32
	palette   int32
	shade     float64

	mu sync.RWMutex
}

// NewItem создаёт новый предмет с валидацией.
func NewItem(objectID uint32, template *ItemTemplate) (*Item, error) {
	if template == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}
	if objectID == 0 {
		return nil, fmt.Errorf("objectID must be non-zero")
	}
	return &Item{
		objectID:  objectID,
		template:  template,
		placement: PlacementResting,
		stackSize: 1,
	}, nil
}

// ObjectID возвращает unique ID в world.
func (i *Item) ObjectID() uint32 {
	return i.objectID
}

// Template возвращает ItemTemplate (immutable).
func (i *Item) Template() *ItemTemplate {
	return i.template
}

// Name возвращает название предмета из template.
func (i *Item) Name() string {
	return i.template.Name
}

// Encumbrance returns the burden of the whole stack.
func (i *Item) Encumbrance() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.template.Encumbrance * i.stackSize
}

// Value returns the monetary value of the whole stack.
func (i *Item) Value() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.template.Value * i.stackSize
}

// IsShield reports whether the item is a real shield (armor-type) rather than
// an off-hand weapon.
func (i *Item) IsShield() bool {
	return i.template.Type == ItemTypeArmor
}

// IsAmmoLauncher reports whether the missile weapon consumes ammo.
func (i *Item) IsAmmoLauncher() bool {
	return i.template.AmmoLauncher
}

// WielderID возвращает objectID владельца (0 если не надет).
func (i *Item) WielderID() uint32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.wielderID
}

// Slot возвращает занятый слот (SlotNone если не надет).
func (i *Item) Slot() SlotKind {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slot
}

// IsEquipped возвращает true если предмет надет.
func (i *Item) IsEquipped() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slot != SlotNone
}

// SetWielded marks the item as worn by wielderID in slot.
func (i *Item) SetWielded(wielderID uint32, slot SlotKind) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.wielderID = wielderID
	i.slot = slot
}

// ClearWielded clears wielder and slot.
func (i *Item) ClearWielded() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.wielderID = 0
	i.slot = SlotNone
}

// Placement returns the visual placement.
func (i *Item) Placement() Placement {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.placement
}

// ParentLocation returns where the item is attached to its wielder.
func (i *Item) ParentLocation() ParentLocation {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.parent
}

// SetChild sets the child-attachment fields.
func (i *Item) SetChild(placement Placement, parent ParentLocation) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.placement = placement
	i.parent = parent
}

// ClearChild resets the item to a resting placement without parent.
func (i *Item) ClearChild() {
	i.SetChild(PlacementResting, ParentNone)
}

// StackSize возвращает размер стака.
func (i *Item) StackSize() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.stackSize
}

// SetStackSize устанавливает размер стака с валидацией.
func (i *Item) SetStackSize(n int32) error {
	if n <= 0 {
		return fmt.Errorf("stack size must be > 0, got %d", n)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stackSize = n
	return nil
}

// Palette returns the palette template override (0 = template default).
func (i *Item) Palette() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.palette
}

// Shade returns the shade override (0 = template default).
func (i *Item) Shade() float64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.shade
}

// SetAppearance applies palette and shade overrides.
func (i *Item) SetAppearance(palette int32, shade float64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.palette = palette
	i.shade = shade
}
