package creature

import (
	"log/slog"

	"github.com/udisondev/acego/internal/model"
)

// AddToInventory stores an item in the pack. Returns false for nil, for an
// item that is already worn, or for a duplicate.
func (c *Creature) AddToInventory(item *model.Item) bool {
	if item == nil || item.IsEquipped() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.inventory {
		if it.ObjectID() == item.ObjectID() {
			return false
		}
	}
	c.inventory = append(c.inventory, item)
	return true
}

// RemoveFromInventory takes an item out of the pack.
func (c *Creature) RemoveFromInventory(itemID uint32) *model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.inventory {
		if it.ObjectID() == itemID {
			c.inventory = append(c.inventory[:i], c.inventory[i+1:]...)
			return it
		}
	}
	return nil
}

// Inventory returns the pack contents in insertion order.
func (c *Creature) Inventory() []*model.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*model.Item, len(c.inventory))
	copy(out, c.inventory)
	return out
}

// EquipInventoryItems wields every pack item that has a free valid slot.
// Run at spawn after treasure generation. Returns the number equipped.
func (c *Creature) EquipInventoryItems() int {
	n := 0
	for _, item := range c.Inventory() {
		slot := c.freeSlotFor(item)
		if slot == model.SlotNone {
			continue
		}
		if c.RemoveFromInventory(item.ObjectID()) == nil {
			continue
		}
		if !c.equip.TryEquip(item, slot) {
			c.AddToInventory(item)
			continue
		}
		n++
	}
	if n > 0 {
		slog.Debug("equipped inventory items", "creature", c.name, "id", c.id, "count", n)
	}
	return n
}

func (c *Creature) freeSlotFor(item *model.Item) model.SlotKind {
	for _, slot := range item.Template().ValidSlots.Slots() {
		if c.equip.ItemInSlot(slot) != nil {
			continue
		}
		if slot == model.SlotShield && c.equip.ItemInSlot(model.SlotTwoHanded) != nil {
			continue
		}
		if slot == model.SlotTwoHanded && (c.equip.ItemInSlot(model.SlotShield) != nil || c.equip.ItemInSlot(model.SlotMeleeWeapon) != nil) {
			continue
		}
		if slot == model.SlotMeleeWeapon && c.equip.ItemInSlot(model.SlotTwoHanded) != nil {
			continue
		}
		return slot
	}
	return model.SlotNone
}
