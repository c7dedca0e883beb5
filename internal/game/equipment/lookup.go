package equipment

import "github.com/udisondev/acego/internal/model"

func (m *Manager) firstLocked(match func(entry) bool) *model.Item {
	for _, e := range m.entries {
		if match(e) {
			return e.item
		}
	}
	return nil
}

func (m *Manager) first(match func(entry) bool) *model.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.firstLocked(match)
}

// Encumbrance returns the summed burden of every worn item.
func (m *Manager) Encumbrance() int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.encumbrance
}

// Value returns the summed value of every worn item.
func (m *Manager) Value() int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

// Len returns the number of worn items.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Has reports whether itemID is worn by this agent.
func (m *Manager) Has(itemID uint32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.index[itemID]
	return ok
}

// Item returns a worn item by id, or nil.
func (m *Manager) Item(itemID uint32) *model.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i, ok := m.index[itemID]; ok {
		return m.entries[i].item
	}
	return nil
}

// Items returns the worn items in equip order.
func (m *Manager) Items() []*model.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Item, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.item
	}
	return out
}

// Children returns a copy of the child attachment list.
func (m *Manager) Children() []Child {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Child, len(m.children))
	copy(out, m.children)
	return out
}

// ItemInSlot returns the first item worn in slot, or nil.
func (m *Manager) ItemInSlot(slot model.SlotKind) *model.Item {
	return m.first(func(e entry) bool { return e.slot == slot })
}

// Weapon returns the active melee weapon, falling back to the missile weapon.
func (m *Manager) Weapon(dualWieldAttack, alternate bool) *model.Item {
	if w := m.MeleeWeapon(dualWieldAttack, alternate); w != nil {
		return w
	}
	return m.MissileWeapon()
}

// MeleeWeapon returns the weapon for the next melee strike. During a dual
// wield sequence alternate=true means the next strike is the off hand.
func (m *Manager) MeleeWeapon(dualWieldAttack, alternate bool) *model.Item {
	if dualWieldAttack && alternate {
		return m.DualWieldWeapon()
	}
	return m.first(func(e entry) bool {
		return e.item.ParentLocation() == model.ParentRightHand &&
			(e.slot == model.SlotMeleeWeapon || e.slot == model.SlotTwoHanded)
	})
}

// DualWieldWeapon returns the off-hand weapon: a non-shield item in the
// shield slot.
func (m *Manager) DualWieldWeapon() *model.Item {
	return m.first(func(e entry) bool { return e.slot == model.SlotShield && !e.item.IsShield() })
}

// Shield returns the worn shield.
func (m *Manager) Shield() *model.Item {
	return m.first(func(e entry) bool { return e.slot == model.SlotShield && e.item.IsShield() })
}

// Wand returns the held caster.
func (m *Manager) Wand() *model.Item {
	return m.ItemInSlot(model.SlotHeld)
}

// MissileWeapon returns the missile weapon.
func (m *Manager) MissileWeapon() *model.Item {
	return m.ItemInSlot(model.SlotMissileWeapon)
}

// Ammo returns the item in the ammunition slot.
func (m *Manager) Ammo() *model.Item {
	return m.ItemInSlot(model.SlotMissileAmmo)
}

// MissileAmmo returns what a missile attack fires: the ammo slot item for
// launchers, the weapon itself for thrown weapons.
func (m *Manager) MissileAmmo() *model.Item {
	w := m.MissileWeapon()
	if w != nil && w.IsAmmoLauncher() {
		return m.Ammo()
	}
	return w
}

// Armor returns the worn piece covering the body part, or nil.
func (m *Manager) Armor(part model.BodyPart) *model.Item {
	slot := part.ArmorSlot()
	if slot == model.SlotNone {
		return nil
	}
	return m.ItemInSlot(slot)
}

// HandItemBurden returns the burden of the active weapon plus the shield.
func (m *Manager) HandItemBurden(dualWieldAttack, alternate bool) int32 {
	var burden int32
	if w := m.Weapon(dualWieldAttack, alternate); w != nil {
		burden += w.Encumbrance()
	}
	if s := m.Shield(); s != nil {
		burden += s.Encumbrance()
	}
	return burden
}
