package equipment

import "github.com/udisondev/acego/internal/model"

// View is the read-only equip state handed to a Policy. It is only valid for
// the duration of the CanEquip call.
type View interface {
	ItemInSlot(slot model.SlotKind) *model.Item
}

// Policy decides whether an item may be wielded in a slot.
type Policy interface {
	CanEquip(v View, item *model.Item, slot model.SlotKind) bool
}

// PermissivePolicy accepts every slot.
type PermissivePolicy struct{}

// CanEquip implements Policy.
func (PermissivePolicy) CanEquip(View, *model.Item, model.SlotKind) bool { return true }

// StrictPolicy rejects occupied slots, slots the template is not valid for,
// and a two-handed weapon together with anything in the off hand.
type StrictPolicy struct{}

// CanEquip implements Policy.
func (StrictPolicy) CanEquip(v View, item *model.Item, slot model.SlotKind) bool {
	if valid := item.Template().ValidSlots; valid != 0 && !valid.Has(slot) {
		return false
	}
	if v.ItemInSlot(slot) != nil {
		return false
	}
	switch slot {
	case model.SlotTwoHanded:
		return v.ItemInSlot(model.SlotShield) == nil && v.ItemInSlot(model.SlotMeleeWeapon) == nil
	case model.SlotShield, model.SlotMeleeWeapon:
		return v.ItemInSlot(model.SlotTwoHanded) == nil
	}
	return true
}
