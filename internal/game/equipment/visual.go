package equipment

import "github.com/udisondev/acego/internal/model"

// Child — визуальная проекция предмета в руке владельца.
// Derived from the equip map; never authoritative.
type Child struct {
	ItemID    uint32
	Slot      model.SlotKind
	Placement model.Placement
	Parent    model.ParentLocation
}

// IsInChildLocation reports whether an item worn in slot is attached to the
// wielder's body and therefore gets a child entry.
func IsInChildLocation(slot model.SlotKind) bool {
	return slot.Selectable() || slot.IsMissileAmmo()
}

// SlotVisual returns the placement and parent location of an item worn in
// slot. Items outside a child location map to (Default, None); callers clear
// those to a resting placement.
func SlotVisual(item *model.Item, slot model.SlotKind) (model.Placement, model.ParentLocation) {
	switch slot {
	case model.SlotMeleeWeapon, model.SlotTwoHanded:
		return model.PlacementRightHandCombat, model.ParentRightHand
	case model.SlotShield:
		if item.IsShield() {
			return model.PlacementShield, model.ParentShield
		}
		return model.PlacementRightHandCombat, model.ParentLeftWeapon
	case model.SlotMissileWeapon:
		switch item.Template().CombatStyle {
		case model.CombatStyleBow, model.CombatStyleCrossbow:
			return model.PlacementLeftHand, model.ParentLeftHand
		default:
			return model.PlacementRightHandCombat, model.ParentRightHand
		}
	case model.SlotMissileAmmo, model.SlotHeld:
		return model.PlacementRightHandCombat, model.ParentRightHand
	default:
		return model.PlacementDefault, model.ParentNone
	}
}
