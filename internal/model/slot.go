package model

import "strings"

// SlotKind — слот, который занимает надетый предмет.
// Each equipped item occupies exactly one SlotKind; an item template may be
// valid for several of them (see SlotSet).
type SlotKind int32

const (
	SlotNone SlotKind = iota

	// Hand slots. These are the only slots that can produce a child attachment.
	SlotMeleeWeapon
	SlotTwoHanded
	SlotMissileWeapon
	SlotShield
	SlotHeld
	SlotMissileAmmo

	// Worn slots.
	SlotHeadWear
	SlotChestArmor
	SlotAbdomenArmor
	SlotUpperArmArmor
	SlotLowerArmArmor
	SlotHandWear
	SlotUpperLegArmor
	SlotLowerLegArmor
	SlotFootWear
	SlotNecklace
	SlotRing

	slotKindCount
)

var slotNames = [slotKindCount]string{
	SlotNone:          "None",
	SlotMeleeWeapon:   "MeleeWeapon",
	SlotTwoHanded:     "TwoHanded",
	SlotMissileWeapon: "MissileWeapon",
	SlotShield:        "Shield",
	SlotHeld:          "Held",
	SlotMissileAmmo:   "MissileAmmo",
	SlotHeadWear:      "HeadWear",
	SlotChestArmor:    "ChestArmor",
	SlotAbdomenArmor:  "AbdomenArmor",
	SlotUpperArmArmor: "UpperArmArmor",
	SlotLowerArmArmor: "LowerArmArmor",
	SlotHandWear:      "HandWear",
	SlotUpperLegArmor: "UpperLegArmor",
	SlotLowerLegArmor: "LowerLegArmor",
	SlotFootWear:      "FootWear",
	SlotNecklace:      "Necklace",
	SlotRing:          "Ring",
}

// String returns the slot name.
func (s SlotKind) String() string {
	if s < 0 || s >= slotKindCount {
		return "Unknown"
	}
	return slotNames[s]
}

// ParseSlotKind maps a slot name (case-insensitive) back to its SlotKind.
func ParseSlotKind(name string) (SlotKind, bool) {
	for i, n := range slotNames {
		if strings.EqualFold(n, name) {
			return SlotKind(i), true
		}
	}
	return SlotNone, false
}

// Selectable reports whether an item in this slot is held in a hand and can be
// seen by other players.
func (s SlotKind) Selectable() bool {
	switch s {
	case SlotMeleeWeapon, SlotTwoHanded, SlotMissileWeapon, SlotShield, SlotHeld:
		return true
	default:
		return false
	}
}

// IsMissileAmmo reports whether the slot is the ammunition slot.
func (s SlotKind) IsMissileAmmo() bool {
	return s == SlotMissileAmmo
}

// IsWorn reports whether the slot is a clothing/armor slot.
func (s SlotKind) IsWorn() bool {
	return s >= SlotHeadWear && s < slotKindCount
}

// SlotSet — набор допустимых слотов шаблона предмета.
type SlotSet uint32

// NewSlotSet builds a set from the given slots.
func NewSlotSet(slots ...SlotKind) SlotSet {
	var set SlotSet
	for _, s := range slots {
		set = set.With(s)
	}
	return set
}

// With returns a copy of the set that also contains s.
func (set SlotSet) With(s SlotKind) SlotSet {
	if s <= SlotNone || s >= slotKindCount {
		return set
	}
	return set | 1<<uint(s)
}

// Has reports whether s is in the set.
func (set SlotSet) Has(s SlotKind) bool {
	if s <= SlotNone || s >= slotKindCount {
		return false
	}
	return set&(1<<uint(s)) != 0
}

// Slots returns the members of the set in SlotKind order.
func (set SlotSet) Slots() []SlotKind {
	var out []SlotKind
	for s := SlotNone + 1; s < slotKindCount; s++ {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// Placement — поза предмета в руке (визуальная).
type Placement int32

const (
	PlacementDefault Placement = iota
	PlacementRightHandCombat
	PlacementRightHandNonCombat
	PlacementLeftHand
	PlacementShield
	PlacementResting
)

// String returns the placement name.
func (p Placement) String() string {
	switch p {
	case PlacementDefault:
		return "Default"
	case PlacementRightHandCombat:
		return "RightHandCombat"
	case PlacementRightHandNonCombat:
		return "RightHandNonCombat"
	case PlacementLeftHand:
		return "LeftHand"
	case PlacementShield:
		return "Shield"
	case PlacementResting:
		return "Resting"
	default:
		return "Unknown"
	}
}

// ParentLocation — точка крепления предмета к телу владельца.
type ParentLocation int32

const (
	ParentNone ParentLocation = iota
	ParentRightHand
	ParentLeftHand
	ParentShield
	ParentBelt
	ParentQuiver
	ParentLeftWeapon
)

// String returns the parent location name.
func (p ParentLocation) String() string {
	switch p {
	case ParentNone:
		return "None"
	case ParentRightHand:
		return "RightHand"
	case ParentLeftHand:
		return "LeftHand"
	case ParentShield:
		return "Shield"
	case ParentBelt:
		return "Belt"
	case ParentQuiver:
		return "Quiver"
	case ParentLeftWeapon:
		return "LeftWeapon"
	default:
		return "Unknown"
	}
}
