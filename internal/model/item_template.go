package model

// ItemTemplate — шаблон предмета (weenie).
// Содержит базовые характеристики, из которых фабрика создаёт конкретные Item.
type ItemTemplate struct {
	ClassID uint32 // Template ID (unique)
	Name    string
	Type    ItemType

	ValidSlots  SlotSet
	Encumbrance int32
	Value       int32
	MaxStack    int32 // 0 or 1 for non-stackable items

	// Weapon stats
	CombatStyle    CombatStyle
	DamageMin      float64
	DamageMax      float64
	DamageType     DamageType
	AmmoLauncher   bool    // bows, crossbows, atlatls consume ammo from the ammo slot
	WeaponOffense  float64 // attack skill multiplier, 0 = 1.0
	WeaponDefense  float64 // melee defense multiplier, 0 = 1.0
	CritFrequency  float64 // 0 = server default
	CritMultiplier float64 // 0 = server default
	SlayerType     string  // creature type this weapon slays
	SlayerDamage   float64 // multiplier against SlayerType
	ElementalBonus float64 // flat bonus added for launchers when the damage type matches
	IgnoreResist   bool

	// Armor stats (worn armor and shields)
	ArmorLevel  float64
	ArmorResist Resistances
}

// ItemType определяет категорию предмета.
type ItemType int32

const (
	ItemTypeMisc ItemType = iota
	ItemTypeMeleeWeapon
	ItemTypeMissileWeapon
	ItemTypeAmmo
	ItemTypeCaster
	ItemTypeArmor
	ItemTypeClothing
	ItemTypeJewelry
)

// String returns human-readable item type name.
func (it ItemType) String() string {
	switch it {
	case ItemTypeMisc:
		return "Misc"
	case ItemTypeMeleeWeapon:
		return "MeleeWeapon"
	case ItemTypeMissileWeapon:
		return "MissileWeapon"
	case ItemTypeAmmo:
		return "Ammo"
	case ItemTypeCaster:
		return "Caster"
	case ItemTypeArmor:
		return "Armor"
	case ItemTypeClothing:
		return "Clothing"
	case ItemTypeJewelry:
		return "Jewelry"
	default:
		return "Unknown"
	}
}

// ParseItemType maps a stored name back to an ItemType.
func ParseItemType(name string) (ItemType, bool) {
	for it := ItemTypeMisc; it <= ItemTypeJewelry; it++ {
		if it.String() == name {
			return it, true
		}
	}
	return ItemTypeMisc, false
}

// HasDamage reports whether the template carries a usable damage range.
func (t *ItemTemplate) HasDamage() bool {
	return t.DamageMax > 0 && t.DamageMax >= t.DamageMin
}

// ArmorVs returns the armor level of a worn piece against a damage type. A
// template without per-type coefficients protects equally against all types.
func (t *ItemTemplate) ArmorVs(d DamageType) float64 {
	if t.ArmorResist == (Resistances{}) {
		return t.ArmorLevel
	}
	return t.ArmorLevel * t.ArmorResist.For(d)
}
