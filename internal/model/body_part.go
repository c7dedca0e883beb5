package model

// BodyPart — часть тела, по которой пришёлся удар.
type BodyPart int32

const (
	BodyPartHead BodyPart = iota
	BodyPartChest
	BodyPartAbdomen
	BodyPartUpperArm
	BodyPartLowerArm
	BodyPartHand
	BodyPartUpperLeg
	BodyPartLowerLeg
	BodyPartFoot
)

// String returns the body part name.
func (b BodyPart) String() string {
	switch b {
	case BodyPartHead:
		return "Head"
	case BodyPartChest:
		return "Chest"
	case BodyPartAbdomen:
		return "Abdomen"
	case BodyPartUpperArm:
		return "UpperArm"
	case BodyPartLowerArm:
		return "LowerArm"
	case BodyPartHand:
		return "Hand"
	case BodyPartUpperLeg:
		return "UpperLeg"
	case BodyPartLowerLeg:
		return "LowerLeg"
	case BodyPartFoot:
		return "Foot"
	default:
		return "Unknown"
	}
}

// DamageLocation is the index reported to the defender's client.
func (b BodyPart) DamageLocation() int32 {
	return int32(b)
}

// ArmorSlot returns the worn slot that covers this body part.
func (b BodyPart) ArmorSlot() SlotKind {
	switch b {
	case BodyPartHead:
		return SlotHeadWear
	case BodyPartChest:
		return SlotChestArmor
	case BodyPartAbdomen:
		return SlotAbdomenArmor
	case BodyPartUpperArm:
		return SlotUpperArmArmor
	case BodyPartLowerArm:
		return SlotLowerArmArmor
	case BodyPartHand:
		return SlotHandWear
	case BodyPartUpperLeg:
		return SlotUpperLegArmor
	case BodyPartLowerLeg:
		return SlotLowerLegArmor
	case BodyPartFoot:
		return SlotFootWear
	default:
		return SlotNone
	}
}

// bodyPartsByHeight — части тела, доступные для удара на каждой высоте.
var bodyPartsByHeight = map[AttackHeight][]BodyPart{
	AttackHeightHigh:   {BodyPartHead, BodyPartChest, BodyPartUpperArm},
	AttackHeightMedium: {BodyPartChest, BodyPartAbdomen, BodyPartUpperArm, BodyPartLowerArm, BodyPartHand, BodyPartUpperLeg},
	AttackHeightLow:    {BodyPartUpperLeg, BodyPartLowerLeg, BodyPartFoot},
}

// BodyPartsAt returns the candidate body parts for an attack height, in a
// fixed order. The slice must not be modified.
func BodyPartsAt(h AttackHeight) []BodyPart {
	return bodyPartsByHeight[h]
}

// BodyPartArmor is a creature's natural armor record for one body part.
// Effective armor vs a damage type is BaseArmor × Resist.For(damageType); an
// empty Resist record protects equally against all types.
type BodyPartArmor struct {
	BaseArmor float64     `yaml:"base_armor"`
	Resist    Resistances `yaml:"resist"`
}

// ArmorVs returns the effective armor level against the damage type.
func (p BodyPartArmor) ArmorVs(d DamageType) float64 {
	if p.Resist == (Resistances{}) {
		return p.BaseArmor
	}
	return p.BaseArmor * p.Resist.For(d)
}
