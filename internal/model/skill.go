package model

// Skill — идентификатор навыка.
type Skill int32

const (
	SkillNone Skill = iota
	SkillLightWeapons
	SkillHeavyWeapons
	SkillFinesseWeapons
	SkillMissileWeapons
	SkillDualWield
	SkillWarMagic
	SkillVoidMagic
	SkillMeleeDefense
	SkillMissileDefense
	SkillMagicDefense
	SkillRecklessness
	SkillSneakAttack
	SkillShield
	SkillDirtyFighting
)

// String returns the skill name.
func (s Skill) String() string {
	switch s {
	case SkillLightWeapons:
		return "LightWeapons"
	case SkillHeavyWeapons:
		return "HeavyWeapons"
	case SkillFinesseWeapons:
		return "FinesseWeapons"
	case SkillMissileWeapons:
		return "MissileWeapons"
	case SkillDualWield:
		return "DualWield"
	case SkillWarMagic:
		return "WarMagic"
	case SkillVoidMagic:
		return "VoidMagic"
	case SkillMeleeDefense:
		return "MeleeDefense"
	case SkillMissileDefense:
		return "MissileDefense"
	case SkillMagicDefense:
		return "MagicDefense"
	case SkillRecklessness:
		return "Recklessness"
	case SkillSneakAttack:
		return "SneakAttack"
	case SkillShield:
		return "Shield"
	case SkillDirtyFighting:
		return "DirtyFighting"
	default:
		return "None"
	}
}

// AdvancementClass — уровень развития навыка.
type AdvancementClass int32

const (
	AdvancementUntrained AdvancementClass = iota
	AdvancementTrained
	AdvancementSpecialized
)

// TrainedOrBetter reports whether the class is Trained or Specialized.
func (a AdvancementClass) TrainedOrBetter() bool {
	return a >= AdvancementTrained
}

// CreatureSkill is one skill entry of an agent: its id, advancement class and
// current (buffed) value.
type CreatureSkill struct {
	Skill   Skill
	Class   AdvancementClass
	Current uint32
}

// Attribute — первичный атрибут.
type Attribute int32

const (
	AttributeStrength Attribute = iota
	AttributeEndurance
	AttributeCoordination
	AttributeQuickness
	AttributeFocus
	AttributeSelf
	attributeCount
)

// Attributes holds base attribute values indexed by Attribute.
type Attributes [attributeCount]uint32

// Get returns the value of the attribute (0 for an unknown id).
func (a Attributes) Get(attr Attribute) uint32 {
	if attr < 0 || attr >= attributeCount {
		return 0
	}
	return a[attr]
}
