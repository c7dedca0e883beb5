package model

// DamageType — тип урона оружия / заклинания.
type DamageType int32

const (
	DamageUndefined DamageType = iota
	DamageSlash
	DamagePierce
	DamageBludgeon
	DamageFire
	DamageCold
	DamageAcid
	DamageElectric
	DamageNether
)

// DamageTypes lists every concrete damage type in table order.
var DamageTypes = [...]DamageType{
	DamageSlash, DamagePierce, DamageBludgeon, DamageFire,
	DamageCold, DamageAcid, DamageElectric, DamageNether,
}

// String returns the damage type name.
func (d DamageType) String() string {
	switch d {
	case DamageSlash:
		return "Slash"
	case DamagePierce:
		return "Pierce"
	case DamageBludgeon:
		return "Bludgeon"
	case DamageFire:
		return "Fire"
	case DamageCold:
		return "Cold"
	case DamageAcid:
		return "Acid"
	case DamageElectric:
		return "Electric"
	case DamageNether:
		return "Nether"
	default:
		return "Undefined"
	}
}

// Resistances holds one coefficient per damage type. Used both for body-part
// armor and for worn armor/shield pieces.
type Resistances struct {
	Slash    float64 `yaml:"slash"`
	Pierce   float64 `yaml:"pierce"`
	Bludgeon float64 `yaml:"bludgeon"`
	Fire     float64 `yaml:"fire"`
	Cold     float64 `yaml:"cold"`
	Acid     float64 `yaml:"acid"`
	Electric float64 `yaml:"electric"`
	Nether   float64 `yaml:"nether"`
}

// UniformResistances returns a record with every coefficient set to v.
func UniformResistances(v float64) Resistances {
	return Resistances{v, v, v, v, v, v, v, v}
}

// Values returns the coefficients in DamageTypes order.
func (r Resistances) Values() [len(DamageTypes)]float64 {
	return [...]float64{r.Slash, r.Pierce, r.Bludgeon, r.Fire, r.Cold, r.Acid, r.Electric, r.Nether}
}

// ResistancesFrom builds a record from coefficients in DamageTypes order.
func ResistancesFrom(v [len(DamageTypes)]float64) Resistances {
	return Resistances{v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]}
}

// For returns the coefficient for the damage type (1.0 for Undefined).
func (r Resistances) For(d DamageType) float64 {
	switch d {
	case DamageSlash:
		return r.Slash
	case DamagePierce:
		return r.Pierce
	case DamageBludgeon:
		return r.Bludgeon
	case DamageFire:
		return r.Fire
	case DamageCold:
		return r.Cold
	case DamageAcid:
		return r.Acid
	case DamageElectric:
		return r.Electric
	case DamageNether:
		return r.Nether
	default:
		return 1.0
	}
}

// CombatStyle — боевой стиль оружия (для выбора позы и навыка).
type CombatStyle int32

const (
	CombatStyleUndefined CombatStyle = iota
	CombatStyleUnarmed
	CombatStyleOneHanded
	CombatStyleOneHandedAndShield
	CombatStyleTwoHanded
	CombatStyleBow
	CombatStyleCrossbow
	CombatStyleSling
	CombatStyleThrownWeapon
	CombatStyleDualWield
	CombatStyleMagic
	CombatStyleAtlatl
)

// String returns the combat style name.
func (c CombatStyle) String() string {
	switch c {
	case CombatStyleUnarmed:
		return "Unarmed"
	case CombatStyleOneHanded:
		return "OneHanded"
	case CombatStyleOneHandedAndShield:
		return "OneHandedAndShield"
	case CombatStyleTwoHanded:
		return "TwoHanded"
	case CombatStyleBow:
		return "Bow"
	case CombatStyleCrossbow:
		return "Crossbow"
	case CombatStyleSling:
		return "Sling"
	case CombatStyleThrownWeapon:
		return "ThrownWeapon"
	case CombatStyleDualWield:
		return "DualWield"
	case CombatStyleMagic:
		return "Magic"
	case CombatStyleAtlatl:
		return "Atlatl"
	default:
		return "Undefined"
	}
}

// CombatMode — режим, выбранный агентом.
type CombatMode int32

const (
	CombatModeNonCombat CombatMode = iota
	CombatModeMelee
	CombatModeMissile
	CombatModeMagic
)

// String returns the combat mode name.
func (c CombatMode) String() string {
	switch c {
	case CombatModeNonCombat:
		return "NonCombat"
	case CombatModeMelee:
		return "Melee"
	case CombatModeMissile:
		return "Missile"
	case CombatModeMagic:
		return "Magic"
	default:
		return "Unknown"
	}
}

// CombatType is the kind of the attack being made.
type CombatType int32

const (
	CombatTypeMelee CombatType = iota
	CombatTypeMissile
	CombatTypeMagic
)

// String returns the combat type name.
func (c CombatType) String() string {
	switch c {
	case CombatTypeMelee:
		return "Melee"
	case CombatTypeMissile:
		return "Missile"
	case CombatTypeMagic:
		return "Magic"
	default:
		return "Unknown"
	}
}

// AttackHeight — высота удара.
type AttackHeight int32

const (
	AttackHeightHigh AttackHeight = iota + 1
	AttackHeightMedium
	AttackHeightLow
)

// String returns the attack height name.
func (a AttackHeight) String() string {
	switch a {
	case AttackHeightHigh:
		return "High"
	case AttackHeightMedium:
		return "Medium"
	case AttackHeightLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// AttackConditions are flags attached to attacker/defender notifications.
type AttackConditions uint32

const (
	AttackConditionNone         AttackConditions = 0
	AttackConditionCriticalProt AttackConditions = 1 << 0
	AttackConditionRecklessness AttackConditions = 1 << 1
	AttackConditionSneakAttack  AttackConditions = 1 << 2
)

// Has reports whether every flag in c is set.
func (a AttackConditions) Has(c AttackConditions) bool {
	return a&c == c
}

// PowerAccuracy is the power/accuracy bar band used for stamina costs.
type PowerAccuracy int32

const (
	PowerAccuracyLow PowerAccuracy = iota
	PowerAccuracyMedium
	PowerAccuracyHigh
)

// PowerAccuracyFor buckets a 0..1 bar value into a band.
func PowerAccuracyFor(bar float64) PowerAccuracy {
	switch {
	case bar < 1.0/3.0:
		return PowerAccuracyLow
	case bar < 2.0/3.0:
		return PowerAccuracyMedium
	default:
		return PowerAccuracyHigh
	}
}
