package model

// VitalKind identifies a vital pool.
type VitalKind int32

const (
	VitalHealth VitalKind = iota
	VitalStamina
	VitalMana
)

// String returns the vital name.
func (v VitalKind) String() string {
	switch v {
	case VitalHealth:
		return "Health"
	case VitalStamina:
		return "Stamina"
	case VitalMana:
		return "Mana"
	default:
		return "Unknown"
	}
}

// Vital — пул (здоровье, выносливость, мана).
// Value type, synchronisation is the owner's job (see creature.Creature).
type Vital struct {
	Current uint32
	Max     uint32
}

// NewVital returns a full pool.
func NewVital(max uint32) Vital {
	return Vital{Current: max, Max: max}
}

// Apply adds a signed delta clamped to [0, Max] and returns the delta that
// was actually applied.
func (v *Vital) Apply(delta int32) int32 {
	next := int64(v.Current) + int64(delta)
	if next < 0 {
		next = 0
	}
	if next > int64(v.Max) {
		next = int64(v.Max)
	}
	applied := int32(next - int64(v.Current))
	v.Current = uint32(next)
	return applied
}

// Fraction returns Current/Max in [0,1] (0 for an empty pool).
func (v Vital) Fraction() float64 {
	if v.Max == 0 {
		return 0
	}
	return float64(v.Current) / float64(v.Max)
}
