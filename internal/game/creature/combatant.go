// Package creature holds the simulated agents that fight each other: plain
// creatures and players. Both implement Combatant, which is all the combat
// resolver needs from an agent.
package creature

import (
	"github.com/udisondev/acego/internal/game/equipment"
	"github.com/udisondev/acego/internal/model"
)

// Combatant is an agent that can attack and be attacked.
type Combatant interface {
	ObjectID() uint32
	Name() string
	CreatureType() string
	Location() model.Location

	IsPlayer() bool
	PlayerKiller() bool
	Invincible() bool
	UsesRecklessness() bool

	Equipment() *equipment.Manager
	Attack() AttackContext
	AttackType() model.CombatType
	AttackSkill() model.Skill
	WeaponSkill() model.Skill
	DamageType() model.DamageType
	Skill(s model.Skill) model.CreatureSkill
	Attribute(a model.Attribute) uint32
	Ratings() Ratings
	BodyArmor(part model.BodyPart) (model.BodyPartArmor, bool)

	Vital(kind model.VitalKind) model.Vital
	UpdateVitalDelta(kind model.VitalKind, delta int32) int32
	ApplyDamage(amount uint32, sourceID uint32) (taken uint32, killed bool)
	IsExhausted() bool
	IsDead() bool

	UnderLifestoneProtection() bool
}

var (
	_ Combatant = (*Creature)(nil)
	_ Combatant = (*Player)(nil)
)

// Ratings are the enchantment-derived combat ratings of an agent.
type Ratings struct {
	Damage       int32
	DamageResist int32
	// Resist holds protection (<1) or vulnerability (>1) multipliers per
	// damage type. Missing types are 1.0.
	Resist map[model.DamageType]float64
}

// ResistanceMod returns the enchantment resistance multiplier for d.
func (r Ratings) ResistanceMod(d model.DamageType) float64 {
	if v, ok := r.Resist[d]; ok {
		return v
	}
	return 1.0
}

func (r Ratings) clone() Ratings {
	out := r
	if r.Resist != nil {
		out.Resist = make(map[model.DamageType]float64, len(r.Resist))
		for k, v := range r.Resist {
			out.Resist[k] = v
		}
	}
	return out
}
