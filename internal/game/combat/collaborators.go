package combat

import (
	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/model"
)

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockcombat -source=collaborators.go

// Proficiency is the skill advancement hook. Called on a successful use of a
// skill against the given difficulty.
type Proficiency interface {
	OnSuccessUse(agent creature.Combatant, skill model.CreatureSkill, difficulty uint32)
}

// WeaponModifiers supplies weapon-derived modifiers.
type WeaponModifiers interface {
	Offense(attacker creature.Combatant) float64
	MeleeDefense(defender creature.Combatant) float64
	CritFrequency(attacker creature.Combatant, skill model.CreatureSkill) float64
	CritMultiplier(attacker creature.Combatant, skill model.CreatureSkill) float64
}

// SneakAttackEvaluator returns a damage multiplier; values above 1.0 mark
// the hit as a sneak attack.
type SneakAttackEvaluator interface {
	SneakAttackMod(attacker, target creature.Combatant) float64
}
