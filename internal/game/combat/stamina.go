package combat

import (
	"math"

	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/model"
)

// burdenTiers are the hand burden breakpoints of the stamina table.
var burdenTiers = [3]int32{700, 1200, 1600}

// staminaCosts[band][tier] is the base stamina cost of one attack.
var staminaCosts = [3][3]float64{
	model.PowerAccuracyLow:    {1, 1, 1.5},
	model.PowerAccuracyMedium: {1, 2, 3},
	model.PowerAccuracyHigh:   {2, 4, 6},
}

// StaminaCost returns the base cost for a bar band and hand burden. Above the
// last tier the cost grows linearly with burden.
func StaminaCost(band model.PowerAccuracy, burden int32) float64 {
	if band < model.PowerAccuracyLow || band > model.PowerAccuracyHigh {
		band = model.PowerAccuracyMedium
	}
	for i, limit := range burdenTiers {
		if burden <= limit {
			return staminaCosts[band][i]
		}
	}
	last := len(burdenTiers) - 1
	return staminaCosts[band][last] * float64(burden) / float64(burdenTiers[last])
}

// AttackStamina returns the stamina one attack costs the attacker.
func AttackStamina(attacker creature.Combatant) int32 {
	a := attacker.Attack()
	t := attacker.AttackType()
	burden := attacker.Equipment().HandItemBurden(a.DualWieldAttack, a.DualWieldAlternate)
	base := StaminaCost(model.PowerAccuracyFor(a.Bar(t)), burden)
	cost := math.Max(base*StaminaMod(attacker.Attribute(model.AttributeEndurance)), 1)
	return int32(math.Round(cost))
}
