package combat

import (
	"math"

	"github.com/udisondev/acego/internal/config"
	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/model"
)

// skillChanceFactor is the slope of the skill check sigmoid.
const skillChanceFactor = 0.03

// SkillChance returns the probability that skill beats difficulty.
func SkillChance(skill, difficulty uint32) float64 {
	c := 1.0 - 1.0/(1.0+math.Exp(skillChanceFactor*(float64(skill)-float64(difficulty))))
	return math.Min(math.Max(c, 0), 1)
}

// AttributeMod scales damage by an attribute above 55.
func AttributeMod(attr uint32, factor float64) float64 {
	return math.Max(1.0+(float64(attr)-55.0)*factor, 1.0)
}

// OffenseAttribute returns the attribute that drives damage for an attack:
// coordination for missile and finesse weapons, strength otherwise.
func OffenseAttribute(attacker creature.Combatant, t model.CombatType) model.Attribute {
	if t == model.CombatTypeMissile || attacker.WeaponSkill() == model.SkillFinesseWeapons {
		return model.AttributeCoordination
	}
	return model.AttributeStrength
}

// AttackAttributeMod is AttributeMod for the attacker's current attack.
func AttackAttributeMod(attacker creature.Combatant, t model.CombatType, tuning config.Combat) float64 {
	factor := tuning.AttributeFactor
	if t == model.CombatTypeMissile {
		if w := attacker.Equipment().MissileWeapon(); w != nil && w.IsAmmoLauncher() {
			factor = tuning.BowAttributeFactor
		}
	}
	return AttributeMod(attacker.Attribute(OffenseAttribute(attacker, t)), factor)
}

// PowerAccuracyMod converts the power or accuracy bar into a multiplier.
func PowerAccuracyMod(a creature.AttackContext, t model.CombatType) float64 {
	switch t {
	case model.CombatTypeMelee:
		return a.PowerLevel + 0.5
	case model.CombatTypeMissile:
		return a.AccuracyLevel + 0.6
	default:
		return 1.0
	}
}

// EvadeAccuracyMod is the accuracy term of the effective attack skill. Only
// missile attacks use the bar.
func EvadeAccuracyMod(a creature.AttackContext, t model.CombatType) float64 {
	if t == model.CombatTypeMissile {
		return a.AccuracyLevel + 0.6
	}
	return 1.0
}

// RatingMod converts a damage rating into a multiplier.
func RatingMod(rating int32) float64 {
	if rating >= 0 {
		return float64(100+rating) / 100.0
	}
	return 100.0 / float64(100-rating)
}

// NegativeRatingMod converts a resist rating into a damage multiplier.
func NegativeRatingMod(rating int32) float64 {
	if rating >= 0 {
		return 100.0 / float64(100+rating)
	}
	return float64(100-rating) / 100.0
}

// AdditiveCombine sums the bonus parts of several multipliers.
func AdditiveCombine(mods ...float64) float64 {
	out := 1.0
	for _, m := range mods {
		out += m - 1.0
	}
	return out
}

// RecklessnessMod returns the recklessness damage multiplier of the
// attacker's next non-critical hit.
func RecklessnessMod(attacker creature.Combatant) float64 {
	if !attacker.UsesRecklessness() {
		return 1.0
	}
	a := attacker.Attack()
	if a.Mode != model.CombatModeMelee && a.Mode != model.CombatModeMissile {
		return 1.0
	}
	skill := attacker.Skill(model.SkillRecklessness)
	if !skill.Class.TrainedOrBetter() {
		return 1.0
	}
	bar := a.Bar(attacker.AttackType())
	if bar < 0.1 || bar > 0.9 {
		return 1.0
	}

	rating := int32(10)
	if skill.Class == model.AdvancementSpecialized {
		rating = 20
	}
	attackSkill := attacker.Skill(attacker.AttackSkill())
	if skill.Current < attackSkill.Current {
		scale := float64(skill.Current) / float64(attackSkill.Current)
		rating = int32(math.Round(float64(rating) * scale))
	}
	return RatingMod(rating)
}

// ArmorMod converts an armor level into a damage multiplier.
func ArmorMod(armor, divisor float64) float64 {
	switch {
	case armor > 0:
		return divisor / (armor + divisor)
	case armor < 0:
		return 1.0 - armor/divisor
	default:
		return 1.0
	}
}

// ShieldMod returns the damage multiplier of the target's shield. Shields
// only count in combat mode and against attacks from the front.
func ShieldMod(attacker, target creature.Combatant, d model.DamageType, divisor float64) float64 {
	if target.Attack().Mode == model.CombatModeNonCombat {
		return 1.0
	}
	shield := target.Equipment().Shield()
	if shield == nil {
		return 1.0
	}
	if !IsInFront(target.Location(), attacker.Location()) {
		return 1.0
	}
	return ArmorMod(shield.Template().ArmorVs(d), divisor)
}

// SlayerMod returns the weapon's bonus against the target creature type.
func SlayerMod(weapon *model.Item, target creature.Combatant) float64 {
	if weapon == nil {
		return 1.0
	}
	t := weapon.Template()
	if t.SlayerType == "" || t.SlayerDamage <= 0 || t.SlayerType != target.CreatureType() {
		return 1.0
	}
	return t.SlayerDamage
}

// ElementalDamageMod returns the flat bonus a launcher adds when the fired
// damage type matches the launcher's element.
func ElementalDamageMod(attacker creature.Combatant, d model.DamageType) float64 {
	w := attacker.Equipment().MissileWeapon()
	if w == nil || !w.IsAmmoLauncher() {
		return 0
	}
	t := w.Template()
	if t.ElementalBonus <= 0 || t.DamageType != d {
		return 0
	}
	return t.ElementalBonus
}

// ResistanceMod returns the target's enchantment resistance multiplier
// unless the damage source ignores resistance.
func ResistanceMod(target creature.Combatant, source *model.Item, d model.DamageType) float64 {
	if source != nil && source.Template().IgnoreResist {
		return 1.0
	}
	return target.Ratings().ResistanceMod(d)
}

// StaminaMod scales attack stamina cost by endurance: 1.0 at 100, 0.5 at 400.
func StaminaMod(endurance uint32) float64 {
	m := 1.0 - (float64(endurance)-100.0)/600.0
	return math.Min(math.Max(m, 0.5), 1.0)
}

// EvadeStaminaWaiverChance is the chance that a trained defender evades
// without spending stamina.
func EvadeStaminaWaiverChance(endurance uint32, tuning config.Combat) float64 {
	if tuning.EnduranceStaminaCap == 0 {
		return 0
	}
	e := min(endurance, tuning.EnduranceStaminaCap)
	return float64(e) / float64(tuning.EnduranceStaminaCap) * tuning.EvadeStaminaWaiver
}

// TemplateWeaponModifiers reads weapon modifiers from item templates, with
// server defaults for crit values.
type TemplateWeaponModifiers struct {
	Tuning config.Combat
}

func activeWeapon(c creature.Combatant) *model.Item {
	a := c.Attack()
	return c.Equipment().Weapon(a.DualWieldAttack, a.DualWieldAlternate)
}

// Offense implements WeaponModifiers.
func (m TemplateWeaponModifiers) Offense(attacker creature.Combatant) float64 {
	if w := activeWeapon(attacker); w != nil && w.Template().WeaponOffense > 0 {
		return w.Template().WeaponOffense
	}
	return 1.0
}

// MeleeDefense implements WeaponModifiers.
func (m TemplateWeaponModifiers) MeleeDefense(defender creature.Combatant) float64 {
	if w := activeWeapon(defender); w != nil && w.Template().WeaponDefense > 0 {
		return w.Template().WeaponDefense
	}
	return 1.0
}

// CritFrequency implements WeaponModifiers.
func (m TemplateWeaponModifiers) CritFrequency(attacker creature.Combatant, _ model.CreatureSkill) float64 {
	if w := activeWeapon(attacker); w != nil && w.Template().CritFrequency > 0 {
		return w.Template().CritFrequency
	}
	return m.Tuning.DefaultCritFrequency
}

// CritMultiplier implements WeaponModifiers.
func (m TemplateWeaponModifiers) CritMultiplier(attacker creature.Combatant, _ model.CreatureSkill) float64 {
	if w := activeWeapon(attacker); w != nil && w.Template().CritMultiplier > 0 {
		return w.Template().CritMultiplier
	}
	return m.Tuning.DefaultCritMultiplier
}
