package creature

import "github.com/udisondev/acego/internal/model"

// AttackContext — текущие параметры атаки агента.
// DualWieldAlternate is true when the *next* strike is the off hand.
type AttackContext struct {
	Mode               model.CombatMode
	PowerLevel         float64 // 0..1 melee bar
	AccuracyLevel      float64 // 0..1 missile bar
	Height             model.AttackHeight
	DualWieldAttack    bool
	DualWieldAlternate bool
}

// Bar returns the power or accuracy bar for the given attack type.
func (a AttackContext) Bar(t model.CombatType) float64 {
	if t == model.CombatTypeMissile {
		return a.AccuracyLevel
	}
	return a.PowerLevel
}

// Attack returns the attack context.
func (c *Creature) Attack() AttackContext {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.attack
}

// SetAttack replaces the attack context.
func (c *Creature) SetAttack(a AttackContext) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attack = a
}

// SetCombatMode changes only the combat mode.
func (c *Creature) SetCombatMode(m model.CombatMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attack.Mode = m
}

// ToggleDualWield flips the alternation flag after a dual wield strike.
func (c *Creature) ToggleDualWield() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attack.DualWieldAttack {
		c.attack.DualWieldAlternate = !c.attack.DualWieldAlternate
	}
}

// Weapon returns the active weapon for the current attack context.
func (c *Creature) Weapon() *model.Item {
	a := c.Attack()
	return c.equip.Weapon(a.DualWieldAttack, a.DualWieldAlternate)
}

// AttackType derives melee, missile or magic from mode and weapon.
func (c *Creature) AttackType() model.CombatType {
	if c.Attack().Mode == model.CombatModeMagic {
		return model.CombatTypeMagic
	}
	if w := c.Weapon(); w != nil && w.Slot() == model.SlotMissileWeapon {
		return model.CombatTypeMissile
	}
	return model.CombatTypeMelee
}

// AttackSkill returns the magic skill in magic mode, else the weapon skill.
func (c *Creature) AttackSkill() model.Skill {
	if c.Attack().Mode == model.CombatModeMagic {
		return c.magicSkill()
	}
	return c.WeaponSkill()
}

// WeaponSkill returns MissileWeapons for a missile weapon, otherwise the
// highest melee skill.
func (c *Creature) WeaponSkill() model.Skill {
	if w := c.Weapon(); w != nil && w.Slot() == model.SlotMissileWeapon {
		return model.SkillMissileWeapons
	}
	return c.HighestMeleeSkill()
}

// HighestMeleeSkill returns the best of light, heavy and finesse weapons.
// Ties keep the earlier skill.
func (c *Creature) HighestMeleeSkill() model.Skill {
	best := c.Skill(model.SkillLightWeapons)
	for _, s := range []model.Skill{model.SkillHeavyWeapons, model.SkillFinesseWeapons} {
		if sk := c.Skill(s); sk.Current > best.Current {
			best = sk
		}
	}
	return best.Skill
}

func (c *Creature) magicSkill() model.Skill {
	if c.Skill(model.SkillVoidMagic).Current > c.Skill(model.SkillWarMagic).Current {
		return model.SkillVoidMagic
	}
	return model.SkillWarMagic
}

// DamageType returns the damage type of the current attack: the missile
// ammo type for missile attacks, the weapon type for melee, and the unarmed
// type without a weapon.
func (c *Creature) DamageType() model.DamageType {
	var src *model.Item
	if c.AttackType() == model.CombatTypeMissile {
		src = c.equip.MissileAmmo()
		if src != nil && src.Template().DamageType == model.DamageUndefined {
			src = c.equip.MissileWeapon()
		}
	} else {
		src = c.Weapon()
	}
	if src != nil && src.Template().DamageType != model.DamageUndefined {
		return src.Template().DamageType
	}
	return c.unarmedType
}
