package creature

import (
	"sync"

	"github.com/udisondev/acego/internal/game/equipment"
	"github.com/udisondev/acego/internal/model"
)

// Player — агент под управлением игрока.
// Differs from Creature in skill selection (the dual wield cap), in using
// recklessness and in player killer / invincible status.
type Player struct {
	*Creature

	pmu          sync.RWMutex
	playerKiller bool
	invincible   bool
}

// NewPlayer creates a player.
func NewPlayer(id uint32, s Stats, opts ...equipment.Option) *Player {
	return &Player{Creature: New(id, s, opts...)}
}

// IsPlayer is true for players.
func (p *Player) IsPlayer() bool { return true }

// UsesRecklessness is true for players.
func (p *Player) UsesRecklessness() bool { return true }

// PlayerKiller reports player killer status.
func (p *Player) PlayerKiller() bool {
	p.pmu.RLock()
	defer p.pmu.RUnlock()
	return p.playerKiller
}

// SetPlayerKiller changes player killer status.
func (p *Player) SetPlayerKiller(on bool) {
	p.pmu.Lock()
	defer p.pmu.Unlock()
	p.playerKiller = on
}

// Invincible reports whether incoming damage is forced to zero.
func (p *Player) Invincible() bool {
	p.pmu.RLock()
	defer p.pmu.RUnlock()
	return p.invincible
}

// SetInvincible toggles invincibility.
func (p *Player) SetInvincible(on bool) {
	p.pmu.Lock()
	defer p.pmu.Unlock()
	p.invincible = on
}

// AttackSkill returns the magic skill in magic mode, else the weapon skill.
func (p *Player) AttackSkill() model.Skill {
	if p.Attack().Mode == model.CombatModeMagic {
		return p.magicSkill()
	}
	return p.WeaponSkill()
}

// WeaponSkill caps off-hand strikes at the weaker of dual wield and the best
// melee skill.
func (p *Player) WeaponSkill() model.Skill {
	if w := p.Weapon(); w != nil && w.Slot() == model.SlotMissileWeapon {
		return model.SkillMissileWeapons
	}
	maxMelee := p.Skill(p.HighestMeleeSkill())

	a := p.Attack()
	if a.DualWieldAttack && a.DualWieldAlternate {
		if dw := p.Skill(model.SkillDualWield); dw.Current < maxMelee.Current {
			return dw.Skill
		}
	}
	return maxMelee.Skill
}
