package creature

import (
	"errors"
	"sync"

	"github.com/udisondev/acego/internal/game/equipment"
	"github.com/udisondev/acego/internal/model"
)

// ErrDead is returned for operations on a dead agent.
var ErrDead = errors.New("creature is dead")

// Stats — исходные параметры агента при создании.
type Stats struct {
	Name              string
	CreatureType      string
	Attributes        model.Attributes
	Skills            []model.CreatureSkill
	Health            uint32
	Stamina           uint32
	Mana              uint32
	BodyArmor         map[model.BodyPart]model.BodyPartArmor
	UnarmedDamageType model.DamageType
	TreasureTableID   uint32
	Ratings           Ratings
}

// Creature — базовый агент (монстр).
// All mutable state is guarded by mu. The equipment map has its own lock.
type Creature struct {
	id           uint32
	name         string
	creatureType string
	treasureID   uint32
	unarmedType  model.DamageType

	equip *equipment.Manager

	mu        sync.RWMutex
	attrs     model.Attributes
	skills    map[model.Skill]model.CreatureSkill
	vitals    [3]model.Vital
	attack    AttackContext
	ratings   Ratings
	bodyArmor map[model.BodyPart]model.BodyPartArmor
	location  model.Location
	inventory []*model.Item
	lifestone bool
	dead      bool
	killerID  uint32
}

// New creates a creature with full vitals.
func New(id uint32, s Stats, opts ...equipment.Option) *Creature {
	c := &Creature{
		id:           id,
		name:         s.Name,
		creatureType: s.CreatureType,
		treasureID:   s.TreasureTableID,
		unarmedType:  s.UnarmedDamageType,
		equip:        equipment.NewManager(id, opts...),
		attrs:        s.Attributes,
		skills:       make(map[model.Skill]model.CreatureSkill, len(s.Skills)),
		ratings:      s.Ratings.clone(),
		bodyArmor:    make(map[model.BodyPart]model.BodyPartArmor, len(s.BodyArmor)),
		attack:       AttackContext{Height: model.AttackHeightMedium, PowerLevel: 0.5, AccuracyLevel: 0.5},
	}
	if c.unarmedType == model.DamageUndefined {
		c.unarmedType = model.DamageBludgeon
	}
	for _, sk := range s.Skills {
		c.skills[sk.Skill] = sk
	}
	for part, armor := range s.BodyArmor {
		c.bodyArmor[part] = armor
	}
	c.vitals[model.VitalHealth] = model.NewVital(s.Health)
	c.vitals[model.VitalStamina] = model.NewVital(s.Stamina)
	c.vitals[model.VitalMana] = model.NewVital(s.Mana)
	return c
}

// ObjectID возвращает идентификатор агента.
func (c *Creature) ObjectID() uint32 { return c.id }

// Name возвращает имя агента.
func (c *Creature) Name() string { return c.name }

// CreatureType is matched against weapon slayer types.
func (c *Creature) CreatureType() string { return c.creatureType }

// TreasureTableID returns the wielded treasure table (0 = none).
func (c *Creature) TreasureTableID() uint32 { return c.treasureID }

// Equipment returns the equip map.
func (c *Creature) Equipment() *equipment.Manager { return c.equip }

// IsPlayer is false for creatures.
func (c *Creature) IsPlayer() bool { return false }

// PlayerKiller is false for creatures.
func (c *Creature) PlayerKiller() bool { return false }

// Invincible is false for creatures.
func (c *Creature) Invincible() bool { return false }

// UsesRecklessness is false for creatures.
func (c *Creature) UsesRecklessness() bool { return false }

// Location returns the current position.
func (c *Creature) Location() model.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.location
}

// SetLocation moves the agent.
func (c *Creature) SetLocation(loc model.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.location = loc
}

// Skill returns the skill entry; unknown skills are untrained at 0.
func (c *Creature) Skill(s model.Skill) model.CreatureSkill {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if sk, ok := c.skills[s]; ok {
		return sk
	}
	return model.CreatureSkill{Skill: s}
}

// SetSkill replaces a skill entry.
func (c *Creature) SetSkill(sk model.CreatureSkill) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skills[sk.Skill] = sk
}

// Attribute returns a base attribute value.
func (c *Creature) Attribute(a model.Attribute) uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.attrs.Get(a)
}

// Ratings returns a copy of the enchantment ratings.
func (c *Creature) Ratings() Ratings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ratings.clone()
}

// SetRatings replaces the enchantment ratings.
func (c *Creature) SetRatings(r Ratings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ratings = r.clone()
}

// BodyArmor returns the natural armor record of a body part.
func (c *Creature) BodyArmor(part model.BodyPart) (model.BodyPartArmor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.bodyArmor[part]
	return a, ok
}

// UnderLifestoneProtection reports whether incoming damage is nullified.
func (c *Creature) UnderLifestoneProtection() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lifestone
}

// SetLifestoneProtection toggles lifestone protection.
func (c *Creature) SetLifestoneProtection(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lifestone = on
}
