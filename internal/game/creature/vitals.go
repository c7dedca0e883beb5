package creature

import "github.com/udisondev/acego/internal/model"

// Vital returns a snapshot of a vital pool.
func (c *Creature) Vital(kind model.VitalKind) model.Vital {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if kind < 0 || int(kind) >= len(c.vitals) {
		return model.Vital{}
	}
	return c.vitals[kind]
}

// UpdateVitalDelta adds a signed delta to a pool and returns the change that
// was applied. A dead agent accepts no changes.
func (c *Creature) UpdateVitalDelta(kind model.VitalKind, delta int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dead || kind < 0 || int(kind) >= len(c.vitals) {
		return 0
	}
	return c.vitals[kind].Apply(delta)
}

// ApplyDamage removes amount health. killed is true only for the call that
// brought health to zero; that call also moves the agent to the terminal
// dead state, after which every further call takes nothing.
func (c *Creature) ApplyDamage(amount uint32, sourceID uint32) (uint32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dead {
		return 0, false
	}
	delta := int64(amount)
	if delta > int64(c.vitals[model.VitalHealth].Current) {
		delta = int64(c.vitals[model.VitalHealth].Current)
	}
	taken := uint32(-c.vitals[model.VitalHealth].Apply(int32(-delta)))
	if c.vitals[model.VitalHealth].Current == 0 {
		c.dead = true
		c.killerID = sourceID
		return taken, true
	}
	return taken, false
}

// Die forces the dead state. Returns false if the agent was already dead.
func (c *Creature) Die(killerID uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dead {
		return false
	}
	c.dead = true
	c.killerID = killerID
	c.vitals[model.VitalHealth].Current = 0
	return true
}

// IsDead reports the terminal dead state.
func (c *Creature) IsDead() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dead
}

// KillerID returns who dealt the killing blow (0 if unknown or alive).
func (c *Creature) KillerID() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.killerID
}

// IsExhausted reports an empty stamina pool.
func (c *Creature) IsExhausted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vitals[model.VitalStamina].Current == 0
}
