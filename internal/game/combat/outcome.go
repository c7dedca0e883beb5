package combat

import "github.com/udisondev/acego/internal/model"

// Result — итог одной атаки.
type Result int

const (
	ResultHit Result = iota
	ResultEvaded
	ResultProtected
	ResultRefused
	ResultTargetDead
	ResultInvalidTarget
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultHit:
		return "Hit"
	case ResultEvaded:
		return "Evaded"
	case ResultProtected:
		return "Protected"
	case ResultRefused:
		return "Refused"
	case ResultTargetDead:
		return "TargetDead"
	case ResultInvalidTarget:
		return "InvalidTarget"
	default:
		return "Unknown"
	}
}

// Damage is a computed hit before it is applied to the target.
type Damage struct {
	Amount       float64
	Base         float64 // uniform draw over the base range
	BaseMax      float64 // top of the base range, used by criticals
	DamageType   model.DamageType
	BodyPart     model.BodyPart
	Critical     bool
	SneakAttack  bool
	Recklessness float64 // 1.0 on criticals
}

// Conditions returns the notification flags of the hit.
func (d *Damage) Conditions() model.AttackConditions {
	c := model.AttackConditionNone
	if !d.Critical && d.Recklessness > 1.0 {
		c |= model.AttackConditionRecklessness
	}
	if d.SneakAttack {
		c |= model.AttackConditionSneakAttack
	}
	return c
}

// Outcome is the observable result of one attack. Damage is nil unless
// Result is ResultHit.
type Outcome struct {
	AttackerID uint32
	TargetID   uint32
	Result     Result
	Damage     *Damage
	Amount     uint32 // rounded damage reported to both sides
	Taken      uint32 // health actually removed
	Killed     bool
}
