package combat

import (
	"math"

	"github.com/udisondev/acego/internal/game/event"
	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/rnd"
)

// SplatterHeight — высотный ряд таблицы брызг.
type SplatterHeight int

const (
	SplatterUp SplatterHeight = iota
	SplatterMid
	SplatterLow
)

// SplatterDir is the side of the target the hit came from.
type SplatterDir int

const (
	SplatterLeftBack SplatterDir = iota
	SplatterLeftFront
	SplatterRightBack
	SplatterRightFront
)

var splatterScripts = [3][4]event.PlayScript{
	SplatterUp: {
		SplatterLeftBack:   event.ScriptSplatterUpLeftBack,
		SplatterLeftFront:  event.ScriptSplatterUpLeftFront,
		SplatterRightBack:  event.ScriptSplatterUpRightBack,
		SplatterRightFront: event.ScriptSplatterUpRightFront,
	},
	SplatterMid: {
		SplatterLeftBack:   event.ScriptSplatterMidLeftBack,
		SplatterLeftFront:  event.ScriptSplatterMidLeftFront,
		SplatterRightBack:  event.ScriptSplatterMidRightBack,
		SplatterRightFront: event.ScriptSplatterMidRightFront,
	},
	SplatterLow: {
		SplatterLeftBack:   event.ScriptSplatterLowLeftBack,
		SplatterLeftFront:  event.ScriptSplatterLowLeftFront,
		SplatterRightBack:  event.ScriptSplatterLowRightBack,
		SplatterRightFront: event.ScriptSplatterLowRightFront,
	},
}

// SplatterHeightFor maps the attack height onto a splatter row.
func SplatterHeightFor(h model.AttackHeight) SplatterHeight {
	switch h {
	case model.AttackHeightHigh:
		return SplatterUp
	case model.AttackHeightLow:
		return SplatterLow
	default:
		return SplatterMid
	}
}

// headingVector returns the unit facing vector. Heading 0 faces +Y and grows
// clockwise over the full uint16 range.
func headingVector(h uint16) (float64, float64) {
	theta := float64(h) / 65536.0 * 2 * math.Pi
	return math.Sin(theta), math.Cos(theta)
}

// SplatterDirection returns the side of target facing the attacker.
func SplatterDirection(target, attacker model.Location) SplatterDir {
	fx, fy := headingVector(target.Heading)
	tx := float64(attacker.X - target.X)
	ty := float64(attacker.Y - target.Y)

	front := fx*tx+fy*ty >= 0
	right := fx*ty-fy*tx < 0

	switch {
	case right && front:
		return SplatterRightFront
	case right:
		return SplatterRightBack
	case front:
		return SplatterLeftFront
	default:
		return SplatterLeftBack
	}
}

// IsInFront reports whether attacker stands in the front half-plane of target.
func IsInFront(target, attacker model.Location) bool {
	fx, fy := headingVector(target.Heading)
	return fx*float64(attacker.X-target.X)+fy*float64(attacker.Y-target.Y) >= 0
}

// SplatterScript picks the blood effect for a hit.
func SplatterScript(h model.AttackHeight, target, attacker model.Location) event.PlayScript {
	return splatterScripts[SplatterHeightFor(h)][SplatterDirection(target, attacker)]
}

// RandomWoundSound picks one of the wound sounds.
func RandomWoundSound(src rnd.Source) event.SoundID {
	return event.WoundSounds[src.IntRange(0, len(event.WoundSounds)-1)]
}
