package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/acego/internal/game/event"
	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/rnd"
)

func TestSplatterDirection(t *testing.T) {
	// target at origin facing +Y
	target := model.NewLocation(1, 0, 0, 0, 0)

	tests := []struct {
		name     string
		attacker model.Location
		want     SplatterDir
	}{
		{"front right", model.NewLocation(1, 5, 5, 0, 0), SplatterRightFront},
		{"front left", model.NewLocation(1, -5, 5, 0, 0), SplatterLeftFront},
		{"back right", model.NewLocation(1, 5, -5, 0, 0), SplatterRightBack},
		{"back left", model.NewLocation(1, -5, -5, 0, 0), SplatterLeftBack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplatterDirection(target, tt.attacker))
		})
	}
}

func TestSplatterDirection_TurnedTarget(t *testing.T) {
	// quarter turn clockwise: facing +X
	target := model.NewLocation(1, 0, 0, 0, 16384)

	assert.Equal(t, SplatterLeftFront, SplatterDirection(target, model.NewLocation(1, 5, 5, 0, 0)))
	assert.Equal(t, SplatterRightFront, SplatterDirection(target, model.NewLocation(1, 5, -5, 0, 0)))
	assert.True(t, IsInFront(target, model.NewLocation(1, 5, 0, 0, 0)))
	assert.False(t, IsInFront(target, model.NewLocation(1, -5, 0, 0, 0)))
}

func TestSplatterScript(t *testing.T) {
	target := model.NewLocation(1, 0, 0, 0, 0)
	attacker := model.NewLocation(1, 5, 5, 0, 0)

	assert.Equal(t, event.ScriptSplatterUpRightFront, SplatterScript(model.AttackHeightHigh, target, attacker))
	assert.Equal(t, event.ScriptSplatterMidRightFront, SplatterScript(model.AttackHeightMedium, target, attacker))
	assert.Equal(t, event.ScriptSplatterLowRightFront, SplatterScript(model.AttackHeightLow, target, attacker))
	assert.Equal(t, SplatterMid, SplatterHeightFor(0))
}

func TestRandomWoundSound(t *testing.T) {
	seq := rnd.NewSequence(0.0, 0.99)
	assert.Equal(t, event.WoundSounds[0], RandomWoundSound(seq))
	assert.Equal(t, event.WoundSounds[len(event.WoundSounds)-1], RandomWoundSound(seq))
}
