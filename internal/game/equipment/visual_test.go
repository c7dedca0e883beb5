package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/acego/internal/model"
)

func TestSlotVisual(t *testing.T) {
	tests := []struct {
		name      string
		tmpl      *model.ItemTemplate
		slot      model.SlotKind
		placement model.Placement
		parent    model.ParentLocation
	}{
		{"melee", swordTmpl, model.SlotMeleeWeapon, model.PlacementRightHandCombat, model.ParentRightHand},
		{"shield", shieldTmpl, model.SlotShield, model.PlacementShield, model.ParentShield},
		{"offhand weapon", daggerTmpl, model.SlotShield, model.PlacementRightHandCombat, model.ParentLeftWeapon},
		{"bow", bowTmpl, model.SlotMissileWeapon, model.PlacementLeftHand, model.ParentLeftHand},
		{"crossbow", &model.ItemTemplate{Name: "Crossbow", CombatStyle: model.CombatStyleCrossbow}, model.SlotMissileWeapon, model.PlacementLeftHand, model.ParentLeftHand},
		{"atlatl", atlatlTmpl, model.SlotMissileWeapon, model.PlacementRightHandCombat, model.ParentRightHand},
		{"ammo", arrowTmpl, model.SlotMissileAmmo, model.PlacementRightHandCombat, model.ParentRightHand},
		{"held", wandTmpl, model.SlotHeld, model.PlacementRightHandCombat, model.ParentRightHand},
		{"worn", helmTmpl, model.SlotHeadWear, model.PlacementDefault, model.ParentNone},
		{"two handed", greatswordTmpl, model.SlotTwoHanded, model.PlacementRightHandCombat, model.ParentRightHand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := newTestItem(t, 1, tt.tmpl)
			p, l := SlotVisual(item, tt.slot)
			assert.Equal(t, tt.placement, p)
			assert.Equal(t, tt.parent, l)
		})
	}
}

func TestIsInChildLocation(t *testing.T) {
	assert.True(t, IsInChildLocation(model.SlotMeleeWeapon))
	assert.True(t, IsInChildLocation(model.SlotMissileAmmo))
	assert.True(t, IsInChildLocation(model.SlotHeld))
	assert.False(t, IsInChildLocation(model.SlotHeadWear))
	assert.False(t, IsInChildLocation(model.SlotNone))

	assert.False(t, model.SlotMissileAmmo.Selectable())
}
