package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/acego/internal/model"
)

func TestPermissivePolicy_AllowsSharedSlot(t *testing.T) {
	m := NewManager(1)
	require.True(t, m.TryEquip(newTestItem(t, 1, swordTmpl), model.SlotMeleeWeapon))
	assert.True(t, m.TryEquip(newTestItem(t, 2, daggerTmpl), model.SlotMeleeWeapon))
	assert.True(t, m.TryEquip(newTestItem(t, 3, helmTmpl), model.SlotFootWear))
}

func TestStrictPolicy(t *testing.T) {
	tests := []struct {
		name   string
		worn   map[model.SlotKind]*model.ItemTemplate
		tmpl   *model.ItemTemplate
		slot   model.SlotKind
		expect bool
	}{
		{"free valid slot", nil, swordTmpl, model.SlotMeleeWeapon, true},
		{"invalid slot", nil, helmTmpl, model.SlotFootWear, false},
		{"occupied", map[model.SlotKind]*model.ItemTemplate{model.SlotMeleeWeapon: swordTmpl}, daggerTmpl, model.SlotMeleeWeapon, false},
		{"two handed over shield", map[model.SlotKind]*model.ItemTemplate{model.SlotShield: shieldTmpl}, greatswordTmpl, model.SlotTwoHanded, false},
		{"shield over two handed", map[model.SlotKind]*model.ItemTemplate{model.SlotTwoHanded: greatswordTmpl}, shieldTmpl, model.SlotShield, false},
		{"offhand next to sword", map[model.SlotKind]*model.ItemTemplate{model.SlotMeleeWeapon: swordTmpl}, daggerTmpl, model.SlotShield, true},
		{"no valid slots declared", nil, &model.ItemTemplate{Name: "Trinket"}, model.SlotNecklace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(1, WithPolicy(StrictPolicy{}))
			id := uint32(100)
			for slot, tmpl := range tt.worn {
				require.True(t, m.TryEquip(newTestItem(t, id, tmpl), slot))
				id++
			}
			assert.Equal(t, tt.expect, m.TryEquip(newTestItem(t, 1, tt.tmpl), tt.slot))
		})
	}
}
