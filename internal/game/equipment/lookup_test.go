package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/acego/internal/model"
)

func TestMeleeWeapon_DualWieldAlternation(t *testing.T) {
	m := NewManager(1)
	main := newTestItem(t, 1, swordTmpl)
	off := newTestItem(t, 2, daggerTmpl)
	require.True(t, m.TryEquip(main, model.SlotMeleeWeapon))
	require.True(t, m.TryEquip(off, model.SlotShield))

	assert.Same(t, off, m.MeleeWeapon(true, true), "next strike is the off hand")
	assert.Same(t, main, m.MeleeWeapon(true, false))
	assert.Same(t, main, m.MeleeWeapon(false, false))
	assert.Same(t, main, m.MeleeWeapon(false, true), "alternation is ignored outside a dual wield sequence")
	assert.Same(t, off, m.Weapon(true, true))
	assert.Same(t, off, m.DualWieldWeapon())
	assert.Nil(t, m.Shield(), "off-hand weapon is not a shield")
}

func TestWeapon_FallsBackToMissile(t *testing.T) {
	m := NewManager(1)
	bow := newTestItem(t, 1, bowTmpl)
	require.True(t, m.TryEquip(bow, model.SlotMissileWeapon))

	assert.Nil(t, m.MeleeWeapon(false, false))
	assert.Same(t, bow, m.Weapon(false, false))

	gs := newTestItem(t, 2, greatswordTmpl)
	require.True(t, m.TryEquip(gs, model.SlotTwoHanded))
	assert.Same(t, gs, m.Weapon(false, false))
}

func TestMissileAmmo(t *testing.T) {
	m := NewManager(1)
	bow := newTestItem(t, 1, bowTmpl)
	arrows := newTestItem(t, 2, arrowTmpl)
	require.True(t, m.TryEquip(bow, model.SlotMissileWeapon))
	assert.Nil(t, m.MissileAmmo())

	require.True(t, m.TryEquip(arrows, model.SlotMissileAmmo))
	assert.Same(t, arrows, m.MissileAmmo())
	assert.Same(t, arrows, m.Ammo())

	thrower := NewManager(2)
	jav := newTestItem(t, 3, javelinTmpl)
	require.True(t, thrower.TryEquip(jav, model.SlotMissileWeapon))
	assert.Same(t, jav, thrower.MissileAmmo())
}

func TestArmorAndBurden(t *testing.T) {
	m := NewManager(1)
	helm := newTestItem(t, 1, helmTmpl)
	sword := newTestItem(t, 2, swordTmpl)
	shield := newTestItem(t, 3, shieldTmpl)
	wand := newTestItem(t, 4, wandTmpl)
	require.True(t, m.TryEquip(helm, model.SlotHeadWear))
	require.True(t, m.TryEquip(sword, model.SlotMeleeWeapon))
	require.True(t, m.TryEquip(shield, model.SlotShield))

	assert.Same(t, helm, m.Armor(model.BodyPartHead))
	assert.Nil(t, m.Armor(model.BodyPartFoot))
	assert.Same(t, shield, m.Shield())
	assert.Equal(t, int32(350), m.HandItemBurden(false, false))

	require.True(t, m.TryEquip(wand, model.SlotHeld))
	assert.Same(t, wand, m.Wand())
}
