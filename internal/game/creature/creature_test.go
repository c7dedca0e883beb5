package creature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/acego/internal/model"
)

func testStats() Stats {
	return Stats{
		Name:         "Drudge Skulker",
		CreatureType: "Drudge",
		Attributes:   model.Attributes{100, 80, 90, 70, 60, 50},
		Skills: []model.CreatureSkill{
			{Skill: model.SkillLightWeapons, Class: model.AdvancementTrained, Current: 200},
			{Skill: model.SkillHeavyWeapons, Class: model.AdvancementSpecialized, Current: 300},
			{Skill: model.SkillFinesseWeapons, Class: model.AdvancementTrained, Current: 250},
			{Skill: model.SkillDualWield, Class: model.AdvancementTrained, Current: 180},
			{Skill: model.SkillMissileWeapons, Class: model.AdvancementTrained, Current: 150},
			{Skill: model.SkillMeleeDefense, Class: model.AdvancementTrained, Current: 220},
		},
		Health:  100,
		Stamina: 50,
		Mana:    20,
		BodyArmor: map[model.BodyPart]model.BodyPartArmor{
			model.BodyPartChest: {BaseArmor: 40, Resist: model.UniformResistances(1)},
		},
	}
}

func mustItem(t *testing.T, id uint32, tmpl *model.ItemTemplate) *model.Item {
	t.Helper()
	it, err := model.NewItem(id, tmpl)
	require.NoError(t, err)
	return it
}

var (
	axeTmpl = &model.ItemTemplate{
		Name: "Axe", Type: model.ItemTypeMeleeWeapon, DamageType: model.DamageSlash,
		ValidSlots: model.NewSlotSet(model.SlotMeleeWeapon, model.SlotShield), DamageMin: 5, DamageMax: 10,
	}
	bowTmpl = &model.ItemTemplate{
		Name: "Yumi", Type: model.ItemTypeMissileWeapon, CombatStyle: model.CombatStyleBow,
		ValidSlots: model.NewSlotSet(model.SlotMissileWeapon), AmmoLauncher: true,
	}
	arrowTmpl = &model.ItemTemplate{
		Name: "Arrow", Type: model.ItemTypeAmmo, DamageType: model.DamagePierce,
		ValidSlots: model.NewSlotSet(model.SlotMissileAmmo), DamageMin: 4, DamageMax: 8,
	}
	bucklerTmpl = &model.ItemTemplate{
		Name: "Buckler", Type: model.ItemTypeArmor, ValidSlots: model.NewSlotSet(model.SlotShield),
	}
	twoHandTmpl = &model.ItemTemplate{
		Name: "Nodachi", Type: model.ItemTypeMeleeWeapon, ValidSlots: model.NewSlotSet(model.SlotTwoHanded),
	}
)

func TestNew_Defaults(t *testing.T) {
	c := New(10, testStats())

	assert.Equal(t, uint32(10), c.ObjectID())
	assert.Equal(t, "Drudge Skulker", c.Name())
	assert.Equal(t, uint32(100), c.Vital(model.VitalHealth).Current)
	assert.Equal(t, uint32(50), c.Vital(model.VitalStamina).Max)
	assert.Equal(t, uint32(80), c.Attribute(model.AttributeEndurance))
	assert.Equal(t, model.AttackHeightMedium, c.Attack().Height)
	assert.Equal(t, model.DamageBludgeon, c.DamageType(), "unarmed default")
	assert.False(t, c.IsPlayer())
	assert.Equal(t, uint32(10), c.Equipment().OwnerID())

	sk := c.Skill(model.SkillSneakAttack)
	assert.Equal(t, model.AdvancementUntrained, sk.Class)
	assert.Zero(t, sk.Current)

	armor, ok := c.BodyArmor(model.BodyPartChest)
	require.True(t, ok)
	assert.InDelta(t, 40.0, armor.ArmorVs(model.DamageFire), 1e-9)
	_, ok = c.BodyArmor(model.BodyPartFoot)
	assert.False(t, ok)
}

func TestAttackTypeAndSkill(t *testing.T) {
	c := New(1, testStats())
	assert.Equal(t, model.CombatTypeMelee, c.AttackType())
	assert.Equal(t, model.SkillHeavyWeapons, c.WeaponSkill())

	require.True(t, c.Equipment().TryEquip(mustItem(t, 2, bowTmpl), model.SlotMissileWeapon))
	require.True(t, c.Equipment().TryEquip(mustItem(t, 3, arrowTmpl), model.SlotMissileAmmo))
	assert.Equal(t, model.CombatTypeMissile, c.AttackType())
	assert.Equal(t, model.SkillMissileWeapons, c.AttackSkill())
	assert.Equal(t, model.DamagePierce, c.DamageType())

	c.SetCombatMode(model.CombatModeMagic)
	assert.Equal(t, model.CombatTypeMagic, c.AttackType())
	assert.Equal(t, model.SkillWarMagic, c.AttackSkill())

	c.SetSkill(model.CreatureSkill{Skill: model.SkillVoidMagic, Class: model.AdvancementTrained, Current: 10})
	assert.Equal(t, model.SkillVoidMagic, c.AttackSkill())
}

func TestCreature_NoDualWieldCap(t *testing.T) {
	c := New(1, testStats())
	require.True(t, c.Equipment().TryEquip(mustItem(t, 2, axeTmpl), model.SlotMeleeWeapon))
	require.True(t, c.Equipment().TryEquip(mustItem(t, 3, axeTmpl), model.SlotShield))
	c.SetAttack(AttackContext{Mode: model.CombatModeMelee, DualWieldAttack: true, DualWieldAlternate: false})

	assert.Equal(t, model.SkillHeavyWeapons, c.WeaponSkill())
	assert.Equal(t, uint32(2), c.Weapon().ObjectID())

	c.ToggleDualWield()
	assert.Equal(t, uint32(3), c.Weapon().ObjectID())
	assert.Equal(t, model.SkillHeavyWeapons, c.WeaponSkill())
}

func TestRatings_Copy(t *testing.T) {
	c := New(1, testStats())
	r := Ratings{Damage: 10, Resist: map[model.DamageType]float64{model.DamageFire: 0.5}}
	c.SetRatings(r)
	r.Resist[model.DamageFire] = 2

	got := c.Ratings()
	assert.Equal(t, 0.5, got.ResistanceMod(model.DamageFire))
	assert.Equal(t, 1.0, got.ResistanceMod(model.DamageCold))
	got.Resist[model.DamageFire] = 3
	assert.Equal(t, 0.5, c.Ratings().ResistanceMod(model.DamageFire))
}

func TestLifestoneFlag(t *testing.T) {
	c := New(1, testStats())
	assert.False(t, c.UnderLifestoneProtection())
	c.SetLifestoneProtection(true)
	assert.True(t, c.UnderLifestoneProtection())
}
