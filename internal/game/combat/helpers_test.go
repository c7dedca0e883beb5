package combat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/acego/internal/config"
	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/game/event"
	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/rnd"
)

var (
	swordTmpl = &model.ItemTemplate{
		ClassID: 1, Name: "Sword", Type: model.ItemTypeMeleeWeapon, DamageType: model.DamageSlash,
		ValidSlots:  model.NewSlotSet(model.SlotMeleeWeapon, model.SlotShield),
		Encumbrance: 150, DamageMin: 10, DamageMax: 20,
	}
	bowTmpl = &model.ItemTemplate{
		ClassID: 2, Name: "Longbow", Type: model.ItemTypeMissileWeapon, CombatStyle: model.CombatStyleBow,
		ValidSlots: model.NewSlotSet(model.SlotMissileWeapon), AmmoLauncher: true, Encumbrance: 300,
	}
	arrowTmpl = &model.ItemTemplate{
		ClassID: 3, Name: "Arrow", Type: model.ItemTypeAmmo, DamageType: model.DamagePierce,
		ValidSlots: model.NewSlotSet(model.SlotMissileAmmo), DamageMin: 4, DamageMax: 8, MaxStack: 250,
	}
	shieldTmpl = &model.ItemTemplate{
		ClassID: 4, Name: "Kite Shield", Type: model.ItemTypeArmor,
		ValidSlots: model.NewSlotSet(model.SlotShield), ArmorLevel: 200, Encumbrance: 400,
	}
	chestTmpl = &model.ItemTemplate{
		ClassID: 5, Name: "Leather Coat", Type: model.ItemTypeArmor,
		ValidSlots: model.NewSlotSet(model.SlotChestArmor), ArmorLevel: 100,
	}
)

// neutralStats gives every attribute 55 so attribute mods are exactly 1.0.
func neutralStats(name string, health uint32) creature.Stats {
	return creature.Stats{
		Name:         name,
		CreatureType: "Drudge",
		Attributes:   model.Attributes{55, 55, 55, 55, 55, 55},
		Skills: []model.CreatureSkill{
			{Skill: model.SkillHeavyWeapons, Class: model.AdvancementTrained, Current: 200},
			{Skill: model.SkillMissileWeapons, Class: model.AdvancementTrained, Current: 200},
			{Skill: model.SkillMeleeDefense, Class: model.AdvancementTrained, Current: 150},
			{Skill: model.SkillMissileDefense, Class: model.AdvancementTrained, Current: 150},
		},
		Health:  health,
		Stamina: 100,
		Mana:    50,
	}
}

func newItem(t *testing.T, id uint32, tmpl *model.ItemTemplate) *model.Item {
	t.Helper()
	it, err := model.NewItem(id, tmpl)
	require.NoError(t, err)
	return it
}

func equip(t *testing.T, c creature.Combatant, id uint32, tmpl *model.ItemTemplate, slot model.SlotKind) *model.Item {
	t.Helper()
	it := newItem(t, id, tmpl)
	require.True(t, c.Equipment().TryEquip(it, slot))
	return it
}

// alwaysHit removes the evade roll from the outcome.
func alwaysHit(uint32, uint32) float64 { return 1.0 }

// neverHit makes every attack evaded.
func neverHit(uint32, uint32) float64 { return 0.0 }

func newResolver(seq *rnd.Sequence, rec *event.Recorder, opts ...Option) *Resolver {
	return NewResolver(seq, rec, config.DefaultCombat(), opts...)
}
