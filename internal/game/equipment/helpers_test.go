package equipment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/acego/internal/model"
)

func newTestItem(t *testing.T, id uint32, tmpl *model.ItemTemplate) *model.Item {
	t.Helper()
	item, err := model.NewItem(id, tmpl)
	require.NoError(t, err)
	return item
}

var (
	swordTmpl = &model.ItemTemplate{
		ClassID: 1, Name: "Sword", Type: model.ItemTypeMeleeWeapon,
		ValidSlots:  model.NewSlotSet(model.SlotMeleeWeapon, model.SlotShield),
		Encumbrance: 150, Value: 400, DamageMin: 10, DamageMax: 20,
	}
	daggerTmpl = &model.ItemTemplate{
		ClassID: 2, Name: "Dagger", Type: model.ItemTypeMeleeWeapon,
		ValidSlots:  model.NewSlotSet(model.SlotMeleeWeapon, model.SlotShield),
		Encumbrance: 50, Value: 100,
	}
	shieldTmpl = &model.ItemTemplate{
		ClassID: 3, Name: "Buckler", Type: model.ItemTypeArmor,
		ValidSlots: model.NewSlotSet(model.SlotShield), Encumbrance: 200, Value: 250, ArmorLevel: 50,
	}
	bowTmpl = &model.ItemTemplate{
		ClassID: 4, Name: "Longbow", Type: model.ItemTypeMissileWeapon,
		ValidSlots: model.NewSlotSet(model.SlotMissileWeapon), CombatStyle: model.CombatStyleBow,
		Encumbrance: 300, Value: 800, AmmoLauncher: true,
	}
	atlatlTmpl = &model.ItemTemplate{
		ClassID: 5, Name: "Atlatl", Type: model.ItemTypeMissileWeapon,
		ValidSlots: model.NewSlotSet(model.SlotMissileWeapon), CombatStyle: model.CombatStyleAtlatl,
		Encumbrance: 200, Value: 500, AmmoLauncher: true,
	}
	arrowTmpl = &model.ItemTemplate{
		ClassID: 6, Name: "Arrow", Type: model.ItemTypeAmmo,
		ValidSlots: model.NewSlotSet(model.SlotMissileAmmo), Encumbrance: 2, Value: 1, MaxStack: 250,
	}
	wandTmpl = &model.ItemTemplate{
		ClassID: 7, Name: "Wand", Type: model.ItemTypeCaster,
		ValidSlots: model.NewSlotSet(model.SlotHeld), Encumbrance: 50, Value: 900,
	}
	helmTmpl = &model.ItemTemplate{
		ClassID: 8, Name: "Helm", Type: model.ItemTypeArmor,
		ValidSlots: model.NewSlotSet(model.SlotHeadWear), Encumbrance: 250, Value: 300, ArmorLevel: 80,
	}
	greatswordTmpl = &model.ItemTemplate{
		ClassID: 9, Name: "Greatsword", Type: model.ItemTypeMeleeWeapon,
		ValidSlots: model.NewSlotSet(model.SlotTwoHanded), Encumbrance: 500, Value: 1200,
	}
	javelinTmpl = &model.ItemTemplate{
		ClassID: 10, Name: "Javelin", Type: model.ItemTypeMissileWeapon,
		ValidSlots: model.NewSlotSet(model.SlotMissileWeapon), CombatStyle: model.CombatStyleThrownWeapon,
		Encumbrance: 80, Value: 20, MaxStack: 50,
	}
)
