package data

import (
	"fmt"
	"strings"

	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/model"
)

// CreatureDef — шаблон существа из data files.
type CreatureDef struct {
	ClassID           uint32
	Name              string
	CreatureType      string
	Attributes        model.Attributes
	Skills            []model.CreatureSkill
	Health            uint32
	Stamina           uint32
	Mana              uint32
	BodyArmor         map[model.BodyPart]model.BodyPartArmor
	UnarmedDamageType model.DamageType
	TreasureTableID   uint32
	DamageRating      int32
	DamageResist      int32
	Resist            map[model.DamageType]float64
}

// Stats returns the creature construction parameters.
func (d *CreatureDef) Stats() creature.Stats {
	return creature.Stats{
		Name:              d.Name,
		CreatureType:      d.CreatureType,
		Attributes:        d.Attributes,
		Skills:            d.Skills,
		Health:            d.Health,
		Stamina:           d.Stamina,
		Mana:              d.Mana,
		BodyArmor:         d.BodyArmor,
		UnarmedDamageType: d.UnarmedDamageType,
		TreasureTableID:   d.TreasureTableID,
		Ratings: creature.Ratings{
			Damage:       d.DamageRating,
			DamageResist: d.DamageResist,
			Resist:       d.Resist,
		},
	}
}

type named interface {
	~int32
	String() string
}

// parseNamed maps a case-insensitive name onto the first count enum values.
func parseNamed[T named](name string, count int) (T, error) {
	for i := range count {
		v := T(i)
		if strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %T %q", zero, name)
}

func parseAdvancement(name string) (model.AdvancementClass, error) {
	switch strings.ToLower(name) {
	case "", "untrained":
		return model.AdvancementUntrained, nil
	case "trained":
		return model.AdvancementTrained, nil
	case "specialized":
		return model.AdvancementSpecialized, nil
	default:
		return model.AdvancementUntrained, fmt.Errorf("unknown advancement class %q", name)
	}
}
