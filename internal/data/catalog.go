package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/acego/internal/game/treasure"
	"github.com/udisondev/acego/internal/model"
)

// File names inside a data directory.
const (
	ItemsFile     = "items.yaml"
	CreaturesFile = "creatures.yaml"
	TreasureFile  = "treasure.yaml"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Catalog holds the static world data: item templates, creature templates
// and wielded treasure tables.
type Catalog struct {
	Items     *ItemTemplates
	Creatures map[uint32]*CreatureDef
	Treasure  treasure.StaticSource
}

// Creature returns the creature template for classID.
func (c *Catalog) Creature(classID uint32) (*CreatureDef, bool) {
	d, ok := c.Creatures[classID]
	return d, ok
}

// Defaults loads the built-in data set.
func Defaults() (*Catalog, error) {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("opening built-in data: %w", err)
	}
	return LoadCatalog(sub)
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return LoadCatalog(os.DirFS(dir))
}

// LoadCatalog reads items, creatures and treasure tables from fsys. Missing
// files leave the corresponding part empty.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		Items:     NewItemTemplates(),
		Creatures: make(map[uint32]*CreatureDef),
		Treasure:  treasure.StaticSource{},
	}

	var items itemsFile
	if err := readYAML(fsys, ItemsFile, &items); err != nil {
		return nil, err
	}
	for i, raw := range items.Items {
		t, err := raw.template()
		if err != nil {
			return nil, fmt.Errorf("%s item %d: %w", ItemsFile, i, err)
		}
		if err := c.Items.Add(t); err != nil {
			return nil, fmt.Errorf("%s: %w", ItemsFile, err)
		}
	}

	var tables treasureFile
	if err := readYAML(fsys, TreasureFile, &tables); err != nil {
		return nil, err
	}
	for _, tbl := range tables.Tables {
		if _, ok := c.Treasure[tbl.ID]; ok {
			return nil, fmt.Errorf("%s: duplicate table %d", TreasureFile, tbl.ID)
		}
		if _, err := treasure.BuildTable(tbl.ID, tbl.Entries); err != nil {
			return nil, fmt.Errorf("%s: %w", TreasureFile, err)
		}
		for _, e := range tbl.Entries {
			if _, ok := c.Items.Get(e.ClassID); !ok {
				slog.Warn("treasure entry references unknown item", "table", tbl.ID, "class", e.ClassID)
			}
		}
		c.Treasure[tbl.ID] = tbl.Entries
	}

	var creatures creaturesFile
	if err := readYAML(fsys, CreaturesFile, &creatures); err != nil {
		return nil, err
	}
	for i, raw := range creatures.Creatures {
		d, err := raw.def()
		if err != nil {
			return nil, fmt.Errorf("%s creature %d: %w", CreaturesFile, i, err)
		}
		if _, ok := c.Creatures[d.ClassID]; ok {
			return nil, fmt.Errorf("%s: duplicate creature %d", CreaturesFile, d.ClassID)
		}
		if d.TreasureTableID != 0 {
			if _, ok := c.Treasure[d.TreasureTableID]; !ok {
				slog.Warn("creature references unknown treasure table", "creature", d.Name, "table", d.TreasureTableID)
			}
		}
		c.Creatures[d.ClassID] = d
	}

	slog.Info("loaded data catalog",
		"items", c.Items.Len(),
		"creatures", len(c.Creatures),
		"treasure_tables", len(c.Treasure))
	return c, nil
}

func readYAML(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

type itemsFile struct {
	Items []itemYAML `yaml:"items"`
}

type itemYAML struct {
	ClassID        uint32            `yaml:"class_id"`
	Name           string            `yaml:"name"`
	Type           string            `yaml:"type"`
	Slots          []string          `yaml:"slots"`
	Encumbrance    int32             `yaml:"encumbrance"`
	Value          int32             `yaml:"value"`
	MaxStack       int32             `yaml:"max_stack"`
	CombatStyle    string            `yaml:"combat_style"`
	DamageMin      float64           `yaml:"damage_min"`
	DamageMax      float64           `yaml:"damage_max"`
	DamageType     string            `yaml:"damage_type"`
	AmmoLauncher   bool              `yaml:"ammo_launcher"`
	Offense        float64           `yaml:"offense"`
	Defense        float64           `yaml:"defense"`
	CritFrequency  float64           `yaml:"crit_frequency"`
	CritMultiplier float64           `yaml:"crit_multiplier"`
	SlayerType     string            `yaml:"slayer_type"`
	SlayerDamage   float64           `yaml:"slayer_damage"`
	ElementalBonus float64           `yaml:"elemental_bonus"`
	IgnoreResist   bool              `yaml:"ignore_resist"`
	ArmorLevel     float64           `yaml:"armor_level"`
	ArmorResist    model.Resistances `yaml:"armor_resist"`
}

func (y itemYAML) template() (*model.ItemTemplate, error) {
	itemType, ok := model.ParseItemType(y.Type)
	if !ok {
		return nil, fmt.Errorf("unknown item type %q", y.Type)
	}
	var slots model.SlotSet
	for _, name := range y.Slots {
		s, ok := model.ParseSlotKind(name)
		if !ok || s == model.SlotNone {
			return nil, fmt.Errorf("unknown slot %q", name)
		}
		slots = slots.With(s)
	}
	t := &model.ItemTemplate{
		ClassID:        y.ClassID,
		Name:           y.Name,
		Type:           itemType,
		ValidSlots:     slots,
		Encumbrance:    y.Encumbrance,
		Value:          y.Value,
		MaxStack:       y.MaxStack,
		DamageMin:      y.DamageMin,
		DamageMax:      y.DamageMax,
		AmmoLauncher:   y.AmmoLauncher,
		WeaponOffense:  y.Offense,
		WeaponDefense:  y.Defense,
		CritFrequency:  y.CritFrequency,
		CritMultiplier: y.CritMultiplier,
		SlayerType:     y.SlayerType,
		SlayerDamage:   y.SlayerDamage,
		ElementalBonus: y.ElementalBonus,
		IgnoreResist:   y.IgnoreResist,
		ArmorLevel:     y.ArmorLevel,
		ArmorResist:    y.ArmorResist,
	}
	var err error
	if y.CombatStyle != "" {
		if t.CombatStyle, err = parseNamed[model.CombatStyle](y.CombatStyle, int(model.CombatStyleAtlatl)+1); err != nil {
			return nil, err
		}
	}
	if y.DamageType != "" {
		if t.DamageType, err = parseNamed[model.DamageType](y.DamageType, len(model.DamageTypes)+1); err != nil {
			return nil, err
		}
	}
	if t.DamageMax < t.DamageMin {
		return nil, fmt.Errorf("item %d: damage_max %v below damage_min %v", y.ClassID, y.DamageMax, y.DamageMin)
	}
	return t, nil
}

type treasureFile struct {
	Tables []struct {
		ID      uint32           `yaml:"id"`
		Entries []treasure.Entry `yaml:"entries"`
	} `yaml:"tables"`
}

type creaturesFile struct {
	Creatures []creatureYAML `yaml:"creatures"`
}

type attributesYAML struct {
	Strength     uint32 `yaml:"strength"`
	Endurance    uint32 `yaml:"endurance"`
	Coordination uint32 `yaml:"coordination"`
	Quickness    uint32 `yaml:"quickness"`
	Focus        uint32 `yaml:"focus"`
	Self         uint32 `yaml:"self"`
}

type skillYAML struct {
	Skill string `yaml:"skill"`
	Class string `yaml:"class"`
	Value uint32 `yaml:"value"`
}

type creatureYAML struct {
	ClassID      uint32                         `yaml:"class_id"`
	Name         string                         `yaml:"name"`
	CreatureType string                         `yaml:"creature_type"`
	Attributes   attributesYAML                 `yaml:"attributes"`
	Skills       []skillYAML                    `yaml:"skills"`
	Health       uint32                         `yaml:"health"`
	Stamina      uint32                         `yaml:"stamina"`
	Mana         uint32                         `yaml:"mana"`
	BodyArmor    map[string]model.BodyPartArmor `yaml:"body_armor"`
	Unarmed      string                         `yaml:"unarmed_damage_type"`
	Treasure     uint32                         `yaml:"treasure_table"`
	DamageRating int32                          `yaml:"damage_rating"`
	DamageResist int32                          `yaml:"damage_resist_rating"`
	Resist       map[string]float64             `yaml:"resist"`
}

func (y creatureYAML) def() (*CreatureDef, error) {
	if y.ClassID == 0 {
		return nil, fmt.Errorf("creature %q without class id", y.Name)
	}
	if y.Health == 0 {
		return nil, fmt.Errorf("creature %d: health must be > 0", y.ClassID)
	}
	d := &CreatureDef{
		ClassID:         y.ClassID,
		Name:            y.Name,
		CreatureType:    y.CreatureType,
		Health:          y.Health,
		Stamina:         y.Stamina,
		Mana:            y.Mana,
		BodyArmor:       make(map[model.BodyPart]model.BodyPartArmor, len(y.BodyArmor)),
		TreasureTableID: y.Treasure,
		DamageRating:    y.DamageRating,
		DamageResist:    y.DamageResist,
	}
	d.Attributes[model.AttributeStrength] = y.Attributes.Strength
	d.Attributes[model.AttributeEndurance] = y.Attributes.Endurance
	d.Attributes[model.AttributeCoordination] = y.Attributes.Coordination
	d.Attributes[model.AttributeQuickness] = y.Attributes.Quickness
	d.Attributes[model.AttributeFocus] = y.Attributes.Focus
	d.Attributes[model.AttributeSelf] = y.Attributes.Self

	for _, s := range y.Skills {
		skill, err := parseNamed[model.Skill](s.Skill, int(model.SkillDirtyFighting)+1)
		if err != nil {
			return nil, err
		}
		class, err := parseAdvancement(s.Class)
		if err != nil {
			return nil, err
		}
		d.Skills = append(d.Skills, model.CreatureSkill{Skill: skill, Class: class, Current: s.Value})
	}

	for name, armor := range y.BodyArmor {
		part, err := parseNamed[model.BodyPart](name, int(model.BodyPartFoot)+1)
		if err != nil {
			return nil, err
		}
		d.BodyArmor[part] = armor
	}

	if y.Unarmed != "" {
		dt, err := parseNamed[model.DamageType](y.Unarmed, len(model.DamageTypes)+1)
		if err != nil {
			return nil, err
		}
		d.UnarmedDamageType = dt
	}

	if len(y.Resist) > 0 {
		d.Resist = make(map[model.DamageType]float64, len(y.Resist))
		for name, v := range y.Resist {
			dt, err := parseNamed[model.DamageType](name, len(model.DamageTypes)+1)
			if err != nil {
				return nil, err
			}
			d.Resist[dt] = v
		}
	}
	return d, nil
}
