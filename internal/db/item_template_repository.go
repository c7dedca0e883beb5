package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/acego/internal/model"
)

// ItemTemplateRepository управляет шаблонами предметов в БД.
type ItemTemplateRepository struct {
	db *pgxpool.Pool
}

// NewItemTemplateRepository создаёт новый ItemTemplateRepository.
func NewItemTemplateRepository(db *pgxpool.Pool) *ItemTemplateRepository {
	return &ItemTemplateRepository{db: db}
}

const itemTemplateColumns = `class_id, name, item_type, valid_slots, encumbrance, value, max_stack,
	combat_style, damage_min, damage_max, damage_type, ammo_launcher,
	weapon_offense, weapon_defense, crit_frequency, crit_multiplier,
	slayer_type, slayer_damage, elemental_bonus, ignore_resist,
	armor_level, armor_resist`

// LoadAll returns every stored template ordered by class id.
func (r *ItemTemplateRepository) LoadAll(ctx context.Context) ([]*model.ItemTemplate, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemTemplateColumns+` FROM item_templates ORDER BY class_id`)
	if err != nil {
		return nil, fmt.Errorf("querying item templates: %w", err)
	}
	defer rows.Close()

	var templates []*model.ItemTemplate
	for rows.Next() {
		t, err := scanItemTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item template rows: %w", err)
	}
	return templates, nil
}

// Get returns one template. A missing row returns (nil, nil).
func (r *ItemTemplateRepository) Get(ctx context.Context, classID uint32) (*model.ItemTemplate, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemTemplateColumns+` FROM item_templates WHERE class_id = $1`, int64(classID))
	if err != nil {
		return nil, fmt.Errorf("querying item template %d: %w", classID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("querying item template %d: %w", classID, err)
		}
		return nil, nil
	}
	return scanItemTemplate(rows)
}

func scanItemTemplate(rows pgx.Rows) (*model.ItemTemplate, error) {
	var (
		t           model.ItemTemplate
		classID     int64
		itemType    string
		slots       []string
		combatStyle int32
		damageType  int32
		resist      []float64
	)
	err := rows.Scan(
		&classID, &t.Name, &itemType, &slots, &t.Encumbrance, &t.Value, &t.MaxStack,
		&combatStyle, &t.DamageMin, &t.DamageMax, &damageType, &t.AmmoLauncher,
		&t.WeaponOffense, &t.WeaponDefense, &t.CritFrequency, &t.CritMultiplier,
		&t.SlayerType, &t.SlayerDamage, &t.ElementalBonus, &t.IgnoreResist,
		&t.ArmorLevel, &resist,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning item template row: %w", err)
	}

	t.ClassID = uint32(classID)
	t.CombatStyle = model.CombatStyle(combatStyle)
	t.DamageType = model.DamageType(damageType)

	typ, ok := model.ParseItemType(itemType)
	if !ok {
		return nil, fmt.Errorf("item template %d: unknown item type %q", t.ClassID, itemType)
	}
	t.Type = typ

	for _, name := range slots {
		s, ok := model.ParseSlotKind(name)
		if !ok {
			return nil, fmt.Errorf("item template %d: unknown slot %q", t.ClassID, name)
		}
		t.ValidSlots = t.ValidSlots.With(s)
	}

	if len(resist) > 0 {
		if len(resist) != len(model.DamageTypes) {
			return nil, fmt.Errorf("item template %d: armor_resist has %d values, want %d",
				t.ClassID, len(resist), len(model.DamageTypes))
		}
		t.ArmorResist = model.ResistancesFrom([len(model.DamageTypes)]float64(resist))
	}

	return &t, nil
}

// SaveAll upserts the templates in one transaction.
func (r *ItemTemplateRepository) SaveAll(ctx context.Context, templates []*model.ItemTemplate) error {
	if len(templates) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := r.SaveAllTx(ctx, tx, templates); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SaveAllTx upserts the templates within a transaction.
func (r *ItemTemplateRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, templates []*model.ItemTemplate) error {
	batch := &pgx.Batch{}
	for _, t := range templates {
		slots := make([]string, 0, 4)
		for _, s := range t.ValidSlots.Slots() {
			slots = append(slots, s.String())
		}
		resist := []float64{}
		if t.ArmorResist != (model.Resistances{}) {
			v := t.ArmorResist.Values()
			resist = v[:]
		}

		batch.Queue(
			`INSERT INTO item_templates (`+itemTemplateColumns+`)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
			 ON CONFLICT (class_id) DO UPDATE SET
			  name=$2, item_type=$3, valid_slots=$4, encumbrance=$5, value=$6, max_stack=$7,
			  combat_style=$8, damage_min=$9, damage_max=$10, damage_type=$11, ammo_launcher=$12,
			  weapon_offense=$13, weapon_defense=$14, crit_frequency=$15, crit_multiplier=$16,
			  slayer_type=$17, slayer_damage=$18, elemental_bonus=$19, ignore_resist=$20,
			  armor_level=$21, armor_resist=$22`,
			int64(t.ClassID), t.Name, t.Type.String(), slots, t.Encumbrance, t.Value, t.MaxStack,
			int32(t.CombatStyle), t.DamageMin, t.DamageMax, int32(t.DamageType), t.AmmoLauncher,
			t.WeaponOffense, t.WeaponDefense, t.CritFrequency, t.CritMultiplier,
			t.SlayerType, t.SlayerDamage, t.ElementalBonus, t.IgnoreResist,
			t.ArmorLevel, resist,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for _, t := range templates {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("saving item template %d: %w", t.ClassID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close item template batch: %w", err)
	}
	return nil
}
