package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/acego/internal/game/treasure"
)

// TreasureRepository хранит плоские строки wielded treasure таблиц.
// Implements treasure.Source.
type TreasureRepository struct {
	db *pgxpool.Pool
}

// NewTreasureRepository создаёт новый TreasureRepository.
func NewTreasureRepository(db *pgxpool.Pool) *TreasureRepository {
	return &TreasureRepository{db: db}
}

var _ treasure.Source = (*TreasureRepository)(nil)

// WieldedTreasure returns the rows of a table in stored order. An unknown
// table yields an empty slice.
func (r *TreasureRepository) WieldedTreasure(ctx context.Context, tableID uint32) ([]treasure.Entry, error) {
	query := `
		SELECT weenie_class_id, palette_id, shade, stack_size, stack_size_variance,
		       probability, set_start, has_sub_set, continues_previous_set
		FROM treasure_wielded
		WHERE treasure_type = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, int64(tableID))
	if err != nil {
		return nil, fmt.Errorf("querying treasure table %d: %w", tableID, err)
	}
	defer rows.Close()

	var entries []treasure.Entry
	for rows.Next() {
		var (
			e       treasure.Entry
			classID int64
		)
		if err := rows.Scan(
			&classID, &e.Palette, &e.Shade, &e.StackSize, &e.StackSizeVariance,
			&e.Probability, &e.SetStart, &e.HasSubSet, &e.ContinuesPreviousSet,
		); err != nil {
			return nil, fmt.Errorf("scanning treasure row: %w", err)
		}
		e.ClassID = uint32(classID)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating treasure rows: %w", err)
	}

	return entries, nil
}

// TableIDs returns the ids of all stored tables.
func (r *TreasureRepository) TableIDs(ctx context.Context) ([]uint32, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT treasure_type FROM treasure_wielded ORDER BY treasure_type`)
	if err != nil {
		return nil, fmt.Errorf("querying treasure table ids: %w", err)
	}
	defer rows.Close()

	var ids []uint32
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning treasure table id: %w", err)
		}
		ids = append(ids, uint32(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating treasure table ids: %w", err)
	}
	return ids, nil
}

// ReplaceTableTx replaces all rows of a table within a transaction.
// Row order becomes the stored position.
func (r *TreasureRepository) ReplaceTableTx(ctx context.Context, tx pgx.Tx, tableID uint32, entries []treasure.Entry) error {
	if _, err := tx.Exec(ctx, `DELETE FROM treasure_wielded WHERE treasure_type = $1`, int64(tableID)); err != nil {
		return fmt.Errorf("deleting treasure table %d: %w", tableID, err)
	}

	if len(entries) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []any{
			int64(tableID), int32(i), int64(e.ClassID), e.Palette, e.Shade,
			e.StackSize, e.StackSizeVariance, e.Probability,
			e.SetStart, e.HasSubSet, e.ContinuesPreviousSet,
		})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"treasure_wielded"},
		[]string{
			"treasure_type", "position", "weenie_class_id", "palette_id", "shade",
			"stack_size", "stack_size_variance", "probability",
			"set_start", "has_sub_set", "continues_previous_set",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting treasure table %d: %w", tableID, err)
	}

	slog.Debug("saved treasure table",
		"tableID", tableID,
		"rows", len(entries))

	return nil
}

// ReplaceTable replaces all rows of a table (standalone, creates own transaction).
func (r *TreasureRepository) ReplaceTable(ctx context.Context, tableID uint32, entries []treasure.Entry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := r.ReplaceTableTx(ctx, tx, tableID, entries); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
