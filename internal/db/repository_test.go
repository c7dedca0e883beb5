package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/acego/internal/data"
	"github.com/udisondev/acego/internal/db"
	"github.com/udisondev/acego/internal/game/treasure"
	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/testutil"
)

func TestRunMigrations_Idempotent(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	dsn := pool.Config().ConnString()

	require.NoError(t, db.RunMigrations(ctx, dsn))

	version, err := db.SchemaVersion(ctx, dsn)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestItemTemplateRepository_RoundTrip(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewItemTemplateRepository(pool)
	ctx := context.Background()

	catalog, err := data.Defaults()
	require.NoError(t, err)
	require.NoError(t, repo.SaveAll(ctx, catalog.Items.All()))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, catalog.Items.Len())

	for _, got := range loaded {
		want, ok := catalog.Items.Get(got.ClassID)
		require.True(t, ok, "class %d", got.ClassID)
		assert.Equal(t, *want, *got)
	}

	missing, err := repo.Get(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemTemplateRepository_Upsert(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewItemTemplateRepository(pool)
	ctx := context.Background()

	tmpl := &model.ItemTemplate{
		ClassID:    42,
		Name:       "Practice Sword",
		Type:       model.ItemTypeMeleeWeapon,
		ValidSlots: model.NewSlotSet(model.SlotMeleeWeapon),
		DamageMin:  1,
		DamageMax:  2,
		DamageType: model.DamageSlash,
	}
	require.NoError(t, repo.SaveAll(ctx, []*model.ItemTemplate{tmpl}))

	renamed := *tmpl
	renamed.Name = "Training Sword"
	renamed.DamageMax = 3
	require.NoError(t, repo.SaveAll(ctx, []*model.ItemTemplate{&renamed}))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Training Sword", got.Name)
	assert.Equal(t, 3.0, got.DamageMax)
	assert.Equal(t, model.Resistances{}, got.ArmorResist)
}

func TestTreasureRepository_ReplaceAndLoad(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewTreasureRepository(pool)
	ctx := context.Background()

	catalog, err := data.Defaults()
	require.NoError(t, err)
	for id, entries := range catalog.Treasure {
		require.NoError(t, repo.ReplaceTable(ctx, id, entries))
	}

	ids, err := repo.TableIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, len(catalog.Treasure))

	for id, want := range catalog.Treasure {
		got, err := repo.WieldedTreasure(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "table %d", id)
	}

	// replacing drops the old rows
	require.NoError(t, repo.ReplaceTable(ctx, 1, []treasure.Entry{{ClassID: 1002, Probability: 1, SetStart: true}}))
	got, err := repo.WieldedTreasure(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(1002), got[0].ClassID)

	empty, err := repo.WieldedTreasure(ctx, 777)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTreasureRepository_FeedsCache(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewTreasureRepository(pool)
	ctx := context.Background()

	entries := []treasure.Entry{
		{ClassID: 1001, Probability: 3, SetStart: true},
		{ClassID: 1002, Probability: 7},
	}
	require.NoError(t, repo.ReplaceTable(ctx, 5, entries))

	cache := treasure.NewCache(repo, 0)
	table, err := cache.Get(ctx, 5)
	require.NoError(t, err)
	require.Len(t, table.Sets, 1)
	assert.Equal(t, 10.0, table.Sets[0].TotalProbability)

	_, err = cache.Get(ctx, 6)
	assert.ErrorIs(t, err, treasure.ErrTableNotFound)
}
