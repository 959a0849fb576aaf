package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
)

type labelRow struct {
	ID        uint       `gorm:"column:id;primaryKey"`
	Libelle   string     `gorm:"column:libelle;not null;uniqueIndex"`
	Note      string     `gorm:"column:note"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at"`
}

func (labelRow) TableName() string { return "label_row" }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// cache=shared : toutes les connexions du pool voient la même base
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&labelRow{}))
	return db
}

func TestSchemaSurvivesPoolConnectionChurn(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()
	ctx := context.Background()

	// force l'abandon de la connexion qui a exécuté la migration
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(0)

	require.NoError(t, repo.Create(ctx, db, &labelRow{Libelle: "Premiers secours", CreatedAt: time.Now()}))

	rows, err := repo.List(ctx, db)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestListEmptyTableReturnsEmptySlice(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()

	rows, err := repo.List(context.Background(), db)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCreateDuplicateIsConflictAndLeavesTableUntouched(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, &labelRow{Libelle: "Sécurité incendie", CreatedAt: time.Now()}))

	err := repo.Create(ctx, db, &labelRow{Libelle: "Sécurité incendie", CreatedAt: time.Now()})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	rows, err := repo.List(ctx, db)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestGetByIDMissingIsNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()

	_, err := repo.GetByID(context.Background(), db, 42)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdatesAppliesSparsePatch(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()
	ctx := context.Background()

	row := labelRow{Libelle: "Habilitation électrique", Note: "initiale", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, db, &row))

	updated, err := repo.Updates(ctx, db, row.ID, map[string]interface{}{"note": "revue"})
	require.NoError(t, err)

	assert.Equal(t, "revue", updated.Note)
	// les colonnes absentes du patch ne bougent pas
	assert.Equal(t, "Habilitation électrique", updated.Libelle)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdatesMissingRowIsNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()

	_, err := repo.Updates(context.Background(), db, 99, map[string]interface{}{"note": "x"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdatesDuplicateIsConflict(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, &labelRow{Libelle: "SST", CreatedAt: time.Now()}))
	second := labelRow{Libelle: "CACES", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, db, &second))

	_, err := repo.Updates(ctx, db, second.ID, map[string]interface{}{"libelle": "SST"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestDeleteRemovesRowAndReturnsIt(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()
	ctx := context.Background()

	row := labelRow{Libelle: "Gestes et postures", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, db, &row))

	deleted, err := repo.Delete(ctx, db, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gestes et postures", deleted.Libelle)

	_, err = repo.GetByID(ctx, db, row.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()

	_, err := repo.Delete(context.Background(), db, 7)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListWhereFiltersRows(t *testing.T) {
	db := openTestDB(t)
	repo := New[labelRow]()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, &labelRow{Libelle: "A", Note: "garde", CreatedAt: time.Now()}))
	require.NoError(t, repo.Create(ctx, db, &labelRow{Libelle: "B", Note: "garde", CreatedAt: time.Now()}))
	require.NoError(t, repo.Create(ctx, db, &labelRow{Libelle: "C", Note: "autre", CreatedAt: time.Now()}))

	rows, err := repo.ListWhere(ctx, db, "note = ?", "garde")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
