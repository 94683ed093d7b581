package equipment_test

import (
	"context"
	"errors"
	"testing"

	"armory/core/database"
	"armory/feature/equipment"
	"armory/feature/equipment/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newSQLiteStore(t *testing.T) (*equipment.GormStore, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := equipment.NewGormStore(db)
	require.NoError(t, store.Migrate())
	return store, db
}

func TestGormStore(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLiteStore(t)

	rot := `[0.5,0,0]`
	scale := 1.5
	rec := &models.SessionRecord{
		ID:               "3f0c9a5e-0000-4000-8000-000000000001",
		MainHand:         "/assets/sword.glb",
		RotationOverride: &rot,
		ScaleOverride:    &scale,
	}
	require.NoError(t, store.Save(ctx, rec))

	loaded, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "/assets/sword.glb", loaded.MainHand)
	assert.Empty(t, loaded.OffHand)
	require.NotNil(t, loaded.RotationOverride)
	assert.Equal(t, rot, *loaded.RotationOverride)
	assert.Nil(t, loaded.PositionOverride)

	// Saving again replaces the row.
	rec.MainHand = ""
	rec.Back = "/assets/cape.glb"
	rec.ScaleOverride = nil
	require.NoError(t, store.Save(ctx, rec))

	loaded, err = store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.MainHand)
	assert.Equal(t, "/assets/cape.glb", loaded.Back)
	assert.Nil(t, loaded.ScaleOverride)

	_, err = store.Load(ctx, "missing")
	assert.True(t, errors.Is(err, equipment.ErrSessionNotFound))
}

func TestGormStoreLoadError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `equipment_sessions`").
		WillReturnError(errors.New("connection reset"))

	_, err = equipment.NewGormStore(gormDB).Load(context.Background(), "abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, equipment.ErrSessionNotFound))
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
