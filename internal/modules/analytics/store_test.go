package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shortspace/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.URLModel{}, &models.VisitModel{}))
	return db
}

func TestStoreFindEvents(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	now := time.Now().UTC()
	old := now.AddDate(0, 0, -10)

	require.NoError(t, db.Create(&models.VisitModel{URLID: "u1", Timestamp: now, IPAddress: "1.1.1.1"}).Error)
	require.NoError(t, db.Create(&models.VisitModel{URLID: "u1", Timestamp: old, IPAddress: "1.1.1.2"}).Error)
	require.NoError(t, db.Create(&models.VisitModel{URLID: "u2", Timestamp: now, IPAddress: "1.1.1.3"}).Error)

	visits, err := store.FindEvents(ctx, []string{"u1"}, now.AddDate(0, 0, -7))
	assert.NoError(t, err)
	assert.Len(t, visits, 1)
	assert.Equal(t, "1.1.1.1", visits[0].IPAddress)

	both, err := store.FindEvents(ctx, []string{"u1", "u2"}, now.AddDate(0, 0, -7))
	assert.NoError(t, err)
	assert.Len(t, both, 2)

	none, err := store.FindEvents(ctx, nil, now)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestStoreCountByDay(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	day := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.VisitModel{URLID: "u1", Timestamp: day.Add(time.Duration(i) * time.Hour)}).Error)
	}
	require.NoError(t, db.Create(&models.VisitModel{URLID: "u1", Timestamp: day.AddDate(0, 0, 1)}).Error)

	counts, err := store.CountByDay(ctx, []string{"u1"}, day.AddDate(0, 0, -1))
	assert.NoError(t, err)
	assert.ElementsMatch(t, []DayCount{
		{DateKey: "2025-03-08", Count: 3},
		{DateKey: "2025-03-09", Count: 1},
	}, counts)
}
