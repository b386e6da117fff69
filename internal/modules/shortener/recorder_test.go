package shortener

import (
	"context"
	"testing"
	"time"

	"github.com/shortspace/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecorderPersistsVisits(t *testing.T) {
	db := setupTestDB(t)
	rec := NewRecorder(db, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go rec.Start(ctx)

	rec.Record(models.VisitModel{URLID: "url-1", Timestamp: time.Now().UTC(), IPAddress: "1.1.1.1", OS: "Linux", Device: "Desktop"})
	rec.Record(models.VisitModel{URLID: "url-1", Timestamp: time.Now().UTC(), IPAddress: "1.1.1.2", OS: "iOS", Device: "Mobile"})

	require.Eventually(t, func() bool {
		var count int64
		return db.Model(&models.VisitModel{}).Count(&count).Error == nil && count == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRecorderDropsWhenFull(t *testing.T) {
	db := setupTestDB(t)
	rec := NewRecorder(db, zap.NewNop())

	// no consumer running; fill the buffer and then some
	for i := 0; i < recorderBuffer+10; i++ {
		rec.Record(models.VisitModel{URLID: "url-1"})
	}

	assert.Len(t, rec.visits, recorderBuffer)
}
