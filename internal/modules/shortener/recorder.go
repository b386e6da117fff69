package shortener

import (
	"context"

	"github.com/shortspace/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recorderBuffer = 1000

// Recorder persists visit events off the request path. Recording is
// fire-and-forget: a failed insert is logged and dropped, and a full
// buffer drops the event rather than blocking the redirect.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
	visits chan models.VisitModel
}

func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	return &Recorder{
		db:     db,
		logger: logger,
		visits: make(chan models.VisitModel, recorderBuffer),
	}
}

// Start consumes queued visits until ctx is cancelled.
func (r *Recorder) Start(ctx context.Context) {
	r.logger.Info("visit recorder starting")
	for {
		select {
		case visit := <-r.visits:
			if err := r.db.Create(&visit).Error; err != nil {
				r.logger.Error("failed to record visit",
					zap.String("url_id", visit.URLID),
					zap.Error(err),
				)
			}
		case <-ctx.Done():
			r.logger.Info("visit recorder stopping")
			return
		}
	}
}

// Record queues a visit without blocking.
func (r *Recorder) Record(visit models.VisitModel) {
	select {
	case r.visits <- visit:
	default:
		r.logger.Warn("visit channel full, dropping event",
			zap.String("url_id", visit.URLID))
	}
}
