package app

import (
	"context"
	"time"

	"github.com/shortspace/core/internal/models"
	pkgcron "github.com/shortspace/core/internal/pkg/cron"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const visitRetention = 90 * 24 * time.Hour

// registerCronJobs wires background maintenance tasks.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, logger *zap.Logger) {
	sched.Register(pkgcron.Job{
		Name:     "clean-old-visits",
		Interval: 24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now().Add(-visitRetention)
			res := db.WithContext(ctx).
				Where("timestamp < ?", cutoff).
				Delete(&models.VisitModel{})
			if res.Error != nil {
				logger.Error("visit cleanup failed", zap.Error(res.Error))
				return res.Error
			}
			logger.Info("visit cleanup done", zap.Int64("deleted", res.RowsAffected))
			return nil
		},
	})
}
