package analytics

import (
	"context"
	"time"

	"github.com/shortspace/core/internal/models"
	"gorm.io/gorm"
)

// Store is the visit-event accessor used by the analytics computations.
type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// FindEvents returns all visits for the given URL ids since the lower bound.
func (s *Store) FindEvents(ctx context.Context, urlIDs []string, since time.Time) ([]models.VisitModel, error) {
	if len(urlIDs) == 0 {
		return nil, nil
	}
	var visits []models.VisitModel
	err := s.db.WithContext(ctx).
		Where("url_id IN ? AND timestamp >= ?", urlIDs, since).
		Order("timestamp ASC").
		Find(&visits).Error
	return visits, err
}

// CountByDay buckets matching visits by UTC calendar day. Timestamps are
// fetched and grouped here rather than in SQL so the bucketing does not
// depend on the store dialect's date functions.
func (s *Store) CountByDay(ctx context.Context, urlIDs []string, since time.Time) ([]DayCount, error) {
	if len(urlIDs) == 0 {
		return nil, nil
	}
	var rows []struct {
		Timestamp time.Time `gorm:"column:timestamp"`
	}
	err := s.db.WithContext(ctx).Model(&models.VisitModel{}).
		Select("timestamp").
		Where("url_id IN ? AND timestamp >= ?", urlIDs, since).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	var order []string
	for _, row := range rows {
		key := row.Timestamp.UTC().Format(dateKey)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]DayCount, 0, len(order))
	for _, key := range order {
		out = append(out, DayCount{DateKey: key, Count: counts[key]})
	}
	return out, nil
}
