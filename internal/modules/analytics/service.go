package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/shortspace/core/internal/models"
	"github.com/shortspace/core/internal/pkg/cache"
	redisc "github.com/shortspace/core/internal/pkg/redis"
	"gorm.io/gorm"
)

// Service composes the event store, day-series builder and dimension
// aggregators into the three public query shapes, each behind cache-aside.
type Service struct {
	db    *gorm.DB
	store *Store
	rc    *redisc.Client
	now   func() time.Time
}

func NewService(db *gorm.DB, rc *redisc.Client) *Service {
	return &Service{db: db, store: NewStore(db), rc: rc, now: time.Now}
}

// URLAnalytics resolves a short code and reports on its trailing 7 days.
func (s *Service) URLAnalytics(ctx context.Context, alias string) (*URLReport, error) {
	var url models.URLModel
	if err := s.db.WithContext(ctx).Where("short_code = ?", alias).First(&url).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errURLNotFound
		}
		return nil, err
	}

	key := cache.Key(cache.CategoryURLAnalytics, url.ID)
	return cache.GetOrSet(ctx, s.rc, key, cache.AnalyticsTTL, func(ctx context.Context) (*URLReport, error) {
		return s.computeURLReport(ctx, &url)
	})
}

// TopicAnalytics aggregates every URL tagged with the given topic.
func (s *Service) TopicAnalytics(ctx context.Context, topic string) (*TopicReport, error) {
	t := models.Topic(topic)
	if !models.ValidTopic(t) {
		return nil, errInvalidTopic
	}

	key := cache.Key(cache.CategoryTopicAnalytics, topic)
	return cache.GetOrSet(ctx, s.rc, key, cache.AnalyticsTTL, func(ctx context.Context) (*TopicReport, error) {
		var urls []models.URLModel
		if err := s.db.WithContext(ctx).Where("topic = ?", t).Find(&urls).Error; err != nil {
			return nil, err
		}
		return s.computeTopicReport(ctx, urls)
	})
}

// AccountAnalytics aggregates every URL owned by the given account.
func (s *Service) AccountAnalytics(ctx context.Context, userID string) (*AccountReport, error) {
	key := cache.Key(cache.CategoryOverallAnalytics, userID)
	return cache.GetOrSet(ctx, s.rc, key, cache.AnalyticsTTL, func(ctx context.Context) (*AccountReport, error) {
		var urls []models.URLModel
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&urls).Error; err != nil {
			return nil, err
		}
		topicShaped, err := s.computeTopicReport(ctx, urls)
		if err != nil {
			return nil, err
		}
		return &AccountReport{
			TotalURLs:    len(urls),
			TotalClicks:  topicShaped.TotalClicks,
			UniqueClicks: topicShaped.UniqueClicks,
			ClicksByDate: topicShaped.ClicksByDate,
			URLs:         topicShaped.URLs,
			OSType:       topicShaped.OSType,
			DeviceType:   topicShaped.DeviceType,
		}, nil
	})
}

func (s *Service) computeURLReport(ctx context.Context, url *models.URLModel) (*URLReport, error) {
	now := s.now()
	since := now.AddDate(0, 0, -windowDays)
	ids := []string{url.ID}

	visits, err := s.store.FindEvents(ctx, ids, since)
	if err != nil {
		return nil, err
	}
	dayCounts, err := s.store.CountByDay(ctx, ids, since)
	if err != nil {
		return nil, err
	}

	return &URLReport{
		TotalClicks:  url.Clicks,
		UniqueClicks: distinctIPs(visits),
		ClicksByDate: buildDaySeries(windowDays, now, dayCounts),
		OSType:       aggregateOS(visits),
		DeviceType:   aggregateDevice(visits),
	}, nil
}

func (s *Service) computeTopicReport(ctx context.Context, urls []models.URLModel) (*TopicReport, error) {
	now := s.now()
	since := now.AddDate(0, 0, -windowDays)

	ids := make([]string, 0, len(urls))
	var totalClicks int64
	for _, u := range urls {
		ids = append(ids, u.ID)
		totalClicks += u.Clicks
	}

	visits, err := s.store.FindEvents(ctx, ids, since)
	if err != nil {
		return nil, err
	}
	dayCounts, err := s.store.CountByDay(ctx, ids, since)
	if err != nil {
		return nil, err
	}

	byURL := map[string][]models.VisitModel{}
	for _, v := range visits {
		byURL[v.URLID] = append(byURL[v.URLID], v)
	}
	breakdown := make([]URLBreakdown, 0, len(urls))
	for _, u := range urls {
		breakdown = append(breakdown, URLBreakdown{
			ShortCode:    u.ShortCode,
			TotalClicks:  u.Clicks,
			UniqueClicks: distinctIPs(byURL[u.ID]),
		})
	}

	return &TopicReport{
		TotalClicks:  totalClicks,
		UniqueClicks: distinctIPs(visits),
		ClicksByDate: buildDaySeries(windowDays, now, dayCounts),
		URLs:         breakdown,
		OSType:       aggregateOS(visits),
		DeviceType:   aggregateDevice(visits),
	}, nil
}
