package shortener

import (
	"context"
	"errors"
	"net/url"

	"github.com/shortspace/core/internal/models"
	"github.com/shortspace/core/internal/pkg/cache"
	"github.com/shortspace/core/internal/pkg/pagination"
	redisc "github.com/shortspace/core/internal/pkg/redis"
	"github.com/shortspace/core/internal/pkg/response"
	"github.com/shortspace/core/internal/pkg/shortcode"
	"gorm.io/gorm"
)

const maxCodeAttempts = 5

type Service struct {
	db *gorm.DB
	rc *redisc.Client

	// swapped by tests to force collisions
	codeGenerator func(int) string
}

func NewService(db *gorm.DB, rc *redisc.Client) *Service {
	return &Service{db: db, rc: rc, codeGenerator: shortcode.New}
}

// Shorten creates a short URL for the given owner.
func (s *Service) Shorten(ctx context.Context, userID string, dto ShortenDTO) (*models.URLModel, error) {
	if !validLongURL(dto.LongURL) {
		return nil, errInvalidURL
	}

	topic := dto.Topic
	if topic == "" {
		topic = models.TopicOther
	}
	if !models.ValidTopic(topic) {
		return nil, errInvalidTopic
	}

	tx := s.db.WithContext(ctx)

	code := dto.CustomAlias
	if code != "" {
		var count int64
		if err := tx.Model(&models.URLModel{}).Where("short_code = ?", code).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errAliasTaken
		}
	} else {
		var err error
		if code, err = s.freshCode(ctx); err != nil {
			return nil, err
		}
	}

	u := models.URLModel{
		UserID:    userID,
		LongURL:   dto.LongURL,
		ShortCode: code,
		Topic:     topic,
	}
	return &u, tx.Create(&u).Error
}

// ListOwn returns the caller's URLs, newest first.
func (s *Service) ListOwn(ctx context.Context, userID string, q pagination.Query) ([]models.URLModel, response.Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.URLModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	var items []models.URLModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// Redirect resolves a short code and registers the click. The resolution
// plus increment is fronted by a 1h cache keyed on the short code, so
// repeat redirects within the TTL serve the cached record. A successful
// increment invalidates that URL's analytics cache entry before returning.
func (s *Service) Redirect(ctx context.Context, shortCode string) (*models.URLModel, error) {
	key := cache.Key(cache.CategoryURLRedirect, shortCode)
	u, err := cache.GetOrSet(ctx, s.rc, key, cache.RedirectTTL, func(ctx context.Context) (*models.URLModel, error) {
		return s.incrementClicks(ctx, shortCode)
	})
	if err != nil {
		return nil, err
	}

	if err := cache.Invalidate(ctx, s.rc, cache.Key(cache.CategoryURLAnalytics, u.ID)); err != nil {
		return nil, err
	}
	return u, nil
}

// incrementClicks atomically bumps the authoritative counter and returns
// the post-increment record. Atomicity rests on the store's UPDATE, not on
// application locking.
func (s *Service) incrementClicks(ctx context.Context, shortCode string) (*models.URLModel, error) {
	tx := s.db.WithContext(ctx)
	res := tx.Model(&models.URLModel{}).
		Where("short_code = ?", shortCode).
		UpdateColumn("clicks", gorm.Expr("clicks + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errURLNotFound
	}

	var u models.URLModel
	if err := tx.Where("short_code = ?", shortCode).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errURLNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) freshCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := s.codeGenerator(shortcode.DefaultLength)
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.URLModel{}).
			Where("short_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a unique short code")
}

func validLongURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
