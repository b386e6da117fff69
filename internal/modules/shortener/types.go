package shortener

import (
	"errors"

	"github.com/shortspace/core/internal/models"
)

var (
	errURLNotFound  = errors.New("url not found")
	errInvalidURL   = errors.New("invalid url format")
	errInvalidTopic = errors.New("invalid topic")
	errAliasTaken   = errors.New("custom alias already in use")
)

// ShortenDTO is the request body for creating a short URL.
type ShortenDTO struct {
	LongURL     string       `json:"longUrl" binding:"required"`
	CustomAlias string       `json:"customAlias"`
	Topic       models.Topic `json:"topic"`
}

// ShortenResult is the creation response.
type ShortenResult struct {
	ShortURL  string `json:"shortUrl"`
	ShortCode string `json:"shortCode"`
	CreatedAt string `json:"createdAt"`
}

// RedirectResult is the redirect response body.
type RedirectResult struct {
	LongURL string `json:"longUrl"`
}
