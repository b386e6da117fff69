package models

// Topic is the fixed category assigned to a short URL for grouped analytics.
type Topic string

const (
	TopicAcquisition Topic = "acquisition"
	TopicActivation  Topic = "activation"
	TopicRetention   Topic = "retention"
	TopicOther       Topic = "other"
)

// ValidTopic reports whether t is one of the known topics.
func ValidTopic(t Topic) bool {
	switch t {
	case TopicAcquisition, TopicActivation, TopicRetention, TopicOther:
		return true
	}
	return false
}

// URLModel stores a shortened URL owned by a user.
// Clicks is the authoritative running total, incremented atomically on each
// redirect; the event-derived counts only cover the analytics window.
type URLModel struct {
	Base
	UserID    string `json:"user_id"    gorm:"index;not null"`
	LongURL   string `json:"long_url"   gorm:"type:text;not null"`
	ShortCode string `json:"short_code" gorm:"uniqueIndex;size:32;not null"`
	Topic     Topic  `json:"topic"      gorm:"size:20;default:'other';index"`
	Clicks    int64  `json:"clicks"     gorm:"default:0"`
}

func (URLModel) TableName() string { return "urls" }
