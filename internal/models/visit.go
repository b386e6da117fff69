package models

import "time"

// VisitModel is one recorded visit to a short URL. Rows are append-only;
// "unique visitor" throughout the analytics layer means distinct IPAddress
// within the queried subset.
type VisitModel struct {
	Base
	URLID          string    `json:"url_id"     gorm:"not null;index:idx_visits_url_ts,priority:1"`
	Timestamp      time.Time `json:"timestamp"  gorm:"index;index:idx_visits_url_ts,priority:2"`
	IPAddress      string    `json:"ip_address" gorm:"size:45;index"`
	OS             string    `json:"os"         gorm:"size:50"`
	Device         string    `json:"device"     gorm:"size:50"`
	Browser        string    `json:"browser"    gorm:"size:50"`
	BrowserVersion string    `json:"browser_version" gorm:"size:50"`
	DeviceModel    string    `json:"device_model"    gorm:"size:100"`
	Country        string    `json:"country"    gorm:"size:100"`
	Region         string    `json:"region"     gorm:"size:100"`
	City           string    `json:"city"       gorm:"size:100"`
	Referrer       string    `json:"referrer"   gorm:"size:255"`
}

func (VisitModel) TableName() string { return "visits" }
