package analytics

import "errors"

var (
	errURLNotFound  = errors.New("url not found")
	errInvalidTopic = errors.New("invalid topic")
)

// JSON field names follow the original public API of this service.

// ClicksByDate is one day of the zero-filled trailing window.
type ClicksByDate struct {
	Date   string `json:"date"` // UTC YYYY-MM-DD
	Clicks int64  `json:"clicks"`
}

// BrowserStat is the distinct-IP count for one browser+version under an OS.
type BrowserStat struct {
	Browser string `json:"browser"` // "Chrome 120.0"
	Users   int    `json:"users"`
}

// OSStat aggregates visits sharing one operating system.
// UniqueClicks and UniqueUsers are both distinct-IP counts.
type OSStat struct {
	OSName       string        `json:"osName"`
	UniqueClicks int           `json:"uniqueClicks"`
	UniqueUsers  int           `json:"uniqueUsers"`
	Browsers     []BrowserStat `json:"browsers"`
}

// ModelStat is the distinct-IP count for one device model under a device class.
type ModelStat struct {
	Model string `json:"model"`
	Users int    `json:"users"`
}

// DeviceStat aggregates visits sharing one device class.
type DeviceStat struct {
	DeviceName   string      `json:"deviceName"`
	UniqueClicks int         `json:"uniqueClicks"`
	UniqueUsers  int         `json:"uniqueUsers"`
	Models       []ModelStat `json:"models"`
}

// URLBreakdown is one URL's share inside a topic or account report.
type URLBreakdown struct {
	ShortCode    string `json:"shortCode"`
	TotalClicks  int64  `json:"totalClicks"`
	UniqueClicks int    `json:"uniqueClicks"`
}

// URLReport is the per-URL analytics shape.
type URLReport struct {
	TotalClicks  int64          `json:"totalClicks"`
	UniqueClicks int            `json:"uniqueClicks"`
	ClicksByDate []ClicksByDate `json:"clicksByDate"`
	OSType       []OSStat       `json:"osType"`
	DeviceType   []DeviceStat   `json:"deviceType"`
}

// TopicReport aggregates all URLs sharing a topic.
type TopicReport struct {
	TotalClicks  int64          `json:"totalClicks"`
	UniqueClicks int            `json:"uniqueClicks"`
	ClicksByDate []ClicksByDate `json:"clicksByDate"`
	URLs         []URLBreakdown `json:"urls"`
	OSType       []OSStat       `json:"osType"`
	DeviceType   []DeviceStat   `json:"deviceType"`
}

// AccountReport aggregates everything the requesting account owns.
type AccountReport struct {
	TotalURLs    int            `json:"totalUrls"`
	TotalClicks  int64          `json:"totalClicks"`
	UniqueClicks int            `json:"uniqueClicks"`
	ClicksByDate []ClicksByDate `json:"clicksByDate"`
	URLs         []URLBreakdown `json:"urls"`
	OSType       []OSStat       `json:"osType"`
	DeviceType   []DeviceStat   `json:"deviceType"`
}

// DayCount is a sparse (dateKey, count) pair from the event store.
type DayCount struct {
	DateKey string
	Count   int64
}
