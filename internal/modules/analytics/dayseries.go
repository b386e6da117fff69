package analytics

import "time"

const (
	windowDays = 7
	dateKey    = "2006-01-02"
)

// recentDays returns the last n calendar days (UTC) as date keys,
// oldest first, ending with the day containing now.
func recentDays(n int, now time.Time) []string {
	today := now.UTC().Truncate(24 * time.Hour)
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i).Format(dateKey))
	}
	return days
}

// buildDaySeries reconciles a sparse grouped-count result against the dense
// n-day window: exactly n entries, one per consecutive day, zero where the
// store reported nothing. Keys outside the window are ignored.
func buildDaySeries(n int, now time.Time, sparse []DayCount) []ClicksByDate {
	counts := make(map[string]int64, len(sparse))
	for _, dc := range sparse {
		counts[dc.DateKey] = dc.Count
	}

	series := make([]ClicksByDate, 0, n)
	for _, day := range recentDays(n, now) {
		series = append(series, ClicksByDate{Date: day, Clicks: counts[day]})
	}
	return series
}
