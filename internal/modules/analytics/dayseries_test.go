package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecentDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	days := recentDays(7, now)

	assert.Len(t, days, 7)
	assert.Equal(t, "2025-03-04", days[0])
	assert.Equal(t, "2025-03-10", days[6])

	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse("2006-01-02", days[i-1])
		cur, _ := time.Parse("2006-01-02", days[i])
		assert.Equal(t, 24*time.Hour, cur.Sub(prev))
	}
}

func TestRecentDaysUsesUTC(t *testing.T) {
	// 23:30 in UTC+10 is 13:30 UTC the same calendar day
	loc := time.FixedZone("UTC+10", 10*3600)
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	days := recentDays(7, now)
	assert.Equal(t, "2025-03-10", days[6])
}

func TestBuildDaySeriesZeroFills(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	sparse := []DayCount{
		{DateKey: "2025-03-05", Count: 3},
		{DateKey: "2025-03-10", Count: 7},
	}

	series := buildDaySeries(7, now, sparse)

	assert.Len(t, series, 7)
	expected := map[string]int64{
		"2025-03-04": 0,
		"2025-03-05": 3,
		"2025-03-06": 0,
		"2025-03-07": 0,
		"2025-03-08": 0,
		"2025-03-09": 0,
		"2025-03-10": 7,
	}
	for _, entry := range series {
		assert.Equal(t, expected[entry.Date], entry.Clicks, entry.Date)
	}
}

func TestBuildDaySeriesIgnoresOutOfWindowKeys(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	sparse := []DayCount{
		{DateKey: "2025-03-03", Count: 99}, // one day before the window
		{DateKey: "2025-03-11", Count: 42}, // tomorrow, clock skew
	}

	series := buildDaySeries(7, now, sparse)

	assert.Len(t, series, 7)
	for _, entry := range series {
		assert.Zero(t, entry.Clicks)
		assert.NotEqual(t, "2025-03-03", entry.Date)
		assert.NotEqual(t, "2025-03-11", entry.Date)
	}
}

func TestBuildDaySeriesEmptyInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	series := buildDaySeries(7, now, nil)

	assert.Len(t, series, 7)
	for _, entry := range series {
		assert.Zero(t, entry.Clicks)
	}
}
