package usage

import (
	"fmt"
	"time"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// Fast-store key TTLs. Permanence lives in the durable store.
const (
	dailyKeyTTL  = 7 * 24 * time.Hour
	weeklyKeyTTL = 30 * 24 * time.Hour
)

// DailyKey forms the fast-store key for a user's daily counters.
func DailyKey(userID string, t time.Time) string {
	return fmt.Sprintf("usage:daily:%s:%s", userID, t.UTC().Format("2006-01-02"))
}

// WeeklyKey forms the fast-store key for a user's ISO-week counters.
func WeeklyKey(userID string, t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("usage:weekly:%s:%d-W%02d", userID, year, week)
}

// WindowRange returns the [start, end) bounds of the window containing t.
// Days and months are calendar-aligned in UTC; weeks are ISO weeks starting
// Monday.
func WindowRange(w models.Window, t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	switch w {
	case models.WindowDay:
		start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 0, 1)
	case models.WindowWeek:
		start := weekStart(t)
		return start, start.AddDate(0, 0, 7)
	case models.WindowMonth:
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	default:
		return time.Time{}, time.Time{}
	}
}

// weekStart returns the Monday 00:00 UTC opening t's ISO week.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
