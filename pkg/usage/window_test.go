package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

func TestDailyKey(t *testing.T) {
	at := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "usage:daily:user-1:2026-08-24", DailyKey("user-1", at))
}

func TestWeeklyKeyUsesISOWeek(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{
			name:     "mid-year week",
			at:       time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			expected: "usage:weekly:user-1:2026-W35",
		},
		{
			name: "december 29 belongs to the next ISO year",
			at:   time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			// Monday 2025-12-29 opens 2026-W01.
			expected: "usage:weekly:user-1:2026-W01",
		},
		{
			name:     "january 1 can belong to the previous ISO year",
			at:       time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "usage:weekly:user-1:2026-W53",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeeklyKey("user-1", tt.at))
		})
	}
}

func TestWindowRange(t *testing.T) {
	// A Wednesday.
	at := time.Date(2026, 8, 26, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name          string
		window        models.Window
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "day is calendar-aligned UTC",
			window:        models.WindowDay,
			expectedStart: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "week starts monday",
			window:        models.WindowWeek,
			expectedStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "month is calendar-aligned",
			window:        models.WindowMonth,
			expectedStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WindowRange(tt.window, at)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestWindowRangeWeekOnSundayLooksBackward(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	start, end := WindowRange(models.WindowWeek, sunday)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), end)
}
