package sharing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/timecapsule-dev/timecapsule/internal/sharing"
)

func TestIsLocked(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name   string
		unlock *time.Time
		want   bool
	}{
		{"nil unlock date never locks", nil, false},
		{"tomorrow is locked", datePtr(2025, 6, 16, 0, 0), true},
		{"yesterday is unlocked", datePtr(2025, 6, 14, 23, 59), false},
		{"same day unlocks regardless of time", datePtr(2025, 6, 15, 23, 59), false},
		{"same day early morning unlocks", datePtr(2025, 6, 15, 0, 0), false},
		{"far future is locked", datePtr(2030, 1, 1, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sharing.IsLocked(tt.unlock, now))
		})
	}
}

// The boundary matters: a letter unlocks at local midnight of its unlock
// date, so one minute before midnight the day prior it must still be locked.
func TestIsLockedMidnightBoundary(t *testing.T) {
	unlock := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	justBefore := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)
	assert.True(t, sharing.IsLocked(&unlock, justBefore))

	atMidnight := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)
	assert.False(t, sharing.IsLocked(&unlock, atMidnight))
}

func datePtr(year int, month time.Month, day, hour, min int) *time.Time {
	t := time.Date(year, month, day, hour, min, 0, 0, time.Local)
	return &t
}
