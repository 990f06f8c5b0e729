package sharing

import "time"

// IsLocked reports whether an unlock date is still in the future. Both sides
// are truncated to local midnight, so a letter unlocks at the start of its
// unlock date, not at a specific time of day. A nil unlock date never locks.
//
// This is the single lock predicate for the whole system: letter text
// masking, the capsule-letter delete guard and the inbox placeholder all go
// through here so the three views can never disagree.
func IsLocked(unlockDate *time.Time, now time.Time) bool {
	if unlockDate == nil {
		return false
	}
	return truncateToDay(*unlockDate).After(truncateToDay(now))
}

func truncateToDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
