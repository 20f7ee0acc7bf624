package services

import "time"

// CycleDay converts a cycle start date and a reference date into a 1-based
// treatment day number. Both dates are flattened to UTC midnight before
// differencing so local-time and DST offsets cannot shift the count. Day 1
// is the start date itself; dates before the start clamp to 0, and a
// missing start date is 0 ("no active cycle"), never an error.
func CycleDay(startDate *time.Time, referenceDate time.Time) int {
	if startDate == nil || startDate.IsZero() {
		return 0
	}

	start := utcMidnight(*startDate)
	reference := utcMidnight(referenceDate)

	day := int(reference.Sub(start).Hours()/24) + 1
	if day < 0 {
		return 0
	}
	return day
}

// MilestoneDate answers "what calendar date does treatment day N fall on":
// startDate + (dayOffset-1) days in local calendar time. Unlike CycleDay it
// deliberately does NOT normalize to UTC. This is the display path, and
// the asymmetry is load-bearing for compatibility.
func MilestoneDate(startDate time.Time, dayOffset int) time.Time {
	year, month, day := startDate.Date()
	local := time.Date(year, month, day, 0, 0, 0, 0, startDate.Location())
	return local.AddDate(0, 0, dayOffset-1)
}

func utcMidnight(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
