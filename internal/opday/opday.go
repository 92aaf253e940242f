// Package opday computes the operational day window.
//
// The business's real day spans an evening into the next calendar date, so
// anchoring reports at UTC midnight (21:00 GMT-3) would split a single
// session across two dates. The boundary is instead fixed at 05:00 UTC
// (02:00 GMT-3), a safe hour with no activity.
package opday

import "time"

// Window returns the [start, end) operational day containing now: start is
// the most recent 05:00 UTC not after now, end is exactly 24h later.
func Window(now time.Time) (start, end time.Time) {
	now = now.UTC()
	start = time.Date(now.Year(), now.Month(), now.Day(), 5, 0, 0, 0, time.UTC)
	if now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	end = start.Add(24 * time.Hour)
	return start, end
}
