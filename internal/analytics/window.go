// Package analytics turns a snapshot of the activity log into windowed
// counts, a per-category breakdown and forward projections.
//
// Every function here is a pure computation over its arguments. The
// reference instant is always passed in; nothing reads the clock.
package analytics

import (
	"time"

	"github.com/crispyBCN13/LifeLog/internal/model"
)

// Day is the length of one window day.
const Day = 24 * time.Hour

// Window is a trailing span of whole days ending at a reference instant.
type Window struct {
	Days int
}

// Cutoff returns the earliest instant still inside the window.
func (w Window) Cutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(w.Days) * Day)
}

// Contains reports whether ts is at most Days days before now. Entries
// dated after now have negative elapsed time and are always inside.
func (w Window) Contains(now, ts time.Time) bool {
	return now.Sub(ts) <= time.Duration(w.Days)*Day
}

// ElapsedDays is the real-valued number of days between ts and now.
func ElapsedDays(now, ts time.Time) float64 {
	return now.Sub(ts).Hours() / 24
}

// CountWithin returns how many entries fall inside a window of days.
func CountWithin(entries []model.Entry, now time.Time, days int) int {
	w := Window{Days: days}
	n := 0
	for _, e := range entries {
		if w.Contains(now, e.Timestamp) {
			n++
		}
	}
	return n
}
