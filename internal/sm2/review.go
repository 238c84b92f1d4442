package sm2

import (
	"math"
	"time"
)

// Seen reports whether the item has ever been graded for this learner.
func (rs *ReviewState) Seen() bool {
	return !rs.LastReviewed.IsZero()
}

// IsDue reports whether the item is due for review at now.
func (rs *ReviewState) IsDue(now time.Time) bool {
	if !rs.Seen() {
		return false
	}
	return !now.Before(rs.NextDue)
}

// OverdueDays returns how many days past due the item is, 0 if not due.
func (rs *ReviewState) OverdueDays(now time.Time) float64 {
	if !rs.IsDue(now) {
		return 0
	}
	return now.Sub(rs.NextDue).Hours() / 24.0
}

// DaysUntilDue returns whole days until the next review, rounded up,
// 0 if already due.
func (rs *ReviewState) DaysUntilDue(now time.Time) int {
	if rs.IsDue(now) {
		return 0
	}
	return int(math.Ceil(rs.NextDue.Sub(now).Hours() / 24.0))
}
