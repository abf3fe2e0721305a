// Package warranty implements the warranty period arithmetic shared by the
// product and sale modules. All functions are pure: time never comes from
// the system clock, and bad numeric input is coerced to zero instead of
// propagating errors, since it sits downstream of validated form input.
package warranty

import "time"

// The period arithmetic uses fixed 30-day months and 365-day years. This is
// a deliberate, non-calendar-accurate approximation; stored totals were
// produced by it, so it must not be "corrected".
const (
	daysPerMonth = 30
	daysPerYear  = 365
)

// expiringSoonWindow is the number of remaining days at or below which an
// active warranty is reported as expiring soon.
const expiringSoonWindow = 30

// Status classifies how much warranty a sale has left.
type Status string

const (
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// Period is a warranty duration split into the components entered in
// product forms.
type Period struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// TotalDays combines period components into a single day count. Each
// component is coerced to be non-negative independently before combining.
func TotalDays(days, months, years int) int {
	return max0(days) + max0(months)*daysPerMonth + max0(years)*daysPerYear
}

// Total is TotalDays for a Period value.
func (p Period) Total() int {
	return TotalDays(p.Days, p.Months, p.Years)
}

// Decompose splits a day total back into period components.
//
// This is not a true inverse of TotalDays: a day component of 30 or more at
// creation time is folded into months on the way back, so
// Decompose(TotalDays(31, 0, 0)) yields {Months: 1, Days: 1}, not
// {Days: 31}. Stored totals round-trip through this pair, so the lossy
// behavior is part of the contract.
func Decompose(totalDays int) Period {
	totalDays = max0(totalDays)
	return Period{
		Years:  totalDays / daysPerYear,
		Months: (totalDays % daysPerYear) / daysPerMonth,
		Days:   totalDays % daysPerMonth,
	}
}

// StatusInfo is the derived warranty state of a sale.
type StatusInfo struct {
	Status Status `json:"status"`
	// DaysLeft is the number of whole days of warranty remaining, rounded
	// up. Negative once expired; display the magnitude as "days ago".
	DaysLeft int       `json:"days_left"`
	End      time.Time `json:"end"`
}

// StatusAt computes the warranty state of a sale at the given instant.
// now is an explicit parameter so the function stays deterministic.
func StatusAt(soldAt time.Time, warrantyDays int, now time.Time) StatusInfo {
	end := soldAt.Add(time.Duration(max0(warrantyDays)) * 24 * time.Hour)
	daysLeft := ceilDays(end.Sub(now))

	var status Status
	switch {
	case daysLeft > expiringSoonWindow:
		status = StatusActive
	case daysLeft > 0:
		status = StatusExpiringSoon
	default:
		status = StatusExpired
	}

	return StatusInfo{Status: status, DaysLeft: daysLeft, End: end}
}

// ceilDays converts a duration to whole days, rounding toward positive
// infinity so a partial remaining day still counts as one day left.
func ceilDays(d time.Duration) int {
	const day = 24 * time.Hour
	n := d / day
	if d%day > 0 {
		n++
	}
	return int(n)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
