package tracker

import "time"

const (
	// DateLayout is the ledger key format.
	DateLayout = "2006-01-02"

	// DefaultBoundaryHour is the morning hour at which a new day starts.
	// Working past midnight does not reset the day until this hour.
	DefaultBoundaryHour = 5
)

// EffectiveDate maps a wall-clock instant to the calendar date it belongs to:
// before boundaryHour the instant still counts as the previous day. Day math
// runs in the instant's own location; the boundary follows the local clock,
// not UTC.
func EffectiveDate(now time.Time, boundaryHour int) string {
	if boundaryHour < 0 || boundaryHour > 23 {
		boundaryHour = DefaultBoundaryHour
	}
	if now.Hour() < boundaryHour {
		now = now.AddDate(0, 0, -1)
	}
	return now.Format(DateLayout)
}

// PrevDate returns the calendar date one day before date. Malformed input is
// returned unchanged.
func PrevDate(date string) string {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// daysApart returns b - a in calendar days, or 0 when either date is
// malformed. Parsed in UTC so DST transitions cannot skew the count.
func daysApart(a, b string) int {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}
