package billing

import "time"

// DateOnly truncates a timestamp to its calendar day. Entries are
// dated, not timed; time-of-day sent by clients is discarded before
// any period matching happens, so a day's last entry still falls
// inside the period that ends on that day.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MonthPeriod returns the first and last day of the date's calendar
// month. Calendar months are the only period granularity invoices are
// generated for.
func MonthPeriod(date time.Time) (time.Time, time.Time) {
	year, month, _ := date.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return start, end
}

// PreviousMonthPeriod returns the bounds of the month preceding asOf.
// The generator runs on the first day of a month and bills the month
// that just elapsed.
func PreviousMonthPeriod(asOf time.Time) (time.Time, time.Time) {
	year, month, _ := asOf.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return MonthPeriod(firstOfMonth.AddDate(0, 0, -1))
}

// SameMonth reports whether two dates fall in the same calendar month
// of the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
