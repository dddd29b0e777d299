package leaflet

import (
	"fmt"
	"time"
)

// openEndedSentinel is the serialized end date of an open-ended leaflet.
// It sorts after every real date in both string and calendar order.
const openEndedSentinel = "9999-12-31"

// Date is a calendar date without a time component or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the given calendar date, or an EINVALID error if the
// components do not name a real date (e.g. February 30th).
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, Errorf(EINVALID, "not a calendar date: %04d-%02d-%02d", year, month, day)
	}
	return d, nil
}

// Valid reports whether the date names a real calendar date. time.Date
// normalizes out-of-range components (February 30th becomes March 1st or
// 2nd), so a date is real exactly when it round-trips unchanged.
func (d Date) Valid() bool {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()
	return y == d.Year && m == d.Month && day == d.Day && d.Year >= 1 && d.Year <= 9999
}

// After reports whether d is strictly after o in calendar order.
func (d Date) After(o Date) bool {
	if d.Year != o.Year {
		return d.Year > o.Year
	}
	if d.Month != o.Month {
		return d.Month > o.Month
	}
	return d.Day > o.Day
}

// String formats the date as ISO YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Validity is the end of a leaflet's validity window: either a concrete
// calendar date or open-ended (no known end date). The zero value is not
// meaningful; construct with Until or OpenEnded.
type Validity struct {
	date      Date
	openEnded bool
}

// Until returns a bounded validity ending on the given date.
func Until(d Date) Validity {
	return Validity{date: d}
}

// OpenEnded returns the open-ended validity. It has no date and compares
// after every bounded validity.
func OpenEnded() Validity {
	return Validity{openEnded: true}
}

// IsOpenEnded reports whether the validity has no known end date.
func (v Validity) IsOpenEnded() bool {
	return v.openEnded
}

// Date returns the end date and true for a bounded validity, or a zero
// Date and false for the open-ended one.
func (v Validity) Date() (Date, bool) {
	if v.openEnded {
		return Date{}, false
	}
	return v.date, true
}

// String formats a bounded validity as its ISO date, and the open-ended
// validity as the sentinel date that sorts after every real date.
func (v Validity) String() string {
	if v.openEnded {
		return openEndedSentinel
	}
	return v.date.String()
}

// DateRange is a parsed leaflet validity window.
type DateRange struct {
	From Date
	To   Validity
}
