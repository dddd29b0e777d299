package leaflet

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date-range text normalization and pattern matching.
//
// The source site renders validity ranges in German in three observed
// variants, sometimes decorated with a weekday name and a "from"/"since"
// prefix:
//
//	"02.02.2026 - 07.02.2026"    full range
//	"28.12. - 03.01.2026"        start date omits the year
//	"von Mittwoch 01.10.2025"    single date, open-ended
var (
	weekdayRe    = regexp.MustCompile(`(?i)\b(montag|dienstag|mittwoch|donnerstag|freitag|samstag|sonntag)\b`)
	prefixRe     = regexp.MustCompile(`(?i)\b(von|ab|seit)\b`)
	fullRangeRe  = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})\s*-\s*(\d{2})\.(\d{2})\.(\d{4})`)
	shortRangeRe = regexp.MustCompile(`(\d{2})\.(\d{2})\.\s*-\s*(\d{2})\.(\d{2})\.(\d{4})`)
	singleDateRe = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)
)

// DateRangeParser parses German leaflet validity text into a DateRange.
// The zero value is ready to use.
type DateRangeParser struct {
	// ReferenceYear anchors year resolution for hypothetical future formats
	// that omit the year entirely. All currently recognized patterns carry
	// an explicit four-digit year, so it is never consulted by Parse; in
	// particular it is never substituted for the year-rollover inference on
	// abbreviated start dates. Zero means "the current year".
	ReferenceYear int
}

// NewDateRangeParser returns a new DateRangeParser.
func NewDateRangeParser() *DateRangeParser {
	return &DateRangeParser{}
}

// Parse converts a validity text into a DateRange. Patterns are tried in
// strict order; the first match wins:
//
//  1. "DD.MM.YYYY - DD.MM.YYYY" — both dates taken literally. Ordering is
//     not checked here; the record validator owns that invariant.
//  2. "DD.MM. - DD.MM.YYYY" — the start year is the end year, unless the
//     start month is after the end month, in which case the range wraps a
//     December→January boundary and the start year is the end year minus
//     one.
//  3. "DD.MM.YYYY" alone — open-ended: the leaflet is valid from that date
//     with no known end.
//
// Text matching no pattern yields an EINVALID error carrying the original
// input for diagnostics.
func (p *DateRangeParser) Parse(text string) (DateRange, error) {
	cleaned := normalizeDateText(text)

	if m := fullRangeRe.FindStringSubmatch(cleaned); m != nil {
		return DateRange{
			From: Date{Year: atoi(m[3]), Month: time.Month(atoi(m[2])), Day: atoi(m[1])},
			To:   Until(Date{Year: atoi(m[6]), Month: time.Month(atoi(m[5])), Day: atoi(m[4])}),
		}, nil
	}

	if m := shortRangeRe.FindStringSubmatch(cleaned); m != nil {
		startMonth, endMonth := atoi(m[2]), atoi(m[4])
		endYear := atoi(m[5])
		startYear := endYear
		if startMonth > endMonth {
			startYear = endYear - 1
		}
		return DateRange{
			From: Date{Year: startYear, Month: time.Month(startMonth), Day: atoi(m[1])},
			To:   Until(Date{Year: endYear, Month: time.Month(endMonth), Day: atoi(m[3])}),
		}, nil
	}

	if m := singleDateRe.FindStringSubmatch(cleaned); m != nil {
		return DateRange{
			From: Date{Year: atoi(m[3]), Month: time.Month(atoi(m[2])), Day: atoi(m[1])},
			To:   OpenEnded(),
		}, nil
	}

	return DateRange{}, Errorf(EINVALID, "unsupported date format: %q", text)
}

// ParseDateRange parses text with a default DateRangeParser.
func ParseDateRange(text string) (DateRange, error) {
	return NewDateRangeParser().Parse(text)
}

// normalizeDateText strips surrounding whitespace, German weekday names,
// and the prefixes von/ab/seit from a validity text.
func normalizeDateText(text string) string {
	s := strings.TrimSpace(text)
	s = weekdayRe.ReplaceAllString(s, "")
	s = prefixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// atoi converts a regexp digit group. The patterns guarantee digits only.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
