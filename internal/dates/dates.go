// Package dates handles the ISO calendar-date strings used throughout the
// ledger. Dates are kept as YYYY-MM-DD text so that lexicographic comparison
// matches chronological order.
package dates

import "time"

// ISO is the calendar-date layout for all ledger dates.
const ISO = "2006-01-02"

// Today returns the current date as an ISO string.
func Today() string {
	return time.Now().Format(ISO)
}

// Valid reports whether s is a well-formed ISO calendar date.
func Valid(s string) bool {
	_, err := time.Parse(ISO, s)
	return err == nil
}

// coercible layouts for legacy records, tried in order after a plain ISO
// prefix check.
var layouts = []string{
	ISO,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// Coerce turns a raw date value into an ISO calendar-date string. Date-time
// strings are truncated to their date part; anything unparsable becomes the
// fallback.
func Coerce(raw, fallback string) string {
	if len(raw) >= 10 && Valid(raw[:10]) {
		return raw[:10]
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(ISO)
		}
	}
	return fallback
}
