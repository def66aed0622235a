package dates

import "time"

// Preset names a relative date range anchored on the current calendar date.
type Preset string

const (
	PresetToday     Preset = "today"
	PresetThisWeek  Preset = "this_week"
	PresetThisMonth Preset = "this_month"
	PresetThisYear  Preset = "this_year"
	PresetAll       Preset = "all"
)

// Range translates a preset into inclusive ISO start/end bounds anchored on
// the given day. Weeks run Monday through Sunday. PresetAll and unknown
// presets clear both bounds.
func Range(p Preset, today time.Time) (start, end string) {
	switch p {
	case PresetToday:
		d := today.Format(ISO)
		return d, d
	case PresetThisWeek:
		offset := (int(today.Weekday()) + 6) % 7 // Monday = 0
		monday := today.AddDate(0, 0, -offset)
		return monday.Format(ISO), monday.AddDate(0, 0, 6).Format(ISO)
	case PresetThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return first.Format(ISO), today.Format(ISO)
	case PresetThisYear:
		first := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		return first.Format(ISO), today.Format(ISO)
	default:
		return "", ""
	}
}
