package expiry

import "time"

const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD calendar date at midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

// FormatDate renders an unset date as the empty string.
func FormatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayout)
}

// Today truncates now to midnight of the same calendar day.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func AddDays(date time.Time, days int) time.Time {
	return Today(date).AddDate(0, 0, days)
}
