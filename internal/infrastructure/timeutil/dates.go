package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date layout used by both providers.
const DateLayout = "2006-01-02"

// LocalDateTimeLayout is the provider layout for local (zone-less) times
// such as flight segment departures.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsFutureDate reports whether value is a valid date strictly after the
// current calendar day of clock.
func IsFutureDate(clock Clock, value string) bool {
	d, err := ParseDate(value)
	if err != nil {
		return false
	}
	today := StartOfDay(clock.Now())
	return d.After(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC))
}

// IsValidDateRange reports whether both dates parse and checkOut is after checkIn.
func IsValidDateRange(checkIn, checkOut string) bool {
	in, err := ParseDate(checkIn)
	if err != nil {
		return false
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return false
	}
	return out.After(in)
}

// Tomorrow returns the calendar date following the clock's current day.
func Tomorrow(clock Clock) string {
	return FormatDate(StartOfDay(clock.Now()).AddDate(0, 0, 1))
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
