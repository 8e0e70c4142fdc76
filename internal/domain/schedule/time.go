// Package schedule holds the pure time arithmetic the scheduler is built on:
// wall-clock parsing, half-open minute intervals, timezone conversion and the
// discretized slot grid. Nothing here touches storage or the calendar.
package schedule

import (
	"fmt"
	"regexp"
	"time"

	"meet-scheduler/internal/pkg/errs"
)

const (
	MinutesPerDay = 24 * 60

	dateLayout = "2006-01-02"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock converts a strict "HH:MM" string to minutes since local midnight.
func ParseClock(s string) (int, error) {
	if !clockPattern.MatchString(s) {
		return 0, errs.New("invalid time format: " + s)
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour*60 + minute, nil
}

// FormatClock is the inverse of ParseClock; both directions round-trip exactly
// for every valid minute of the day.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate validates a civil "YYYY-MM-DD" date with no time component.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errs.Wrap(err, "invalid date format")
	}
	return t, nil
}

// DateInRange reports whether date falls within the inclusive [start, end]
// range. All three are civil date strings; ISO dates compare lexicographically.
func DateInRange(date, start, end string) bool {
	return date >= start && date <= end
}

// LocalParts resolves an absolute instant into the civil date and
// minutes-since-midnight as observed in loc, accounting for DST.
func LocalParts(instant time.Time, loc *time.Location) (date string, minutes int) {
	local := instant.In(loc)
	return local.Format(dateLayout), local.Hour()*60 + local.Minute()
}

// UTCInstant computes the absolute instant for a civil date+time in loc.
// Two-pass: construct a provisional UTC interpretation, look up the zone
// offset actually in effect at that moment, then shift. Correct across a DST
// boundary inside the booking window.
func UTCInstant(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	provisional := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, time.UTC)
	_, offsetSeconds := provisional.In(loc).Zone()
	return provisional.Add(-time.Duration(offsetSeconds) * time.Second), nil
}
