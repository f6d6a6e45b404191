package schedule

import (
	"fmt"
	"regexp"
	"time"
)

// dayFormat is the only accepted calendar-day layout.
const dayFormat = "2006-01-02"

// timePattern accepts strict 24-hour HH:mm only: no single-digit hours, no
// seconds, no AM/PM suffixes.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ValidTime reports whether s is a strict 24-hour HH:mm string.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// Clock normalizes raw date input to canonical calendar days in a fixed
// reference location. Raw timestamps carry time-of-day components and would
// never compare equal; every day used as a matching key goes through here.
type Clock struct {
	loc *time.Location
}

// NewClock builds a Clock for the given IANA timezone name.
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reference timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc}, nil
}

// Day truncates t to the start of its calendar day in the reference location.
func (c *Clock) Day(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// ParseDay parses a strict YYYY-MM-DD string into a canonical day.
func (c *Clock) ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, s, c.loc)
	if err != nil {
		return time.Time{}, err
	}
	return c.Day(t), nil
}

// StartOfWeek rolls day back to the most recent Sunday at midnight. Sunday is
// the fixed week-start convention for all weekly windows.
func (c *Clock) StartOfWeek(day time.Time) time.Time {
	d := c.Day(day)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Today returns the current canonical day.
func (c *Clock) Today() time.Time {
	return c.Day(time.Now())
}
