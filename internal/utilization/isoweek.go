package utilization

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// WeekKey identifies an ISO-8601 week. Its string form is "YYYY-Www".
type WeekKey struct {
	Year int
	Week int
}

// WeekKeyOf returns the ISO week containing the UTC calendar date of t.
// The year is the ISO week-year, which differs from the calendar year
// for some dates at the turn of the year.
func WeekKeyOf(t time.Time) WeekKey {
	year, week := dayOf(t).ISOWeek()
	return WeekKey{Year: year, Week: week}
}

// WeekNumber returns the ISO-8601 week number of t.
func WeekNumber(t time.Time) int {
	return WeekKeyOf(t).Week
}

// MondayOf returns the Monday (UTC midnight) of the ISO week containing t.
func MondayOf(t time.Time) time.Time {
	d := dayOf(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

// ParseWeekKey parses a "YYYY-Www" string.
func ParseWeekKey(s string) (WeekKey, error) {
	var k WeekKey
	if len(s) != 8 || s[4] != '-' || s[5] != 'W' {
		return k, fmt.Errorf("invalid week key %q", s)
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return k, fmt.Errorf("invalid week key %q: %w", s, err)
	}
	week, err := strconv.Atoi(s[6:])
	if err != nil {
		return k, fmt.Errorf("invalid week key %q: %w", s, err)
	}
	k = WeekKey{Year: year, Week: week}
	if k.Week < 1 || k.Week > 53 || WeekKeyOf(k.Monday()) != k {
		return WeekKey{}, fmt.Errorf("invalid week key %q: no such ISO week", s)
	}
	return k, nil
}

// Monday returns the Monday (UTC midnight) starting the week.
func (k WeekKey) Monday() time.Time {
	// January 4th always falls in ISO week 1.
	jan4 := time.Date(k.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	return MondayOf(jan4).AddDate(0, 0, (k.Week-1)*7)
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}

// Compare orders keys by (year, week).
func (k WeekKey) Compare(other WeekKey) int {
	switch {
	case k.Year != other.Year:
		if k.Year < other.Year {
			return -1
		}
		return 1
	case k.Week < other.Week:
		return -1
	case k.Week > other.Week:
		return 1
	default:
		return 0
	}
}

// Before reports whether k is strictly earlier than other.
func (k WeekKey) Before(other WeekKey) bool {
	return k.Compare(other) < 0
}

func (k WeekKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *WeekKey) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseDate parses a YYYY-MM-DD string. ok is false for empty or malformed input.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dayOf returns midnight of t's UTC calendar date.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
