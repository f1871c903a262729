package utilization

import (
	"encoding/json"
	"math"
	"time"
)

const week = 7 * 24 * time.Hour

// Window is a date range after current-week normalization. A zero Start or
// End means the bound was not supplied.
type Window struct {
	Start             time.Time
	End               time.Time
	IsForwardLooking  bool
	ExcludedPastWeeks int
}

// Bounded reports whether both ends of the window are known.
func (w Window) Bounded() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// MarshalJSON writes the bounds as YYYY-MM-DD, or null when absent.
func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start             *string `json:"startDate"`
		End               *string `json:"endDate"`
		IsForwardLooking  bool    `json:"isForwardLooking"`
		ExcludedPastWeeks int     `json:"excludedPastWeeks"`
	}{
		Start:             formatDate(w.Start),
		End:               formatDate(w.End),
		IsForwardLooking:  w.IsForwardLooking,
		ExcludedPastWeeks: w.ExcludedPastWeeks,
	})
}

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// Normalize pulls the start of a multi-week range that straddles now forward
// to the Monday of the current week, so that fully elapsed weeks drop out.
func Normalize(start, end, now time.Time) Window {
	if start.IsZero() || end.IsZero() {
		return Window{Start: start, End: end}
	}

	s, e := dayOf(start), dayOf(end)
	today := dayOf(now)
	currentWeekStart := MondayOf(now)

	straddlesNow := !s.After(today) && !today.After(e)
	multiWeek := e.Sub(s) > week
	hasPastWeek := s.Before(currentWeekStart)

	if !straddlesNow || !multiWeek || !hasPastWeek {
		return Window{Start: s, End: e}
	}

	return Window{
		Start:             currentWeekStart,
		End:               e,
		IsForwardLooking:  true,
		ExcludedPastWeeks: int(currentWeekStart.Sub(s) / week),
	}
}

// PeriodMultiplier is the number of weeks a range covers, at least 1.
func PeriodMultiplier(start, end time.Time) int {
	weeks := int(math.Round(float64(dayOf(end).Sub(dayOf(start))) / float64(week)))
	if weeks < 1 {
		return 1
	}
	return weeks
}

// WeekKeysInRange lists the ISO weeks from the week of start through end,
// in order. Weeks earlier than the week of now are always dropped, whatever
// range is passed in.
func WeekKeysInRange(start, end, now time.Time) []WeekKey {
	if start.IsZero() || end.IsZero() {
		return nil
	}

	last := dayOf(end)
	current := WeekKeyOf(now)

	var keys []WeekKey
	for d := MondayOf(start); !d.After(last); d = d.AddDate(0, 0, 7) {
		k := WeekKeyOf(d)
		if k.Before(current) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}
