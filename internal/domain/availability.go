package domain

import (
	"strconv"
	"strings"
	"time"
)

// Weekday is a lowercase weekday identifier ("monday" .. "sunday").
// The empty value means "weekday unknown" and callers must treat it as
// "cannot evaluate availability" rather than defaulting to any day.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var goWeekdays = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// ParseWeekday normalizes a raw weekday string; unknown values return "".
func ParseWeekday(s string) Weekday {
	switch w := Weekday(strings.ToLower(strings.TrimSpace(s))); w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return w
	default:
		return ""
	}
}

// WeekdayFor resolves the weekday of trip day `offset` (zero-based) for a
// trip starting on startDate ("YYYY-MM-DD"). Calendar arithmetic rolls
// over month and year boundaries. Invalid input yields ok=false.
func WeekdayFor(startDate string, offset int) (Weekday, bool) {
	if offset < 0 {
		return "", false
	}
	t, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "", false
	}
	return goWeekdays[t.AddDate(0, 0, offset).Weekday()], true
}

// IsOpen reports whether a location with the given weekly schedule is
// open at clockMinutes (minutes since local midnight) on the given weekday.
//
// Incomplete data never excludes: an empty schedule or an unparseable
// HH:MM string yields true. A schedule that exists but has no period for
// the weekday means the location is closed that day.
//
// Overnight periods are matched both late on the opening day and in the
// early-morning wraparound before the raw close time. Evaluating an
// overnight period against the *following* day's weekday is a known
// scope boundary and intentionally not handled.
func IsOpen(hours []HoursPeriod, day Weekday, clockMinutes int) bool {
	if len(hours) == 0 {
		return true
	}
	var period *HoursPeriod
	for i := range hours {
		if hours[i].Weekday == day {
			period = &hours[i]
			break
		}
	}
	if period == nil {
		return false
	}

	open, okOpen := ParseClock(period.Open)
	close, okClose := ParseClock(period.Close)
	if !okOpen || !okClose {
		return true
	}

	if period.Overnight {
		return clockMinutes >= open || clockMinutes < close
	}
	return clockMinutes >= open && clockMinutes < close
}

// ParseClock parses a local "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return 0, false
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

// openMinutes returns the parsed opening time for the given weekday.
// ok=false when the day has no period or the time is unparseable, in
// which case no time-based rule may be applied.
func openMinutes(hours []HoursPeriod, day Weekday) (int, bool) {
	for i := range hours {
		if hours[i].Weekday == day {
			return ParseClock(hours[i].Open)
		}
	}
	return 0, false
}

// closeMinutes returns the parsed closing time for the given weekday,
// shifted past midnight for overnight periods so that a bar closing at
// 02:00 reads as 26:00 rather than "closes before breakfast".
func closeMinutes(hours []HoursPeriod, day Weekday) (int, bool) {
	for i := range hours {
		if hours[i].Weekday == day {
			c, ok := ParseClock(hours[i].Close)
			if ok && hours[i].Overnight {
				c += 24 * 60
			}
			return c, ok
		}
	}
	return 0, false
}
