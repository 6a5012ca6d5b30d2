// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// FixedDate is a DateRule for holidays that fall on the same calendar
// date every year, eg. Jul 4.
type FixedDate struct {
	Month datetime.Month
	Day   int
}

// Evaluate implements DateRule. It returns false only for a date that
// does not exist in the given year, ie. Feb 29 outside of leap years.
func (f FixedDate) Evaluate(year int) (datetime.CalendarDate, bool) {
	if f.Day > int(datetime.DaysInMonth(year, f.Month)) {
		return datetime.CalendarDate(0), false
	}
	return datetime.NewCalendarDate(year, f.Month, f.Day), true
}

func (f FixedDate) validate() error {
	if f.Month < 1 || f.Month > 12 {
		return fmt.Errorf("invalid month: %d", f.Month)
	}
	// Validate against a leap year so that Feb 29 is accepted.
	if f.Day < 1 || f.Day > int(datetime.DaysInMonth(2024, f.Month)) {
		return fmt.Errorf("invalid day for %v: %d", time.Month(f.Month), f.Day)
	}
	return nil
}

func (f FixedDate) String() string {
	return fmt.Sprintf("%v %02d", time.Month(f.Month), f.Day)
}

// NthWeekday is a DateRule for floating holidays such as "4th Thursday
// of November" or, with FromEnd set, "last Monday of May". N is 1-based
// and counts backwards from the end of the month when FromEnd is set.
type NthWeekday struct {
	Month   datetime.Month
	Weekday time.Weekday
	N       int
	FromEnd bool
}

// Evaluate implements DateRule. It returns false when N exceeds the
// number of times the weekday occurs in the month; catalog rules never
// trigger this.
func (n NthWeekday) Evaluate(year int) (datetime.CalendarDate, bool) {
	matched := 0
	last := int(datetime.DaysInMonth(year, n.Month))
	for i := 0; i < last; i++ {
		day := i + 1
		if n.FromEnd {
			day = last - i
		}
		if time.Date(year, time.Month(n.Month), day, 0, 0, 0, 0, time.UTC).Weekday() != n.Weekday {
			continue
		}
		matched++
		if matched == n.N {
			return datetime.NewCalendarDate(year, n.Month, day), true
		}
	}
	return datetime.CalendarDate(0), false
}

func (n NthWeekday) validate() error {
	if n.Month < 1 || n.Month > 12 {
		return fmt.Errorf("invalid month: %d", n.Month)
	}
	if n.N < 1 || n.N > 5 {
		return fmt.Errorf("invalid ordinal: %d", n.N)
	}
	if n.Weekday < time.Sunday || n.Weekday > time.Saturday {
		return fmt.Errorf("invalid weekday: %d", n.Weekday)
	}
	return nil
}

func (n NthWeekday) String() string {
	if n.FromEnd {
		return fmt.Sprintf("%d last %v of %v", n.N, n.Weekday, time.Month(n.Month))
	}
	return fmt.Sprintf("%d%s %v of %v", n.N, ordinalSuffix(n.N), n.Weekday, time.Month(n.Month))
}

func ordinalSuffix(n int) string {
	switch n {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// EasterOffset is a DateRule for holidays defined relative to Easter
// Sunday, eg. Good Friday is EasterOffset{Days: -2}.
type EasterOffset struct {
	Days int
}

// Evaluate implements DateRule. It returns false if the offset falls
// outside the year; Easter falls in late March or April so offsets in
// the range used by western church holidays always stay within it.
func (e EasterOffset) Evaluate(year int) (datetime.CalendarDate, bool) {
	day := Easter(year).DayOfYear() + e.Days
	if day < 1 || day > datetime.DaysInYear(year) {
		return datetime.CalendarDate(0), false
	}
	return datetime.NewYearDay(year, day).CalendarDate(), true
}

func (e EasterOffset) String() string {
	if e.Days == 0 {
		return "Easter Sunday"
	}
	return fmt.Sprintf("Easter%+d", e.Days)
}

// Season identifies one of the four seasonal markers.
type Season int

const (
	Spring Season = iota // March equinox.
	Summer               // June solstice.
	Autumn               // September equinox.
	Winter               // December solstice.
	numSeasons
)

var seasonNames = []string{"spring", "summer", "autumn", "winter"}

func (s Season) String() string {
	if s < 0 || s >= numSeasons {
		return fmt.Sprintf("invalid season (%d)", int(s))
	}
	return seasonNames[s]
}

// Parse parses a season name in either lower or upper case.
func (s *Season) Parse(val string) error {
	lc := strings.ToLower(val)
	for i, name := range seasonNames {
		if name == lc {
			*s = Season(i)
			return nil
		}
	}
	return fmt.Errorf("invalid season: %s", val)
}

// Approximate northern-hemisphere dates for the equinoxes and
// solstices. The true astronomical events move within a day or two of
// these; this table trades ephemeris accuracy for determinism and is
// good to within one day for common calendaring purposes.
var seasonDates = []datetime.Date{
	datetime.NewDate(datetime.March, 20),     // spring equinox
	datetime.NewDate(datetime.June, 20),      // summer solstice
	datetime.NewDate(datetime.September, 22), // autumn equinox
	datetime.NewDate(datetime.December, 21),  // winter solstice
}

// AstronomicalApproximation is a DateRule for equinox and solstice markers. The dates
// are approximations accurate to within a day, not astronomical
// computations; callers must not assume sub-day precision.
type AstronomicalApproximation struct {
	Season Season
}

// Evaluate implements DateRule.
func (s AstronomicalApproximation) Evaluate(year int) (datetime.CalendarDate, bool) {
	if s.Season < 0 || s.Season >= numSeasons {
		return datetime.CalendarDate(0), false
	}
	return seasonDates[s.Season].CalendarDate(year), true
}

func (s AstronomicalApproximation) validate() error {
	if s.Season < 0 || s.Season >= numSeasons {
		return fmt.Errorf("invalid season: %d", int(s.Season))
	}
	return nil
}

func (s AstronomicalApproximation) String() string {
	return s.Season.String()
}
