// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays_test

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/holidays"
)

func ncd(year int, month datetime.Month, day int) datetime.CalendarDate {
	return datetime.NewCalendarDate(year, month, day)
}

func TestFixedDate(t *testing.T) {
	for _, tc := range []struct {
		rule holidays.FixedDate
		year int
		date datetime.CalendarDate
		ok   bool
	}{
		{holidays.FixedDate{Month: 7, Day: 4}, 2025, ncd(2025, 7, 4), true},
		{holidays.FixedDate{Month: 12, Day: 31}, 2024, ncd(2024, 12, 31), true},
		{holidays.FixedDate{Month: 2, Day: 29}, 2024, ncd(2024, 2, 29), true},
		{holidays.FixedDate{Month: 2, Day: 29}, 2023, datetime.CalendarDate(0), false},
		{holidays.FixedDate{Month: 2, Day: 29}, 2100, datetime.CalendarDate(0), false},
		{holidays.FixedDate{Month: 2, Day: 29}, 2000, ncd(2000, 2, 29), true},
	} {
		date, ok := tc.rule.Evaluate(tc.year)
		if got, want := ok, tc.ok; got != want {
			t.Errorf("%v in %v: got %v, want %v", tc.rule, tc.year, got, want)
			continue
		}
		if got, want := date, tc.date; got != want {
			t.Errorf("%v in %v: got %v, want %v", tc.rule, tc.year, got, want)
		}
	}
}

func TestNthWeekday(t *testing.T) {
	for _, tc := range []struct {
		rule holidays.NthWeekday
		year int
		date datetime.CalendarDate
		ok   bool
	}{
		// Thanksgiving: fourth Thursday of November.
		{holidays.NthWeekday{Month: 11, Weekday: time.Thursday, N: 4}, 2024, ncd(2024, 11, 28), true},
		{holidays.NthWeekday{Month: 11, Weekday: time.Thursday, N: 4}, 2025, ncd(2025, 11, 27), true},
		{holidays.NthWeekday{Month: 11, Weekday: time.Thursday, N: 4}, 2026, ncd(2026, 11, 26), true},
		// Memorial Day: last Monday of May.
		{holidays.NthWeekday{Month: 5, Weekday: time.Monday, N: 1, FromEnd: true}, 2024, ncd(2024, 5, 27), true},
		{holidays.NthWeekday{Month: 5, Weekday: time.Monday, N: 1, FromEnd: true}, 2025, ncd(2025, 5, 26), true},
		// Martin Luther King Jr. Day: third Monday of January.
		{holidays.NthWeekday{Month: 1, Weekday: time.Monday, N: 3}, 2025, ncd(2025, 1, 20), true},
		// Second to last Sunday of June 2025 (Sundays fall on 1, 8, 15, 22, 29).
		{holidays.NthWeekday{Month: 6, Weekday: time.Sunday, N: 2, FromEnd: true}, 2025, ncd(2025, 6, 22), true},
		// February 2025 has only four Mondays.
		{holidays.NthWeekday{Month: 2, Weekday: time.Monday, N: 5}, 2025, datetime.CalendarDate(0), false},
		{holidays.NthWeekday{Month: 2, Weekday: time.Monday, N: 5, FromEnd: true}, 2025, datetime.CalendarDate(0), false},
	} {
		date, ok := tc.rule.Evaluate(tc.year)
		if got, want := ok, tc.ok; got != want {
			t.Errorf("%v in %v: got %v, want %v", tc.rule, tc.year, got, want)
			continue
		}
		if got, want := date, tc.date; got != want {
			t.Errorf("%v in %v: got %v, want %v", tc.rule, tc.year, got, want)
		}
	}
}

func TestEasterOffset(t *testing.T) {
	for _, tc := range []struct {
		rule holidays.EasterOffset
		year int
		date datetime.CalendarDate
		ok   bool
	}{
		{holidays.EasterOffset{}, 2024, ncd(2024, 3, 31), true},
		{holidays.EasterOffset{}, 2025, ncd(2025, 4, 20), true},
		{holidays.EasterOffset{}, 2026, ncd(2026, 4, 5), true},
		// Good Friday.
		{holidays.EasterOffset{Days: -2}, 2024, ncd(2024, 3, 29), true},
		// Easter Monday.
		{holidays.EasterOffset{Days: 1}, 2024, ncd(2024, 4, 1), true},
		// Ascension Day.
		{holidays.EasterOffset{Days: 39}, 2025, ncd(2025, 5, 29), true},
		// Pentecost.
		{holidays.EasterOffset{Days: 49}, 2025, ncd(2025, 6, 8), true},
		// Offsets that leave the year are not resolvable.
		{holidays.EasterOffset{Days: -120}, 2024, datetime.CalendarDate(0), false},
		{holidays.EasterOffset{Days: 300}, 2024, datetime.CalendarDate(0), false},
	} {
		date, ok := tc.rule.Evaluate(tc.year)
		if got, want := ok, tc.ok; got != want {
			t.Errorf("%v in %v: got %v, want %v", tc.rule, tc.year, got, want)
			continue
		}
		if got, want := date, tc.date; got != want {
			t.Errorf("%v in %v: got %v, want %v", tc.rule, tc.year, got, want)
		}
	}
}

func TestSeasonal(t *testing.T) {
	for _, tc := range []struct {
		season datetime.Month
		day    int
		rule   holidays.AstronomicalApproximation
	}{
		{3, 20, holidays.AstronomicalApproximation{Season: holidays.Spring}},
		{6, 20, holidays.AstronomicalApproximation{Season: holidays.Summer}},
		{9, 22, holidays.AstronomicalApproximation{Season: holidays.Autumn}},
		{12, 21, holidays.AstronomicalApproximation{Season: holidays.Winter}},
	} {
		for _, year := range []int{1999, 2024, 2025} {
			date, ok := tc.rule.Evaluate(year)
			if !ok {
				t.Errorf("%v in %v: unexpectedly not resolvable", tc.rule, year)
				continue
			}
			if got, want := date, ncd(year, tc.season, tc.day); got != want {
				t.Errorf("%v in %v: got %v, want %v", tc.rule, year, got, want)
			}
		}
	}
	if _, ok := (holidays.AstronomicalApproximation{Season: holidays.Season(9)}).Evaluate(2024); ok {
		t.Errorf("invalid season unexpectedly resolvable")
	}
}

func TestSeasonParse(t *testing.T) {
	var s holidays.Season
	if err := s.Parse("Winter"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := s, holidays.Winter; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := s.Parse("midsummer"); err == nil {
		t.Errorf("failed to return an error")
	}
}
