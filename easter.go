// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import "cloudeng.io/datetime"

// Easter returns the date of Gregorian Easter Sunday for the given
// year, computed with the Meeus/Jones/Butcher algorithm using integer
// arithmetic only.
func Easter(year int) datetime.CalendarDate {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return datetime.NewCalendarDate(year, datetime.Month(month), day)
}
