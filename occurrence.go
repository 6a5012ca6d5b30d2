// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Occurrence is a single holiday resolved to a concrete date in a
// specific year. Occurrences are immutable once created. Rule refers
// back to the catalog entry the occurrence was resolved from.
type Occurrence struct {
	Name     string
	Date     datetime.CalendarDate
	Category Category
	Rule     *Rule
}

// Time returns the occurrence's date as a time.Time at midnight in the
// given location.
func (o Occurrence) Time(loc *time.Location) time.Time {
	return time.Date(o.Date.Year(), time.Month(o.Date.Month()), o.Date.Day(), 0, 0, 0, 0, loc)
}

// Occurrences is a list of resolved holidays.
type Occurrences []Occurrence

func (ol Occurrences) String() string {
	var out strings.Builder
	for i, o := range ol {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(o.Name)
		out.WriteString(" on ")
		out.WriteString(o.Date.String())
	}
	return out.String()
}

// Sort sorts the occurrences in ascending date order. The sort is
// stable so that occurrences falling on the same day retain their
// relative, ie. catalog, order. CalendarDate values order naturally.
func (ol Occurrences) Sort() {
	slices.SortStableFunc(ol, func(a, b Occurrence) int {
		return cmp.Compare(a.Date, b.Date)
	})
}

// EvaluateYear resolves every rule in the list for the given year and
// returns the occurrences sorted in ascending date order with ties
// broken by catalog order. Rules that do not occur in the year are
// omitted.
func EvaluateYear(rules List, year int) Occurrences {
	occs := make(Occurrences, 0, len(rules))
	for i := range rules {
		r := &rules[i]
		date, ok := r.Date.Evaluate(year)
		if !ok {
			continue
		}
		occs = append(occs, Occurrence{
			Name:     r.Name,
			Date:     date,
			Category: r.Category,
			Rule:     r,
		})
	}
	occs.Sort()
	return occs
}
