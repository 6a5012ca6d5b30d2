// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package holidays provides a catalog of parameterized holiday rules and
// support for resolving them into concrete per-year occurrences. Rules are
// expressed as fixed dates, floating nth-weekday-of-month dates, offsets
// from Easter Sunday or approximate seasonal markers, and are evaluated
// once per year in the manner of cloudeng.io/datetime's dynamic date
// ranges.
package holidays

import (
	"fmt"
	"strings"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

// Category classifies a holiday. The set of categories is closed.
type Category int

const (
	Bank Category = iota // Bank and national holidays.
	Religious
	Cultural // Social and cultural observances.
	Seasonal
	Educational
	Other
	numCategories
)

var categoryNames = []string{"bank", "religious", "cultural", "seasonal", "educational", "other"}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("invalid category (%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory parses a category name as returned by Category.String,
// in either lower or upper case.
func ParseCategory(val string) (Category, error) {
	lc := strings.ToLower(val)
	for i, name := range categoryNames {
		if name == lc {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("invalid category: %s", val)
}

// Parse parses a category name.
func (c *Category) Parse(val string) error {
	p, err := ParseCategory(val)
	if err != nil {
		return err
	}
	*c = p
	return nil
}

// DateRule determines the concrete date of a holiday for a given year.
// Evaluate returns false when the holiday does not occur in that year,
// for example a Feb 29 anniversary outside of leap years; such years
// simply omit the holiday.
type DateRule interface {
	Evaluate(year int) (datetime.CalendarDate, bool)
}

// Rule is an immutable catalog entry describing a single holiday.
// Name is unique within a catalog and stable across years; it is the
// equality key used when deduplicating occurrences that span years.
// Emoji, Description and Tag are display metadata passed through to
// consumers unchanged. Recurring is carried-over metadata from the
// catalog source; occurrence matching is always by exact date and
// never consults it.
type Rule struct {
	Name        string
	Category    Category
	Date        DateRule
	Emoji       string
	Description string
	Tag         string
	Recurring   bool
}

// List is an ordered list of rules. The order is significant: it is
// stable across process runs and breaks ties between holidays that
// resolve to the same day of a year.
type List []Rule

// Validate checks that every rule is well formed and that names are
// unique and non-empty. All violations are reported, not just the first.
func (rl List) Validate() error {
	errs := &errors.M{}
	seen := map[string]struct{}{}
	for i, r := range rl {
		if len(r.Name) == 0 {
			errs.Append(fmt.Errorf("rule %d: empty name", i))
		}
		if _, ok := seen[r.Name]; ok {
			errs.Append(fmt.Errorf("rule %d: duplicate name: %s", i, r.Name))
		}
		seen[r.Name] = struct{}{}
		if r.Category < 0 || r.Category >= numCategories {
			errs.Append(fmt.Errorf("rule %d: %s: invalid category (%d)", i, r.Name, int(r.Category)))
		}
		if r.Date == nil {
			errs.Append(fmt.Errorf("rule %d: %s: no date rule", i, r.Name))
			continue
		}
		if v, ok := r.Date.(interface{ validate() error }); ok {
			if err := v.validate(); err != nil {
				errs.Append(fmt.Errorf("rule %d: %s: %v", i, r.Name, err))
			}
		}
	}
	return errs.Err()
}

func (rl List) String() string {
	var out strings.Builder
	for i, r := range rl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(r.Name)
	}
	return out.String()
}
