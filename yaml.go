// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

// ruleConfig is the YAML representation of a single rule. The kind
// field selects the date rule variant and determines which of the
// remaining date fields are required.
type ruleConfig struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Kind        string `yaml:"kind"` // fixed, nth-weekday, easter-offset or seasonal
	Month       string `yaml:"month,omitempty"`
	Day         int    `yaml:"day,omitempty"`
	Weekday     string `yaml:"weekday,omitempty"`
	Ordinal     int    `yaml:"ordinal,omitempty"`
	FromEnd     bool   `yaml:"from_end,omitempty"`
	Offset      int    `yaml:"offset,omitempty"`
	Season      string `yaml:"season,omitempty"`
	Emoji       string `yaml:"emoji,omitempty"`
	Description string `yaml:"description,omitempty"`
	Tag         string `yaml:"tag,omitempty"`
	Recurring   bool   `yaml:"recurring,omitempty"`
}

type ruleFileConfig struct {
	Holidays []ruleConfig `yaml:"holidays"`
}

var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func parseWeekday(val string) (time.Weekday, error) {
	lc := strings.ToLower(val)
	for i, name := range weekdayNames {
		if strings.HasPrefix(name, lc) && len(lc) >= 3 {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %s", val)
}

func (rc ruleConfig) rule() (Rule, error) {
	r := Rule{
		Name:        rc.Name,
		Emoji:       rc.Emoji,
		Description: rc.Description,
		Tag:         rc.Tag,
		Recurring:   rc.Recurring,
	}
	if err := r.Category.Parse(rc.Category); err != nil {
		return Rule{}, err
	}
	switch rc.Kind {
	case "fixed":
		var month datetime.Month
		if err := month.Parse(rc.Month); err != nil {
			return Rule{}, err
		}
		r.Date = FixedDate{Month: month, Day: rc.Day}
	case "nth-weekday":
		var month datetime.Month
		if err := month.Parse(rc.Month); err != nil {
			return Rule{}, err
		}
		weekday, err := parseWeekday(rc.Weekday)
		if err != nil {
			return Rule{}, err
		}
		r.Date = NthWeekday{Month: month, Weekday: weekday, N: rc.Ordinal, FromEnd: rc.FromEnd}
	case "easter-offset":
		r.Date = EasterOffset{Days: rc.Offset}
	case "seasonal":
		var season Season
		if err := season.Parse(rc.Season); err != nil {
			return Rule{}, err
		}
		r.Date = AstronomicalApproximation{Season: season}
	default:
		return Rule{}, fmt.Errorf("invalid rule kind: %q", rc.Kind)
	}
	return r, nil
}

func rulesFromConfig(cfg ruleFileConfig) (List, error) {
	errs := &errors.M{}
	rules := make(List, 0, len(cfg.Holidays))
	for i, rc := range cfg.Holidays {
		r, err := rc.rule()
		if err != nil {
			errs.Append(fmt.Errorf("holiday %d: %s: %v", i, rc.Name, err))
			continue
		}
		rules = append(rules, r)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// ParseRules parses a YAML holiday rule specification of the form:
//
//	holidays:
//	  - name: Boxing Day
//	    category: bank
//	    kind: fixed
//	    month: Dec
//	    day: 26
//	  - name: Victoria Day
//	    category: bank
//	    kind: nth-weekday
//	    month: May
//	    weekday: Monday
//	    ordinal: 1
//	    from_end: true
//
// The parsed rules are validated as per List.Validate.
func ParseRules(spec []byte) (List, error) {
	var cfg ruleFileConfig
	if err := cmdyaml.ParseConfig(spec, &cfg); err != nil {
		return nil, err
	}
	return rulesFromConfig(cfg)
}

// ParseRuleFile is like ParseRules but reads the specification from
// the named file. The file is read via file.FSReadFile so an fs.ReadFileFS
// stored in the context will be used in preference to the local filesystem.
func ParseRuleFile(ctx context.Context, filename string) (List, error) {
	var cfg ruleFileConfig
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return nil, err
	}
	return rulesFromConfig(cfg)
}
