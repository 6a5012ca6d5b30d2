// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command holiday-lookup answers holiday queries from the command
// line: the holidays on a day, in a month, in a year, the next
// upcoming ones, or the full cached set grouped by category.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datetime"
	"cloudeng.io/holidays"
	"cloudeng.io/holidays/cache"
	"cloudeng.io/holidays/service"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

type CommonFlags struct {
	Config  string `subcmd:"config,,yaml configuration file for the year range, concurrency and extra holiday rules"`
	YAML    bool   `subcmd:"yaml,false,print results as yaml rather than text"`
	Verbose bool   `subcmd:"v,false,enable debug logging"`
}

type onFlags struct {
	CommonFlags
}

type monthFlags struct {
	CommonFlags
}

type yearFlags struct {
	CommonFlags
}

type upcomingFlags struct {
	CommonFlags
	Limit int `subcmd:"limit,10,maximum number of upcoming holidays to display"`
}

type categoriesFlags struct {
	CommonFlags
	Years int `subcmd:"years,1,number of years, starting with the current one, to include"`
}

func init() {
	onFlagSet := subcmd.NewFlagSet()
	onFlagSet.MustRegisterFlagStruct(&onFlags{}, nil, nil)
	monthFlagSet := subcmd.NewFlagSet()
	monthFlagSet.MustRegisterFlagStruct(&monthFlags{}, nil, nil)
	yearFlagSet := subcmd.NewFlagSet()
	yearFlagSet.MustRegisterFlagStruct(&yearFlags{}, nil, nil)
	upcomingFlagSet := subcmd.NewFlagSet()
	upcomingFlagSet.MustRegisterFlagStruct(&upcomingFlags{}, nil, nil)
	categoriesFlagSet := subcmd.NewFlagSet()
	categoriesFlagSet.MustRegisterFlagStruct(&categoriesFlags{}, nil, nil)

	onCmd := subcmd.NewCommand("on", onFlagSet, on, subcmd.ExactlyNumArguments(1))
	onCmd.Document("list the holidays falling on a day", "<yyyy-mm-dd>")

	monthCmd := subcmd.NewCommand("month", monthFlagSet, month, subcmd.ExactlyNumArguments(2))
	monthCmd.Document("list the holidays in a month", "<year> <month>")

	yearCmd := subcmd.NewCommand("year", yearFlagSet, year, subcmd.ExactlyNumArguments(1))
	yearCmd.Document("list the holidays in a year", "<year>")

	upcomingCmd := subcmd.NewCommand("upcoming", upcomingFlagSet, upcoming, subcmd.WithoutArguments())
	upcomingCmd.Document("list the next upcoming holidays")

	categoriesCmd := subcmd.NewCommand("categories", categoriesFlagSet, categories, subcmd.WithoutArguments())
	categoriesCmd.Document("list holidays grouped by category")

	cmdSet = subcmd.NewCommandSet(onCmd, monthCmd, yearCmd, upcomingCmd, categoriesCmd)
	cmdSet.Document(`lookup holidays resolved from the built-in rule catalog.

The catalog covers fixed-date holidays, floating holidays such as the
fourth Thursday of November, holidays defined relative to Easter Sunday
and approximate seasonal markers. Additional rules may be supplied via
a yaml configuration file, see the config flag.`)
}

func main() {
	if err := cmdSet.Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}

type config struct {
	MinYear     int    `yaml:"min_year,omitempty"`
	MaxYear     int    `yaml:"max_year,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty"`
	RuleFile    string `yaml:"rule_file,omitempty"`
}

// newService builds a store and service from the common flags,
// applying the optional yaml config file.
func newService(ctx context.Context, cl CommonFlags) (context.Context, *service.T, *cache.Store, error) {
	level := slog.LevelInfo
	if cl.Verbose {
		level = slog.LevelDebug
	}
	ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: level})
	cfg := config{MinYear: 1900, MaxYear: 2200, Concurrency: 4}
	if len(cl.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cl.Config, &cfg); err != nil {
			return ctx, nil, nil, err
		}
	}
	rules := holidays.Catalog()
	if len(cfg.RuleFile) > 0 {
		extra, err := holidays.ParseRuleFile(ctx, cfg.RuleFile)
		if err != nil {
			return ctx, nil, nil, err
		}
		rules = append(append(holidays.List{}, rules...), extra...)
		if err := rules.Validate(); err != nil {
			return ctx, nil, nil, err
		}
	}
	store := cache.New(rules,
		cache.WithYearRange(cfg.MinYear, cfg.MaxYear),
		cache.WithConcurrency(cfg.Concurrency))
	return ctx, service.New(store), store, nil
}

// waitForYears requests the given years and waits, via the store's
// advisory notifications, until they are all published or out of
// range. Subscribing before requesting guarantees no update is missed.
func waitForYears(ctx context.Context, store *cache.Store, years ...int) {
	ch := store.Subscribe()
	defer store.Unsubscribe(ch)
	for _, y := range years {
		store.Request(ctx, y)
	}
	deadline := time.After(time.Minute)
	for {
		ready := true
		minYear, maxYear := store.YearRange()
		for _, y := range years {
			if y < minYear || y > maxYear {
				continue
			}
			if _, ok := store.Query(y); !ok {
				ready = false
			}
		}
		if ready {
			return
		}
		select {
		case <-ch:
		case <-deadline:
			return
		case <-ctx.Done():
			return
		}
	}
}

func parseYear(val string) (int, error) {
	y, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid year: %s", val)
	}
	return y, nil
}

func on(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*onFlags)
	when, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid date %q, expected yyyy-mm-dd", args[0])
	}
	ctx, svc, store, err := newService(ctx, cl.CommonFlags)
	if err != nil {
		return err
	}
	defer store.Close()
	date := datetime.NewCalendarDateFromTime(when)
	waitForYears(ctx, store, date.Year())
	return printHolidays(cl.YAML, svc.HolidaysOn(ctx, date))
}

func month(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*monthFlags)
	y, err := parseYear(args[0])
	if err != nil {
		return err
	}
	var m datetime.Month
	if err := m.Parse(args[1]); err != nil {
		return err
	}
	ctx, svc, store, err := newService(ctx, cl.CommonFlags)
	if err != nil {
		return err
	}
	defer store.Close()
	waitForYears(ctx, store, y)
	return printHolidays(cl.YAML, svc.HolidaysInMonth(ctx, y, m))
}

func year(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*yearFlags)
	y, err := parseYear(args[0])
	if err != nil {
		return err
	}
	ctx, svc, store, err := newService(ctx, cl.CommonFlags)
	if err != nil {
		return err
	}
	defer store.Close()
	waitForYears(ctx, store, y)
	return printHolidays(cl.YAML, svc.HolidaysForYear(ctx, y))
}

func upcoming(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*upcomingFlags)
	ctx, svc, store, err := newService(ctx, cl.CommonFlags)
	if err != nil {
		return err
	}
	defer store.Close()
	current := time.Now().Year()
	waitForYears(ctx, store, current, current+1)
	return printHolidays(cl.YAML, svc.Upcoming(ctx, cl.Limit))
}

func categories(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*categoriesFlags)
	ctx, svc, store, err := newService(ctx, cl.CommonFlags)
	if err != nil {
		return err
	}
	defer store.Close()
	years := []int{}
	current := time.Now().Year()
	for i := 0; i < cl.Years; i++ {
		years = append(years, current+i)
	}
	waitForYears(ctx, store, years...)
	grouped := svc.HolidaysByCategory(ctx)
	for cat := holidays.Bank; cat <= holidays.Other; cat++ {
		occs, ok := grouped[cat]
		if !ok {
			continue
		}
		fmt.Printf("%s:\n", cat)
		if err := printHolidays(cl.YAML, occs); err != nil {
			return err
		}
	}
	return nil
}
