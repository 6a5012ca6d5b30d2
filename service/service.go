// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package service provides the query API over the holiday cache used
// by view layers. All operations are non-blocking: they trigger
// background population of the years they touch and answer from
// whatever is currently published, so a caller that subscribes to
// cache updates and re-queries will converge on complete results.
package service

import (
	"context"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/holidays"
	"cloudeng.io/holidays/cache"
)

type options struct {
	now func() time.Time
}

// Option represents an option to New.
type Option func(*options)

// WithNow sets the function used to obtain the current time, primarily
// for testing. It defaults to time.Now.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// T answers holiday lookup queries against a cache.Store. It is safe
// for concurrent use and cheap to call repeatedly from a refresh path,
// since the store coalesces duplicate population requests.
type T struct {
	store *cache.Store
	now   func() time.Time
}

// New returns a new query service backed by the supplied store.
func New(store *cache.Store, opts ...Option) *T {
	o := options{now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	return &T{store: store, now: o.now}
}

// HolidaysOn returns the published holidays falling on the given
// calendar day. An occurrence matches when its resolved month and day
// equal the queried ones; the comparison is against each occurrence's
// own pre-resolved date, never a recomputation of a floating rule for
// the queried year. Since the published list spans every cached year,
// the same holiday can match once per year; the result is deduplicated
// by name with the first occurrence in date then catalog order winning.
func (t *T) HolidaysOn(ctx context.Context, date datetime.CalendarDate) holidays.Occurrences {
	t.store.Request(ctx, date.Year())
	var matched holidays.Occurrences
	seen := map[string]struct{}{}
	for _, o := range t.store.Snapshot() {
		if o.Date.Date() != date.Date() {
			continue
		}
		if _, ok := seen[o.Name]; ok {
			continue
		}
		seen[o.Name] = struct{}{}
		matched = append(matched, o)
	}
	return matched
}

// HolidaysInMonth returns the holidays in the given month of the given
// year in ascending date order.
func (t *T) HolidaysInMonth(ctx context.Context, year int, month datetime.Month) holidays.Occurrences {
	t.store.Request(ctx, year)
	occs, ok := t.store.Query(year)
	if !ok {
		return nil
	}
	var matched holidays.Occurrences
	for _, o := range occs {
		if o.Date.Month() == month {
			matched = append(matched, o)
		}
	}
	return matched
}

// HolidaysForYear returns all holidays for the given year in ascending
// date order, or nil if the year is outside the cache's range or not
// yet published.
func (t *T) HolidaysForYear(ctx context.Context, year int) holidays.Occurrences {
	t.store.Request(ctx, year)
	occs, _ := t.store.Query(year)
	return occs
}

// HolidaysByCategory groups every currently published occurrence,
// across all cached years, by category. Within each category the
// occurrences are in ascending date order.
func (t *T) HolidaysByCategory(ctx context.Context) map[holidays.Category]holidays.Occurrences {
	snapshot := t.store.Snapshot()
	if len(snapshot) == 0 {
		return nil
	}
	grouped := map[holidays.Category]holidays.Occurrences{}
	for _, o := range snapshot {
		grouped[o.Category] = append(grouped[o.Category], o)
	}
	return grouped
}

// Upcoming returns up to limit published occurrences falling on or
// after the current day, in ascending date order. Only years that have
// already been requested contribute; call RefreshIfNeeded or Preload
// beforehand to populate the years of interest.
func (t *T) Upcoming(ctx context.Context, limit int) holidays.Occurrences {
	if limit <= 0 {
		return nil
	}
	today := datetime.NewCalendarDateFromTime(t.now())
	var upcoming holidays.Occurrences
	for _, o := range t.store.Snapshot() {
		if o.Date < today {
			continue
		}
		upcoming = append(upcoming, o)
		if len(upcoming) == limit {
			break
		}
	}
	return upcoming
}

// RefreshIfNeeded ensures that the current year and its immediate
// neighbors are requested. It is intended to be called from UI refresh
// paths and is a no-op when the years are already cached.
func (t *T) RefreshIfNeeded(ctx context.Context) {
	t.store.Preload(ctx, t.now().Year(), 1)
}

// Subscribe returns a channel of advisory cache change notifications;
// see cache.Update.
func (t *T) Subscribe() <-chan cache.Update {
	return t.store.Subscribe()
}

// Unsubscribe removes and closes a channel returned by Subscribe.
func (t *T) Unsubscribe(ch <-chan cache.Update) {
	t.store.Unsubscribe(ch)
}
