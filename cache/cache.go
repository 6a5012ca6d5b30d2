// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cache provides an in-memory, per-year cache of resolved
// holidays. Years are populated in the background by a bounded pool of
// workers with an admission check that guarantees at most one
// evaluation per year is ever in flight; reads never block on a
// computation in progress. The cache is bounded to a configurable year
// range and entries never expire, they are removed only by explicit
// eviction.
package cache

import (
	"context"
	"sort"
	"sync"

	"cloudeng.io/holidays"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

// State represents the lifecycle of a cached year.
type State int

const (
	// Pending indicates the year has been admitted and its evaluation
	// is queued or running.
	Pending State = iota
	// Ready indicates the year's occurrences are published. A year
	// transitions to Ready exactly once and is never partially visible.
	Ready
)

type entry struct {
	state       State
	occurrences holidays.Occurrences
}

type options struct {
	minYear     int
	maxYear     int
	concurrency int
}

// Option represents an option to New.
type Option func(*options)

// WithYearRange sets the inclusive range of years the store is willing
// to compute. Requests outside the range are silently ignored. The
// default range is 1900 to 2200.
func WithYearRange(minYear, maxYear int) Option {
	return func(o *options) {
		o.minYear, o.maxYear = minYear, maxYear
	}
}

// WithConcurrency sets the maximum number of years that may be
// evaluated in parallel. The cap bounds CPU burst when many years are
// requested at once, eg. by Preload; it defaults to 4. A value of 0
// removes the limit.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// Store is a concurrency-safe cache of per-year holiday occurrences.
// All mutations of the cache state are serialized by a single lock;
// reads take the lock for reading only and return the last published
// snapshot immediately. Store must be created by New and closed via
// Close when no longer needed.
type Store struct {
	rules   holidays.List
	minYear int
	maxYear int
	g       *errgroup.T
	sem     chan struct{}

	mu      sync.RWMutex
	entries map[int]*entry

	notifier notifier
}

// New returns a new Store that resolves the supplied rules. The rules
// are evaluated in catalog order and must not be modified after the
// call.
func New(rules holidays.List, opts ...Option) *Store {
	o := options{minYear: 1900, maxYear: 2200, concurrency: 4}
	for _, fn := range opts {
		fn(&o)
	}
	s := &Store{
		rules:   rules,
		minYear: o.minYear,
		maxYear: o.maxYear,
		g:       &errgroup.T{},
		entries: map[int]*entry{},
	}
	if o.concurrency > 0 {
		s.sem = make(chan struct{}, o.concurrency)
	}
	return s
}

// YearRange returns the inclusive range of years the store is willing
// to compute.
func (s *Store) YearRange() (minYear, maxYear int) {
	return s.minYear, s.maxYear
}

// Request asks the store to populate the given year. Out-of-range
// years and years that are already pending or ready are ignored, so
// Request is cheap to call repeatedly and duplicate evaluations are
// impossible. The evaluation runs on a background goroutine that
// acquires a concurrency slot before doing any work; Request itself
// never waits, not even when all slots are busy.
func (s *Store) Request(ctx context.Context, year int) {
	if year < s.minYear || year > s.maxYear {
		return
	}
	s.mu.Lock()
	if _, ok := s.entries[year]; ok {
		s.mu.Unlock()
		return
	}
	e := &entry{state: Pending}
	s.entries[year] = e
	s.mu.Unlock()
	s.g.Go(func() error {
		if s.sem != nil {
			s.sem <- struct{}{}
			defer func() { <-s.sem }()
		}
		occs := holidays.EvaluateYear(s.rules, year)
		s.mu.Lock()
		if s.entries[year] != e {
			// The year was evicted (and possibly re-requested) while
			// this evaluation was running; discard the result.
			s.mu.Unlock()
			ctxlog.Logger(ctx).Debug("holidays: discarded evaluation of evicted year", "year", year)
			return nil
		}
		e.occurrences = occs
		e.state = Ready
		s.mu.Unlock()
		ctxlog.Logger(ctx).Debug("holidays: year published", "year", year, "holidays", len(occs))
		s.notifier.notify(Update{Year: year})
		return nil
	})
}

// Preload requests every year in [centerYear-radius, centerYear+radius]
// that falls within the store's year range. It is used to keep the
// years adjacent to the one being viewed warm.
func (s *Store) Preload(ctx context.Context, centerYear, radius int) {
	if radius < 0 {
		radius = -radius
	}
	for year := centerYear - radius; year <= centerYear+radius; year++ {
		s.Request(ctx, year)
	}
}

// Query returns the published occurrences for the given year. It never
// blocks on, nor triggers, a computation: a year that is absent or
// still pending yields (nil, false). The returned slice is shared and
// must be treated as read-only.
func (s *Store) Query(year int) (holidays.Occurrences, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[year]
	if !ok || e.state != Ready {
		return nil, false
	}
	return e.occurrences, true
}

// Snapshot returns all published occurrences across all ready years in
// ascending date order. The returned slice is owned by the caller.
func (s *Store) Snapshot() holidays.Occurrences {
	s.mu.RLock()
	var all holidays.Occurrences
	for _, e := range s.entries {
		if e.state == Ready {
			all = append(all, e.occurrences...)
		}
	}
	s.mu.RUnlock()
	all.Sort()
	return all
}

// Years returns the cached years, pending or ready, in ascending order.
func (s *Store) Years() []int {
	s.mu.RLock()
	years := make([]int, 0, len(s.entries))
	for year := range s.entries {
		years = append(years, year)
	}
	s.mu.RUnlock()
	sort.Ints(years)
	return years
}

// Evict synchronously removes every cached year, pending or ready,
// that is not in keep. An in-flight evaluation for an evicted year
// runs to completion but its result is discarded. A subsequent Request
// for an evicted year triggers a full recomputation.
func (s *Store) Evict(ctx context.Context, keep ...int) {
	keeping := make(map[int]struct{}, len(keep))
	for _, year := range keep {
		keeping[year] = struct{}{}
	}
	s.mu.Lock()
	evicted := 0
	for year := range s.entries {
		if _, ok := keeping[year]; !ok {
			delete(s.entries, year)
			evicted++
		}
	}
	s.mu.Unlock()
	if evicted == 0 {
		return
	}
	ctxlog.Logger(ctx).Debug("holidays: evicted years", "evicted", evicted, "kept", len(keep))
	s.notifier.notify(Update{Evicted: true})
}

// Subscribe returns a channel on which advisory change notifications
// are delivered. See Update.
func (s *Store) Subscribe() <-chan Update {
	return s.notifier.subscribe()
}

// Unsubscribe removes and closes a channel previously returned by
// Subscribe.
func (s *Store) Unsubscribe(ch <-chan Update) {
	s.notifier.unsubscribe(ch)
}

// Close waits for all in-flight evaluations to complete and closes all
// subscriber channels. The store must not be used after Close.
func (s *Store) Close() error {
	err := s.g.Wait()
	s.notifier.close()
	return err
}
