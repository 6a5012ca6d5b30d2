// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/holidays"
	"cloudeng.io/holidays/cache"
	"cloudeng.io/sync/synctestutil"
)

// countingDate records how many times it is evaluated, to verify that
// duplicate requests are coalesced into a single computation.
type countingDate struct {
	evaluations *atomic.Int64
}

func (c countingDate) Evaluate(year int) (datetime.CalendarDate, bool) {
	c.evaluations.Add(1)
	return datetime.NewCalendarDate(year, 1, 1), true
}

// gatedDate blocks every evaluation until release is closed.
type gatedDate struct {
	release chan struct{}
}

func (g gatedDate) Evaluate(year int) (datetime.CalendarDate, bool) {
	<-g.release
	return datetime.NewCalendarDate(year, 1, 1), true
}

func countingRules() (holidays.List, *atomic.Int64) {
	evaluations := &atomic.Int64{}
	return holidays.List{{
		Name:     "counter",
		Category: holidays.Other,
		Date:     countingDate{evaluations: evaluations},
	}}, evaluations
}

// waitReady requests the given years and blocks until they are all
// published, re-checking on each advisory notification. Subscribing
// before requesting guarantees no update is missed.
func waitReady(ctx context.Context, t *testing.T, store *cache.Store, years ...int) {
	t.Helper()
	ch := store.Subscribe()
	defer store.Unsubscribe(ch)
	for _, year := range years {
		store.Request(ctx, year)
	}
	deadline := time.After(time.Minute)
	for {
		ready := true
		for _, year := range years {
			if _, ok := store.Query(year); !ok {
				ready = false
				break
			}
		}
		if ready {
			return
		}
		select {
		case <-ch:
		case <-deadline:
			t.Fatalf("timed out waiting for years %v", years)
		}
	}
}

func TestRequestAndQuery(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	store := cache.New(holidays.Catalog())
	defer store.Close()

	if _, ok := store.Query(2025); ok {
		t.Fatalf("unrequested year unexpectedly present")
	}
	waitReady(ctx, t, store, 2025)
	occs, ok := store.Query(2025)
	if !ok {
		t.Fatalf("requested year absent")
	}
	if len(occs) == 0 {
		t.Fatalf("no occurrences for 2025")
	}
	for i := 1; i < len(occs); i++ {
		if occs[i-1].Date > occs[i].Date {
			t.Errorf("out of order at %v: %v after %v", i, occs[i], occs[i-1])
		}
	}
}

func TestYearRange(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	rules, evaluations := countingRules()
	store := cache.New(rules, cache.WithYearRange(2000, 2010))
	defer store.Close()

	for _, year := range []int{1999, 2011, 0, -3} {
		store.Request(ctx, year)
		if _, ok := store.Query(year); ok {
			t.Errorf("out-of-range year %v unexpectedly present", year)
		}
	}
	if got, want := len(store.Years()), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := evaluations.Load(), int64(0); got != want {
		t.Errorf("got %v evaluations, want %v", got, want)
	}

	waitReady(ctx, t, store, 2000, 2010)
	if got, want := len(store.Years()), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRequestIdempotent(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	rules, evaluations := countingRules()
	store := cache.New(rules)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Request(ctx, 2025)
		}()
	}
	wg.Wait()
	if err := store.Close(); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := evaluations.Load(), int64(1); got != want {
		t.Errorf("got %v evaluations, want %v", got, want)
	}
	if _, ok := store.Query(2025); !ok {
		t.Errorf("requested year absent")
	}
}

func TestPreload(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	rules, _ := countingRules()
	store := cache.New(rules, cache.WithYearRange(2020, 2030), cache.WithConcurrency(2))

	store.Preload(ctx, 2029, 3) // 2026..2032, clipped to 2026..2030.
	if err := store.Close(); err != nil {
		t.Fatalf("failed: %v", err)
	}
	years := store.Years()
	if got, want := len(years), 5; got != want {
		t.Fatalf("got %v, want %v: %v", got, want, years)
	}
	for i, year := range []int{2026, 2027, 2028, 2029, 2030} {
		if got, want := years[i], year; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestEvict(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	rules, evaluations := countingRules()
	store := cache.New(rules)
	defer store.Close()

	waitReady(ctx, t, store, 2020, 2021, 2022)

	store.Evict(ctx, 2021)
	if _, ok := store.Query(2021); !ok {
		t.Errorf("kept year absent")
	}
	for _, year := range []int{2020, 2022} {
		if _, ok := store.Query(year); ok {
			t.Errorf("evicted year %v still present", year)
		}
	}

	// A request for an evicted year triggers a full recomputation.
	before := evaluations.Load()
	waitReady(ctx, t, store, 2020)
	if got, want := evaluations.Load(), before+1; got != want {
		t.Errorf("got %v evaluations, want %v", got, want)
	}
}

func TestEvictPending(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	gate := gatedDate{release: make(chan struct{})}
	store := cache.New(holidays.List{{Name: "gated", Category: holidays.Other, Date: gate}})

	store.Request(ctx, 2025)
	store.Evict(ctx)
	close(gate.release)
	if err := store.Close(); err != nil {
		t.Fatalf("failed: %v", err)
	}
	// The in-flight evaluation completed after eviction and its result
	// was discarded.
	if _, ok := store.Query(2025); ok {
		t.Errorf("evicted year unexpectedly present")
	}
	if got, want := len(store.Years()), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	store := cache.New(holidays.Catalog())

	store.Request(ctx, 2026)
	store.Request(ctx, 2024)
	store.Request(ctx, 2025)
	if err := store.Close(); err != nil {
		t.Fatalf("failed: %v", err)
	}
	all := store.Snapshot()
	perYear, _ := store.Query(2025)
	if got, want := len(all), 3*len(perYear)+1; got != want {
		// 2024 has one more holiday than 2025 and 2026: Leap Day.
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Date > all[i].Date {
			t.Errorf("out of order at %v: %v after %v", i, all[i], all[i-1])
		}
	}
}

func TestConcurrencyBound(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	var running, peak atomic.Int64
	rules := holidays.List{{
		Name:     "meter",
		Category: holidays.Other,
		Date: meterDate{func() {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
		}},
	}}
	store := cache.New(rules, cache.WithConcurrency(2))
	for year := 2000; year < 2020; year++ {
		store.Request(ctx, year)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got := peak.Load(); got > 2 {
		t.Errorf("concurrency bound exceeded: %v", got)
	}
}

// meterDate invokes a callback on every evaluation, used to measure
// how many evaluations run concurrently.
type meterDate struct {
	meter func()
}

func (m meterDate) Evaluate(year int) (datetime.CalendarDate, bool) {
	m.meter()
	return datetime.NewCalendarDate(year, 1, 1), true
}

// TestRequestNonBlocking verifies that Request returns immediately even
// when every worker slot is occupied by an in-flight evaluation.
func TestRequestNonBlocking(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	gate := gatedDate{release: make(chan struct{})}
	store := cache.New(holidays.List{{Name: "gated", Category: holidays.Other, Date: gate}},
		cache.WithConcurrency(1))

	returned := make(chan struct{})
	go func() {
		for year := 2020; year < 2030; year++ {
			store.Request(ctx, year)
		}
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(10 * time.Second):
		t.Fatalf("request blocked behind an in-flight evaluation")
	}
	if got, want := len(store.Years()), 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	close(gate.release)
	if err := store.Close(); err != nil {
		t.Fatalf("failed: %v", err)
	}
	for year := 2020; year < 2030; year++ {
		if _, ok := store.Query(year); !ok {
			t.Errorf("year %v absent", year)
		}
	}
}
