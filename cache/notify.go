// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cache

import "sync"

// Update is an advisory change notification. Year is the year that was
// published, or zero with Evicted set when years were removed from the
// cache. The payload is a hint only: a subscriber may receive multiple
// notifications for the same year and must re-query the store rather
// than act on the payload.
type Update struct {
	Year    int
	Evicted bool
}

// notifier implements a fire-and-forget broadcast to any number of
// subscribers. Sends never block: a subscriber that has fallen behind
// misses intermediate updates, which is harmless since updates are
// advisory.
type notifier struct {
	mu     sync.Mutex
	closed bool
	subs   []chan Update
}

func (n *notifier) subscribe() <-chan Update {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan Update, 16)
	if n.closed {
		close(ch)
		return ch
	}
	n.subs = append(n.subs, ch)
	return ch
}

func (n *notifier) unsubscribe(ch <-chan Update) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, sub := range n.subs {
		if sub == ch {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

func (n *notifier) notify(u Update) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	for _, sub := range n.subs {
		select {
		case sub <- u:
		default:
		}
	}
}

func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for _, sub := range n.subs {
		close(sub)
	}
	n.subs = nil
}
