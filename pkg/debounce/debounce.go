package debounce

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of Call invocations into at most one execution
// of fn per quiet window, tracked independently per key. An edit storm on
// one note never delays processing of another.
//
// With leading enabled, fn runs synchronously on the first Call of a burst
// and the trailing window only marks when the burst has gone quiet. With
// leading disabled, fn runs once the window elapses with no further calls.
type Debouncer struct {
	fn      func(key string)
	wait    time.Duration
	leading bool

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a debouncer around fn. wait must be positive.
func New(fn func(key string), wait time.Duration, leading bool) *Debouncer {
	return &Debouncer{
		fn:      fn,
		wait:    wait,
		leading: leading,
		timers:  make(map[string]*time.Timer),
	}
}

// Call registers an invocation for key, resetting that key's quiet window.
func (d *Debouncer) Call(key string) {
	d.mu.Lock()
	prev, pending := d.timers[key]
	if pending {
		prev.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(d.wait, func() { d.expire(key, t) })
	d.timers[key] = t
	d.mu.Unlock()

	if d.leading && !pending {
		d.fn(key)
	}
}

// expire clears the pending window for key. The timer identity check guards
// against a stale callback that lost the race with a concurrent Call.
func (d *Debouncer) expire(key string, t *time.Timer) {
	d.mu.Lock()
	if d.timers[key] != t {
		d.mu.Unlock()
		return
	}
	delete(d.timers, key)
	d.mu.Unlock()

	if !d.leading {
		d.fn(key)
	}
}

// Cancel discards any pending window for key without invoking fn.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
		delete(d.timers, key)
	}
}

// CancelAll discards every pending window without invoking fn. Used at
// shutdown so no deferred processing fires into a torn-down pipeline.
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}

// Pending reports whether key currently has a scheduled window.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.timers[key]
	return ok
}
