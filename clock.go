package sixpack

// Clock is the single scheduling primitive of the package: a cooperative
// per-frame callback list advanced by Step. Panel.Update steps it once per
// Ebitengine tick; tests step it manually for deterministic animation.
//
// Guarantees:
//
//   - Callbacks run in registration order within a Step.
//   - A callback registered during a Step first runs on the next Step,
//     never reentrantly inside the registering call.
//   - Once a cancel function returns, the callback never runs again, even
//     if it was still queued for the current Step.
type Clock struct {
	entries  []*frameEntry
	pending  []*frameEntry
	now      float64
	stepping bool
	nextID   uint64
}

type frameEntry struct {
	id        uint64
	fn        func(dt float64)
	cancelled bool
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the accumulated time in seconds.
func (c *Clock) Now() float64 {
	return c.now
}

// OnFrame registers fn to run on every Step until the returned cancel
// function is called. Cancelling twice is a no-op.
func (c *Clock) OnFrame(fn func(dt float64)) (cancel func()) {
	if fn == nil {
		panic("sixpack: OnFrame requires a callback")
	}
	c.nextID++
	e := &frameEntry{id: c.nextID, fn: fn}
	if c.stepping {
		c.pending = append(c.pending, e)
	} else {
		c.entries = append(c.entries, e)
	}
	return func() {
		e.cancelled = true
	}
}

// Step advances the clock by dt seconds and invokes every live callback in
// registration order. dt must not be negative; zero is allowed (used by
// tests to flush a first tick without advancing time).
func (c *Clock) Step(dt float64) {
	if dt < 0 {
		panic("sixpack: Step requires a non-negative dt")
	}
	if c.stepping {
		panic("sixpack: Step called reentrantly")
	}
	c.now += dt

	// Entries scheduled during the previous Step join now, before the
	// frame runs, preserving start order across frames.
	if len(c.pending) > 0 {
		c.entries = append(c.entries, c.pending...)
		c.pending = c.pending[:0]
	}

	c.stepping = true
	// Iterate by index over the length captured at frame start: entries
	// added by callbacks land in pending and wait for the next Step.
	n := len(c.entries)
	for i := 0; i < n; i++ {
		e := c.entries[i]
		if e.cancelled {
			continue
		}
		e.fn(dt)
	}
	c.stepping = false

	c.compact()
}

// compact removes cancelled entries while preserving order.
func (c *Clock) compact() {
	live := c.entries[:0]
	for _, e := range c.entries {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(c.entries); i++ {
		c.entries[i] = nil
	}
	c.entries = live
}

// Len returns the number of live callbacks, counting those scheduled to
// join on the next Step.
func (c *Clock) Len() int {
	n := 0
	for _, e := range c.entries {
		if !e.cancelled {
			n++
		}
	}
	for _, e := range c.pending {
		if !e.cancelled {
			n++
		}
	}
	return n
}
