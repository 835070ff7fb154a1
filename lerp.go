package sixpack

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StartLerp drives a value from from to to over duration seconds, invoking
// onTick once per clock step with the current value. When eased, the value
// follows a sine ease-out curve (sin(f*pi/2)): monotonic, fast at the start,
// arriving exactly at to when the duration elapses. The final tick always
// delivers exactly to, after which the callback unregisters itself.
//
// The first tick runs on the next clock step, never inside StartLerp, so
// starting a transition from within a notification handler cannot reenter
// the caller's stack.
//
// The returned cancel function stops the transition immediately: once it
// returns no further ticks occur, and the driven value stays wherever the
// last tick left it. Cancelling more than once is a no-op.
//
// duration must be positive and finite, and from/to must be finite; anything
// else is a programming error and panics.
func StartLerp(clock *Clock, from, to, duration float64, onTick func(value float64), eased bool) (cancel func()) {
	if clock == nil {
		panic("sixpack: StartLerp requires a clock")
	}
	if onTick == nil {
		panic("sixpack: StartLerp requires an onTick callback")
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		panic("sixpack: lerp duration must be positive and finite")
	}
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0) {
		panic("sixpack: lerp endpoints must be finite")
	}

	fn := ease.OutSine
	if !eased {
		fn = ease.Linear
	}
	tw := gween.New(float32(from), float32(to), float32(duration), fn)

	done := false
	var stop func()
	stop = clock.OnFrame(func(dt float64) {
		v, finished := tw.Update(float32(dt))
		if finished {
			done = true
			stop()
			// Deliver the exact target, untouched by float32 rounding.
			onTick(to)
			return
		}
		onTick(float64(v))
	})
	return func() {
		if done {
			return
		}
		done = true
		stop()
	}
}

// LerpSet associates named in-flight transitions with an owner, guaranteeing
// at most one live transition per key: adding under an existing key cancels
// the previous transition before the new one is stored.
type LerpSet struct {
	active map[string]func()
}

// NewLerpSet creates an empty set.
func NewLerpSet() *LerpSet {
	return &LerpSet{active: make(map[string]func())}
}

// Add stores cancel under key. Any previous entry under the same key is
// cancelled first, so no two transitions for one key ever run concurrently.
func (s *LerpSet) Add(key string, cancel func()) {
	if cancel == nil {
		panic("sixpack: LerpSet.Add requires a cancel function")
	}
	if prev, ok := s.active[key]; ok {
		delete(s.active, key)
		prev()
	}
	s.active[key] = cancel
}

// Cancel cancels and removes the entry under key. No-op if absent.
func (s *LerpSet) Cancel(key string) {
	if f, ok := s.active[key]; ok {
		delete(s.active, key)
		f()
	}
}

// CancelAll cancels and clears every entry. Used on disposal.
func (s *LerpSet) CancelAll() {
	for key, f := range s.active {
		delete(s.active, key)
		f()
	}
}

// Len returns the number of live entries.
func (s *LerpSet) Len() int {
	return len(s.active)
}
