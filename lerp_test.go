package sixpack

import (
	"math"
	"testing"
)

func TestStartLerpLinearReachesTargetExactly(t *testing.T) {
	c := NewClock()
	var vals []float64
	StartLerp(c, 0, 10, 1.0, func(v float64) { vals = append(vals, v) }, false)

	if len(vals) != 0 {
		t.Fatal("tick delivered before the first clock step")
	}

	// Exact quarters avoid float32 accumulation drift.
	for i := 0; i < 4; i++ {
		c.Step(0.25)
	}

	if len(vals) != 4 {
		t.Fatalf("got %d ticks, want 4", len(vals))
	}
	if vals[len(vals)-1] != 10 {
		t.Errorf("final value = %v, want exactly 10", vals[len(vals)-1])
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			t.Errorf("values not increasing: %v", vals)
			break
		}
	}

	// Finished transitions unregister themselves.
	c.Step(0.25)
	if len(vals) != 4 {
		t.Errorf("tick after completion: got %d ticks", len(vals))
	}
	if c.Len() != 0 {
		t.Errorf("clock Len = %d after completion, want 0", c.Len())
	}
}

func TestStartLerpEasedFrontLoadsProgress(t *testing.T) {
	c := NewClock()
	var eased, linear []float64
	StartLerp(c, 0, 100, 1.0, func(v float64) { eased = append(eased, v) }, true)
	StartLerp(c, 0, 100, 1.0, func(v float64) { linear = append(linear, v) }, false)

	c.Step(0.25)

	// Sine ease-out covers sin(pi/8) of the range in the first quarter.
	wantEased := 100 * math.Sin(0.25*math.Pi/2)
	if math.Abs(eased[0]-wantEased) > 0.5 {
		t.Errorf("eased first tick = %v, want ~%v", eased[0], wantEased)
	}
	if eased[0] <= linear[0] {
		t.Errorf("eased (%v) should lead linear (%v) early on", eased[0], linear[0])
	}

	c.Step(0.25)
	c.Step(0.25)
	c.Step(0.25)
	if eased[len(eased)-1] != 100 {
		t.Errorf("eased final value = %v, want exactly 100", eased[len(eased)-1])
	}
	for i := 1; i < len(eased); i++ {
		if eased[i] <= eased[i-1] {
			t.Errorf("eased values not increasing: %v", eased)
			break
		}
	}
}

func TestStartLerpCancelStopsTicks(t *testing.T) {
	c := NewClock()
	count := 0
	cancel := StartLerp(c, 0, 10, 1.0, func(float64) { count++ }, false)

	c.Step(0.25)
	cancel()
	c.Step(0.25)
	c.Step(0.25)

	if count != 1 {
		t.Errorf("count = %d after cancel, want 1", count)
	}
}

func TestStartLerpCancelAfterCompletionIsNoOp(t *testing.T) {
	c := NewClock()
	cancel := StartLerp(c, 0, 10, 0.5, func(float64) {}, false)
	c.Step(0.25)
	c.Step(0.25)
	cancel()
	cancel()
}

func TestStartLerpValidatesArguments(t *testing.T) {
	c := NewClock()
	tick := func(float64) {}
	expectPanic(t, "zero duration", func() { StartLerp(c, 0, 1, 0, tick, false) })
	expectPanic(t, "negative duration", func() { StartLerp(c, 0, 1, -1, tick, false) })
	expectPanic(t, "NaN duration", func() { StartLerp(c, 0, 1, math.NaN(), tick, false) })
	expectPanic(t, "NaN endpoint", func() { StartLerp(c, math.NaN(), 1, 1, tick, false) })
	expectPanic(t, "infinite endpoint", func() { StartLerp(c, 0, math.Inf(1), 1, tick, false) })
	expectPanic(t, "nil clock", func() { StartLerp(nil, 0, 1, 1, tick, false) })
	expectPanic(t, "nil onTick", func() { StartLerp(c, 0, 1, 1, nil, false) })
}

func TestLerpSetAddReplacesSameKey(t *testing.T) {
	s := NewLerpSet()
	firstCancelled := false
	s.Add("speed", func() { firstCancelled = true })
	s.Add("speed", func() {})

	if !firstCancelled {
		t.Error("adding under an existing key must cancel the previous entry")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestLerpSetCancelAndCancelAll(t *testing.T) {
	s := NewLerpSet()
	cancelled := map[string]bool{}
	s.Add("a", func() { cancelled["a"] = true })
	s.Add("b", func() { cancelled["b"] = true })

	s.Cancel("a")
	if !cancelled["a"] || cancelled["b"] {
		t.Errorf("after Cancel(a): %v", cancelled)
	}
	s.Cancel("missing") // no-op

	s.CancelAll()
	if !cancelled["b"] {
		t.Error("CancelAll skipped b")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after CancelAll, want 0", s.Len())
	}
}
