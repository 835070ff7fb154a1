package sixpack

import "testing"

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic: %s", what)
		}
	}()
	fn()
}

func TestClockRunsInRegistrationOrder(t *testing.T) {
	c := NewClock()
	var order []int
	c.OnFrame(func(float64) { order = append(order, 1) })
	c.OnFrame(func(float64) { order = append(order, 2) })
	c.OnFrame(func(float64) { order = append(order, 3) })

	c.Step(0.016)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestClockRegistrationDuringStepDefersOneFrame(t *testing.T) {
	c := NewClock()
	inner := 0
	c.OnFrame(func(float64) {
		if inner == 0 {
			c.OnFrame(func(float64) { inner++ })
		}
	})

	c.Step(0.016)
	if inner != 0 {
		t.Fatal("callback registered during Step ran in the same frame")
	}
	c.Step(0.016)
	if inner != 1 {
		t.Errorf("inner = %d, want 1 after the following frame", inner)
	}
}

func TestClockCancelHonoredMidFrame(t *testing.T) {
	c := NewClock()
	ran := false
	var cancelSecond func()
	c.OnFrame(func(float64) { cancelSecond() })
	cancelSecond = c.OnFrame(func(float64) { ran = true })

	c.Step(0.016)

	if ran {
		t.Error("cancelled callback still ran within the same frame")
	}
}

func TestClockCancelIsIdempotent(t *testing.T) {
	c := NewClock()
	count := 0
	cancel := c.OnFrame(func(float64) { count++ })

	c.Step(0.016)
	cancel()
	cancel()
	c.Step(0.016)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestClockNowAccumulates(t *testing.T) {
	c := NewClock()
	c.Step(0.25)
	c.Step(0.25)
	if got := c.Now(); !near(got, 0.5) {
		t.Errorf("Now = %v, want 0.5", got)
	}
}

func TestClockStepPanics(t *testing.T) {
	c := NewClock()
	expectPanic(t, "negative dt", func() { c.Step(-0.1) })

	c.OnFrame(func(float64) { c.Step(0.1) })
	expectPanic(t, "reentrant Step", func() { c.Step(0.1) })
}
