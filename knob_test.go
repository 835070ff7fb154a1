package sixpack

import (
	"math"
	"testing"
)

// knobRig wires a knob into a minimal interactive scene.
type knobRig struct {
	clock *Clock
	d     *Dispatcher
	root  *Node
	knob  *Knob
}

func newKnobRig(t *testing.T, cfg KnobConfig) *knobRig {
	t.Helper()
	r := &knobRig{clock: NewClock(), d: NewDispatcher(), root: NewGroup("root")}
	r.root.Interactable = true
	r.knob = NewKnob(r.clock, r.d, cfg)
	r.knob.Node().SetPosition(100, 100)
	r.root.AddChild(r.knob.Node())
	updateWorldTransform(r.root, identityTransform, false)
	return r
}

// pointAt returns the world position on the knob rim at the given
// math-convention angle.
func (r *knobRig) pointAt(angleDeg float64) Vec2 {
	return PointOnCircle(Vec2{100, 100}, 8, angleDeg)
}

func (r *knobRig) press(angleDeg float64) {
	p := r.pointAt(angleDeg)
	r.d.Dispatch(EventPointerDown, HitTest(r.root, p), p)
}

func (r *knobRig) move(angleDeg float64) {
	p := r.pointAt(angleDeg)
	r.d.Dispatch(EventPointerMove, HitTest(r.root, p), p)
}

func (r *knobRig) release(angleDeg float64) {
	p := r.pointAt(angleDeg)
	r.d.Dispatch(EventPointerUp, HitTest(r.root, p), p)
}

func TestNewKnobValidation(t *testing.T) {
	clock := NewClock()
	d := NewDispatcher()
	rotate := func(float64) {}

	expectPanic(t, "nil clock", func() { NewKnob(nil, d, KnobConfig{Radius: 10, OnRotate: rotate}) })
	expectPanic(t, "nil dispatcher", func() { NewKnob(clock, nil, KnobConfig{Radius: 10, OnRotate: rotate}) })
	expectPanic(t, "zero radius", func() { NewKnob(clock, d, KnobConfig{OnRotate: rotate}) })
	expectPanic(t, "no callbacks", func() { NewKnob(clock, d, KnobConfig{Radius: 10}) })
}

func TestKnobDragRotatesWithGear(t *testing.T) {
	var total float64
	rig := newKnobRig(t, KnobConfig{
		Radius:   10,
		Gear:     2,
		OnRotate: func(delta float64) { total += delta },
	})

	rig.press(0)
	if rig.d.Captured() != rig.knob.Node() {
		t.Fatal("press did not acquire capture")
	}
	rig.move(10)
	rig.move(25)
	rig.release(25)

	// 25 degrees of drag, doubled by the gear ratio.
	if math.Abs(total-50) > 1e-6 {
		t.Errorf("total = %v, want 50", total)
	}
	if math.Abs(rig.knob.Rotation()-25) > 1e-6 {
		t.Errorf("Rotation = %v, want 25", rig.knob.Rotation())
	}
	if rig.d.Captured() != nil {
		t.Error("release did not drop capture")
	}
}

func TestKnobDragAcrossZeroBoundary(t *testing.T) {
	var total float64
	rig := newKnobRig(t, KnobConfig{
		Radius:   10,
		OnRotate: func(delta float64) { total += delta },
	})

	rig.press(355)
	rig.move(5) // crosses 0: +10, not -350
	rig.release(5)

	if math.Abs(total-10) > 1e-6 {
		t.Errorf("total = %v, want 10", total)
	}
}

func TestKnobJitterDiscardedWithoutCatchUp(t *testing.T) {
	var total float64
	rig := newKnobRig(t, KnobConfig{
		Radius:   10,
		OnRotate: func(delta float64) { total += delta },
	})

	rig.press(0)
	rig.move(30) // 30 > jitter limit: dropped, reference angle stays at 0
	if total != 0 {
		t.Fatalf("jitter sample reached OnRotate: %v", total)
	}
	rig.move(15) // measured against 0, not 30
	rig.release(15)

	if math.Abs(total-15) > 1e-6 {
		t.Errorf("total = %v, want 15", total)
	}
}

func TestKnobClickVersusDrag(t *testing.T) {
	clicks := 0
	rig := newKnobRig(t, KnobConfig{
		Radius:   10,
		OnRotate: func(float64) {},
		OnClick:  func() { clicks++ },
	})

	rig.press(0)
	rig.release(0)
	if clicks != 1 {
		t.Fatalf("clicks = %d after press-release, want 1", clicks)
	}

	rig.press(0)
	rig.move(10)
	rig.release(10)
	if clicks != 1 {
		t.Errorf("clicks = %d after a drag, want still 1", clicks)
	}
}

func TestKnobPopTogglesScale(t *testing.T) {
	rig := newKnobRig(t, KnobConfig{
		Radius:     10,
		PopEnabled: true,
		PopScale:   1.5,
		OnClick:    func() {},
	})

	rig.press(0)
	rig.release(0)
	if !rig.knob.PoppedOut() {
		t.Fatal("click did not pop the knob out")
	}
	rig.clock.Step(0.1)
	rig.clock.Step(0.1)
	if got := rig.knob.Node().ScaleX; got != 1.5 {
		t.Errorf("ScaleX = %v after pop animation, want exactly 1.5", got)
	}

	rig.press(0)
	rig.release(0)
	rig.clock.Step(0.1)
	rig.clock.Step(0.1)
	if rig.knob.PoppedOut() {
		t.Error("second click did not pop the knob back in")
	}
	if got := rig.knob.Node().ScaleX; got != 1 {
		t.Errorf("ScaleX = %v after popping back, want exactly 1", got)
	}
}

func TestKnobPopRetogglesMidAnimation(t *testing.T) {
	rig := newKnobRig(t, KnobConfig{
		Radius:     10,
		PopEnabled: true,
		OnClick:    func() {},
	})

	rig.press(0)
	rig.release(0)
	rig.clock.Step(0.05) // partway out
	rig.press(0)
	rig.release(0) // toggle back: replaces the pop animation under its key
	rig.clock.Step(0.1)
	rig.clock.Step(0.1)

	if got := rig.knob.Node().ScaleX; got != 1 {
		t.Errorf("ScaleX = %v, want exactly 1", got)
	}
	if rig.clock.Len() != 0 {
		t.Errorf("clock Len = %d, want 0 (stale pop animation alive)", rig.clock.Len())
	}
}

func TestKnobDisposeUnregistersAndReleasesCapture(t *testing.T) {
	var total float64
	rig := newKnobRig(t, KnobConfig{
		Radius:   10,
		OnRotate: func(delta float64) { total += delta },
	})

	rig.press(0)
	rig.knob.Dispose()

	if rig.d.Captured() != nil {
		t.Error("disposal left capture held")
	}
	p := rig.pointAt(10)
	rig.d.Dispatch(EventPointerMove, nil, p)
	if total != 0 {
		t.Errorf("disposed knob still received rotation: %v", total)
	}
	expectPanic(t, "double dispose", func() { rig.knob.Dispose() })
}
