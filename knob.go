package sixpack

import "math"

const (
	// knobJitterLimit is the largest plausible single-sample angular change
	// in degrees. Larger deltas are treated as noise and discarded without
	// updating the reference angle; there is no catch-up.
	knobJitterLimit = 20.0

	knobPopDuration  = 0.2 // seconds
	defaultPopScale  = 1.25
	defaultKnobGear  = 1.0
	capturedBoost    = 1.15
	popBrightnessMax = 1.3
)

var defaultKnobColor = Color{0.35, 0.35, 0.4, 1}

// KnobConfig configures a Knob. Radius is required; at least one of OnRotate
// and OnClick must be set.
type KnobConfig struct {
	Radius float64
	// Gear scales drag deltas before they reach OnRotate: OnRotate receives
	// degrees-of-drag * Gear. Defaults to 1.
	Gear  float64
	Label string
	// PopEnabled makes a click toggle the popped-out state, animating the
	// knob between normal size and PopScale over 0.2s.
	PopEnabled bool
	PopScale   float64 // defaults to 1.25
	FaceColor  Color   // defaults to a neutral gray

	// OnRotate receives the geared rotation delta in degrees for every
	// accepted drag sample. This stream is the knob's authoritative output;
	// the spinning label is purely cosmetic.
	OnRotate func(deltaDeg float64)
	// OnClick fires on press-release with no intervening accepted drag.
	OnClick func()
}

// Knob is a draggable circular control. Pressing it acquires pointer
// capture, so the drag keeps feeding rotation deltas even when the pointer
// leaves the knob face; releasing returns it to idle.
type Knob struct {
	node    *Node
	face    *Node
	spinner *Node // spinning marker + label group, cosmetic
	cfg     KnobConfig
	d       *Dispatcher
	clock   *Clock
	lerps   *LerpSet
	life    Lifecycle
	regs    []*Registration

	dragging  bool
	moved     bool
	lastAngle float64 // pointer angle while captured, math convention
	rotation  float64 // accumulated cosmetic rotation, degrees
	scale     float64
	popped    bool
	captured  bool
}

// NewKnob creates a knob and registers its pointer listeners on d.
// The caller parents k.Node() wherever the knob should appear.
func NewKnob(clock *Clock, d *Dispatcher, cfg KnobConfig) *Knob {
	if clock == nil || d == nil {
		panic("sixpack: NewKnob requires a clock and a dispatcher")
	}
	if cfg.Radius <= 0 {
		panic("sixpack: knob radius must be positive")
	}
	if cfg.OnRotate == nil && cfg.OnClick == nil {
		panic("sixpack: knob needs at least one of OnRotate or OnClick")
	}
	if cfg.Gear == 0 {
		cfg.Gear = defaultKnobGear
	}
	if cfg.PopScale == 0 {
		cfg.PopScale = defaultPopScale
	}
	if cfg.FaceColor == (Color{}) {
		cfg.FaceColor = defaultKnobColor
	}

	k := &Knob{cfg: cfg, d: d, clock: clock, lerps: NewLerpSet(), scale: 1}

	k.node = NewGroup("knob")
	k.node.Interactable = true
	k.node.HitShape = HitCircle{Radius: cfg.Radius}

	k.face = NewDisc("knob-face", cfg.Radius, cfg.FaceColor)
	k.node.AddChild(k.face)

	k.spinner = NewGroup("knob-cap")
	marker := NewTickRing("knob-marker", cfg.Radius, cfg.Radius*0.4, 2, 1, 0, 0, ColorWhite)
	k.spinner.AddChild(marker)
	if cfg.Label != "" {
		k.spinner.AddChild(NewLabel("knob-label", cfg.Label))
	}
	k.node.AddChild(k.spinner)

	k.regs = []*Registration{
		d.Register(EventPointerDown, k.node, k.onPointerDown, true),
		d.Register(EventPointerMove, k.node, k.onPointerMove, true),
		d.Register(EventPointerUp, k.node, k.onPointerUp, true),
		d.Register(EventCaptureSet, k.node, k.onCaptureSet, false),
		d.Register(EventCaptureLost, k.node, k.onCaptureLost, false),
	}

	k.life.OnDispose(func() {
		for _, r := range k.regs {
			d.Unregister(r)
		}
		k.regs = nil
		k.lerps.CancelAll()
		k.node.Dispose()
	})
	return k
}

// Node returns the knob's root node for scene placement.
func (k *Knob) Node() *Node { return k.node }

// Rotation returns the accumulated cosmetic rotation in degrees.
func (k *Knob) Rotation() float64 { return k.rotation }

// PoppedOut reports whether the knob is in its popped-out display state.
func (k *Knob) PoppedOut() bool { return k.popped }

// Dispose unregisters the knob's listeners (releasing capture if held) and
// disposes its nodes. Panics on double disposal.
func (k *Knob) Dispose() { k.life.Dispose() }

func (k *Knob) onPointerDown(ev PointerEvent) {
	if k.dragging {
		return
	}
	k.dragging = true
	k.moved = false
	k.lastAngle = AngleFromCenter(Vec2{}, ev.Local)
	k.d.SetCapture(k.node)
}

func (k *Knob) onPointerMove(ev PointerEvent) {
	if !k.dragging || !ev.Capturing {
		return
	}
	a := AngleFromCenter(Vec2{}, ev.Local)
	delta := AngularDelta(k.lastAngle, a)
	if math.Abs(delta) > knobJitterLimit {
		// Noise or an implausible single-frame flick: drop the sample and
		// keep the previous reference angle.
		return
	}
	k.lastAngle = a
	if delta == 0 {
		return
	}
	k.moved = true
	k.rotation += delta
	k.spinner.SetRotation(k.rotation * math.Pi / 180)
	if k.cfg.OnRotate != nil {
		k.cfg.OnRotate(delta * k.cfg.Gear)
	}
}

func (k *Knob) onPointerUp(PointerEvent) {
	if !k.dragging {
		return
	}
	k.dragging = false
	// Read before ReleaseCapture: the capture-lost hook resets drag state.
	moved := k.moved
	k.d.ReleaseCapture()
	if !moved {
		k.click()
	}
}

func (k *Knob) click() {
	if k.cfg.PopEnabled {
		k.popped = !k.popped
		target := 1.0
		if k.popped {
			target = k.cfg.PopScale
		}
		k.lerps.Add("pop", StartLerp(k.clock, k.scale, target, knobPopDuration, k.setScale, true))
	}
	if k.cfg.OnClick != nil {
		k.cfg.OnClick()
	}
}

func (k *Knob) onCaptureSet(PointerEvent) {
	k.captured = true
	k.refreshFill()
}

func (k *Knob) onCaptureLost(PointerEvent) {
	k.captured = false
	// Losing capture mid-drag (e.g. another control captured, or the knob
	// was unregistered) abandons the drag without a click.
	k.dragging = false
	k.moved = false
	k.refreshFill()
}

// setScale applies the pop animation's current value: the node scales and
// the face brightness follows the scale between its two endpoints.
func (k *Knob) setScale(v float64) {
	k.scale = v
	k.node.SetScale(v, v)
	k.refreshFill()
}

func (k *Knob) refreshFill() {
	t := 0.0
	if k.cfg.PopScale > 1 {
		t = (k.scale - 1) / (k.cfg.PopScale - 1)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	brightness := 1 + (popBrightnessMax-1)*t
	if k.captured {
		brightness *= capturedBoost
	}
	SetMeshColor(k.face, k.cfg.FaceColor.Scaled(brightness))
}
