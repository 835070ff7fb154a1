package sixpack

import (
	"fmt"
	"math"
)

// The six instruments. Each one owns a dial scaffold, subscribes to the
// aircraft's change notifications, and maps live state into node rotations
// and offsets. Instruments never mutate the aircraft except through their
// own adjustment knobs (altimeter barometer, heading bug).

// Instrument is implemented by every gauge on the panel.
type Instrument interface {
	// Node returns the instrument's root for scene placement.
	Node() *Node
	// Dispose unsubscribes from the aircraft and disposes the nodes.
	Dispose()
}

const degToRad = math.Pi / 180

// --- Airspeed ---

// AirspeedIndicator shows indicated airspeed with the standard colored
// range arcs derived from the airframe limits.
type AirspeedIndicator struct {
	dial   *Dial
	needle *Node
	handle ListenerHandle
	life   Lifecycle
}

func NewAirspeedIndicator(a *Aircraft, radius float64) *AirspeedIndicator {
	lim := a.Limits()
	max := math.Ceil(lim.NeverExceedSpeed*1.1/10) * 10
	scale := Scale{Min: 0, Max: max, ClockStart: 15, Sweep: 330}
	d := NewDial("airspeed", DialConfig{
		Radius:     radius,
		Scale:      scale,
		MajorTicks: int(max/20) + 1,
		MinorTicks: int(max/10) + 1,
		Caption:    "AIRSPEED KT",
	})
	d.AddBand("airspeed-green", lim.StallSpeed, lim.ManeuverSpeed, bandGreen)
	d.AddBand("airspeed-yellow", lim.ManeuverSpeed, lim.NeverExceedSpeed, bandYellow)
	d.AddBand("airspeed-redline", lim.NeverExceedSpeed, lim.NeverExceedSpeed+max*0.01, bandRed)
	// Flap range arc, drawn inset like a real ASI's white arc.
	whiteStart := scale.Angle(lim.StallSpeed)
	whiteEnd := scale.Angle(lim.RotationSpeed)
	d.Root().AddChild(NewArcBand("airspeed-white", radius*0.86, radius*0.08,
		whiteStart, whiteEnd-whiteStart, ColorWhite))

	g := &AirspeedIndicator{dial: d}
	g.needle = d.AddNeedle("airspeed-needle", 0.85, 0.05, needleWhite)
	d.AddHub()

	g.handle = a.OnChange(func(a *Aircraft) {
		g.needle.SetRotation(scale.Radians(a.Airspeed()))
	})
	g.life.OnDispose(func() {
		g.handle.Remove()
		g.dial.Root().Dispose()
	})
	g.needle.SetRotation(scale.Radians(a.Airspeed()))
	return g
}

func (g *AirspeedIndicator) Node() *Node { return g.dial.Root() }
func (g *AirspeedIndicator) Dispose()    { g.life.Dispose() }

// --- Altimeter ---

// Altimeter shows altitude on two wrapping needles (hundreds and thousands
// of feet) plus a Kollsman-style barometric readout. The knob in the lower
// left adjusts the barometric setting; the value tracks the drag
// sample-for-sample, so the knob drives SetBarometerNow.
type Altimeter struct {
	dial      *Dial
	hundreds  *Node
	thousands *Node
	baroLabel *Node
	baroText  string
	knob      *Knob
	handle    ListenerHandle
	life      Lifecycle
}

func NewAltimeter(clock *Clock, d *Dispatcher, a *Aircraft, radius float64) *Altimeter {
	// Ten major ticks around the full circle, one per hundred feet on the
	// long needle.
	dl := NewDial("altimeter", DialConfig{
		Radius:     radius,
		Scale:      Scale{Min: 0, Max: 1000, ClockStart: 0, Sweep: 360},
		MajorTicks: 10,
		MinorTicks: 50,
		Caption:    "ALT FT",
	})
	g := &Altimeter{dial: dl}
	g.thousands = dl.AddNeedle("altimeter-thousands", 0.5, 0.09, needleWhite)
	g.hundreds = dl.AddNeedle("altimeter-hundreds", 0.85, 0.05, needleWhite)
	dl.AddHub()

	g.baroLabel = NewLabel("altimeter-baro", "")
	g.baroLabel.SetPosition(0, -radius*0.4)
	dl.Root().AddChild(g.baroLabel)

	g.knob = NewKnob(clock, d, KnobConfig{
		Radius:     radius * 0.18,
		Gear:       0.01, // one inHg per 100 degrees of drag
		Label:      "BARO",
		PopEnabled: true,
		OnRotate: func(delta float64) {
			a.SetBarometerNow(a.Barometer() + delta)
		},
	})
	g.knob.Node().SetPosition(-radius*0.7, radius*0.7)
	dl.Root().AddChild(g.knob.Node())

	g.handle = a.OnChange(func(a *Aircraft) { g.refresh(a) })
	g.life.OnDispose(func() {
		g.handle.Remove()
		g.knob.Dispose()
		g.dial.Root().Dispose()
	})
	g.refresh(a)
	return g
}

func (g *Altimeter) refresh(a *Aircraft) {
	alt := a.Altitude()
	g.hundreds.SetRotation(alt / 1000 * 2 * math.Pi)
	g.thousands.SetRotation(alt / 10000 * 2 * math.Pi)
	// Rebuilding the label allocates, so only do it when the rounded
	// reading changes.
	text := fmt.Sprintf("%.2f", a.Barometer())
	if text != g.baroText {
		g.baroText = text
		g.baroLabel.SetLabelText(text)
	}
}

func (g *Altimeter) Node() *Node { return g.dial.Root() }
func (g *Altimeter) Dispose()    { g.life.Dispose() }

// BaroKnob returns the barometric adjustment knob.
func (g *Altimeter) BaroKnob() *Knob { return g.knob }

// --- Vertical speed ---

// VerticalSpeedIndicator shows climb/descent rate: zero at the nine o'clock
// position, climbs sweeping up and clockwise, descents down.
type VerticalSpeedIndicator struct {
	dial   *Dial
	needle *Node
	handle ListenerHandle
	life   Lifecycle
}

func NewVerticalSpeedIndicator(a *Aircraft, radius float64) *VerticalSpeedIndicator {
	scale := Scale{Min: -2000, Max: 2000, ClockStart: 180, Sweep: 180}
	d := NewDial("vsi", DialConfig{
		Radius:     radius,
		Scale:      scale,
		MajorTicks: 5,
		MinorTicks: 9,
		Caption:    "VSI FPM",
	})
	g := &VerticalSpeedIndicator{dial: d}
	g.needle = d.AddNeedle("vsi-needle", 0.85, 0.05, needleWhite)
	d.AddHub()

	g.handle = a.OnChange(func(a *Aircraft) {
		g.needle.SetRotation(scale.Radians(a.AltitudeRate()))
	})
	g.life.OnDispose(func() {
		g.handle.Remove()
		g.dial.Root().Dispose()
	})
	g.needle.SetRotation(scale.Radians(a.AltitudeRate()))
	return g
}

func (g *VerticalSpeedIndicator) Node() *Node { return g.dial.Root() }
func (g *VerticalSpeedIndicator) Dispose()    { g.life.Dispose() }

// --- Heading ---

// HeadingIndicator is a directional gyro: a compass card that rotates so the
// current heading sits under the fixed lubber line at the top, plus a
// heading bug positioned by the knob in the lower right.
type HeadingIndicator struct {
	dial   *Dial
	card   *Node
	bug    *Node
	bugDeg float64
	knob   *Knob
	handle ListenerHandle
	life   Lifecycle
}

func NewHeadingIndicator(clock *Clock, d *Dispatcher, a *Aircraft, radius float64) *HeadingIndicator {
	dl := NewDial("heading", DialConfig{Radius: radius, Caption: "HDG"})
	g := &HeadingIndicator{dial: dl}

	g.card = NewGroup("heading-card")
	g.card.AddChild(NewTickRing("heading-ticks", radius*0.95, radius*0.1, 2.5, 36, 0, 360, dialTickColor))
	for i, cardinal := range []string{"N", "E", "S", "W"} {
		l := NewLabel("heading-"+cardinal, cardinal)
		p := PointOnCircle(Vec2{}, radius*0.68, ClockToMath(float64(i)*90))
		l.SetPosition(p.X, p.Y)
		g.card.AddChild(l)
	}
	g.bug = NewGroup("heading-bug")
	g.bug.AddChild(NewTickRing("heading-bug-mark", radius*0.95, radius*0.12, 6, 1, 0, 0, needleOrange))
	g.card.AddChild(g.bug)
	dl.Root().AddChild(g.card)

	// Fixed airplane reference: lubber line at the top.
	dl.Root().AddChild(NewTickRing("heading-lubber", radius, radius*0.14, 3, 1, 0, 0, needleWhite))

	g.knob = NewKnob(clock, d, KnobConfig{
		Radius: radius * 0.18,
		Label:  "HDG",
		OnRotate: func(delta float64) {
			g.bugDeg = normalizeDeg(g.bugDeg + delta)
			g.bug.SetRotation(g.bugDeg * degToRad)
		},
	})
	g.knob.Node().SetPosition(radius*0.7, radius*0.7)
	dl.Root().AddChild(g.knob.Node())

	g.handle = a.OnChange(func(a *Aircraft) {
		g.card.SetRotation(-a.Heading() * degToRad)
	})
	g.life.OnDispose(func() {
		g.handle.Remove()
		g.knob.Dispose()
		g.dial.Root().Dispose()
	})
	g.card.SetRotation(-a.Heading() * degToRad)
	return g
}

func (g *HeadingIndicator) Node() *Node { return g.dial.Root() }
func (g *HeadingIndicator) Dispose()    { g.life.Dispose() }

// Bug returns the bug heading in degrees.
func (g *HeadingIndicator) Bug() float64 { return g.bugDeg }

// BugKnob returns the heading bug adjustment knob.
func (g *HeadingIndicator) BugKnob() *Knob { return g.knob }

// --- Attitude ---

// attitudePixelsPerDeg scales pitch into horizon displacement, as a
// fraction of the dial radius per degree.
const attitudePixelsPerDeg = 0.02

var (
	skyBlue     = Color{0.25, 0.5, 0.85, 1}
	groundBrown = Color{0.5, 0.33, 0.15, 1}
)

// AttitudeIndicator is an artificial horizon. The horizon group rolls
// opposite the aircraft and the ground half shifts vertically with pitch;
// the orange reference wings stay fixed to the case.
type AttitudeIndicator struct {
	dial    *Dial
	horizon *Node
	ground  *Node
	radius  float64
	handle  ListenerHandle
	life    Lifecycle
}

func NewAttitudeIndicator(a *Aircraft, radius float64) *AttitudeIndicator {
	d := NewDial("attitude", DialConfig{Radius: radius, Caption: "ATT"})
	g := &AttitudeIndicator{dial: d, radius: radius}

	g.horizon = NewGroup("attitude-horizon")
	g.horizon.AddChild(NewDisc("attitude-sky", radius*0.97, skyBlue))
	g.ground = NewSector("attitude-ground", radius*1.2, 90, 180, groundBrown)
	g.horizon.AddChild(g.ground)
	d.Root().AddChild(g.horizon)

	// Fixed reference wings drawn over the horizon.
	wings := NewGroup("attitude-wings")
	wings.AddChild(NewTickRing("attitude-wing-l", radius*0.55, radius*0.3, 4, 1, 270, 0, needleOrange))
	wings.AddChild(NewTickRing("attitude-wing-r", radius*0.55, radius*0.3, 4, 1, 90, 0, needleOrange))
	wings.AddChild(NewDisc("attitude-dot", radius*0.04, needleOrange))
	d.Root().AddChild(wings)

	// Redraw the rim over the shifting horizon edges.
	d.Root().AddChild(NewRing("attitude-bezel", radius, radius*0.05, dialRimColor))

	g.handle = a.OnChange(func(a *Aircraft) { g.refresh(a) })
	g.life.OnDispose(func() {
		g.handle.Remove()
		g.dial.Root().Dispose()
	})
	g.refresh(a)
	return g
}

func (g *AttitudeIndicator) refresh(a *Aircraft) {
	// Roll right tilts the horizon left relative to the case.
	g.horizon.SetRotation(-a.Roll() * degToRad)
	offset := a.Pitch() * attitudePixelsPerDeg * g.radius
	limit := g.radius * 0.4
	if offset > limit {
		offset = limit
	} else if offset < -limit {
		offset = -limit
	}
	g.ground.SetPosition(0, offset)
}

func (g *AttitudeIndicator) Node() *Node { return g.dial.Root() }
func (g *AttitudeIndicator) Dispose()    { g.life.Dispose() }

// --- Tachometer ---

// Tachometer shows engine speed with a red line at the rated maximum.
type Tachometer struct {
	dial   *Dial
	needle *Node
	handle ListenerHandle
	life   Lifecycle
}

func NewTachometer(a *Aircraft, radius float64) *Tachometer {
	lim := a.Limits()
	max := math.Ceil(lim.MaxRPM*1.1/500) * 500
	scale := Scale{Min: 0, Max: max, ClockStart: 210, Sweep: 300}
	d := NewDial("tachometer", DialConfig{
		Radius:     radius,
		Scale:      scale,
		MajorTicks: int(max/500) + 1,
		MinorTicks: int(max/100) + 1,
		Caption:    "RPM",
	})
	d.AddBand("tachometer-redline", lim.MaxRPM, max, bandRed)

	g := &Tachometer{dial: d}
	g.needle = d.AddNeedle("tachometer-needle", 0.85, 0.05, needleWhite)
	d.AddHub()

	g.handle = a.OnChange(func(a *Aircraft) {
		g.needle.SetRotation(scale.Radians(a.RPM()))
	})
	g.life.OnDispose(func() {
		g.handle.Remove()
		g.dial.Root().Dispose()
	})
	g.needle.SetRotation(scale.Radians(a.RPM()))
	return g
}

func (g *Tachometer) Node() *Node { return g.dial.Root() }
func (g *Tachometer) Dispose()    { g.life.Dispose() }
