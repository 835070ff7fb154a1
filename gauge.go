package sixpack

import "math"

// Scale maps a value range onto a clockwise angular sweep of a dial face.
type Scale struct {
	Min, Max   float64
	ClockStart float64 // clock angle of Min, degrees
	Sweep      float64 // clockwise degrees from Min to Max
}

// Angle returns the clock angle for v, clamped to [Min, Max].
func (s Scale) Angle(v float64) float64 {
	if v < s.Min {
		v = s.Min
	} else if v > s.Max {
		v = s.Max
	}
	return s.ClockStart + s.Sweep*(v-s.Min)/(s.Max-s.Min)
}

// Radians returns Angle(v) in radians, ready for Node.SetRotation.
func (s Scale) Radians(v float64) float64 {
	return s.Angle(v) * math.Pi / 180
}

// Default dial palette.
var (
	dialFaceColor = Color{0.08, 0.08, 0.1, 1}
	dialRimColor  = Color{0.5, 0.5, 0.55, 1}
	dialTickColor = Color{0.9, 0.9, 0.9, 1}

	bandGreen  = Color{0.15, 0.65, 0.25, 1}
	bandYellow = Color{0.85, 0.75, 0.15, 1}
	bandRed    = Color{0.85, 0.15, 0.15, 1}

	needleWhite  = Color{0.95, 0.95, 0.95, 1}
	needleOrange = Color{0.95, 0.55, 0.1, 1}
)

// DialConfig configures the shared gauge scaffold.
type DialConfig struct {
	Radius     float64
	Scale      Scale
	MajorTicks int // tick marks spread over the scale sweep; 0 for none
	MinorTicks int // shorter marks spread over the same sweep; 0 for none
	Caption    string
}

// Dial is the scaffold every instrument builds on: a face disc, rim ring,
// tick marks and caption, centered on the root node's origin, plus the
// value-to-angle mapping its needles use.
type Dial struct {
	root   *Node
	radius float64
	scale  Scale
}

// NewDial builds the scaffold. Needles and instrument-specific decoration
// are added by the caller on top of the returned dial.
func NewDial(name string, cfg DialConfig) *Dial {
	if cfg.Radius <= 0 {
		panic("sixpack: dial radius must be positive")
	}
	d := &Dial{root: NewGroup(name), radius: cfg.Radius, scale: cfg.Scale}
	// Interactable so hit testing descends to adjustment knobs.
	d.root.Interactable = true

	d.root.AddChild(NewDisc(name+"-face", cfg.Radius, dialFaceColor))
	d.root.AddChild(NewRing(name+"-rim", cfg.Radius, cfg.Radius*0.03, dialRimColor))
	if cfg.MinorTicks > 0 {
		d.root.AddChild(NewTickRing(name+"-minor", cfg.Radius*0.95, cfg.Radius*0.06, 1.5,
			cfg.MinorTicks, cfg.Scale.ClockStart, cfg.Scale.Sweep, dialTickColor))
	}
	if cfg.MajorTicks > 0 {
		d.root.AddChild(NewTickRing(name+"-major", cfg.Radius*0.95, cfg.Radius*0.12, 3,
			cfg.MajorTicks, cfg.Scale.ClockStart, cfg.Scale.Sweep, dialTickColor))
	}
	if cfg.Caption != "" {
		caption := NewLabel(name+"-caption", cfg.Caption)
		caption.SetPosition(0, cfg.Radius*0.45)
		d.root.AddChild(caption)
	}
	return d
}

// Root returns the dial's root node for scene placement.
func (d *Dial) Root() *Node { return d.root }

// Radius returns the face radius.
func (d *Dial) Radius() float64 { return d.radius }

// Scale returns the dial's value-to-angle mapping.
func (d *Dial) Scale() Scale { return d.scale }

// AddBand adds an arc band covering the value range [from, to] on the
// dial's scale, just inside the tick ring. Used for airspeed range arcs
// and red lines.
func (d *Dial) AddBand(name string, from, to float64, c Color) *Node {
	start := d.scale.Angle(from)
	end := d.scale.Angle(to)
	band := NewArcBand(name, d.radius*0.95, d.radius*0.08, start, end-start, c)
	d.root.AddChild(band)
	return band
}

// AddNeedle adds a needle pivoted on the dial center. length and width are
// fractions of the dial radius. The caller aims it with SetRotation.
func (d *Dial) AddNeedle(name string, length, width float64, c Color) *Node {
	n := NewNeedle(name, d.radius*length, d.radius*0.15, d.radius*width, c)
	d.root.AddChild(n)
	return n
}

// AddHub adds the small center cap drawn over needle tails.
func (d *Dial) AddHub() *Node {
	hub := NewDisc(d.root.Name+"-hub", d.radius*0.06, dialRimColor)
	d.root.AddChild(hub)
	return hub
}
