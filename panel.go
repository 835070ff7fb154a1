package sixpack

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

var panelBackground = Color{0.13, 0.13, 0.15, 1}

// Panel assembles the six-pack: it owns the clock, dispatcher, aircraft and
// instruments, lays the gauges out on a grid, and exposes the per-frame
// Update/Draw pair Run feeds from the Ebitengine game loop.
type Panel struct {
	cfg        *Config
	root       *Node
	clock      *Clock
	dispatcher *Dispatcher
	aircraft   *Aircraft
	altimeter  *Altimeter
	heading    *HeadingIndicator
	instrs     []Instrument
	pointer    pointerState
	demoStop   func()
	life       Lifecycle
}

// NewPanel builds a panel from cfg. A nil cfg uses the defaults.
func NewPanel(cfg *Config) (*Panel, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Panel{
		cfg:        cfg,
		root:       NewGroup("panel"),
		clock:      NewClock(),
		dispatcher: NewDispatcher(),
	}
	p.root.Interactable = true
	p.aircraft = NewAircraft(p.clock, cfg.Limits)

	radius := cfg.CellSize / 2 * 0.92
	airspeed := NewAirspeedIndicator(p.aircraft, radius)
	attitude := NewAttitudeIndicator(p.aircraft, radius)
	p.altimeter = NewAltimeter(p.clock, p.dispatcher, p.aircraft, radius)
	tach := NewTachometer(p.aircraft, radius)
	p.heading = NewHeadingIndicator(p.clock, p.dispatcher, p.aircraft, radius)
	vsi := NewVerticalSpeedIndicator(p.aircraft, radius)

	// Standard six-pack order: ASI, AI, ALT across the top; tach stands in
	// for the turn coordinator on the bottom row.
	p.instrs = []Instrument{airspeed, attitude, p.altimeter, tach, p.heading, vsi}
	for i, instr := range p.instrs {
		col := i % cfg.Columns
		row := i / cfg.Columns
		instr.Node().SetPosition(
			(float64(col)+0.5)*cfg.CellSize,
			(float64(row)+0.5)*cfg.CellSize,
		)
		p.root.AddChild(instr.Node())
	}

	p.life.OnDispose(func() {
		p.StopDemo()
		for _, instr := range p.instrs {
			instr.Dispose()
		}
		p.aircraft.Dispose()
		p.dispatcher.Dispose()
		p.root.Dispose()
	})
	return p, nil
}

// Aircraft returns the shared flight state driving the instruments.
func (p *Panel) Aircraft() *Aircraft { return p.aircraft }

// Root returns the scene root.
func (p *Panel) Root() *Node { return p.root }

// Clock returns the panel's frame clock.
func (p *Panel) Clock() *Clock { return p.clock }

// Dispatcher returns the panel's event dispatcher.
func (p *Panel) Dispatcher() *Dispatcher { return p.dispatcher }

// Altimeter returns the altimeter instrument.
func (p *Panel) Altimeter() *Altimeter { return p.altimeter }

// Heading returns the heading indicator instrument.
func (p *Panel) Heading() *HeadingIndicator { return p.heading }

// Update advances the panel by one frame: refresh world transforms so hit
// testing sees current geometry, translate pointer input into events, then
// step the clock to run animations.
func (p *Panel) Update() {
	updateWorldTransform(p.root, identityTransform, false)
	p.readPointer()
	p.clock.Step(1 / float64(ebiten.TPS()))
}

// Draw renders the scene. Transforms are refreshed first because animations
// during the clock step moved nodes after Update's pass.
func (p *Panel) Draw(screen *ebiten.Image) {
	updateWorldTransform(p.root, identityTransform, false)
	drawNode(screen, p.root)
}

// Dispose tears the panel down. Panics on double disposal.
func (p *Panel) Dispose() { p.life.Dispose() }

// demoTarget periodically pushes a randomized value at one aircraft
// parameter. Intervals are staggered so the gauges move out of phase.
type demoTarget struct {
	every   float64
	elapsed float64
	fire    func(rng *rand.Rand)
}

// StartDemo begins driving the aircraft with randomized targets, one
// parameter family at a time on staggered intervals derived from the
// config's demo interval. A nil rng uses a default source. Starting an
// already running demo is a no-op.
func (p *Panel) StartDemo(rng *rand.Rand) {
	if p.demoStop != nil {
		return
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	lim := p.aircraft.Limits()
	base := p.cfg.Demo.Interval
	targets := []*demoTarget{
		{every: base, fire: func(rng *rand.Rand) {
			p.aircraft.SetAirspeed(lim.StallSpeed + rng.Float64()*(lim.NeverExceedSpeed-lim.StallSpeed))
		}},
		{every: base * 1.3, fire: func(rng *rand.Rand) {
			p.aircraft.SetAltitude(1000 + rng.Float64()*9000)
			p.aircraft.SetAltitudeRate(-1500 + rng.Float64()*3000)
		}},
		{every: base * 0.8, fire: func(rng *rand.Rand) {
			p.aircraft.SetPitch(-12 + rng.Float64()*24)
			p.aircraft.SetRoll(-45 + rng.Float64()*90)
		}},
		{every: base * 1.7, fire: func(rng *rand.Rand) {
			p.aircraft.SetHeading(rng.Float64() * 360)
		}},
		{every: base * 1.1, fire: func(rng *rand.Rand) {
			p.aircraft.SetRPM(800 + rng.Float64()*(lim.MaxRPM-800))
		}},
	}
	// Stagger the first round so the needles do not all jump at once.
	for i, t := range targets {
		t.elapsed = t.every - base*float64(i)/float64(len(targets))
	}
	p.demoStop = p.clock.OnFrame(func(dt float64) {
		for _, t := range targets {
			t.elapsed += dt
			if t.elapsed >= t.every {
				t.elapsed = 0
				t.fire(rng)
			}
		}
	})
}

// StopDemo halts the demo driver; in-flight transitions finish naturally.
// A no-op when the demo is not running.
func (p *Panel) StopDemo() {
	if p.demoStop != nil {
		p.demoStop()
		p.demoStop = nil
	}
}

// DemoRunning reports whether the demo driver is active.
func (p *Panel) DemoRunning() bool { return p.demoStop != nil }

// --- Game loop ---

type game struct {
	panel *Panel
}

func (g *game) Update() error {
	g.panel.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(panelBackground.toRGBA())
	g.panel.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.panel.cfg.Width, g.panel.cfg.Height
}

// Run opens a window sized from the panel's config and drives it with the
// Ebitengine game loop. Blocks until the window closes.
func Run(p *Panel) error {
	ebiten.SetWindowSize(p.cfg.Width, p.cfg.Height)
	ebiten.SetWindowTitle(p.cfg.Title)
	return ebiten.RunGame(&game{panel: p})
}
