package sixpack

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Scaled returns the color with R, G and B multiplied by k, clamped to [0, 1].
// Alpha is unchanged. Used for brightness interpolation on captured knobs.
func (c Color) Scaled(k float64) Color {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return Color{clamp(c.R * k), clamp(c.G * k), clamp(c.B * k), c.A}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// Vec2 is a 2D point or offset in screen coordinates: the origin is at the
// top-left and Y increases downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the vector scaled by k.
func (v Vec2) Mul(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// WhitePixel is a 1x1 white image used as the texture source for all solid
// color meshes.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeGroup NodeType = iota // group node with no visual output
	NodeTypeMesh                  // renders solid-color triangles via DrawTriangles
	NodeTypeLabel                 // renders a small debug-font text image
)

// EventType identifies a kind of pointer event handled by the Dispatcher.
//
// EventCaptureSet and EventCaptureLost are synthetic: they are never
// dispatched from input, only fired on the capture holder by
// [Dispatcher.SetCapture] and [Dispatcher.ReleaseCapture] so controls can
// show "captured" feedback.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when the pointer button is pressed
	EventPointerUp                    // fires when the pointer button is released
	EventPointerMove                  // fires when the pointer moves
	EventCaptureSet                   // synthetic: this node acquired capture
	EventCaptureLost                  // synthetic: this node lost capture
)

func (e EventType) synthetic() bool {
	return e == EventCaptureSet || e == EventCaptureLost
}

// HitShape is a hit-testable region in a node's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
