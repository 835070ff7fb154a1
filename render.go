package sixpack

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Shape constructors build solid-color mesh nodes for gauge faces: discs,
// rings, arc bands, tick rings, and needles. All geometry is centered on the
// node origin so rotating the node spins the shape about the dial hub.
// Angular arguments are in the clock convention (0° up, clockwise positive).

const defaultSegments = 48

func vertexAt(p Vec2, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: float32(c.R), ColorG: float32(c.G),
		ColorB: float32(c.B), ColorA: float32(c.A),
	}
}

// SetMeshColor rewrites the fill color of every vertex in a mesh node.
func SetMeshColor(n *Node, c Color) {
	for i := range n.Vertices {
		n.Vertices[i].ColorR = float32(c.R)
		n.Vertices[i].ColorG = float32(c.G)
		n.Vertices[i].ColorB = float32(c.B)
		n.Vertices[i].ColorA = float32(c.A)
	}
}

// NewDisc creates a filled circle of the given radius centered on the node
// origin.
func NewDisc(name string, radius float64, c Color) *Node {
	if radius <= 0 {
		panic("sixpack: disc radius must be positive")
	}
	segs := defaultSegments
	verts := make([]ebiten.Vertex, 0, segs+1)
	inds := make([]uint16, 0, segs*3)
	verts = append(verts, vertexAt(Vec2{}, c))
	for i := 0; i < segs; i++ {
		a := float64(i) / float64(segs) * 360
		verts = append(verts, vertexAt(PointOnCircle(Vec2{}, radius, a), c))
	}
	// Perimeter vertices occupy 1..segs; fan triangles wrap back to 1.
	for i := 1; i <= segs; i++ {
		inds = append(inds, 0, uint16(i), uint16(i%segs+1))
	}
	return NewMeshNode(name, verts, inds)
}

// NewRing creates an annulus centered on the node origin: outer radius
// radius, band width width extending inward.
func NewRing(name string, radius, width float64, c Color) *Node {
	return NewArcBand(name, radius, width, 0, 360, c)
}

// NewArcBand creates a partial annulus sweeping clockwise from clockStart
// through sweep degrees. Used for airspeed range arcs and red lines.
func NewArcBand(name string, radius, width, clockStart, sweep float64, c Color) *Node {
	if radius <= 0 || width <= 0 || width >= radius {
		panic("sixpack: arc band needs 0 < width < radius")
	}
	if sweep <= 0 || sweep > 360 {
		panic("sixpack: arc band sweep must be in (0, 360]")
	}
	segs := int(math.Ceil(sweep / 360 * defaultSegments))
	if segs < 2 {
		segs = 2
	}
	inner := radius - width
	verts := make([]ebiten.Vertex, 0, (segs+1)*2)
	inds := make([]uint16, 0, segs*6)
	for i := 0; i <= segs; i++ {
		clock := clockStart + sweep*float64(i)/float64(segs)
		a := ClockToMath(clock)
		verts = append(verts,
			vertexAt(PointOnCircle(Vec2{}, radius, a), c),
			vertexAt(PointOnCircle(Vec2{}, inner, a), c),
		)
	}
	for i := 0; i < segs; i++ {
		o := uint16(i * 2)
		inds = append(inds, o, o+1, o+2, o+1, o+3, o+2)
	}
	return NewMeshNode(name, verts, inds)
}

// NewSector creates a filled pie sector sweeping clockwise from clockStart
// through sweep degrees. A 180° sector makes the attitude indicator's
// ground half.
func NewSector(name string, radius, clockStart, sweep float64, c Color) *Node {
	if radius <= 0 {
		panic("sixpack: sector radius must be positive")
	}
	if sweep <= 0 || sweep > 360 {
		panic("sixpack: sector sweep must be in (0, 360]")
	}
	segs := int(math.Ceil(sweep / 360 * defaultSegments))
	if segs < 2 {
		segs = 2
	}
	verts := make([]ebiten.Vertex, 0, segs+2)
	inds := make([]uint16, 0, segs*3)
	verts = append(verts, vertexAt(Vec2{}, c))
	for i := 0; i <= segs; i++ {
		clock := clockStart + sweep*float64(i)/float64(segs)
		verts = append(verts, vertexAt(PointOnCircle(Vec2{}, radius, ClockToMath(clock)), c))
	}
	for i := 1; i <= segs; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	return NewMeshNode(name, verts, inds)
}

// NewTickRing creates count tick marks of the given length, evenly spread
// clockwise from clockStart through sweep degrees (inclusive of both ends
// unless the sweep closes the full circle). Ticks point inward from radius.
func NewTickRing(name string, radius, length, thickness float64, count int, clockStart, sweep float64, c Color) *Node {
	if count < 1 {
		panic("sixpack: tick ring needs at least one tick")
	}
	full := sweep >= 360
	denom := count
	if !full && count > 1 {
		denom = count - 1
	}
	verts := make([]ebiten.Vertex, 0, count*4)
	inds := make([]uint16, 0, count*6)
	ht := thickness / 2
	for i := 0; i < count; i++ {
		clock := clockStart + sweep*float64(i)/float64(denom)
		a := ClockToMath(clock) * math.Pi / 180
		dir := Vec2{math.Cos(a), math.Sin(a)}
		perp := Vec2{-dir.Y, dir.X}
		out := dir.Mul(radius)
		in := dir.Mul(radius - length)
		o := uint16(len(verts))
		verts = append(verts,
			vertexAt(out.Add(perp.Mul(ht)), c),
			vertexAt(out.Sub(perp.Mul(ht)), c),
			vertexAt(in.Sub(perp.Mul(ht)), c),
			vertexAt(in.Add(perp.Mul(ht)), c),
		)
		inds = append(inds, o, o+1, o+2, o, o+2, o+3)
	}
	return NewMeshNode(name, verts, inds)
}

// NewNeedle creates a tapered needle pointing up (clock 0°) with its pivot
// at the node origin. Setting the node's Rotation to a clock angle in
// radians aims it. tail extends behind the pivot as a counterweight.
func NewNeedle(name string, length, tail, width float64, c Color) *Node {
	if length <= 0 || width <= 0 {
		panic("sixpack: needle needs positive length and width")
	}
	hw := width / 2
	verts := []ebiten.Vertex{
		vertexAt(Vec2{0, -length}, c), // tip
		vertexAt(Vec2{hw, tail}, c),
		vertexAt(Vec2{-hw, tail}, c),
	}
	inds := []uint16{0, 1, 2}
	return NewMeshNode(name, verts, inds)
}

// NewLabel creates a node rendering text with the debug font, centered on
// the node origin. Intended for dial legends and knob captions.
func NewLabel(name, text string) *Node {
	n := &Node{Name: name, Type: NodeTypeLabel}
	nodeDefaults(n)
	n.SetLabelText(text)
	return n
}

// SetLabelText replaces a label node's text.
func (n *Node) SetLabelText(text string) {
	if n.Type != NodeTypeLabel {
		panic("sixpack: SetLabelText on a non-label node")
	}
	if n.labelImage != nil {
		n.labelImage.Deallocate()
	}
	// Debug font glyphs are 6x16 pixels.
	w := 6*len(text) + 2
	h := 16
	img := ebiten.NewImage(w, h)
	ebitenutil.DebugPrint(img, text)
	n.labelImage = img
	n.labelOffX = -float64(w) / 2
	n.labelOffY = -float64(h) / 2
}

// --- Draw traversal ---

// drawNode renders n and its children in paint order using the world
// transforms computed by updateWorldTransform.
func drawNode(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	switch n.Type {
	case NodeTypeMesh:
		if len(n.Vertices) > 0 {
			if cap(n.transformedVerts) < len(n.Vertices) {
				n.transformedVerts = make([]ebiten.Vertex, len(n.Vertices))
			}
			n.transformedVerts = n.transformedVerts[:len(n.Vertices)]
			m := n.worldTransform
			for i, v := range n.Vertices {
				x, y := transformPoint(m, float64(v.DstX), float64(v.DstY))
				v.DstX = float32(x)
				v.DstY = float32(y)
				n.transformedVerts[i] = v
			}
			var op ebiten.DrawTrianglesOptions
			op.AntiAlias = true
			screen.DrawTriangles(n.transformedVerts, n.Indices, WhitePixel, &op)
		}
	case NodeTypeLabel:
		if n.labelImage != nil {
			m := n.worldTransform
			var world ebiten.GeoM
			world.SetElement(0, 0, m[0])
			world.SetElement(0, 1, m[2])
			world.SetElement(0, 2, m[4])
			world.SetElement(1, 0, m[1])
			world.SetElement(1, 1, m[3])
			world.SetElement(1, 2, m[5])
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(n.labelOffX, n.labelOffY)
			op.GeoM.Concat(world)
			screen.DrawImage(n.labelImage, &op)
		}
	}
	for _, child := range n.children {
		drawNode(screen, child)
	}
}
