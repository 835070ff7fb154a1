package sixpack

import (
	"math"
	"testing"
)

func TestNewDiscGeometry(t *testing.T) {
	n := NewDisc("d", 10, ColorWhite)
	if n.Type != NodeTypeMesh {
		t.Fatal("disc is not a mesh node")
	}
	if len(n.Vertices) != defaultSegments+1 {
		t.Errorf("vertices = %d, want %d", len(n.Vertices), defaultSegments+1)
	}
	if len(n.Indices) != defaultSegments*3 {
		t.Errorf("indices = %d, want %d", len(n.Indices), defaultSegments*3)
	}
	// Every perimeter vertex sits on the circle.
	for _, v := range n.Vertices[1:] {
		r := math.Hypot(float64(v.DstX), float64(v.DstY))
		if math.Abs(r-10) > 1e-4 {
			t.Fatalf("perimeter vertex at radius %v, want 10", r)
		}
	}
}

func TestNewNeedleTipPointsUp(t *testing.T) {
	n := NewNeedle("n", 80, 12, 6, ColorWhite)
	tip := n.Vertices[0]
	if tip.DstX != 0 || tip.DstY != -80 {
		t.Errorf("tip at (%v, %v), want (0, -80)", tip.DstX, tip.DstY)
	}
}

func TestNewArcBandValidation(t *testing.T) {
	expectPanic(t, "zero width", func() { NewArcBand("a", 10, 0, 0, 90, ColorWhite) })
	expectPanic(t, "width >= radius", func() { NewArcBand("a", 10, 10, 0, 90, ColorWhite) })
	expectPanic(t, "zero sweep", func() { NewArcBand("a", 10, 2, 0, 0, ColorWhite) })
	expectPanic(t, "oversweep", func() { NewArcBand("a", 10, 2, 0, 361, ColorWhite) })
}

func TestNewTickRingSpansSweepInclusive(t *testing.T) {
	// Five ticks over a 180 degree sweep land every 45 degrees, both ends
	// included.
	n := NewTickRing("t", 10, 2, 1, 5, 180, 180, ColorWhite)
	if len(n.Vertices) != 20 {
		t.Fatalf("vertices = %d, want 20", len(n.Vertices))
	}
	// The last tick's outer edge midpoint sits at clock 360, straight up.
	v0 := n.Vertices[16]
	v1 := n.Vertices[17]
	midX := float64(v0.DstX+v1.DstX) / 2
	midY := float64(v0.DstY+v1.DstY) / 2
	if math.Abs(midX) > 1e-4 || math.Abs(midY+10) > 1e-4 {
		t.Errorf("last tick at (%v, %v), want (0, -10)", midX, midY)
	}
}

func TestSetMeshColorRewritesVertices(t *testing.T) {
	n := NewDisc("d", 5, ColorWhite)
	SetMeshColor(n, Color{0.5, 0.25, 0, 1})
	for _, v := range n.Vertices {
		if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 {
			t.Fatalf("vertex color = (%v, %v, %v)", v.ColorR, v.ColorG, v.ColorB)
		}
	}
}
