package sixpack

import "math"

// Two angle conventions are used throughout the package:
//
//   - Clock convention: 0° points up, positive angles proceed clockwise.
//     Dial faces lay out their tick marks and scales in clock angles.
//   - Math convention: 0° points right (+x), with cos/sin applied directly
//     in screen coordinates (Y down). All trigonometry happens here.
//
// Every angle-producing function documents its output range. Consumers that
// accumulate rotation must use AngularDelta for incremental updates, never
// raw subtraction, or they break at the 0/360 boundary.

// normalizeDeg wraps an angle into [0, 360).
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// ClockToMath converts a clock-convention angle to math convention.
// Output is in [0, 360).
func ClockToMath(deg float64) float64 {
	return normalizeDeg(deg - 90)
}

// MathToClock converts a math-convention angle to clock convention.
// Output is in [0, 360).
func MathToClock(deg float64) float64 {
	return normalizeDeg(deg + 90)
}

// PointOnCircle returns the point at the given radius and math-convention
// angle from center. Cos/sin are applied directly in screen coordinates, so
// callers wanting clock semantics must convert with ClockToMath first.
func PointOnCircle(center Vec2, radius, angleDeg float64) Vec2 {
	s, c := math.Sincos(angleDeg * math.Pi / 180)
	return Vec2{center.X + radius*c, center.Y + radius*s}
}

// AngleFromCenter returns the math-convention angle of p relative to center.
// Output is in [0, 360), never negative.
func AngleFromCenter(center, p Vec2) float64 {
	return normalizeDeg(math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi)
}

// AngularDelta returns the signed shortest angular difference b - a,
// normalized to [-180, 180]. Wraparound-safe:
//
//	AngularDelta(350, 10) == 20
//	AngularDelta(10, 350) == -20
func AngularDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}
