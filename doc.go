// Package sixpack renders and drives a panel of analog flight instruments
// for [Ebitengine]: airspeed, attitude, altimeter, vertical speed, heading,
// and tachometer, with draggable knobs for barometer and heading-bug
// adjustment.
//
// The heart of the package is not the gauge drawing but the interaction
// core: a deterministic frame [Clock] that drives eased value transitions
// ([StartLerp], [LerpSet]), a pointer [Dispatcher] with exclusive capture
// semantics, and the angle math ([ClockToMath], [AngularDelta]) that keeps
// every dial's rotation consistent and wraparound-safe.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	panel, err := sixpack.NewPanel(sixpack.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	panel.StartDemo(nil)
//	sixpack.Run(panel)
//
// For full control, implement [ebiten.Game] yourself and call
// [Panel.Update] and [Panel.Draw] directly.
//
// # Driving the aircraft
//
// Instruments track a shared [Aircraft]. Setters start eased transitions
// toward the requested target; every animation tick broadcasts a change
// notification that instruments translate into needle rotations:
//
//	panel.Aircraft().SetAirspeed(120) // needle sweeps over ~1s
//	panel.Aircraft().SetAltitude(4500)
//
// All animation and input processing is single-threaded and runs inside
// [Panel.Update]. Tests can drive the same machinery deterministically with
// [NewClock] and manual [Clock.Step] calls; no wall clock is involved.
//
// [Ebitengine]: https://ebitengine.org
package sixpack
