package sixpack

// Aircraft is the shared state every instrument tracks: a fixed bag of
// flight parameters, each with a live (animating) value and the most
// recently requested target. Setters start an eased transition toward the
// new target through a keyed LerpSet, so re-setting a parameter mid-flight
// cancels the old transition before the new one starts; every tick
// broadcasts a change notification that instruments turn into needle
// rotations.
//
// Aircraft does not simulate aerodynamics — values simply converge on their
// targets over fixed, parameter-specific durations.

// Transition durations in seconds by parameter family.
const (
	durSpeed    = 1.0 // airspeed, rpm
	durAttitude = 3.0 // heading, pitch, roll, yaw and their rates
	durAltitude = 4.0 // altitude, altitude rate, barometer
)

// standardBarometer is the standard sea-level pressure in inHg.
const standardBarometer = 29.92

// Limits holds the static airframe limits instruments mark on their faces.
type Limits struct {
	StallSpeed       float64 `yaml:"stall_speed"`        // knots, bottom of the arcs
	RotationSpeed    float64 `yaml:"rotation_speed"`     // knots, top of the white arc
	ManeuverSpeed    float64 `yaml:"maneuver_speed"`     // knots, green/yellow boundary
	NeverExceedSpeed float64 `yaml:"never_exceed_speed"` // knots, red line
	MaxRPM           float64 `yaml:"max_rpm"`            // tachometer red line
}

type param struct {
	value  float64
	target float64
}

// Aircraft holds the simulated flight state. Construct with NewAircraft;
// the zero value is not usable.
type Aircraft struct {
	clock   *Clock
	lerps   *LerpSet
	life    Lifecycle
	changed Notifier
	limits  Limits

	airspeed     param // knots
	altitude     param // feet
	altitudeRate param // feet per minute
	barometer    param // inHg
	heading      param // degrees, clock convention
	pitch        param // degrees, nose-up positive
	roll         param // degrees, right-wing-down positive
	rollRate     param // degrees per second
	yaw          param // degrees
	yawRate      param // degrees per second
	rpm          param
}

// NewAircraft creates an aircraft at rest with the given limits, driven by
// clock. The barometer starts at the 29.92 inHg standard setting.
func NewAircraft(clock *Clock, limits Limits) *Aircraft {
	if clock == nil {
		panic("sixpack: NewAircraft requires a clock")
	}
	a := &Aircraft{clock: clock, lerps: NewLerpSet(), limits: limits}
	a.barometer = param{value: standardBarometer, target: standardBarometer}
	a.life.OnDispose(a.lerps.CancelAll)
	return a
}

// Limits returns the static airframe limits.
func (a *Aircraft) Limits() Limits { return a.limits }

// OnChange registers fn to run after every state tick, synchronously and in
// registration order. Remove the returned handle to stop listening.
func (a *Aircraft) OnChange(fn func(*Aircraft)) ListenerHandle {
	if fn == nil {
		panic("sixpack: OnChange requires a callback")
	}
	return a.changed.Listen(func(src any) { fn(src.(*Aircraft)) })
}

// Dispose cancels every outstanding transition. Panics on double disposal.
func (a *Aircraft) Dispose() { a.life.Dispose() }

// IsDisposed reports whether Dispose has been called.
func (a *Aircraft) IsDisposed() bool { return a.life.IsDisposed() }

// animate starts a keyed transition for p toward target. A no-op when the
// target already matches the last request; otherwise any in-flight
// transition under key is cancelled first, so exactly one animation per
// parameter exists at any time.
func (a *Aircraft) animate(key string, p *param, target, duration float64) {
	if a.life.IsDisposed() {
		panic("sixpack: set on a disposed aircraft")
	}
	if target == p.target {
		return
	}
	p.target = target
	a.lerps.Add(key, StartLerp(a.clock, p.value, target, duration, func(v float64) {
		p.value = v
		a.changed.Notify(a)
	}, true))
}

// --- Setters ---

// SetAirspeed requests a new indicated airspeed in knots (1s transition).
func (a *Aircraft) SetAirspeed(kt float64) { a.animate("airspeed", &a.airspeed, kt, durSpeed) }

// SetRPM requests a new engine speed (1s transition).
func (a *Aircraft) SetRPM(rpm float64) { a.animate("rpm", &a.rpm, rpm, durSpeed) }

// SetHeading requests a new heading in degrees (3s transition).
func (a *Aircraft) SetHeading(deg float64) { a.animate("heading", &a.heading, deg, durAttitude) }

// SetPitch requests a new pitch in degrees, nose-up positive (3s transition).
func (a *Aircraft) SetPitch(deg float64) { a.animate("pitch", &a.pitch, deg, durAttitude) }

// SetRoll requests a new roll in degrees, right-wing-down positive
// (3s transition).
func (a *Aircraft) SetRoll(deg float64) { a.animate("roll", &a.roll, deg, durAttitude) }

// SetRollRate requests a new roll rate in degrees/second (3s transition).
func (a *Aircraft) SetRollRate(degPerSec float64) {
	a.animate("rollRate", &a.rollRate, degPerSec, durAttitude)
}

// SetYaw requests a new yaw in degrees (3s transition).
func (a *Aircraft) SetYaw(deg float64) { a.animate("yaw", &a.yaw, deg, durAttitude) }

// SetYawRate requests a new yaw rate in degrees/second (3s transition).
func (a *Aircraft) SetYawRate(degPerSec float64) {
	a.animate("yawRate", &a.yawRate, degPerSec, durAttitude)
}

// SetAltitude requests a new altitude in feet (4s transition).
func (a *Aircraft) SetAltitude(ft float64) { a.animate("altitude", &a.altitude, ft, durAltitude) }

// SetAltitudeRate requests a new vertical speed in feet/minute
// (4s transition).
func (a *Aircraft) SetAltitudeRate(fpm float64) {
	a.animate("altitudeRate", &a.altitudeRate, fpm, durAltitude)
}

// SetBarometer requests a new barometric setting in inHg (4s transition).
func (a *Aircraft) SetBarometer(inHg float64) {
	a.animate("barometer", &a.barometer, inHg, durAltitude)
}

// SetBarometerNow sets the barometric setting immediately, bypassing
// animation. Used by the altimeter's adjustment knob, where the value must
// track the drag sample-for-sample.
func (a *Aircraft) SetBarometerNow(inHg float64) {
	if a.life.IsDisposed() {
		panic("sixpack: set on a disposed aircraft")
	}
	a.lerps.Cancel("barometer")
	a.barometer = param{value: inHg, target: inHg}
	a.changed.Notify(a)
}

// --- Getters (live values) ---

// Airspeed returns the live indicated airspeed in knots.
func (a *Aircraft) Airspeed() float64 { return a.airspeed.value }

// Altitude returns the live altitude in feet.
func (a *Aircraft) Altitude() float64 { return a.altitude.value }

// AltitudeRate returns the live vertical speed in feet/minute.
func (a *Aircraft) AltitudeRate() float64 { return a.altitudeRate.value }

// Barometer returns the live barometric setting in inHg.
func (a *Aircraft) Barometer() float64 { return a.barometer.value }

// Heading returns the live heading in degrees.
func (a *Aircraft) Heading() float64 { return a.heading.value }

// Pitch returns the live pitch in degrees.
func (a *Aircraft) Pitch() float64 { return a.pitch.value }

// Roll returns the live roll in degrees.
func (a *Aircraft) Roll() float64 { return a.roll.value }

// RollRate returns the live roll rate in degrees/second.
func (a *Aircraft) RollRate() float64 { return a.rollRate.value }

// Yaw returns the live yaw in degrees.
func (a *Aircraft) Yaw() float64 { return a.yaw.value }

// YawRate returns the live yaw rate in degrees/second.
func (a *Aircraft) YawRate() float64 { return a.yawRate.value }

// RPM returns the live engine speed.
func (a *Aircraft) RPM() float64 { return a.rpm.value }
