package stops

import "strings"

// Param identifies which exposure parameter a token or ladder belongs to.
//
//   - Shutter  — exposure time; stop = log2(seconds).
//   - Aperture — relative aperture; stop = 2·log2(f-number).
//   - ISO      — sensor sensitivity; stop = log2(ISO/100).
type Param int

const (
	// Shutter denotes the exposure-time parameter.
	Shutter Param = iota

	// Aperture denotes the relative-aperture (f-number) parameter.
	Aperture

	// ISO denotes the sensor-sensitivity parameter.
	ISO
)

// paramCount bounds the closed Param enum; used by the ladder cache grid.
const paramCount = 3

// Valid reports whether p is one of the three known parameter kinds.
func (p Param) Valid() bool {
	return p >= Shutter && p <= ISO
}

// String returns the canonical lower-case name of the parameter kind.
func (p Param) String() string {
	switch p {
	case Shutter:
		return "shutter"
	case Aperture:
		return "aperture"
	case ISO:
		return "iso"
	default:
		return "unknown"
	}
}

// ParseParam converts a boundary spelling into a Param. It accepts the
// spellings used by the camera-settings feature data ("ShutterSpeeds",
// "Aperture", "ISO") case-insensitively, plus the short forms.
//
// Returns ErrUnknownParam for anything else; raw strings are never
// compared past this boundary.
func ParseParam(s string) (Param, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shutter", "shutterspeed", "shutterspeeds":
		return Shutter, nil
	case "aperture":
		return Aperture, nil
	case "iso":
		return ISO, nil
	default:
		return 0, ErrUnknownParam
	}
}

// Step is the increment granularity of a value ladder: the stop distance
// between two adjacent selectable values.
type Step int

const (
	// FullStop steps in whole stops (step size 1).
	FullStop Step = iota

	// HalfStop steps in half stops (step size 1/2).
	HalfStop

	// ThirdStop steps in third stops (step size 1/3).
	ThirdStop
)

// stepCount bounds the closed Step enum; used by the ladder cache grid.
const stepCount = 3

// Valid reports whether s is one of the three known granularities.
func (s Step) Valid() bool {
	return s >= FullStop && s <= ThirdStop
}

// String returns the canonical lower-case name of the granularity.
func (s Step) String() string {
	switch s {
	case FullStop:
		return "full"
	case HalfStop:
		return "half"
	case ThirdStop:
		return "third"
	default:
		return "unknown"
	}
}

// Size returns the stop distance between adjacent ladder rungs at this
// granularity (1, 1/2 or 1/3).
func (s Step) Size() float64 {
	switch s {
	case HalfStop:
		return 0.5
	case ThirdStop:
		return 1.0 / 3.0
	default:
		return 1.0
	}
}

// ParseStep converts a boundary spelling ("full", "half", "third",
// case-insensitive) into a Step. Returns ErrUnknownStep otherwise.
func ParseStep(s string) (Step, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return FullStop, nil
	case "half":
		return HalfStop, nil
	case "third":
		return ThirdStop, nil
	default:
		return 0, ErrUnknownStep
	}
}

// LightStops converts a stop value on p's own axis into its contribution
// to total captured light, in stops. Time and sensitivity add light as
// they grow; f-number removes it:
//
//	EV(triangle) = LightStops(Shutter, s) + LightStops(Aperture, a) + LightStops(ISO, i)
//
// Moving any single parameter by +1 light-stop doubles captured light.
func LightStops(p Param, stop float64) float64 {
	if p == Aperture {
		return -stop
	}

	return stop
}
