// Package exposure - equivalence solver and facade.
//
// Solve is pure orchestration: validate → decode → range-check knowns →
// EV algebra → bound classification → snap → encode. All arithmetic
// happens in light-stop space, where the exposure value of a triangle is
// a plain sum and solving for the missing parameter is a subtraction.

package exposure

import (
	"fmt"
	"math"

	"reciprocity/stops"
)

// boundTol absorbs accumulated log/pow rounding when comparing a
// required light value against a ladder boundary; a value within
// boundTol of the boundary is in range.
const boundTol = 1e-9

// Solve computes the parameter named by req.Solve so that the new
// exposure captures exactly the base triangle's light, shifted by
// req.Compensation EV, and snaps it onto the req.Step ladder.
//
// Contracts:
//   - Never panics; every failure is an Outcome value (see OutcomeKind).
//   - Deterministic and stateless: identical requests yield structurally
//     identical outcomes.
//   - Classification follows the raw (unsnapped) required value, so a
//     result is never silently clamped into Success.
//
// Complexity: O(log n) after first ladder access, n ≤ 55.
func Solve(req Request) Outcome {
	if err := validate(req); err != nil {
		return invalidInput(err)
	}

	// Decode the baseline. Presence was validated; format was not
	// (the validator only format-checks the knowns), so decoding may
	// still reject the triangle here.
	baseEV, err := EV(req.Base)
	if err != nil {
		return invalidInput(err)
	}

	// Decode the two fixed knowns and range-check each against its own
	// physical domain before any solving.
	knownLight := 0.0
	for _, p := range [...]stops.Param{stops.Shutter, stops.Aperture, stops.ISO} {
		if p == req.Solve {
			continue
		}
		token := req.target(p)

		stop, derr := stops.Decode(p, token)
		if derr != nil {
			// Unreachable after validate; kept as a guard for direct
			// callers of Solve with a mutated request.
			return invalidInput(derr)
		}

		lad, lerr := stops.Get(p, req.Step)
		if lerr != nil {
			return invalidInput(lerr)
		}
		if !lad.Contains(stop) {
			return outOfRange(p, token, stop)
		}

		knownLight += stops.LightStops(p, stop)
	}

	// Reciprocity: desired total = baseEV + compensation; the missing
	// parameter must contribute the remainder.
	requiredLight := baseEV + req.Compensation - knownLight

	lad, lerr := stops.Get(req.Solve, req.Step)
	if lerr != nil {
		return invalidInput(lerr)
	}

	minLight, maxLight := lightBounds(lad)
	switch {
	case requiredLight > maxLight+boundTol:
		return overExposed(roundStops(requiredLight - maxLight))
	case requiredLight < minLight-boundTol:
		return underExposed(roundStops(minLight - requiredLight))
	}

	// Back onto the parameter's own axis, then snap.
	rung := lad.Nearest(ownStop(req.Solve, requiredLight))

	return success(rung.Token, rung.Stop)
}

// EV returns the exposure value of t: the summed light contribution of
// its three parameters relative to the 1s · f/1 · ISO 100 reference.
// A triangle with any unparseable field is invalid as a whole; the
// returned error wraps the codec sentinel and names the field.
func EV(t Triangle) (float64, error) {
	fields := [...]struct {
		p     stops.Param
		token string
	}{
		{stops.Shutter, t.Shutter},
		{stops.Aperture, t.Aperture},
		{stops.ISO, t.ISO},
	}

	ev := 0.0
	for _, f := range fields {
		stop, err := stops.Decode(f.p, f.token)
		if err != nil {
			return 0, fmt.Errorf("exposure: base %s: %w", f.p, err)
		}
		ev += stops.LightStops(f.p, stop)
	}

	return ev, nil
}

// lightBounds returns the ladder's reachable light contribution range.
// For shutter and ISO the stops axis already points toward more light;
// for aperture it points away, so the bounds swap and negate.
func lightBounds(lad stops.Ladder) (minLight, maxLight float64) {
	if lad.Param() == stops.Aperture {
		return -lad.Max(), -lad.Min()
	}

	return lad.Min(), lad.Max()
}

// ownStop converts a light contribution back onto p's own stops axis.
func ownStop(p stops.Param, light float64) float64 {
	if p == stops.Aperture {
		return -light
	}

	return light
}

// roundStops stabilizes a stop magnitude to 1e-9 so outcomes are
// bit-identical across platforms despite FP drift.
func roundStops(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
