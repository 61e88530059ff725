package exposure

import (
	"fmt"

	"reciprocity/stops"
)

// Triangle is a baseline exposure: three photographic tokens in the
// forms the codec accepts ("1/125" or `30"`, "f/5.6" or "5.6", "100").
// Triangles are immutable value objects; a triangle with any
// unparseable field is invalid as a whole.
type Triangle struct {
	Shutter  string
	Aperture string
	ISO      string
}

// Request describes one equivalence calculation.
//
// Exactly two targets are consulted: the two parameters other than
// Solve. The target matching Solve is ignored.
type Request struct {
	// Base is the known-good exposure whose light total must be
	// preserved (shifted by Compensation).
	Base Triangle

	// TargetShutter, TargetAperture and TargetISO are the fixed knowns
	// of the new exposure, in codec token form.
	TargetShutter  string
	TargetAperture string
	TargetISO      string

	// Solve names the parameter to compute.
	Solve stops.Param

	// Step is the ladder granularity the result must land on.
	Step stops.Step

	// Compensation shifts the desired total by whole EV, in [-5, 5].
	// Positive means more light than the baseline captured.
	Compensation float64
}

// OutcomeKind tags an Outcome. Callers branch on the tag; the Reason
// text exists for display only.
type OutcomeKind int

const (
	// Success: the solved parameter snapped onto a ladder rung.
	Success OutcomeKind = iota

	// OverExposed: the solved parameter would have to admit more light
	// than its ladder's boundary rung provides.
	OverExposed

	// UnderExposed: the solved parameter would have to admit less light
	// than its ladder's boundary rung provides.
	UnderExposed

	// OutOfRange: a caller-supplied known target is outside the
	// parameter's physical domain; no solving occurred.
	OutOfRange

	// InvalidInput: the request failed validation or token decoding.
	InvalidInput
)

// String returns the canonical lower-camel tag name.
func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case OverExposed:
		return "overexposed"
	case UnderExposed:
		return "underexposed"
	case OutOfRange:
		return "out-of-range"
	case InvalidInput:
		return "invalid-input"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of Solve. Only the fields documented for
// each Kind are meaningful; the rest hold zero values.
type Outcome struct {
	// Kind selects which variant this outcome is.
	Kind OutcomeKind

	// Token is the snapped catalogue token (Success) or the offending
	// known token (OutOfRange).
	Token string

	// Stop is the snapped stop value (Success) or the attempted stop
	// value of the offending known (OutOfRange).
	Stop float64

	// Stops is the overshoot magnitude in stops, always positive
	// (OverExposed / UnderExposed), stabilized to 1e-9.
	Stops float64

	// Param is the parameter whose known target was out of range
	// (OutOfRange).
	Param stops.Param

	// Reason is a human-readable message accompanying every failure
	// kind; empty on Success.
	Reason string

	// Err is the sentinel (possibly wrapped) behind an InvalidInput
	// outcome, for errors.Is matching; nil otherwise.
	Err error
}

// success builds the Success variant.
func success(token string, stop float64) Outcome {
	return Outcome{Kind: Success, Token: token, Stop: stop}
}

// overExposed builds the OverExposed variant; stopsOver must be positive.
func overExposed(stopsOver float64) Outcome {
	return Outcome{
		Kind:   OverExposed,
		Stops:  stopsOver,
		Reason: fmt.Sprintf("overexposed by %.1f stops", stopsOver),
	}
}

// underExposed builds the UnderExposed variant; stopsUnder must be positive.
func underExposed(stopsUnder float64) Outcome {
	return Outcome{
		Kind:   UnderExposed,
		Stops:  stopsUnder,
		Reason: fmt.Sprintf("underexposed by %.1f stops", stopsUnder),
	}
}

// outOfRange builds the OutOfRange variant for a known target token.
func outOfRange(p stops.Param, token string, attempted float64) Outcome {
	return Outcome{
		Kind:   OutOfRange,
		Param:  p,
		Token:  token,
		Stop:   attempted,
		Reason: fmt.Sprintf("%s %q outside the selectable range", p, token),
	}
}

// invalidInput builds the InvalidInput variant around a sentinel error.
func invalidInput(err error) Outcome {
	return Outcome{Kind: InvalidInput, Err: err, Reason: err.Error()}
}
