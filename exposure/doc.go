// Package exposure solves photographic exposure equivalence: given a
// baseline shutter/aperture/ISO triangle, two fixed target values and an
// optional EV compensation, it computes the third parameter that keeps
// total captured light constant, snapped onto the camera's selectable
// value ladder.
//
// What:
//
//   - Solve validates a Request, converts tokens into stop space,
//     solves the reciprocity equation algebraically, snaps the result
//     to the requested granularity's ladder and classifies the outcome.
//   - EV reports the exposure value of a triangle relative to the
//     1s · f/1 · ISO 100 reference.
//
// Why:
//
//	Reciprocity: {1/125, f/5.6, 100} captures the same light as
//	{1/500, f/2.8, 100} — opening the aperture two stops requires
//	closing the shutter two stops. The solver generalizes this to any
//	parameter, granularity and compensation.
//
// Outcomes:
//
//	Solve never panics and never returns a Go error; every result is an
//	Outcome value tagged with a Kind, so batch call sites proceed past
//	individual failures. Callers branch on Kind, not on message text:
//
//	  - Success      — snapped token plus its stop value.
//	  - OverExposed  — the solved parameter would need to admit more
//	    light than its ladder allows; Stops carries the excess.
//	  - UnderExposed — symmetric on the less-light side.
//	  - OutOfRange   — a caller-supplied known target lies outside the
//	    parameter's physical domain; no solving occurred.
//	  - InvalidInput — missing field, malformed token, unknown enum or
//	    compensation outside [-5, 5]; Err carries the sentinel.
//
// Concurrency: Solve is pure and stateless; identical requests yield
// structurally identical outcomes, and concurrent calls need no
// coordination.
package exposure
