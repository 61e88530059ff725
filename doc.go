// Package reciprocity is a photographic exposure-equivalence toolkit:
// stop-space arithmetic over the shutter/aperture/ISO triangle, camera
// value ladders, and a solver that keeps total captured light constant
// while one parameter is recomputed.
//
// 🚀 What is reciprocity?
//
//	A small, deterministic library that brings together:
//		• Token codec: "1/125", `30"`, "f/5.6", "400" ⇄ stop values
//		• Value ladders: full/half/third-stop catalogues per parameter
//		• Equivalence solver: solve any one parameter given the other two,
//		  with EV compensation and a structured failure taxonomy
//
// ✨ Why choose reciprocity?
//
//   - Deterministic — pure functions, stable snapping, tested tie-breaks
//   - Failures are values — no panics, no exceptions, batch-friendly
//   - Pure Go core — the engine has no I/O, no locks on the hot path
//
// Everything is organized under two packages plus a CLI:
//
//	stops/      — parameter kinds, token codec, ladder builder & cache
//	exposure/   — request validation, EV algebra, equivalence facade
//	cmd/evcalc/ — command-line front end (solve, ladder, ev)
//
// Quick example:
//
//	out := exposure.Solve(exposure.Request{
//	    Base:           exposure.Triangle{Shutter: "1/125", Aperture: "f/5.6", ISO: "100"},
//	    TargetAperture: "f/2.8",
//	    TargetISO:      "100",
//	    Solve:          stops.Shutter,
//	    Step:           stops.FullStop,
//	})
//	// out.Kind == exposure.Success, out.Token == "1/500"
package reciprocity
