// Package exposure - request gatekeeper.
//
// validate runs every pre-flight rule before any solving work: field
// presence, enum membership, compensation range, and per-branch target
// presence and format. Rules are independent, checked in a fixed order,
// and the first failure short-circuits; no ladder is built and no stop
// arithmetic happens on the failure path.

package exposure

import (
	"fmt"
	"strings"

	"reciprocity/stops"
)

// validate verifies req against all gatekeeper rules and returns the
// sentinel of the first rule that failed (malformed-token sentinels are
// wrapped around the codec's own error for full diagnostics).
//
// Complexity: O(len of the inspected tokens).
func validate(req Request) error {
	// Stage 1: base triangle presence, one distinct error per field.
	if strings.TrimSpace(req.Base.Shutter) == "" {
		return ErrBaseShutterMissing
	}
	if strings.TrimSpace(req.Base.Aperture) == "" {
		return ErrBaseApertureMissing
	}
	if strings.TrimSpace(req.Base.ISO) == "" {
		return ErrBaseISOMissing
	}

	// Stage 2: closed enums.
	if !req.Step.Valid() {
		return stops.ErrUnknownStep
	}
	if !req.Solve.Valid() {
		return stops.ErrUnknownParam
	}

	// Stage 3: compensation range. The negated form also rejects NaN.
	if !(req.Compensation >= -5.0 && req.Compensation <= 5.0) {
		return ErrCompensationRange
	}

	// Stage 4: the two fixed knowns must be present and well-formed.
	for _, p := range [...]stops.Param{stops.Shutter, stops.Aperture, stops.ISO} {
		if p == req.Solve {
			continue
		}
		if err := validateTarget(p, req.target(p)); err != nil {
			return err
		}
	}

	return nil
}

// target returns the known-target token for parameter kind p.
func (r Request) target(p stops.Param) string {
	switch p {
	case stops.Shutter:
		return r.TargetShutter
	case stops.Aperture:
		return r.TargetAperture
	default:
		return r.TargetISO
	}
}

// validateTarget enforces presence and codec format for one known
// target, with distinct "required" and "malformed" sentinels per kind.
func validateTarget(p stops.Param, token string) error {
	required, malformed := targetSentinels(p)

	if strings.TrimSpace(token) == "" {
		return required
	}
	if _, err := stops.Decode(p, token); err != nil {
		return fmt.Errorf("%w: %v", malformed, err)
	}

	return nil
}

// targetSentinels maps a parameter kind to its required/malformed pair.
func targetSentinels(p stops.Param) (required, malformed error) {
	switch p {
	case stops.Shutter:
		return ErrTargetShutterRequired, ErrTargetShutterMalformed
	case stops.Aperture:
		return ErrTargetApertureRequired, ErrTargetApertureMalformed
	default:
		return ErrTargetISORequired, ErrTargetISOMalformed
	}
}
