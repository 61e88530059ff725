// Package exposure: sentinel error set.
// Every InvalidInput outcome wraps one of these (or a stops codec
// sentinel) so callers can errors.Is-match the precise rule that failed.
// Missing and malformed are deliberately distinct per field.

package exposure

import "errors"

var (
	// ErrBaseShutterMissing indicates an empty base shutter-speed field.
	ErrBaseShutterMissing = errors.New("exposure: base shutter speed is missing")

	// ErrBaseApertureMissing indicates an empty base aperture field.
	ErrBaseApertureMissing = errors.New("exposure: base aperture is missing")

	// ErrBaseISOMissing indicates an empty base ISO field.
	ErrBaseISOMissing = errors.New("exposure: base ISO is missing")

	// ErrCompensationRange indicates EV compensation outside [-5, 5].
	ErrCompensationRange = errors.New("exposure: EV compensation outside [-5, 5]")

	// ErrTargetShutterRequired indicates the target shutter speed is
	// absent although the shutter is one of the fixed knowns.
	ErrTargetShutterRequired = errors.New("exposure: target shutter speed required")

	// ErrTargetShutterMalformed indicates the target shutter speed is
	// present but not a valid shutter token.
	ErrTargetShutterMalformed = errors.New("exposure: target shutter speed malformed")

	// ErrTargetApertureRequired indicates the target aperture is absent
	// although the aperture is one of the fixed knowns.
	ErrTargetApertureRequired = errors.New("exposure: target aperture required")

	// ErrTargetApertureMalformed indicates the target aperture is
	// present but not a valid aperture token.
	ErrTargetApertureMalformed = errors.New("exposure: target aperture malformed")

	// ErrTargetISORequired indicates the target ISO is absent although
	// the ISO is one of the fixed knowns.
	ErrTargetISORequired = errors.New("exposure: target ISO required")

	// ErrTargetISOMalformed indicates the target ISO is present but not
	// a valid ISO token.
	ErrTargetISOMalformed = errors.New("exposure: target ISO malformed")
)
