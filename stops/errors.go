// Package stops: sentinel error set.
// All codec and ladder failures surface as these sentinels (possibly
// wrapped with fmt.Errorf("...: %w", ...) at outer boundaries) and are
// matched with errors.Is. No function in this package panics on
// user-supplied input.

package stops

import "errors"

var (
	// ErrUnknownParam indicates a Param value outside the closed
	// Shutter/Aperture/ISO set.
	ErrUnknownParam = errors.New("stops: unknown parameter kind")

	// ErrUnknownStep indicates a Step value outside the closed
	// full/half/third set.
	ErrUnknownStep = errors.New("stops: unknown stop increment")

	// ErrEmptyToken indicates an empty or all-whitespace token.
	ErrEmptyToken = errors.New("stops: empty token")

	// ErrMalformedToken indicates a token whose shape does not match any
	// accepted form for the parameter kind (non-numeric components,
	// stray separators, fractional ISO and the like).
	ErrMalformedToken = errors.New("stops: malformed token")

	// ErrNonPositive indicates a token that parsed numerically but whose
	// value is zero or negative; every exposure quantity is positive.
	ErrNonPositive = errors.New("stops: value must be positive")

	// ErrISORange indicates an ISO token above the 102400 sensitivity
	// ceiling accepted by the codec.
	ErrISORange = errors.New("stops: ISO above 102400")
)
