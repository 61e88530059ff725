// Package stops - token codec.
//
// Decode parses the token grammars accepted at the engine boundary and
// places the value on the stops axis; Encode snaps a raw stop value onto
// a ladder and returns the catalogue token. Both are deterministic and
// allocation-light; Decode never consults a ladder.

package stops

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxISO is the highest sensitivity the codec accepts. Ladders top out
// at 25600, but bodies report extended values up to this ceiling.
const maxISO = 102400

// Decode converts a photographic token into the stop value of parameter
// kind p.
//
// Accepted forms:
//   - Shutter:  "1/N" (N>0, N may carry decimals: "1/1.5"),
//     bare seconds "S" (S>0, "0.8", "30"), or seconds-with-mark `S"`.
//   - Aperture: "f/X" or "F/X" or bare numeric "X" (X>0).
//   - ISO:      bare positive integer, at most 102400.
//
// Contracts:
//   - Returns only sentinel errors from errors.go (errors.Is-matchable).
//   - Pure; no ladder lookups, no shared state.
//
// Complexity: O(len(token)).
func Decode(p Param, token string) (float64, error) {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return 0, ErrEmptyToken
	}

	switch p {
	case Shutter:
		sec, err := parseShutterSeconds(tok)
		if err != nil {
			return 0, err
		}

		return math.Log2(sec), nil

	case Aperture:
		f, err := parseAperture(tok)
		if err != nil {
			return 0, err
		}

		return 2 * math.Log2(f), nil

	case ISO:
		iso, err := parseISO(tok)
		if err != nil {
			return 0, err
		}

		return math.Log2(float64(iso) / 100), nil

	default:
		return 0, ErrUnknownParam
	}
}

// Encode snaps a raw stop value onto the (p, s) ladder and returns the
// catalogue token of the nearest rung.
//
// Contracts:
//   - Nearest measures distance on the stops axis; an exact tie between
//     two rungs resolves toward the rung admitting more light (slower
//     shutter, wider aperture, higher ISO).
//   - Values beyond the ladder ends snap to the boundary rung; range
//     classification is the caller's concern, not the codec's.
//
// Complexity: O(log n), n = ladder size.
func Encode(p Param, stop float64, s Step) (string, error) {
	lad, err := Get(p, s)
	if err != nil {
		return "", err
	}

	return lad.Nearest(stop).Token, nil
}

// parseShutterSeconds parses the three shutter token forms into seconds.
func parseShutterSeconds(tok string) (float64, error) {
	// Fractional form "N/D".
	if num, den, ok := strings.Cut(tok, "/"); ok {
		n, errN := parseFinite(strings.TrimSpace(num))
		d, errD := parseFinite(strings.TrimSpace(den))
		if errN != nil || errD != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
		}
		if n <= 0 || d <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrNonPositive, tok)
		}

		return n / d, nil
	}

	// Seconds-with-mark form `S"`.
	tok = strings.TrimSpace(strings.TrimSuffix(tok, `"`))

	sec, err := parseFinite(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	if sec <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrNonPositive, tok)
	}

	return sec, nil
}

// parseFinite parses a float and rejects NaN/±Inf, which ParseFloat
// otherwise accepts as spelled-out tokens ("nan", "inf", "Infinity").
// Every exposure quantity must be a finite number.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMalformedToken
	}

	return v, nil
}

// parseAperture parses "f/X", "F/X" or bare "X" into the f-number X.
func parseAperture(tok string) (float64, error) {
	if rest, ok := cutPrefixFold(tok, "f/"); ok {
		tok = strings.TrimSpace(rest)
	}

	f, err := parseFinite(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrNonPositive, tok)
	}

	return f, nil
}

// parseISO parses a bare positive integer no greater than maxISO.
func parseISO(tok string) (int, error) {
	iso, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	if iso <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrNonPositive, tok)
	}
	if iso > maxISO {
		return 0, fmt.Errorf("%w: %q", ErrISORange, tok)
	}

	return iso, nil
}

// cutPrefixFold strips prefix from s case-insensitively.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}

	return s, false
}
