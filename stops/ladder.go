// Package stops - value ladder builder and process-wide ladder cache.
//
// Cameras select exposure values from nominal catalogues, not from a
// computed grid: the half-stop aperture run steps 45→64 directly, the
// half-stop ISO run carries both 1000 and 1250 in the 800–1600 band,
// and the third-stop ISO run steps 16000→25600 directly. The tables
// below reproduce the camera-settings feature data; stop positions are
// always recomputed from the token through the codec, which makes
// Build/Decode bijective over ladder entries by construction.

package stops

import (
	"fmt"
	"sort"
	"sync"
)

// snapTol is the tolerance used for tie detection while snapping and for
// boundary membership tests. It is far below the smallest rung spacing
// (a third of a stop) yet above accumulated log/pow rounding error.
const snapTol = 1e-9

// Rung is one selectable value of a ladder: the catalogue token and its
// position on the stops axis.
type Rung struct {
	// Token is the canonical catalogue spelling ("1/125", "f/5.6", "400").
	Token string

	// Stop is Decode(kind, Token): the rung's position on the stops axis.
	Stop float64
}

// Ladder is the ordered, bounded set of selectable values for one
// parameter kind at one increment granularity. Ladders are immutable
// value objects; obtain them via Build or the memoizing Get.
type Ladder struct {
	param Param
	step  Step
	rungs []Rung // ascending by Stop, strictly monotonic
}

// Param returns the parameter kind the ladder belongs to.
func (l Ladder) Param() Param { return l.param }

// Step returns the ladder's increment granularity.
func (l Ladder) Step() Step { return l.step }

// Len returns the number of rungs.
func (l Ladder) Len() int { return len(l.rungs) }

// Rungs returns a copy of the rung sequence, ascending by stop value.
func (l Ladder) Rungs() []Rung {
	out := make([]Rung, len(l.rungs))
	copy(out, l.rungs)

	return out
}

// Min returns the lowest stop value on the ladder.
func (l Ladder) Min() float64 { return l.rungs[0].Stop }

// Max returns the highest stop value on the ladder.
func (l Ladder) Max() float64 { return l.rungs[len(l.rungs)-1].Stop }

// Contains reports whether stop lies within the ladder's bounds,
// inclusive within snapTol.
func (l Ladder) Contains(stop float64) bool {
	return stop >= l.Min()-snapTol && stop <= l.Max()+snapTol
}

// Nearest returns the rung whose stop value is closest to stop.
// An exact tie (equidistant within snapTol) resolves toward the rung
// admitting more light. Values beyond the ends return the boundary rung.
//
// Complexity: O(log n).
func (l Ladder) Nearest(stop float64) Rung {
	n := len(l.rungs)

	// First rung with Stop >= stop.
	i := sort.Search(n, func(k int) bool { return l.rungs[k].Stop >= stop })
	if i == 0 {
		return l.rungs[0]
	}
	if i == n {
		return l.rungs[n-1]
	}

	lo, hi := l.rungs[i-1], l.rungs[i]
	dLo, dHi := stop-lo.Stop, hi.Stop-stop

	switch {
	case dLo < dHi-snapTol:
		return lo
	case dHi < dLo-snapTol:
		return hi
	default:
		// Equidistant: prefer the rung admitting more light.
		if LightStops(l.param, hi.Stop) > LightStops(l.param, lo.Stop) {
			return hi
		}

		return lo
	}
}

// Nominal value catalogues, ascending in physical quantity.
// Cardinalities are part of the public contract: full 19/13/10,
// half 37/24/20, third 55/37/27 for shutter/aperture/ISO.
var catalogues = map[Param]map[Step][]string{
	Shutter: {
		FullStop: {
			"1/8000", "1/4000", "1/2000", "1/1000", "1/500", "1/250",
			"1/125", "1/60", "1/30", "1/15", "1/8", "1/4", "1/2",
			"1", "2", "4", "8", "15", "30",
		},
		HalfStop: {
			"1/8000", "1/6000", "1/4000", "1/3000", "1/2000", "1/1500",
			"1/1000", "1/750", "1/500", "1/350", "1/250", "1/180",
			"1/125", "1/90", "1/60", "1/45", "1/30", "1/20", "1/15",
			"1/10", "1/8", "1/6", "1/4", "1/3", "1/2",
			"0.7", "1", "1.5", "2", "3", "4", "6", "8", "10", "15", "20", "30",
		},
		ThirdStop: {
			"1/8000", "1/6400", "1/5000", "1/4000", "1/3200", "1/2500",
			"1/2000", "1/1600", "1/1250", "1/1000", "1/800", "1/640",
			"1/500", "1/400", "1/320", "1/250", "1/200", "1/160",
			"1/125", "1/100", "1/80", "1/60", "1/50", "1/40", "1/30",
			"1/25", "1/20", "1/15", "1/13", "1/10", "1/8", "1/6", "1/5",
			"1/4", "1/3",
			"0.4", "0.5", "0.6", "0.8", "1", "1.3", "1.6", "2", "2.5",
			"3.2", "4", "5", "6", "8", "10", "13", "15", "20", "25", "30",
		},
	},
	Aperture: {
		FullStop: {
			"f/1", "f/1.4", "f/2", "f/2.8", "f/4", "f/5.6", "f/8",
			"f/11", "f/16", "f/22", "f/32", "f/45", "f/64",
		},
		HalfStop: {
			"f/1", "f/1.2", "f/1.4", "f/1.7", "f/2", "f/2.4", "f/2.8",
			"f/3.4", "f/4", "f/4.8", "f/5.6", "f/6.7", "f/8", "f/9.5",
			"f/11", "f/13", "f/16", "f/19", "f/22", "f/27", "f/32",
			"f/38", "f/45", "f/64",
		},
		ThirdStop: {
			"f/1", "f/1.1", "f/1.2", "f/1.4", "f/1.6", "f/1.8", "f/2",
			"f/2.2", "f/2.5", "f/2.8", "f/3.2", "f/3.5", "f/4", "f/4.5",
			"f/5", "f/5.6", "f/6.3", "f/7.1", "f/8", "f/9", "f/10",
			"f/11", "f/13", "f/14", "f/16", "f/18", "f/20", "f/22",
			"f/25", "f/29", "f/32", "f/36", "f/40", "f/45", "f/51",
			"f/57", "f/64",
		},
	},
	ISO: {
		FullStop: {
			"50", "100", "200", "400", "800", "1600", "3200", "6400",
			"12800", "25600",
		},
		HalfStop: {
			"50", "70", "100", "140", "200", "280", "400", "560", "800",
			"1000", "1250", "1600", "2200", "3200", "4500", "6400",
			"9000", "12800", "18000", "25600",
		},
		ThirdStop: {
			"50", "64", "80", "100", "125", "160", "200", "250", "320",
			"400", "500", "640", "800", "1000", "1250", "1600", "2000",
			"2500", "3200", "4000", "5000", "6400", "8000", "10000",
			"12800", "16000", "25600",
		},
	},
}

// Build constructs the (p, s) ladder from its catalogue: every token is
// decoded through the codec and the result is checked strictly monotonic.
//
// Contracts:
//   - Pure and deterministic; two calls return structurally equal ladders.
//   - Returns ErrUnknownParam/ErrUnknownStep for values outside the enums.
//
// Complexity: O(n) time and space, n = catalogue size.
func Build(p Param, s Step) (Ladder, error) {
	if !p.Valid() {
		return Ladder{}, ErrUnknownParam
	}
	if !s.Valid() {
		return Ladder{}, ErrUnknownStep
	}

	tokens := catalogues[p][s]
	rungs := make([]Rung, len(tokens))

	var prev float64
	for i, tok := range tokens {
		stop, err := Decode(p, tok)
		if err != nil {
			// Catalogue tokens are compile-time constants; a decode
			// failure here is a programmer error, not user input.
			return Ladder{}, fmt.Errorf("stops: catalogue %s/%s entry %q: %w", p, s, tok, err)
		}
		if i > 0 && stop <= prev {
			return Ladder{}, fmt.Errorf("stops: catalogue %s/%s not monotonic at %q", p, s, tok)
		}
		rungs[i] = Rung{Token: tok, Stop: stop}
		prev = stop
	}

	return Ladder{param: p, step: s, rungs: rungs}, nil
}

// Ladder cache: compute-once-on-first-access, never mutated afterwards.
// Concurrent first access is serialized per (kind, granularity) cell.
var (
	ladderOnce [paramCount][stepCount]sync.Once
	ladderVal  [paramCount][stepCount]Ladder
	ladderErr  [paramCount][stepCount]error
)

// Get returns the memoized (p, s) ladder, building it on first access.
// Safe for concurrent use; subsequent reads never mutate.
func Get(p Param, s Step) (Ladder, error) {
	if !p.Valid() {
		return Ladder{}, ErrUnknownParam
	}
	if !s.Valid() {
		return Ladder{}, ErrUnknownStep
	}

	ladderOnce[p][s].Do(func() {
		ladderVal[p][s], ladderErr[p][s] = Build(p, s)
	})

	return ladderVal[p][s], ladderErr[p][s]
}
