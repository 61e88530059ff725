package stops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"reciprocity/stops"
)

func TestDecode_ShutterForms(t *testing.T) {
	// fractional form
	got, err := stops.Decode(stops.Shutter, "1/125")
	require.NoError(t, err)
	require.Equal(t, math.Log2(1.0/125.0), got)

	// bare seconds
	got, err = stops.Decode(stops.Shutter, "30")
	require.NoError(t, err)
	require.Equal(t, math.Log2(30), got)

	// seconds with mark
	got, err = stops.Decode(stops.Shutter, `30"`)
	require.NoError(t, err)
	require.Equal(t, math.Log2(30), got)

	// fractional denominator with decimals
	got, err = stops.Decode(stops.Shutter, "1/1.5")
	require.NoError(t, err)
	require.Equal(t, math.Log2(1.0/1.5), got)

	// sub-second decimal
	got, err = stops.Decode(stops.Shutter, "0.7")
	require.NoError(t, err)
	require.Equal(t, math.Log2(0.7), got)
}

func TestDecode_ApertureForms(t *testing.T) {
	got, err := stops.Decode(stops.Aperture, "f/5.6")
	require.NoError(t, err)
	require.Equal(t, 2*math.Log2(5.6), got)

	// bare numeric and upper-case prefix decode identically
	bare, err := stops.Decode(stops.Aperture, "5.6")
	require.NoError(t, err)
	require.Equal(t, got, bare)

	upper, err := stops.Decode(stops.Aperture, "F/5.6")
	require.NoError(t, err)
	require.Equal(t, got, upper)

	// f/1 sits exactly at the reference
	ref, err := stops.Decode(stops.Aperture, "f/1")
	require.NoError(t, err)
	require.Equal(t, 0.0, ref)
}

func TestDecode_ISO(t *testing.T) {
	got, err := stops.Decode(stops.ISO, "400")
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	got, err = stops.Decode(stops.ISO, "50")
	require.NoError(t, err)
	require.Equal(t, -1.0, got)

	got, err = stops.Decode(stops.ISO, "100")
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name  string
		param stops.Param
		token string
		want  error
	}{
		{"empty shutter", stops.Shutter, "", stops.ErrEmptyToken},
		{"blank shutter", stops.Shutter, "   ", stops.ErrEmptyToken},
		{"non-numeric shutter", stops.Shutter, "fast", stops.ErrMalformedToken},
		{"non-numeric numerator", stops.Shutter, "x/125", stops.ErrMalformedToken},
		{"zero denominator", stops.Shutter, "1/0", stops.ErrNonPositive},
		{"negative seconds", stops.Shutter, "-2", stops.ErrNonPositive},
		{"zero seconds", stops.Shutter, "0", stops.ErrNonPositive},
		{"NaN shutter", stops.Shutter, "nan", stops.ErrMalformedToken},
		{"infinite shutter", stops.Shutter, "inf", stops.ErrMalformedToken},
		{"spelled-out infinite shutter", stops.Shutter, "Infinity", stops.ErrMalformedToken},
		{"infinite shutter with mark", stops.Shutter, `inf"`, stops.ErrMalformedToken},
		{"NaN numerator", stops.Shutter, "nan/125", stops.ErrMalformedToken},
		{"infinite denominator", stops.Shutter, "1/inf", stops.ErrMalformedToken},
		{"empty aperture", stops.Aperture, "", stops.ErrEmptyToken},
		{"NaN aperture", stops.Aperture, "f/nan", stops.ErrMalformedToken},
		{"infinite aperture", stops.Aperture, "inf", stops.ErrMalformedToken},
		{"bare prefix aperture", stops.Aperture, "f/", stops.ErrMalformedToken},
		{"non-numeric aperture", stops.Aperture, "f/wide", stops.ErrMalformedToken},
		{"negative aperture", stops.Aperture, "-4", stops.ErrNonPositive},
		{"fractional ISO", stops.ISO, "100.5", stops.ErrMalformedToken},
		{"non-numeric ISO", stops.ISO, "high", stops.ErrMalformedToken},
		{"zero ISO", stops.ISO, "0", stops.ErrNonPositive},
		{"negative ISO", stops.ISO, "-100", stops.ErrNonPositive},
		{"ISO above ceiling", stops.ISO, "204800", stops.ErrISORange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stops.Decode(tc.param, tc.token)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_ISOCeilingInclusive(t *testing.T) {
	// 102400 itself is accepted; only values above it are rejected.
	got, err := stops.Decode(stops.ISO, "102400")
	require.NoError(t, err)
	require.Equal(t, 10.0, got)
}

func TestDecode_UnknownParam(t *testing.T) {
	_, err := stops.Decode(stops.Param(9), "100")
	require.ErrorIs(t, err, stops.ErrUnknownParam)
}

func TestEncode_SnapsToNearestRung(t *testing.T) {
	// exact rung value round-trips
	tok, err := stops.Encode(stops.Shutter, math.Log2(1.0/500.0), stops.FullStop)
	require.NoError(t, err)
	require.Equal(t, "1/500", tok)

	// off-grid value snaps to the closer neighbor
	tok, err = stops.Encode(stops.Aperture, 3.94, stops.FullStop)
	require.NoError(t, err)
	require.Equal(t, "f/4", tok)

	tok, err = stops.Encode(stops.Shutter, math.Log2(1.0/480.0), stops.ThirdStop)
	require.NoError(t, err)
	require.Equal(t, "1/500", tok)
}

func TestEncode_TieBreaksTowardMoreLight(t *testing.T) {
	// ISO 100 (stop 0) and ISO 200 (stop 1) are exactly equidistant
	// from 0.5; more light means the higher ISO.
	tok, err := stops.Encode(stops.ISO, 0.5, stops.FullStop)
	require.NoError(t, err)
	require.Equal(t, "200", tok)

	// 1s (stop 0) and 2s (stop 1): more light means the longer time.
	tok, err = stops.Encode(stops.Shutter, 0.5, stops.FullStop)
	require.NoError(t, err)
	require.Equal(t, "2", tok)
}

func TestEncode_ClampsBeyondLadderEnds(t *testing.T) {
	tok, err := stops.Encode(stops.ISO, 99, stops.FullStop)
	require.NoError(t, err)
	require.Equal(t, "25600", tok)

	tok, err = stops.Encode(stops.Shutter, -99, stops.FullStop)
	require.NoError(t, err)
	require.Equal(t, "1/8000", tok)
}

func TestEncode_UnknownEnums(t *testing.T) {
	_, err := stops.Encode(stops.Param(9), 0, stops.FullStop)
	require.ErrorIs(t, err, stops.ErrUnknownParam)

	_, err = stops.Encode(stops.ISO, 0, stops.Step(9))
	require.ErrorIs(t, err, stops.ErrUnknownStep)
}

func TestLightStops_Signs(t *testing.T) {
	require.Equal(t, 3.0, stops.LightStops(stops.Shutter, 3.0))
	require.Equal(t, 3.0, stops.LightStops(stops.ISO, 3.0))
	require.Equal(t, -3.0, stops.LightStops(stops.Aperture, 3.0))
}

func TestParseParam(t *testing.T) {
	for spelled, want := range map[string]stops.Param{
		"shutter":       stops.Shutter,
		"ShutterSpeeds": stops.Shutter,
		"Aperture":      stops.Aperture,
		"ISO":           stops.ISO,
		" iso ":         stops.ISO,
	} {
		got, err := stops.ParseParam(spelled)
		require.NoError(t, err, spelled)
		require.Equal(t, want, got, spelled)
	}

	_, err := stops.ParseParam("focal length")
	require.ErrorIs(t, err, stops.ErrUnknownParam)
}

func TestParseStep(t *testing.T) {
	for spelled, want := range map[string]stops.Step{
		"full":  stops.FullStop,
		"Half":  stops.HalfStop,
		"THIRD": stops.ThirdStop,
	} {
		got, err := stops.ParseStep(spelled)
		require.NoError(t, err, spelled)
		require.Equal(t, want, got, spelled)
	}

	_, err := stops.ParseStep("quarter")
	require.ErrorIs(t, err, stops.ErrUnknownStep)
}

func TestStepSize(t *testing.T) {
	require.Equal(t, 1.0, stops.FullStop.Size())
	require.Equal(t, 0.5, stops.HalfStop.Size())
	require.Equal(t, 1.0/3.0, stops.ThirdStop.Size())
}
