package exposure_test

import (
	"fmt"

	"reciprocity/exposure"
	"reciprocity/stops"
)

// ExampleSolve opens the aperture two stops and asks for the shutter
// speed that keeps the exposure identical.
func ExampleSolve() {
	out := exposure.Solve(exposure.Request{
		Base:           exposure.Triangle{Shutter: "1/125", Aperture: "f/5.6", ISO: "100"},
		TargetAperture: "f/2.8",
		TargetISO:      "100",
		Solve:          stops.Shutter,
		Step:           stops.FullStop,
	})

	fmt.Println(out.Kind, out.Token)
	// Output:
	// success 1/500
}

// ExampleSolve_compensation brightens the same scene by one EV while
// keeping aperture and ISO fixed: the shutter slows by one stop.
func ExampleSolve_compensation() {
	out := exposure.Solve(exposure.Request{
		Base:           exposure.Triangle{Shutter: "1/125", Aperture: "f/5.6", ISO: "100"},
		TargetAperture: "f/5.6",
		TargetISO:      "100",
		Solve:          stops.Shutter,
		Step:           stops.FullStop,
		Compensation:   1.0,
	})

	fmt.Println(out.Token)
	// Output:
	// 1/60
}

// ExampleSolve_overExposed shows the structured failure taxonomy: the
// required aperture is wider than f/1, so the outcome reports the
// overshoot instead of clamping.
func ExampleSolve_overExposed() {
	out := exposure.Solve(exposure.Request{
		Base:          exposure.Triangle{Shutter: "1/125", Aperture: "f/5.6", ISO: "100"},
		TargetShutter: "1/8000",
		TargetISO:     "50",
		Solve:         stops.Aperture,
		Step:          stops.FullStop,
	})

	fmt.Println(out.Kind, "—", out.Reason)
	// Output:
	// overexposed — overexposed by 2.0 stops
}

// ExampleEV reports a triangle's position on the light scale.
func ExampleEV() {
	ev, err := exposure.EV(exposure.Triangle{Shutter: "2", Aperture: "f/2", ISO: "100"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.0f EV\n", ev)
	// Output:
	// -1 EV
}
