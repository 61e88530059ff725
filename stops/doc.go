// Package stops models camera exposure parameters on the base-2
// logarithmic "stops" axis and the finite value ladders cameras expose
// for them.
//
// What:
//
//   - Decode/Encode convert between photographic tokens ("1/125",
//     "f/5.6", "400") and stop values relative to a fixed reference
//     (shutter: 1 second, aperture: f/1, ISO: 100).
//   - Build produces the ordered, bounded ladder of selectable values
//     for one parameter kind at one increment granularity (full, half
//     or third stops). Get memoizes ladders process-wide.
//   - LightStops maps a stop value to its light contribution, so that
//     the exposure value of a triangle is a plain sum.
//
// Why:
//
//   - Exposure arithmetic is linear in stop space: one stop doubles or
//     halves captured light regardless of which parameter moved.
//   - Cameras select from nominal catalogues (1/125 is not exactly
//     2⁻⁷ s); snapping must land on the catalogue token, not on a
//     computed ideal.
//
// Conventions:
//
//   - Shutter stop = log2(seconds): longer exposure ⇒ higher stop.
//   - Aperture stop = 2·log2(f-number): one full f-stop is a √2 factor.
//   - ISO stop = log2(ISO/100).
//   - Ladders are ordered by ascending stop value and strictly
//     monotonic in the underlying physical quantity.
//   - Snapping ties (a value exactly equidistant between two rungs)
//     resolve toward the rung admitting more light.
//
// Complexity:
//
//   - Decode/LightStops: O(1). Encode/Nearest: O(log n), n = ladder size.
//   - Build: O(n); Get amortizes to O(1) after first access per
//     (kind, granularity) pair.
//
// Errors:
//
//   - ErrUnknownParam / ErrUnknownStep: enum value outside the closed set.
//   - ErrEmptyToken / ErrMalformedToken / ErrNonPositive: token rejected
//     by the codec.
//   - ErrISORange: ISO token above the 102400 sensitivity ceiling.
//
// All functions are pure and safe for concurrent use; the only shared
// state is the compute-once ladder cache behind Get.
package stops
