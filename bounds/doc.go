// Package bounds implements a half-open range with optional endpoints,
// the shared coordinate type used by align and bistring.
//
// What:
//
//   - Bounds normalizes every Go range shape (a..b, a..=b, a.., ..b, ..=b,
//     fully open) into a single {Start, End int} pair, half-open on both
//     sides, using the sentinel Unbounded for an absent endpoint.
//   - ToRange materializes a Bounds against a concrete sequence length.
//   - Clamp clips a single index into the interior of a Bounds.
//   - Slice re-interprets a child Bounds as relative to a parent Bounds,
//     the same way a[2:5][1:] re-slices relative to an already-sliced a.
//
// Why:
//
//   - align.Alignment and bistring.BiStr both need to accept "a range,
//     maybe open on one or both ends" from callers without forcing every
//     caller to materialize a concrete length first.
//
// Errors:
//
//   - None. Bounds has no failure cases; out-of-range indices saturate
//     rather than panic or error.
package bounds
