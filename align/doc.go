// Package align implements sequence alignments: ordered lists of
// corresponding (original, modified) index pairs, with range mapping in
// both directions, slicing, composition, inversion, and inference of a
// minimum-cost alignment between two arbitrary sequences.
//
// 🚀 What is an alignment?
//
//	Consider this alignment between two strings:
//
//	  |it's| |aligned!|
//	  |    \ \        |
//	  |it is| |aligned|
//
//	An Alignment stores every index pair known to correspond between the
//	original and modified sequences:
//
//	  a := align.New()
//	  a.Push(0, 0)
//	  a.Push(4, 5)
//	  a.Push(5, 6)
//	  a.Push(13, 13)
//
//	Alignments answer questions like "what's the smallest range of the
//	original sequence guaranteed to contain this part of the modified
//	sequence?" The range 0..5 ("it is") maps to 0..4 ("it's"):
//
//	  r, _ := a.ToOriginalRange(bounds.Open(0, 5)) // r == Range{0, 4}
//
// ✨ Key features:
//
//   - conservative range mapping: never narrower than the true image,
//     even when the alignment is too coarse to be exact
//   - slicing and shifting as lightweight views; composition and
//     inversion, each building a new Alignment
//   - Hirschberg's linear-space divide-and-conquer inference, falling
//     back to the full-matrix Needleman–Wunsch/Wagner–Fischer DP for
//     its base cases
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bistring/align"
//
//	a := align.Infer([]rune("color"), []rune("colour"))
//	r, _ := a.ToOriginalRange(bounds.Open(3, 5)) // r == Range{3, 4}
//
// Errors:
//
//	ErrMonotonicityViolation - Push/Extend would move a coordinate backwards.
//	ErrCompositionMismatch   - Compose's domains don't line up.
//	ErrEmptyAlignment        - OriginalRange/ModifiedRange on an empty alignment.
//	ErrRangeUnderflow        - a mapped interval falls outside the alignment's domain.
//
// Performance:
//
//   - Push/Extend/Len/Pairs:             O(1) amortized / O(L)
//   - ToOriginalRange/ToModifiedRange:   O(log L) via binary search
//   - Compose:                          O(len(self) + len(other))
//   - Infer/InferWithCosts:              O(N·M) time, O(min(N, M)) memory
//
// See example_test.go for runnable scenarios end to end.
package align
