package align

import "errors"

// Sentinel errors for alignment construction, mapping, and composition.
var (
	// ErrMonotonicityViolation indicates a Push/Extend would move the
	// original or modified coordinate backwards relative to the last pair.
	ErrMonotonicityViolation = errors.New("align: coordinate moved backwards")

	// ErrCompositionMismatch indicates Compose was called with alignments
	// whose domains don't line up: self.ModifiedRange() != other.OriginalRange().
	ErrCompositionMismatch = errors.New("align: modified range of the first alignment does not match the original range of the second")

	// ErrEmptyAlignment indicates OriginalRange/ModifiedRange (or any range
	// mapping derived from them) was called on an alignment with zero pairs.
	ErrEmptyAlignment = errors.New("align: alignment is empty")

	// ErrRangeUnderflow indicates a requested interval falls outside the
	// domain the alignment actually covers: the lower bound is below the
	// first pair, or the upper bound is above the last pair.
	ErrRangeUnderflow = errors.New("align: requested range falls outside the alignment's domain")
)
