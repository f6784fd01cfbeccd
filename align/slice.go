package align

import "github.com/katalvlaran/bistring/bounds"

// Slice is a view over a contiguous positional subrange of an
// Alignment's pairs, with optional clamp bounds on each axis and signed
// shifts applied to every emitted pair. It never copies the underlying
// pair list; Pairs materializes only when a caller asks for a concrete
// []Pair.
type Slice struct {
	pairs   []Pair
	oBounds bounds.Bounds
	mBounds bounds.Bounds
	oShift  int
	mShift  int
}

func newSlice(pairs []Pair, oBounds, mBounds bounds.Bounds) Slice {
	return Slice{pairs: pairs, oBounds: oBounds, mBounds: mBounds}
}

// Len returns the number of pairs in the subrange this slice covers.
func (s Slice) Len() int {
	return len(s.pairs)
}

// at returns the i-th pair of this slice after clamping and shifting:
// (clampO(o_i) + oShift, clampM(m_i) + mShift).
func (s Slice) at(i int) Pair {
	p := s.pairs[i]
	return Pair{
		O: s.oBounds.Clamp(p.O) + s.oShift,
		M: s.mBounds.Clamp(p.M) + s.mShift,
	}
}

// Pairs materializes every pair emitted by this slice, in order.
func (s Slice) Pairs() []Pair {
	out := make([]Pair, len(s.pairs))
	for i := range s.pairs {
		out[i] = s.at(i)
	}
	return out
}

// OriginalRange returns the half-open range of the original sequence
// this slice covers, after clamping: [first.O, last.O).
func (s Slice) OriginalRange() (Range, error) {
	if len(s.pairs) == 0 {
		return Range{}, ErrEmptyAlignment
	}
	first, last := s.at(0), s.at(len(s.pairs)-1)
	return Range{Start: first.O, End: last.O}, nil
}

// ModifiedRange returns the half-open range of the modified sequence
// this slice covers, after clamping: [first.M, last.M).
func (s Slice) ModifiedRange() (Range, error) {
	if len(s.pairs) == 0 {
		return Range{}, ErrEmptyAlignment
	}
	first, last := s.at(0), s.at(len(s.pairs)-1)
	return Range{Start: first.M, End: last.M}, nil
}

// Shifted returns a view of this slice with every emitted pair further
// translated by (dO, dM), on top of any shift already applied.
func (s Slice) Shifted(dO, dM int) Slice {
	out := s
	out.oShift += dO
	out.mShift += dM
	return out
}

// ShiftedToOrigin returns a view of this slice translated so its first
// emitted pair becomes (0, 0).
func (s Slice) ShiftedToOrigin() Slice {
	if len(s.pairs) == 0 {
		return s
	}
	first := s.at(0)
	return s.Shifted(-first.O, -first.M)
}

// ToAlignment materializes this slice into a standalone Alignment.
func (s Slice) ToAlignment() Alignment {
	a := New()
	// A Slice's pairs are always monotone, since they're a contiguous
	// subrange (possibly clamped/shifted) of an already-monotone
	// Alignment; Push cannot fail here.
	_ = a.Extend(s.Pairs())
	return a
}

// Equal reports whether two slices emit the same sequence of pairs.
func (s Slice) Equal(other Slice) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.at(i) != other.at(i) {
			return false
		}
	}
	return true
}
