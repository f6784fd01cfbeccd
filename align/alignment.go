package align

import (
	"sort"

	"github.com/katalvlaran/bistring/bounds"
)

// Alignment is an ordered list of corresponding (original, modified)
// index pairs between two sequences. Both axes are monotone
// non-decreasing, and consecutive pairs never repeat exactly (pushing a
// duplicate of the last pair is a silent no-op).
type Alignment struct {
	pairs []Pair
}

// New returns an empty Alignment.
func New() Alignment {
	return Alignment{}
}

// Identity builds an alignment that aligns each index in indices with
// itself: (k, k) for every k. indices must be monotone non-decreasing;
// ErrMonotonicityViolation is returned otherwise.
func Identity(indices []int) (Alignment, error) {
	a := New()
	for _, k := range indices {
		if err := a.Push(k, k); err != nil {
			return Alignment{}, err
		}
	}
	return a, nil
}

// IdentityRange builds an identity alignment covering every index from
// lo to hi inclusive. Unlike Identity, this can never fail: an inclusive
// integer range is monotone by construction.
func IdentityRange(lo, hi int) Alignment {
	a := New()
	for k := lo; k <= hi; k++ {
		// Safe to ignore: k only ever increases, so Push cannot fail.
		_ = a.Push(k, k)
	}
	return a
}

// Push appends (o, m) to the alignment. It returns ErrMonotonicityViolation
// if either coordinate would move backwards relative to the last pair
// pushed; an exact duplicate of the last pair is a silent no-op.
func (a *Alignment) Push(o, m int) error {
	if n := len(a.pairs); n > 0 {
		last := a.pairs[n-1]
		if o < last.O || m < last.M {
			return ErrMonotonicityViolation
		}
		if o == last.O && m == last.M {
			return nil
		}
	}
	a.pairs = append(a.pairs, Pair{O: o, M: m})
	return nil
}

// Extend pushes every pair in pairs in order, stopping and returning the
// first error encountered.
func (a *Alignment) Extend(pairs []Pair) error {
	for _, p := range pairs {
		if err := a.Push(p.O, p.M); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of pairs in the alignment. This is not the
// length of either sequence the alignment covers; see OriginalRange and
// ModifiedRange for that.
func (a Alignment) Len() int {
	return len(a.pairs)
}

// Pairs returns a defensive copy of the pairs in this alignment, in order.
func (a Alignment) Pairs() []Pair {
	out := make([]Pair, len(a.pairs))
	copy(out, a.pairs)
	return out
}

// OriginalRange returns the half-open range of the original sequence
// this alignment covers: [first.O, last.O). The final pair's coordinate
// is excluded even though it is part of the alignment's index list; see
// DESIGN.md for why this asymmetry is preserved rather than "fixed."
func (a Alignment) OriginalRange() (Range, error) {
	if len(a.pairs) == 0 {
		return Range{}, ErrEmptyAlignment
	}
	return Range{Start: a.pairs[0].O, End: a.pairs[len(a.pairs)-1].O}, nil
}

// ModifiedRange returns the half-open range of the modified sequence
// this alignment covers: [first.M, last.M). Same exclusion convention as
// OriginalRange.
func (a Alignment) ModifiedRange() (Range, error) {
	if len(a.pairs) == 0 {
		return Range{}, ErrEmptyAlignment
	}
	return Range{Start: a.pairs[0].M, End: a.pairs[len(a.pairs)-1].M}, nil
}

// axis selects one coordinate out of a Pair; used to share the range
// mapping logic between ToOriginalRange and ToModifiedRange.
type axis func(Pair) int

func originalAxis(p Pair) int { return p.O }
func modifiedAxis(p Pair) int { return p.M }

// lowerBound finds the largest pair index i with source(pairs[i]) <= at:
// the partition point p such that source(pairs[p]) <= at for every index
// before p (sort.Search finds the first index where the predicate turns
// false), requiring p > 0, and returning p - 1.
func lowerBound(pairs []Pair, at int, source axis) (int, error) {
	p := sort.Search(len(pairs), func(i int) bool { return source(pairs[i]) > at })
	if p == 0 {
		return 0, ErrRangeUnderflow
	}
	return p - 1, nil
}

// upperBound finds the smallest pair index i with source(pairs[i]) >= at:
// the partition point q such that source(pairs[q]) < at for every index
// before q, requiring q < len(pairs), and returning q.
func upperBound(pairs []Pair, at int, source axis) (int, error) {
	q := sort.Search(len(pairs), func(i int) bool { return source(pairs[i]) >= at })
	if q == len(pairs) {
		return 0, ErrRangeUnderflow
	}
	return q, nil
}

// toBounds resolves a bounds.Bounds on the source axis into a [lb, ub]
// pair of positional indices into a.pairs, using lowerBound/upperBound on
// each side that's actually constrained. Unbounded sides map to the
// first/last index respectively.
func (a Alignment) toBounds(r bounds.Bounds, source axis) (lb, ub int, err error) {
	if r.HasStart() {
		lb, err = lowerBound(a.pairs, r.Start, source)
		if err != nil {
			return 0, 0, err
		}
	} else {
		lb = 0
	}

	if r.HasEnd() {
		ub, err = upperBound(a.pairs, r.End, source)
		if err != nil {
			return 0, 0, err
		}
	} else {
		ub = len(a.pairs) - 1
	}

	return lb, ub, nil
}

// toRange is the shared implementation behind ToOriginalRange and
// ToModifiedRange: resolve r's bounds on the source axis, then read off
// the corresponding interval on the target axis.
func (a Alignment) toRange(r bounds.Bounds, source, target axis) (Range, error) {
	if len(a.pairs) == 0 {
		return Range{}, ErrEmptyAlignment
	}
	lb, ub, err := a.toBounds(r, source)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: target(a.pairs[lb]), End: target(a.pairs[ub])}, nil
}

// ToOriginalRange maps a range of the modified sequence to the tightest
// range of the original sequence guaranteed to contain its image.
func (a Alignment) ToOriginalRange(mRange bounds.Bounds) (Range, error) {
	return a.toRange(mRange, modifiedAxis, originalAxis)
}

// ToModifiedRange maps a range of the original sequence to the tightest
// range of the modified sequence guaranteed to contain its image.
func (a Alignment) ToModifiedRange(oRange bounds.Bounds) (Range, error) {
	return a.toRange(oRange, originalAxis, modifiedAxis)
}

// Slice returns a view over the positional subrange pairs[i:j] of this
// alignment's index list, with no clamping or shifting applied.
func (a Alignment) Slice(i, j int) Slice {
	return newSlice(a.pairs[i:j], bounds.Full(), bounds.Full())
}

// SliceByOriginal returns a view clamped to the given range of the
// original sequence: the minimal contiguous subrange of pairs whose
// original coordinates cover r, with each emitted O clamped into r.
func (a Alignment) SliceByOriginal(r bounds.Bounds) (Slice, error) {
	lb, ub, err := a.toBounds(r, originalAxis)
	if err != nil {
		return Slice{}, err
	}
	return newSlice(a.pairs[lb:ub+1], r, bounds.Full()), nil
}

// SliceByModified returns a view clamped to the given range of the
// modified sequence: the minimal contiguous subrange of pairs whose
// modified coordinates cover r, with each emitted M clamped into r.
func (a Alignment) SliceByModified(r bounds.Bounds) (Slice, error) {
	lb, ub, err := a.toBounds(r, modifiedAxis)
	if err != nil {
		return Slice{}, err
	}
	return newSlice(a.pairs[lb:ub+1], bounds.Full(), r), nil
}

// Shifted returns a view of this alignment with every emitted pair
// translated by (dO, dM).
func (a Alignment) Shifted(dO, dM int) Slice {
	return a.Slice(0, len(a.pairs)).Shifted(dO, dM)
}

// ShiftedToOrigin returns a view of this alignment translated so its
// first emitted pair becomes (0, 0).
func (a Alignment) ShiftedToOrigin() Slice {
	return a.Slice(0, len(a.pairs)).ShiftedToOrigin()
}

// Inverse returns a new alignment with each (o, m) swapped to (m, o).
// The result remains monotone on both axes because the original did.
func (a Alignment) Inverse() Alignment {
	out := New()
	for _, p := range a.pairs {
		// Safe to ignore: swapping a monotone sequence's axes can never
		// violate monotonicity, and duplicates canonicalize the same way.
		_ = out.Push(p.M, p.O)
	}
	return out
}

// Compose returns a new alignment C: o -> m' equivalent to applying this
// alignment (o -> m) and then other (m -> m'). The modified range of
// this alignment must equal the original range of other, or
// ErrCompositionMismatch is returned.
//
// The walk advances two cursors i (into a.pairs) and j (into
// other.pairs) in lock-step:
//
//  1. advance j while a[i].M is still ahead of other[j].O;
//  2. advance i while the *next* a-pair is still at or before other[j].O;
//  3. emit the lower-bound pair (a[i].O, other[j].M);
//  4. advance i through any run of pairs sharing a[i].O;
//  5. advance j while a[i].M reaches past other[j+1].O, emitting an
//     upper-bound pair if that happened, to widen the composed interval.
func (a Alignment) Compose(other Alignment) (Alignment, error) {
	selfMR, err := a.ModifiedRange()
	if err != nil {
		return Alignment{}, err
	}
	otherOR, err := other.OriginalRange()
	if err != nil {
		return Alignment{}, err
	}
	if selfMR != otherOR {
		return Alignment{}, ErrCompositionMismatch
	}

	composed := New()

	i, iMax := 0, len(a.pairs)
	j, jMax := 0, len(other.pairs)

	for i < iMax {
		// 1) Catch up j: a[i].M should not be strictly ahead of other[j].O.
		for a.pairs[i].M > other.pairs[j].O {
			j++
		}
		// 2) Skip a-pairs strictly before other[j].
		for a.pairs[i].M < other.pairs[j].O && a.pairs[i+1].M <= other.pairs[j].O {
			i++
		}

		// 3) Lower-bound mapping.
		_ = composed.Push(a.pairs[i].O, other.pairs[j].M)

		// 4) Advance through a flat run on the original axis.
		for i+1 < iMax && a.pairs[i].O == a.pairs[i+1].O {
			i++
		}

		// 5) Advance j while a[i].M reaches the next other-pair's origin;
		// emit an upper-bound pair to widen the composed interval if so.
		needsUpper := false
		for j+1 < jMax && a.pairs[i].M >= other.pairs[j+1].O {
			needsUpper = true
			j++
		}
		if needsUpper {
			_ = composed.Push(a.pairs[i].O, other.pairs[j].M)
		}

		i++
	}

	return composed, nil
}
