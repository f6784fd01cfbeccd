package bistring

import (
	"github.com/katalvlaran/bistring/align"
	"github.com/katalvlaran/bistring/bounds"
)

// BiStr is a borrowed view over a BiString, restricted to a range of the
// modified string's bytes. It owns nothing; every accessor derives its
// answer from the target BiString and this view's modified-coordinate
// bounds.
type BiStr struct {
	target  *BiString
	mBounds bounds.Bounds
}

// Modified returns the substring of the target's modified string that
// this view covers.
func (s BiStr) Modified() string {
	start, end := s.mBounds.ToRange(len(s.target.modified))
	return s.target.modified[start:end]
}

// Original returns the substring of the target's original string that
// corresponds to this view's modified range: the tightest original range
// guaranteed to contain the image of Modified(). Like Modified(), an
// out-of-domain view is a programming error and panics rather than
// returning a misleadingly empty string.
func (s BiStr) Original() string {
	r, err := s.target.aligned.ToOriginalRange(s.mBounds)
	if err != nil {
		panic(err)
	}
	return s.target.original[r.Start:r.End]
}

// Alignment returns the target alignment restricted to this view's
// modified range, shifted so its first pair is (0, 0). Panics on an
// out-of-domain view, consistent with Original() and Modified().
func (s BiStr) Alignment() align.Slice {
	sliced, err := s.target.aligned.SliceByModified(s.mBounds)
	if err != nil {
		panic(err)
	}
	return sliced.ShiftedToOrigin()
}

// Index re-slices this view by sub, interpreted as offsets relative to
// this view's own modified range, per bounds.Bounds.Slice.
func (s BiStr) Index(sub bounds.Bounds) BiStr {
	return BiStr{target: s.target, mBounds: s.mBounds.Slice(sub)}
}

// ToOwned materializes this view into a standalone BiString.
func (s BiStr) ToOwned() (BiString, error) {
	return New(s.Original(), s.Modified(), s.Alignment().ToAlignment())
}

// Equal reports whether two views expose identical original strings,
// modified strings, and alignment pair sequences.
func (s BiStr) Equal(other BiStr) bool {
	if s.Modified() != other.Modified() || s.Original() != other.Original() {
		return false
	}
	return pairsEqual(s.Alignment().Pairs(), other.Alignment().Pairs())
}
