package bistring

import (
	"unicode/utf8"

	"github.com/katalvlaran/bistring/align"
	"github.com/katalvlaran/bistring/bounds"
)

// BiString is a string together with its own history: an original form,
// a modified form, and the Alignment coupling every byte of one to the
// other. Original and Modified always satisfy
// alignment.OriginalRange() == [0, len(Original)) and
// alignment.ModifiedRange() == [0, len(Modified)).
type BiString struct {
	original string
	modified string
	aligned  align.Alignment
}

// New builds a BiString from an explicit original, modified, and
// alignment. It fails with ErrAlignmentDomainMismatch unless the
// alignment's ranges match the two strings' lengths exactly.
func New(original, modified string, alignment align.Alignment) (BiString, error) {
	or, err := alignment.OriginalRange()
	if err != nil || or != (align.Range{Start: 0, End: len(original)}) {
		return BiString{}, ErrAlignmentDomainMismatch
	}
	mr, err := alignment.ModifiedRange()
	if err != nil || mr != (align.Range{Start: 0, End: len(modified)}) {
		return BiString{}, ErrAlignmentDomainMismatch
	}
	return BiString{original: original, modified: modified, aligned: alignment}, nil
}

// Chunk builds a BiString treating original and modified as a single,
// indivisible unit: the alignment records only the two endpoints, so any
// sub-slice maps back to the entire original chunk.
func Chunk(original, modified string) BiString {
	a := align.New()
	// Safe to ignore: two non-decreasing points can never violate
	// monotonicity, whatever the two lengths happen to be.
	_ = a.Push(0, 0)
	_ = a.Push(len(original), len(modified))
	return BiString{original: original, modified: modified, aligned: a}
}

// FromString builds a BiString where original and modified are both s,
// with an identity alignment at every UTF-8 rune-start boundary (plus
// len(s) itself), so that slicing by byte offset never splits a
// multi-byte code point.
func FromString(s string) BiString {
	a := align.New()
	for i := 0; i < len(s); {
		// Safe to ignore: rune-start boundaries are strictly increasing.
		_ = a.Push(i, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	_ = a.Push(len(s), len(s))
	return BiString{original: s, modified: s, aligned: a}
}

// Original returns the original string.
func (b BiString) Original() string { return b.original }

// Modified returns the modified string.
func (b BiString) Modified() string { return b.modified }

// Alignment returns the alignment coupling Original to Modified.
func (b BiString) Alignment() align.Alignment { return b.aligned }

// PushStr appends s to both the original and modified strings, extending
// the alignment with an identity run offset to the strings' new tails.
func (b *BiString) PushStr(s string) {
	oBase, mBase := len(b.original), len(b.modified)
	b.original += s
	b.modified += s
	for i := 0; i <= len(s); i++ {
		// Safe to ignore: oBase+i and mBase+i both only increase, and
		// never move behind the alignment's existing tail.
		_ = b.aligned.Push(oBase+i, mBase+i)
	}
}

// PushBiStr appends b's original to this BiString's original, b's
// modified to this BiString's modified, and b's alignment pairs (offset
// by the pre-append lengths of each side) to this BiString's alignment.
func (b *BiString) PushBiStr(other BiString) {
	oBase, mBase := len(b.original), len(b.modified)
	b.original += other.original
	b.modified += other.modified

	shifted := other.aligned.Shifted(oBase, mBase)
	// Safe to ignore: other's alignment starts at (0, 0) and is itself
	// monotone, so shifting it past this BiString's current tail and
	// appending cannot violate monotonicity.
	_ = b.aligned.Extend(shifted.Pairs())
}

// ToASCIILower rewrites the modified side to its ASCII lowercase form in
// place. The original side and alignment are unchanged, since ASCII case
// folding never changes a string's length.
func (b *BiString) ToASCIILower() {
	buf := []byte(b.modified)
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}
	b.modified = string(buf)
}

// ToASCIIUpper rewrites the modified side to its ASCII uppercase form in
// place. The original side and alignment are unchanged.
func (b *BiString) ToASCIIUpper() {
	buf := []byte(b.modified)
	for i, c := range buf {
		if c >= 'a' && c <= 'z' {
			buf[i] = c - ('a' - 'A')
		}
	}
	b.modified = string(buf)
}

// Slice returns a BiStr borrowing b, restricted to the modified-string
// range r.
func (b *BiString) Slice(r bounds.Bounds) BiStr {
	return BiStr{target: b, mBounds: r}
}

// Equal reports whether two BiStrings have identical original strings,
// modified strings, and alignment pair sequences.
func (b BiString) Equal(other BiString) bool {
	if b.original != other.original || b.modified != other.modified {
		return false
	}
	return pairsEqual(b.aligned.Pairs(), other.aligned.Pairs())
}

func pairsEqual(a, c []align.Pair) bool {
	if len(a) != len(c) {
		return false
	}
	for i := range a {
		if a[i] != c[i] {
			return false
		}
	}
	return true
}
