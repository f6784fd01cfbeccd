package bounds

// Unbounded marks an absent endpoint of a Bounds. Indices are never
// negative, so -1 is free to serve as the "no bound here" sentinel
// without resorting to a pointer or a separate boolean flag.
const Unbounded = -1

// Bounds is a half-open range [Start, End) with either side optionally
// absent. It is the normalized form of every Go range shape a caller
// might want to express; construct one with Full, Open, Closed, From,
// To, or ToClosed rather than setting the fields directly.
type Bounds struct {
	Start int
	End   int
}

// Full returns a Bounds with no constraint on either side.
func Full() Bounds {
	return Bounds{Start: Unbounded, End: Unbounded}
}

// Open returns the half-open range [start, end).
func Open(start, end int) Bounds {
	return Bounds{Start: start, End: end}
}

// Closed returns the inclusive range [start, end], normalized to the
// half-open [start, end+1).
func Closed(start, end int) Bounds {
	return Bounds{Start: start, End: end + 1}
}

// From returns the range [start, ∞), with no upper bound.
func From(start int) Bounds {
	return Bounds{Start: start, End: Unbounded}
}

// To returns the range [0, end) with an unbounded start.
func To(end int) Bounds {
	return Bounds{Start: Unbounded, End: end}
}

// ToClosed returns the inclusive range (-∞, end] with an unbounded
// start, normalized to the half-open form with an exclusive end of
// end+1.
func ToClosed(end int) Bounds {
	return Bounds{Start: Unbounded, End: end + 1}
}

// HasStart reports whether Start is a concrete bound.
func (b Bounds) HasStart() bool {
	return b.Start != Unbounded
}

// HasEnd reports whether End is a concrete bound.
func (b Bounds) HasEnd() bool {
	return b.End != Unbounded
}

// ToRange materializes this Bounds against a concrete sequence length,
// filling in Unbounded sides with 0 and length respectively.
func (b Bounds) ToRange(length int) (start, end int) {
	start = b.Start
	if start == Unbounded {
		start = 0
	}
	end = b.End
	if end == Unbounded {
		end = length
	}
	return start, end
}

// Clamp clips n into [Start, End], both treated as inclusive bounds for
// the purpose of clamping. An absent side imposes no clip.
func (b Bounds) Clamp(n int) int {
	if b.HasStart() && n < b.Start {
		n = b.Start
	}
	if b.HasEnd() && n > b.End {
		n = b.End
	}
	return n
}

// Slice re-interprets inner as offsets relative to this Bounds' own
// start (or 0, if this Bounds is itself unbounded on the start side),
// the way a[2:5][1:] re-slices relative to an already-sliced a. A side
// of inner that is itself unbounded inherits the corresponding side of
// this Bounds rather than being reset to unbounded.
func (b Bounds) Slice(inner Bounds) Bounds {
	base := b.Start
	if base == Unbounded {
		base = 0
	}

	result := Bounds{Start: b.Start, End: b.End}
	if inner.HasStart() {
		result.Start = base + inner.Start
	}
	if inner.HasEnd() {
		result.End = base + inner.End
	}
	return result
}
