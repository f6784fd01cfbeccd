package align

// Pair is a single corresponding (original, modified) index in an
// Alignment.
type Pair struct {
	O int
	M int
}

// Range is a concrete, materialized half-open range [Start, End), as
// opposed to bounds.Bounds, which may leave either side unspecified.
type Range struct {
	Start int
	End   int
}

// Cost constrains the edit-cost type accepted by InferWithCosts. The
// source expresses this as a trait requiring Add, Copy, Default and
// PartialOrd; Go's built-in numeric types already support + and <
// natively, so the constraint is expressed directly over them rather
// than through a method-based interface.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// EditKind tags the variant of an Edit. Go has no sum-type construct, so
// a tagged struct stands in for the source's enum Edit<T, U>.
type EditKind int

const (
	// EditReplacement marks the replacement of one original element with
	// one modified element. Only Original and Modified are meaningful.
	EditReplacement EditKind = iota
	// EditDeletion marks the deletion of one original element. Only
	// Original is meaningful.
	EditDeletion
	// EditInsertion marks the insertion of one modified element. Only
	// Modified is meaningful.
	EditInsertion
)

// Edit describes one individual edit considered while inferring an
// alignment: a Replacement of an original element with a modified one, a
// Deletion of an original element, or an Insertion of a modified element.
type Edit[T, U any] struct {
	Kind     EditKind
	Original T
	Modified U
}

// Replacement constructs a replacement edit: t is replaced by u.
func Replacement[T, U any](t T, u U) Edit[T, U] {
	return Edit[T, U]{Kind: EditReplacement, Original: t, Modified: u}
}

// Deletion constructs a deletion edit: t is removed.
func Deletion[T, U any](t T) Edit[T, U] {
	return Edit[T, U]{Kind: EditDeletion, Original: t}
}

// Insertion constructs an insertion edit: u is added.
func Insertion[T, U any](u U) Edit[T, U] {
	return Edit[T, U]{Kind: EditInsertion, Modified: u}
}

// Inverse returns the edit that inverts this one: a Replacement's
// arguments are swapped, and Deletion/Insertion swap with each other.
func (e Edit[T, U]) Inverse() Edit[U, T] {
	switch e.Kind {
	case EditDeletion:
		return Insertion[U, T](e.Original)
	case EditInsertion:
		return Deletion[U, T](e.Modified)
	default:
		return Replacement(e.Modified, e.Original)
	}
}
