package bounds_test

import (
	"fmt"

	"github.com/katalvlaran/bistring/bounds"
)

// ExampleBounds_Slice demonstrates re-slicing a Bounds relative to an
// already-sliced parent, the way repeated slicing composes on a []byte.
func ExampleBounds_Slice() {
	parent := bounds.Open(4, 7)
	child := parent.Slice(bounds.Open(1, 2))

	start, end := child.ToRange(100)
	fmt.Printf("start=%d end=%d\n", start, end)
	// Output:
	// start=5 end=6
}
