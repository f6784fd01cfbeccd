package align_test

import (
	"testing"

	"github.com/katalvlaran/bistring/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInfer_IdenticalSequences checks that aligning a sequence with
// itself produces the trivial identity alignment.
func TestInfer_IdenticalSequences(t *testing.T) {
	a := align.Infer([]rune("abc"), []rune("abc"))
	assert.Equal(t, []align.Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, a.Pairs())
}

// TestInfer_PureInsertion exercises the inferMatrix base case on the
// empty original side.
func TestInfer_PureInsertion(t *testing.T) {
	a := align.Infer([]rune(""), []rune("abc"))
	assert.Equal(t, []align.Pair{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, a.Pairs())
}

// TestInfer_PureDeletion exercises the inferMatrix base case on the
// empty modified side.
func TestInfer_PureDeletion(t *testing.T) {
	a := align.Infer([]rune("abc"), []rune(""))
	assert.Equal(t, []align.Pair{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, a.Pairs())
}

// TestInfer_SingleInsertion checks the one-character insertion
// distinguishing "color" from "colour".
func TestInfer_SingleInsertion(t *testing.T) {
	a := align.Infer([]rune("color"), []rune("colour"))
	want := []align.Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {4, 5}, {5, 6}}
	assert.Equal(t, want, a.Pairs())
}

// TestInfer_SingleSubstitution exercises a one-element replacement.
func TestInfer_SingleSubstitution(t *testing.T) {
	a := align.Infer([]rune("cat"), []rune("cot"))
	assert.Equal(t, []align.Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, a.Pairs())
}

// TestInfer_SwapsSidesWhenModifiedIsShorter checks that InferWithCosts
// bounds its working memory by the shorter sequence regardless of which
// side it's passed on, producing the same alignment (up to the
// Insertion/Deletion swap this direction implies) as the un-swapped call.
func TestInfer_SwapsSidesWhenModifiedIsShorter(t *testing.T) {
	forward := align.Infer([]rune("color"), []rune("colour"))
	backward := align.Infer([]rune("colour"), []rune("color"))

	assert.Equal(t, forward.Pairs(), backward.Inverse().Pairs())
}

// TestInferWithCosts_CustomCostModel checks that InferWithCosts accepts a
// caller-supplied cost function that makes a particular substitution free,
// and aligns the equal-length inputs one-to-one under it.
func TestInferWithCosts_CustomCostModel(t *testing.T) {
	// Treat '0' and 'o' as interchangeable at zero cost; every other
	// substitution, insertion, or deletion costs 1.
	costFn := func(e align.Edit[rune, rune]) int {
		switch e.Kind {
		case align.EditReplacement:
			if e.Original == e.Modified || (e.Original == '0' && e.Modified == 'o') || (e.Original == 'o' && e.Modified == '0') {
				return 0
			}
			return 1
		default:
			return 1
		}
	}

	a := align.InferWithCosts([]rune("c0de"), []rune("code"), costFn)
	assert.Equal(t, []align.Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, a.Pairs())
}

// TestInfer_HirschbergSplitMatchesDirectProperties drives a sequence long
// enough (on both sides) to force Hirschberg's divide-and-conquer split,
// and checks the testable properties an inferred alignment must satisfy
// rather than a specific pair sequence, since more than one alignment can
// share the same minimal edit cost.
func TestInfer_HirschbergSplitMatchesDirectProperties(t *testing.T) {
	original := []rune("the quick brown fox")
	modified := []rune("the quick brown fox jumps")

	a := align.Infer(original, modified)
	require.Greater(t, a.Len(), 0)

	or, err := a.OriginalRange()
	require.NoError(t, err)
	mr, err := a.ModifiedRange()
	require.NoError(t, err)

	assert.Equal(t, 0, or.Start)
	assert.Equal(t, len(original), or.End)
	assert.Equal(t, 0, mr.Start)
	assert.Equal(t, len(modified), mr.End)

	pairs := a.Pairs()
	for i := 1; i < len(pairs); i++ {
		assert.GreaterOrEqualf(t, pairs[i].O, pairs[i-1].O, "original axis must be monotone at index %d", i)
		assert.GreaterOrEqualf(t, pairs[i].M, pairs[i-1].M, "modified axis must be monotone at index %d", i)
	}

	// The shared "the quick brown fox" prefix has zero edit cost, so it
	// must appear as an exact identity prefix of the inferred alignment.
	for i := 0; i <= len(original); i++ {
		assert.Containsf(t, pairs, align.Pair{O: i, M: i}, "expected identity pair (%d, %d) in prefix", i, i)
	}
}
