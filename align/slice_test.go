package align_test

import (
	"testing"

	"github.com/katalvlaran/bistring/align"
	"github.com/katalvlaran/bistring/bounds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlice_LenAndPairs checks that a plain positional slice carries its
// pairs through unchanged when no clamp or shift bounds apply.
func TestSlice_LenAndPairs(t *testing.T) {
	a := align.New()
	require.NoError(t, a.Extend([]align.Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}}))

	s := a.Slice(1, 3)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []align.Pair{{1, 1}, {2, 2}}, s.Pairs())
}

// TestSlice_ShiftedComposesAdditively checks that Shifted stacks rather
// than replaces any shift already applied.
func TestSlice_ShiftedComposesAdditively(t *testing.T) {
	a := align.New()
	require.NoError(t, a.Extend([]align.Pair{{0, 0}, {2, 2}}))

	s := a.Slice(0, 2).Shifted(1, 1).Shifted(10, 100)
	assert.Equal(t, []align.Pair{{11, 101}, {13, 103}}, s.Pairs())
}

// TestSlice_ToAlignmentRoundTrips checks that materializing a slice back
// into an Alignment preserves its emitted pairs and ranges.
func TestSlice_ToAlignmentRoundTrips(t *testing.T) {
	a := align.New()
	require.NoError(t, a.Extend([]align.Pair{{0, 1}, {2, 3}, {4, 5}}))

	s := a.ShiftedToOrigin()
	materialized := s.ToAlignment()

	assert.Equal(t, s.Pairs(), materialized.Pairs())

	r, err := materialized.OriginalRange()
	require.NoError(t, err)
	assert.Equal(t, align.Range{Start: 0, End: 4}, r)
}

// TestSlice_Equal checks that two independently-produced slices over the
// same logical subrange compare equal regardless of how they got there.
func TestSlice_Equal(t *testing.T) {
	a := align.New()
	require.NoError(t, a.Extend([]align.Pair{{0, 0}, {1, 2}, {2, 4}, {3, 6}}))

	byPosition := a.Slice(1, 3)
	byRange, err := a.SliceByOriginal(bounds.Open(1, 2))
	require.NoError(t, err)

	assert.True(t, byPosition.Equal(byRange))

	other := a.Slice(0, 2)
	assert.False(t, byPosition.Equal(other))
}

// TestSlice_EmptyRangeErrors checks that range observation on an empty
// slice reports ErrEmptyAlignment.
func TestSlice_EmptyRangeErrors(t *testing.T) {
	a := align.New()
	require.NoError(t, a.Extend([]align.Pair{{0, 0}, {1, 1}}))

	s := a.Slice(0, 0)
	assert.Equal(t, 0, s.Len())

	_, err := s.OriginalRange()
	assert.ErrorIs(t, err, align.ErrEmptyAlignment)

	_, err = s.ModifiedRange()
	assert.ErrorIs(t, err, align.ErrEmptyAlignment)
}
