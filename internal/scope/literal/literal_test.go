package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/srgn/internal/scope"
)

func TestScoper_NonOverlappingOccurrences(t *testing.T) {
	s := New("ab")
	rs := scope.FromWhole([]byte("ababab"))
	require.NoError(t, s.Narrow(rs))

	// The three occurrences abut each other, so the merged InRanges() view
	// reports one contiguous range; Runs() exposes each match as its own
	// distinct In run, which is what Replace/Delete act on independently.
	assert.Equal(t, []scope.Range{{0, 6}}, rs.InRanges())
	require.Len(t, rs.Runs(), 3)
	for i, want := range []scope.Run{
		{Start: 0, End: 2, Label: scope.In},
		{Start: 2, End: 4, Label: scope.In},
		{Start: 4, End: 6, Label: scope.In},
	} {
		assert.Equal(t, want, rs.Runs()[i])
	}
}

func TestScoper_DiscardsStraddlingPriorOut(t *testing.T) {
	s := New("bc")
	rs := scope.FromWhole([]byte("abcd"))
	rs.Intersect([]scope.Range{{0, 2}})

	require.NoError(t, s.Narrow(rs))
	assert.Empty(t, rs.InRanges())
}

func TestScoper_EmptyNeedle_NoMatches(t *testing.T) {
	s := New("")
	rs := scope.FromWhole([]byte("abc"))
	require.NoError(t, s.Narrow(rs))
	assert.Empty(t, rs.InRanges())
}
