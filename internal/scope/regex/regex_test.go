package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/srgn/internal/scope"
)

func TestScoper_NoGroups_WholeMatchIsIn(t *testing.T) {
	s, err := New("H", false)
	require.NoError(t, err)

	rs := scope.FromWhole([]byte("Hello, World!"))
	require.NoError(t, s.Narrow(rs))

	assert.Equal(t, []scope.Range{{0, 1}}, rs.InRanges())
}

func TestScoper_WithGroups_SplitsIntoCodepoints(t *testing.T) {
	s, err := New(`(ghp_[[:alnum:]]+)`, false)
	require.NoError(t, err)

	src := []byte("Hide ghp_th15 and ghp_th4t")
	rs := scope.FromWhole(src)
	require.NoError(t, s.Narrow(rs))

	out := rs.Reassemble(func(in string) string { return "*" })
	assert.Equal(t, "Hide ******** and ********", out)
}

func TestScoper_Literal_EscapesMetacharacters(t *testing.T) {
	s, err := New("a.b", true)
	require.NoError(t, err)

	rs := scope.FromWhole([]byte("a.b axb"))
	require.NoError(t, s.Narrow(rs))

	assert.Equal(t, []scope.Range{{0, 3}}, rs.InRanges())
}

func TestScoper_DiscardsMatchStraddlingPriorOut(t *testing.T) {
	s, err := New("bc", false)
	require.NoError(t, err)

	rs := scope.FromWhole([]byte("abcd"))
	rs.Intersect([]scope.Range{{0, 2}}) // only "ab" is In

	require.NoError(t, s.Narrow(rs))
	assert.Empty(t, rs.InRanges(), "match spans the In/Out boundary and must be discarded")
}

func TestScoper_ZeroWidthMatch_Terminates(t *testing.T) {
	s, err := New(`(?=o)`, false)
	require.NoError(t, err)

	rs := scope.FromWhole([]byte("foo"))
	// A zero-length match has nothing to narrow onto; the call must simply
	// terminate (rather than loop forever re-matching the same position)
	// and leave scope empty.
	require.NoError(t, s.Narrow(rs))
	assert.Empty(t, rs.InRanges())
}
