package german

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOracle_Restore_NoCandidateSites_ReturnsUnchanged(t *testing.T) {
	o := New()
	assert.Equal(t, "Gott", o.Restore("Gott", PolicyDefault))
}

func TestOracle_Restore_Default_GruessToGrussUmlaut(t *testing.T) {
	o := New()
	assert.Equal(t, "Grüß", o.Restore("Gruess", PolicyDefault))
}

func TestOracle_Restore_Default_CompoundWordSplitsOnKnownPrefix(t *testing.T) {
	o := New()
	assert.Equal(t, "Abenteuergrütze", o.Restore("Abenteuergruetze", PolicyDefault))
}

func TestOracle_Restore_Default_SingleSiteAmbiguity(t *testing.T) {
	o := New()
	assert.Equal(t, "Neueröffnungen", o.Restore("Neueroeffnungen", PolicyDefault))
}

func TestOracle_Restore_Default_UnknownWordFallsBackToOriginal(t *testing.T) {
	o := New()
	// "Poeten" (poets) is a real word that merely contains the literal
	// digraph "oe" without it being an umlaut substitution; since neither
	// "Poeten" nor "Pöten" is in the seed dictionary and no dictionary
	// prefix matches, the word passes through unchanged.
	assert.Equal(t, "Poeten", o.Restore("Poeten", PolicyDefault))
}

func TestOracle_Restore_FullSentenceScenario(t *testing.T) {
	o := New()
	words := []string{"Gruess", "Gott,", "Neueroeffnungen,", "Poeten", "und", "Abenteuergruetze!"}
	want := []string{"Grüß", "Gott,", "Neueröffnungen,", "Poeten", "und", "Abenteuergrütze!"}
	for i, w := range words {
		trimmed := strings.TrimRight(w, ",!")
		suffix := w[len(trimmed):]
		assert.Equal(t, want[i], o.Restore(trimmed, PolicyDefault)+suffix)
	}
}

func TestOracle_Restore_Naive_IgnoresDictionary(t *testing.T) {
	o := New()
	assert.Equal(t, "Pöten", o.Restore("Poeten", PolicyNaive))
}

func TestOracle_Restore_PreferOriginal_KeepsKnownOriginal(t *testing.T) {
	// "für" contains no ASCII digraph site, so it always short-circuits;
	// use a word whose ASCII form is itself dictionary-known instead.
	oracle, err := NewFromReader(strings.NewReader("strasse\nstraße\n"))
	require.NoError(t, err)
	assert.Equal(t, "strasse", oracle.Restore("strasse", PolicyPreferOriginal))
}

func TestOracle_Restore_PreferOriginal_SingleUnambiguousSubstitution(t *testing.T) {
	o := New()
	assert.Equal(t, "Grüß", o.Restore("Gruess", PolicyPreferOriginal))
}

func TestOracle_Restore_EmptyWord(t *testing.T) {
	o := New()
	assert.Equal(t, "", o.Restore("", PolicyDefault))
}

func TestNewFromReader_IgnoresBlankLinesAndComments(t *testing.T) {
	o, err := NewFromReader(strings.NewReader("# comment\n\nmaße\n"))
	require.NoError(t, err)
	assert.True(t, o.trie.has("MASSE") == false)
	assert.True(t, o.trie.has("maße"))
}

func TestDefault_ReturnsSameSingletonInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestTrie_LongestPrefixLen(t *testing.T) {
	tr := newTrie()
	tr.insert("abenteuer")
	assert.Equal(t, len("abenteuer"), tr.longestPrefixLen("abenteuergrütze"))
	assert.Equal(t, 0, tr.longestPrefixLen("unknown"))
}
