package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownLanguage(t *testing.T) {
	l, ok := Lookup("go")
	require.True(t, ok)
	assert.Equal(t, "go", l.ID)
	assert.NotNil(t, l.Sitter)
}

func TestLookup_UnknownLanguage(t *testing.T) {
	_, ok := Lookup("cobol")
	assert.False(t, ok)
}

func TestLookupByExtension(t *testing.T) {
	l, ok := LookupByExtension("py")
	require.True(t, ok)
	assert.Equal(t, "python", l.ID)

	l, ok = LookupByExtension(".tsx")
	require.True(t, ok)
	assert.Equal(t, "typescript", l.ID)
}

func TestLanguages_SortedByID(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 5)
	for i := 1; i < len(langs); i++ {
		assert.Less(t, langs[i-1].ID, langs[i].ID)
	}
}

func TestQuery_PremadeSetCoversEveryLanguage(t *testing.T) {
	required := []string{"comments", "doc-strings", "imports", "function-calls", "class"}
	for _, l := range Languages() {
		for _, name := range required {
			_, err := Query(l.ID, name)
			assert.NoError(t, err, "language %q missing premade query %q", l.ID, name)
		}
	}
}

func TestQuery_UnknownNameErrors(t *testing.T) {
	_, err := Query("go", "nonexistent")
	assert.Error(t, err)
}

func TestQuery_UnknownLanguageErrors(t *testing.T) {
	_, err := Query("cobol", "comments")
	assert.Error(t, err)
}
