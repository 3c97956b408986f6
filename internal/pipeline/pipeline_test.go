package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/srgn/internal/action"
	"github.com/oxhq/srgn/internal/german"
	"github.com/oxhq/srgn/internal/scope/regex"
)

func mustRegex(t *testing.T, pattern string) Scoper {
	t.Helper()
	s, err := regex.New(pattern, false)
	require.NoError(t, err)
	return s
}

func TestRun_Scenario1_SimpleReplace(t *testing.T) {
	cfg := Config{
		RegexScoper: mustRegex(t, "H"),
		Actions:     action.Config{ReplaceEnabled: true, Replacement: "J"},
	}
	res, err := Run(cfg, []byte("Hello, World!"))
	require.NoError(t, err)
	assert.Equal(t, "Jello, World!", res.Output)
	assert.True(t, res.Matched)
	assert.True(t, res.Changed)
}

func TestRun_Scenario2_CapturedCodepointReplace(t *testing.T) {
	cfg := Config{
		RegexScoper: mustRegex(t, "(ghp_[[:alnum:]]+)"),
		Actions:     action.Config{ReplaceEnabled: true, Replacement: "*"},
	}
	res, err := Run(cfg, []byte("Hide ghp_th15 and ghp_th4t"))
	require.NoError(t, err)
	assert.Equal(t, "Hide ******** and ********", res.Output)
}

func TestRun_Scenario3_SqueezeRepeats(t *testing.T) {
	cfg := Config{
		RegexScoper: mustRegex(t, "(o|!)"),
		Actions:     action.Config{SqueezeEnabled: true},
	}
	res, err := Run(cfg, []byte("Helloooo Woooorld!!!"))
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", res.Output)
}

func TestRun_Scenario4_German(t *testing.T) {
	cfg := Config{
		Actions: action.Config{German: true},
		Oracle:  german.New(),
	}
	res, err := Run(cfg, []byte("Gruess Gott, Neueroeffnungen, Poeten und Abenteuergruetze!"))
	require.NoError(t, err)
	assert.Equal(t, "Grüß Gott, Neueröffnungen, Poeten und Abenteuergrütze!", res.Output)
}

func TestRun_Scenario5_Normalize(t *testing.T) {
	cfg := Config{Actions: action.Config{Normalize: true}}
	res, err := Run(cfg, []byte("Naïve jalapeño ärgert mgła"))
	require.NoError(t, err)
	assert.Equal(t, "Naive jalapeno argert mgła", res.Output)
}

func TestRun_NoMatch_ReturnsInputUnchanged(t *testing.T) {
	cfg := Config{
		RegexScoper: mustRegex(t, "zzz"),
		Actions:     action.Config{ReplaceEnabled: true, Replacement: "x"},
	}
	res, err := Run(cfg, []byte("Hello, World!"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", res.Output)
	assert.False(t, res.Matched)
	assert.False(t, res.Changed)
}

func TestRun_NoActions_NoOp(t *testing.T) {
	res, err := Run(Config{}, []byte("Hello, World!"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", res.Output)
	assert.False(t, res.Changed)
}

func TestRun_InvalidConfig_ReturnsValidationError(t *testing.T) {
	cfg := Config{Actions: action.Config{Delete: true, ReplaceEnabled: true}}
	_, err := Run(cfg, []byte("x"))
	assert.Error(t, err)
}
