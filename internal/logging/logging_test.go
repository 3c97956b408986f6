package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SuppressesBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{out: &buf, threshold: Warn}
	l.Info("should not appear", nil)
	assert.Empty(t, buf.String())
}

func TestLogger_EmitsAtOrAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{out: &buf, threshold: Info}
	l.Warn("disk nearly full", map[string]any{"path": "/tmp/x"})
	out := buf.String()
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, `msg="disk nearly full"`)
	assert.Contains(t, out, "path=/tmp/x")
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	assert.Equal(t, Info, ParseLevel("bogus"))
	assert.Equal(t, Debug, ParseLevel("debug"))
	assert.Equal(t, Error, ParseLevel("error"))
}
