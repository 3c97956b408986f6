// Package logging provides srgn's leveled stderr logger. Following the
// teacher's own mcp/logging.go (level enum gated by a configured
// threshold), this is hand-rolled rather than built on a third-party
// logging library: the teacher's own go.mod reaches for none for this
// concern (no zap/logrus import anywhere in the pack), so neither does
// srgn.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Level is a log severity, ordered low to high.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel maps a case-insensitive level name (as read from
// SRGN_LOG_LEVEL) to a Level, defaulting to Info on anything
// unrecognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Logger writes structured key=value lines to an output stream — stderr by
// default, never stdout, since stdout is reserved for transformed text
// (spec.md §6).
type Logger struct {
	out       io.Writer
	threshold Level
}

// New returns a Logger writing to stderr at the given threshold.
func New(threshold Level) *Logger {
	return &Logger{out: os.Stderr, threshold: threshold}
}

func (l *Logger) log(level Level, msg string, fields map[string]any) {
	if l == nil || level < l.threshold {
		return
	}
	line := fmt.Sprintf("time=%s level=%s msg=%q", time.Now().Format(time.RFC3339), level, msg)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line += fmt.Sprintf(" %s=%v", k, fields[k])
	}
	fmt.Fprintln(l.out, line)
}

func (l *Logger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *Logger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *Logger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *Logger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }
