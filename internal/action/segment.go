// Package action implements the fixed-order action pipeline: Replace,
// Delete, Squeeze, Symbols, German, Titlecase/Upper/Lower, Normalize. Every
// action maps in-scope text to in-scope text; out-of-scope text always
// passes through unchanged.
package action

import (
	"strings"

	"github.com/oxhq/srgn/internal/scope"
)

// Segment is one run of the scope, materialized to its source text. Unlike
// scope.Run, adjacent Segments are never silently coalesced — Replace and
// Delete must transform each originating match independently (so a pattern
// matching three adjacent characters still produces three independent
// substitutions, preserving capture-group-driven repetition), while Squeeze
// explicitly needs the opposite: a view across adjacent In segments. Both
// are representable over the same []Segment value; see Squeeze.
type Segment struct {
	In   bool
	Text string
}

// SegmentsFromScope materializes rs's current runs into a Segment slice.
func SegmentsFromScope(rs *scope.RangedScope) []Segment {
	runs := rs.Runs()
	segs := make([]Segment, len(runs))
	src := rs.Src()
	for i, r := range runs {
		segs[i] = Segment{In: r.Label == scope.In, Text: string(src[r.Start:r.End])}
	}
	return segs
}

// Render concatenates every segment's text back into the final string.
func Render(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// MapIn applies f to the text of every In segment, leaving Out segments and
// segment boundaries untouched. This is the shape every action except
// Squeeze uses.
func MapIn(segs []Segment, f func(string) string) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		if s.In {
			out[i] = Segment{In: true, Text: f(s.Text)}
		} else {
			out[i] = s
		}
	}
	return out
}
