// Package literal implements an exact-substring scoper: non-overlapping,
// left-to-right matches of a fixed needle, with no capture-group expansion
// semantics. The CLI's --literal-string flag does not use this package; it
// passes literal=true to regex.New, which escapes the pattern instead.
package literal

import (
	"bytes"

	"github.com/oxhq/srgn/internal/scope"
)

// Scoper narrows a RangedScope to every non-overlapping occurrence of a
// fixed byte string.
type Scoper struct {
	needle []byte
}

// New returns a literal Scoper matching exact occurrences of needle.
func New(needle string) *Scoper {
	return &Scoper{needle: []byte(needle)}
}

// Narrow finds every non-overlapping occurrence of the needle contained
// entirely within a current In run and narrows the scope onto them.
func (s *Scoper) Narrow(rs *scope.RangedScope) error {
	if len(s.needle) == 0 {
		rs.Intersect(nil)
		return nil
	}

	src := rs.Src()
	var ranges []scope.Range
	pos := 0
	for {
		idx := bytes.Index(src[pos:], s.needle)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(s.needle)

		rg := scope.Range{Start: start, End: end}
		if rs.ContainedIn(rg) {
			ranges = append(ranges, rg)
		}
		pos = end
	}

	rs.Intersect(ranges)
	return nil
}
