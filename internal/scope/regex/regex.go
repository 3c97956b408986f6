// Package regex implements the fancy-regex scoper: a scope.Scoper backed by
// github.com/dlclark/regexp2, the backtracking engine that supports
// lookaround and backreferences the way the stdlib RE2-based regexp package
// cannot.
package regex

import (
	"fmt"
	"regexp"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/oxhq/srgn/internal/scope"
)

// Scoper narrows a RangedScope using a compiled fancy-regex pattern.
//
// regexp2 is a port of the .NET regex engine and reports match/capture
// offsets in UTF-16 code units, not bytes. Scoper converts those offsets to
// byte offsets once per Narrow call via a code-unit-to-byte table, then
// re-splits captures into individual code points on rune boundaries so every
// range it produces already lies on a UTF-8 boundary, satisfying the scope
// model's invariant for free.
type Scoper struct {
	re *regexp2.Regexp
}

// New compiles pattern as a fancy-regex. If literal is true, pattern is
// escaped with regexp.QuoteMeta first so every metacharacter matches itself.
func New(pattern string, literal bool) (*Scoper, error) {
	if literal {
		pattern = regexp.QuoteMeta(pattern)
	}
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return nil, fmt.Errorf("compile regex %q: %w", pattern, err)
	}
	return &Scoper{re: re}, nil
}

// Narrow finds all non-overlapping matches of the pattern within rs's
// current In runs and narrows the scope accordingly.
//
// A match whose overall span is not entirely contained within a single
// current In run is discarded wholesale (no clipping) per the "partial
// overlaps are discarded" rule. A match with one or more capturing groups
// contributes one In range per captured code point instead of the whole
// match span, enabling tr-style per-character replacement.
func (s *Scoper) Narrow(rs *scope.RangedScope) error {
	src := string(rs.Src())
	offsets := utf16ByteOffsets(src)

	var ranges []scope.Range

	m, err := s.re.FindStringMatch(src)
	if err != nil {
		return fmt.Errorf("match regex: %w", err)
	}
	for m != nil {
		matchStart := offsets[m.Index]
		matchEnd := offsets[m.Index+m.Length]
		whole := scope.Range{Start: matchStart, End: matchEnd}

		if rs.ContainedIn(whole) {
			if groupCount := m.GroupCount(); groupCount > 1 {
				ranges = append(ranges, capturedCodepointRanges(src, m, offsets)...)
			} else {
				ranges = append(ranges, whole)
			}
		}

		next, err := s.re.FindNextMatch(m)
		if err != nil {
			return fmt.Errorf("match regex: %w", err)
		}
		m = next
	}

	rs.Intersect(ranges)
	return nil
}

// capturedCodepointRanges splits every captured substring of m (skipping
// group 0, the whole match) into one byte range per code point.
func capturedCodepointRanges(src string, m *regexp2.Match, offsets []int) []scope.Range {
	var ranges []scope.Range
	groups := m.Groups()
	for _, g := range groups[1:] {
		for _, c := range g.Captures {
			start := offsets[c.Index]
			end := offsets[c.Index+c.Length]
			for i := start; i < end; {
				_, size := utf8.DecodeRuneInString(src[i:])
				ranges = append(ranges, scope.Range{Start: i, End: i + size})
				i += size
			}
		}
	}
	return ranges
}

// utf16ByteOffsets returns, for a string whose UTF-16 encoding has N code
// units, a slice of length N+1 where entry i is the byte offset of the rune
// that code-unit index i falls within (entry N is len(s)).
func utf16ByteOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	byteIdx := 0
	for _, r := range s {
		size := utf8.RuneLen(r)
		units := utf16.RuneLen(r)
		if units < 1 {
			units = 1
		}
		for u := 0; u < units; u++ {
			offsets = append(offsets, byteIdx)
		}
		byteIdx += size
	}
	offsets = append(offsets, len(s))
	return offsets
}
