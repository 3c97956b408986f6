// Package scope implements the RangedScope: a partition of an input byte
// string into alternating in-scope and out-of-scope runs, narrowed
// successively by scopers (grammar, regex, literal) and finally walked by the
// action pipeline.
package scope

import "sort"

// Label marks a Run as selected (In) or not (Out) for action application.
type Label int

const (
	Out Label = iota
	In
)

// Run is a byte-offset span of the source carrying a Label. Runs are
// non-overlapping and cover [0, len(Src)) exactly once, in order.
type Run struct {
	Start, End int
	Label      Label
}

// Range is a candidate byte span proposed by a scoper, prior to being
// reconciled against the current scope.
type Range struct {
	Start, End int
}

// RangedScope is the alternating in/out-of-scope partition of a source
// string. Narrowing only ever shrinks the In set; Out regions are carried
// forward verbatim.
type RangedScope struct {
	src  []byte
	runs []Run
}

// FromWhole returns the scope with the entire input In — the default
// "nothing restricted yet" starting point.
func FromWhole(src []byte) *RangedScope {
	rs := &RangedScope{src: src}
	if len(src) > 0 {
		rs.runs = []Run{{Start: 0, End: len(src), Label: In}}
	}
	return rs
}

// FromEmpty returns the scope with the entire input Out.
func FromEmpty(src []byte) *RangedScope {
	rs := &RangedScope{src: src}
	if len(src) > 0 {
		rs.runs = []Run{{Start: 0, End: len(src), Label: Out}}
	}
	return rs
}

// Src returns the original source bytes this scope was built over.
func (rs *RangedScope) Src() []byte { return rs.src }

// Runs returns the current run partition, in order.
func (rs *RangedScope) Runs() []Run { return rs.runs }

// HasIn reports whether any run is currently In and non-empty — the pipeline's
// no-match check.
func (rs *RangedScope) HasIn() bool {
	for _, r := range rs.runs {
		if r.Label == In && r.End > r.Start {
			return true
		}
	}
	return false
}

// InRanges returns the maximal merged byte ranges currently labeled In.
func (rs *RangedScope) InRanges() []Range {
	var out []Range
	for _, r := range rs.runs {
		if r.Label != In {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End == r.Start {
			out[n-1].End = r.End
		} else {
			out = append(out, Range{r.Start, r.End})
		}
	}
	return out
}

// ContainedIn reports whether rg falls entirely within a single current In
// run. Used by scopers (regex, literal) that must discard proposals
// straddling an In/Out boundary rather than clip them.
func (rs *RangedScope) ContainedIn(rg Range) bool {
	if rg.Start == rg.End {
		for _, r := range rs.runs {
			if r.Label == In && rg.Start >= r.Start && rg.Start <= r.End {
				return true
			}
		}
		return false
	}
	for _, r := range rs.runs {
		if r.Label == In && rg.Start >= r.Start && rg.End <= r.End {
			return true
		}
	}
	return false
}

// Intersect narrows the scope: a byte position remains In only if it was
// previously In AND falls within one of the given ranges. Ranges outside any
// current In run are ignored; the portion of an In run not covered by any
// range becomes Out. Out runs are carried forward unchanged.
//
// This is the single narrowing primitive every scoper uses. Callers that must
// discard (not clip) partially-overlapping proposals — see the regex and
// literal scopers — filter with ContainedIn before calling Intersect, so that
// every surviving range is already a subset of some In run and clipping is a
// no-op.
func (rs *RangedScope) Intersect(ranges []Range) {
	ranges = normalizeRanges(ranges)

	var next []Run
	for _, run := range rs.runs {
		if run.Label == Out {
			next = appendRun(next, run.Start, run.End, Out)
			continue
		}
		pos := run.Start
		for _, rg := range ranges {
			s, e := rg.Start, rg.End
			if e <= run.Start || s >= run.End {
				continue
			}
			if s < run.Start {
				s = run.Start
			}
			if e > run.End {
				e = run.End
			}
			if s > pos {
				next = appendRun(next, pos, s, Out)
			}
			next = appendRun(next, s, e, In)
			if e > pos {
				pos = e
			}
		}
		if pos < run.End {
			next = appendRun(next, pos, run.End, Out)
		}
	}
	rs.runs = next
}

// Complement returns the byte ranges of [0, len(src)) NOT covered by ranges —
// used by the grammar scoper's invert flag to swap In/Out before narrowing.
func Complement(src []byte, ranges []Range) []Range {
	ranges = normalizeRanges(ranges)
	var out []Range
	pos := 0
	for _, rg := range ranges {
		if rg.Start > pos {
			out = append(out, Range{pos, rg.Start})
		}
		if rg.End > pos {
			pos = rg.End
		}
	}
	if pos < len(src) {
		out = append(out, Range{pos, len(src)})
	}
	return out
}

// Reassemble applies transform to each In run (in source order) and
// concatenates the result with the Out runs, which pass through verbatim.
func (rs *RangedScope) Reassemble(transform func(s string) string) string {
	var out []byte
	for _, r := range rs.runs {
		seg := rs.src[r.Start:r.End]
		if r.Label == In {
			out = append(out, transform(string(seg))...)
		} else {
			out = append(out, seg...)
		}
	}
	return string(out)
}

// normalizeRanges sorts ranges and merges overlaps/adjacency so Intersect's
// single sweep over each run is correct regardless of scoper output order.
func normalizeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return ranges
	}
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	// Only genuinely overlapping ranges are merged here (strict <), never
	// merely-touching ones: a proposal that abuts its neighbor (e.g. two
	// adjacent per-codepoint capture splits, or two adjacent single-character
	// matches) must survive as a distinct Run so Replace/Delete/etc. still
	// transform each originating match independently. Squeeze is the one
	// action that deliberately looks across adjacent In runs; see
	// internal/action.Squeeze.
	merged := sorted[:1]
	for _, rg := range sorted[1:] {
		last := &merged[len(merged)-1]
		if rg.Start < last.End {
			if rg.End > last.End {
				last.End = rg.End
			}
			continue
		}
		merged = append(merged, rg)
	}
	return merged
}

// appendRun appends a new run, coalescing only adjacent Out runs (pure
// housekeeping — Out runs carry no per-origin action semantics). Adjacent In
// runs are deliberately kept distinct; see normalizeRanges.
func appendRun(runs []Run, start, end int, label Label) []Run {
	if start >= end {
		return runs
	}
	if n := len(runs); n > 0 && label == Out && runs[n-1].Label == Out && runs[n-1].End == start {
		runs[n-1].End = end
		return runs
	}
	return append(runs, Run{Start: start, End: end, Label: label})
}
