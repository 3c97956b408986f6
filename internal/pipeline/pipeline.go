// Package pipeline orchestrates the single-file scope-narrow-then-act
// contract spec.md §4.5 describes: parse/validate, narrow scope with every
// grammar scoper then the regex scoper, run the fixed action chain, and
// reassemble.
//
// Grounded on the teacher's internal/core/pipeline.go (parse, resolve,
// select-anchors, plan-edits, apply-edits staged orchestration) and
// core/fileprocessor.go's embedded single-file code path — srgn's pipeline
// is the single-file specialization of that same shape, restated over
// RangedScope narrowing instead of tree-sitter edit planning.
package pipeline

import (
	"github.com/oxhq/srgn/internal/action"
	"github.com/oxhq/srgn/internal/german"
	"github.com/oxhq/srgn/internal/scope"
)

// Scoper is the common interface every scope-narrowing stage implements:
// grammar, regex, and literal scopers all narrow a RangedScope in place.
type Scoper interface {
	Narrow(rs *scope.RangedScope) error
}

// Config is one pipeline invocation: the ordered scope-narrowing stages
// (grammar scopers first, then the regex/literal scope, matching spec.md
// §4.3's grammar-then-regex ordering) plus the action chain to apply to
// whatever survives narrowing.
type Config struct {
	GrammarScopers []Scoper
	RegexScoper    Scoper // nil if no regex/literal scope was given (whole input stays in scope)

	Actions action.Config
	Oracle  *german.Oracle // required only when Actions.German is set
}

// Result is the outcome of running a Config over one input.
type Result struct {
	Output  string
	Matched bool // true if any In run had non-zero length after narrowing
	Changed bool // true if Output != the original input
}

// Run executes the pipeline contract: narrow, check the no-match policy,
// apply actions, reassemble.
func Run(cfg Config, input []byte) (Result, error) {
	// A caller may set Actions.HasScope itself (cmd/srgn does, to abort
	// before reading stdin); derive it here too so any direct pipeline.Run
	// caller gets the same "delete/squeeze requires explicit scope"
	// enforcement for free.
	cfg.Actions.HasScope = cfg.Actions.HasScope || cfg.RegexScoper != nil || len(cfg.GrammarScopers) > 0

	if err := cfg.Actions.Validate(); err != nil {
		return Result{}, err
	}

	rs := scope.FromWhole(input)

	for _, g := range cfg.GrammarScopers {
		if err := g.Narrow(rs); err != nil {
			return Result{}, err
		}
	}
	if cfg.RegexScoper != nil {
		if err := cfg.RegexScoper.Narrow(rs); err != nil {
			return Result{}, err
		}
	}

	original := string(input)

	// No-match policy: if nothing survived narrowing, return the input
	// unchanged without running any action work.
	if !rs.HasIn() {
		return Result{Output: original, Matched: false, Changed: false}, nil
	}

	segs := action.SegmentsFromScope(rs)
	segs, err := action.Apply(cfg.Actions, cfg.Oracle, segs)
	if err != nil {
		return Result{}, err
	}
	out := action.Render(segs)

	return Result{Output: out, Matched: true, Changed: out != original}, nil
}
