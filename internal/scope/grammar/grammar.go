// Package grammar implements the tree-sitter grammar scoper: parse the input
// with a language grammar, run a compiled query, and narrow scope to the
// union of every capture's byte range.
package grammar

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/srgn/internal/scope"
)

// Scoper narrows a RangedScope to the nodes captured by a compiled
// tree-sitter query, optionally inverted.
//
// Grounded on internal/matcher/tree.go's ASTMatcher (same NewQuery /
// NewQueryCursor / NextMatch / FilterPredicates compiled-query path), but
// generalized to collect every named capture rather than only "@target":
// the grammar scoper's contract is "if multiple captures are present, all
// captures contribute ranges."
type Scoper struct {
	lang   *sitter.Language
	query  *sitter.Query
	invert bool
}

// New compiles query against lang. query is either a premade query string
// from the language catalog or a raw user-supplied S-expression — both are
// compiled identically, since the raw-query escape hatch requires genuine
// query compilation rather than alias lookup.
func New(lang *sitter.Language, query string, invert bool) (*Scoper, error) {
	q, err := sitter.NewQuery([]byte(query), lang)
	if err != nil {
		return nil, fmt.Errorf("compile tree-sitter query: %w", err)
	}
	return &Scoper{lang: lang, query: q, invert: invert}, nil
}

// Narrow parses rs.Src(), runs the query, and intersects the scope with the
// union of captured ranges (or its complement, if inverted).
func (s *Scoper) Narrow(rs *scope.RangedScope) error {
	src := rs.Src()

	parser := sitter.NewParser()
	parser.SetLanguage(s.lang)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return fmt.Errorf("parse source: %w", err)
	}

	cursor := sitter.NewQueryCursor()
	cursor.Exec(s.query, tree.RootNode())

	var ranges []scope.Range
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match = cursor.FilterPredicates(match, src)
		for _, cap := range match.Captures {
			node := cap.Node
			ranges = append(ranges, scope.Range{
				Start: int(node.StartByte()),
				End:   int(node.EndByte()),
			})
		}
	}

	if s.invert {
		ranges = scope.Complement(src, ranges)
	}

	rs.Intersect(ranges)
	return nil
}
