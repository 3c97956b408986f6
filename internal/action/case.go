package action

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode selects the (mutually exclusive) casing action.
type CaseMode int

const (
	CaseNone CaseMode = iota
	CaseUpper
	CaseLower
	CaseTitle
)

// upperTransform, lowerTransform, titleTransform use golang.org/x/text/cases
// for locale-aware casing instead of the ASCII-only strings.ToUpper/ToLower
// habits common in quick CLI tools. Each call builds its own cases.Caser:
// a Caser wraps a transform.Transformer, which carries mutable internal
// state and is not safe to share across the goroutines batch.Run fans a
// pipeline.Run out across.
func upperTransform(s string) string { return cases.Upper(language.Und).String(s) }
func lowerTransform(s string) string { return cases.Lower(language.Und).String(s) }

// titleTransform lowercases the run first, then applies title casing: x/text's
// default Title caser only adjusts the first letter of each word and leaves
// the remainder of the word untouched, but the spec wants "uppercase first
// letter, lowercase rest".
func titleTransform(s string) string {
	return cases.Title(language.Und).String(cases.Lower(language.Und).String(s))
}
