package action

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// newMarkStripper builds a transformer that drops every code point in the
// Unicode General Category Mark (M*, i.e. Mn+Mc+Me) — the combining accents
// NFD decomposition exposes. Built fresh per call: transform.Transformer
// carries mutable internal state and is not safe to share across the
// goroutines batch.Run fans a pipeline.Run out across.
func newMarkStripper() transform.Transformer {
	return runes.Remove(runes.In(unicode.Categories["M"]))
}

// normalizeTransform applies NFD then strips Mark-category code points.
// Code points with no decomposition (e.g. 'ł') pass through unchanged.
func normalizeTransform(s string) string {
	decomposed := norm.NFD.String(s)
	out, _, err := transform.String(newMarkStripper(), decomposed)
	if err != nil {
		return decomposed
	}
	return out
}
