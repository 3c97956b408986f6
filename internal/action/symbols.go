package action

import "strings"

// symbolPairs is the fixed bijective ASCII -> Unicode table, ordered longest
// ASCII key first so overlapping prefixes ("---" vs "--") resolve correctly
// regardless of replacer implementation details.
var symbolPairs = []string{
	"---", "—",
	"--", "–",
	"->", "→",
	"=>", "⇒",
	"<=", "≤",
	">=", "≥",
	"!=", "≠",
}

// symbolsTransform returns the forward (ASCII->Unicode) mapping, or its
// exact inverse when invert is set. Symbols is the only action the spec
// documents as reversible.
func symbolsTransform(invert bool) func(string) string {
	pairs := symbolPairs
	if invert {
		inverted := make([]string, len(symbolPairs))
		for i := 0; i < len(symbolPairs); i += 2 {
			inverted[i] = symbolPairs[i+1]
			inverted[i+1] = symbolPairs[i]
		}
		pairs = inverted
	}
	r := strings.NewReplacer(pairs...)
	return r.Replace
}
