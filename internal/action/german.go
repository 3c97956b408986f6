package action

import (
	"strings"
	"unicode"

	"github.com/oxhq/srgn/internal/german"
)

// germanTransform walks each maximal alphabetic run (a candidate word) and
// asks the oracle to restore umlauts, leaving separators (spaces,
// punctuation, digits) untouched.
func germanTransform(oracle *german.Oracle, policy german.Policy) func(string) string {
	return func(s string) string {
		if oracle == nil {
			return s
		}
		runes := []rune(s)
		var b strings.Builder
		i := 0
		for i < len(runes) {
			if !unicode.IsLetter(runes[i]) {
				b.WriteRune(runes[i])
				i++
				continue
			}
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			b.WriteString(oracle.Restore(string(runes[i:j]), policy))
			i = j
		}
		return b.String()
	}
}
