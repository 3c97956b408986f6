// Package german implements the umlaut-restoration oracle: given an ASCII
// approximation of a German word (oe/ae/ue/ss substituted for ö/ä/ü/ß), it
// decides which substitutions to reverse using a dictionary of known words.
package german

import (
	"bufio"
	_ "embed"
	"io"
	"sort"
	"strings"
	"sync"
)

//go:embed wordlist.txt
var embeddedWordlist string

// Policy selects how the oracle resolves ambiguity when more than one
// substitution of a word's umlaut sites would be legal (or when none are).
type Policy int

const (
	// PolicyDefault greedily applies the legal substitution that replaces
	// the most sites, breaking ties by the leftmost site combination.
	PolicyDefault Policy = iota
	// PolicyPreferOriginal keeps a known word as written. An unknown word
	// takes its single known candidate substitution if there is exactly one;
	// otherwise it goes through the compound-word fallback (restoreCompound).
	PolicyPreferOriginal
	// PolicyNaive applies every candidate substitution unconditionally,
	// ignoring the dictionary entirely.
	PolicyNaive
)

// Oracle decides umlaut restorations against a word list held in a trie.
// Construct once and share: Default returns the package's singleton built
// from the embedded seed list, following the same build-once,
// share-immutably discipline as a parse cache.
type Oracle struct {
	trie *trie
}

// New builds an Oracle from the embedded seed word list.
func New() *Oracle {
	o := &Oracle{trie: newTrie()}
	loadLines(o.trie, embeddedWordlist)
	return o
}

// NewFromReader builds an Oracle from a newline-delimited word list, one
// word per line, blank lines and "#"-prefixed comments ignored. This is the
// seam for swapping in a production-scale dictionary in place of the
// package's small embedded seed.
func NewFromReader(r io.Reader) (*Oracle, error) {
	o := &Oracle{trie: newTrie()}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		o.trie.insert(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

func loadLines(t *trie, data string) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.insert(line)
	}
}

var (
	defaultOnce   sync.Once
	defaultOracle *Oracle
)

// Default returns the package-level singleton Oracle, built from the
// embedded word list on first use.
func Default() *Oracle {
	defaultOnce.Do(func() { defaultOracle = New() })
	return defaultOracle
}

// site is a byte span within a word holding one of the four ASCII digraphs
// eligible for umlaut substitution.
type site struct {
	start int
	pair  string // lowercase "ae", "oe", "ue", or "ss"
}

var pairSubstitutions = map[string]string{
	"ae": "ä",
	"oe": "ö",
	"ue": "ü",
	"ss": "ß",
}

// findSites scans word left to right for non-overlapping occurrences of the
// four substitutable digraphs.
func findSites(word string) []site {
	lower := strings.ToLower(word)
	var sites []site
	for i := 0; i+1 < len(lower); {
		pair := lower[i : i+2]
		if _, ok := pairSubstitutions[pair]; ok {
			sites = append(sites, site{start: i, pair: pair})
			i += 2
			continue
		}
		i++
	}
	return sites
}

// applySites rewrites word, substituting only the sites whose index appears
// in chosen.
func applySites(word string, sites []site, chosen []int) string {
	chosenSet := make(map[int]bool, len(chosen))
	for _, c := range chosen {
		chosenSet[c] = true
	}

	var b strings.Builder
	pos := 0
	for idx, s := range sites {
		if !chosenSet[idx] {
			continue
		}
		b.WriteString(word[pos:s.start])
		b.WriteString(substituteCased(word[s.start : s.start+2]))
		pos = s.start + 2
	}
	b.WriteString(word[pos:])
	return b.String()
}

// substituteCased replaces a two-byte ASCII digraph with its umlaut,
// matching the casing of the pair's first letter: "UE"/"Ue" produce "Ü",
// "ue"/"uE" produce "ü" (likewise for ae and oe). Every casing of "ss"
// becomes "ß", since ß has no distinct uppercase in common use.
func substituteCased(pair string) string {
	lower := strings.ToLower(pair)
	if lower == "ss" {
		return "ß"
	}
	repl := pairSubstitutions[lower]
	if pair[0] >= 'A' && pair[0] <= 'Z' {
		return strings.ToUpper(repl)
	}
	return repl
}

// allSubsetsBySizeDesc returns every non-empty subset of {0, ..., n-1} as
// index slices, ordered by descending size and, within equal size,
// ascending lexicographic order (leftmost-first tie-break).
func allSubsetsBySizeDesc(n int) [][]int {
	var all [][]int
	for mask := 1; mask < (1 << n); mask++ {
		var subset []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, i)
			}
		}
		all = append(all, subset)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		for k := range all[i] {
			if all[i][k] != all[j][k] {
				return all[i][k] < all[j][k]
			}
		}
		return false
	})
	return all
}

// Restore decides which of word's candidate umlaut sites to substitute
// under policy, returning the resulting word. Words with no candidate sites
// are returned unchanged without consulting the dictionary.
func (o *Oracle) Restore(word string, policy Policy) string {
	if word == "" {
		return word
	}
	sites := findSites(word)
	if len(sites) == 0 {
		return word
	}

	if policy == PolicyNaive {
		all := make([]int, len(sites))
		for i := range sites {
			all[i] = i
		}
		return applySites(word, sites, all)
	}

	subsets := allSubsetsBySizeDesc(len(sites))

	if policy == PolicyPreferOriginal {
		if o.trie.has(word) {
			return word
		}
		var matches [][]int
		for _, subset := range subsets {
			if o.trie.has(applySites(word, sites, subset)) {
				matches = append(matches, subset)
			}
		}
		if len(matches) == 1 {
			return applySites(word, sites, matches[0])
		}
		return o.restoreCompound(word, policy)
	}

	// PolicyDefault: greedy, most sites substituted wins.
	for _, subset := range subsets {
		candidate := applySites(word, sites, subset)
		if o.trie.has(candidate) {
			return candidate
		}
	}
	return o.restoreCompound(word, policy)
}

// restoreCompound handles compound words the dictionary has no whole-word
// entry for: it splits off the longest dictionary-known prefix and recurses
// on each half independently. If no such prefix exists, the word is
// returned unchanged — an unresolvable segment is left as written rather
// than guessed at.
func (o *Oracle) restoreCompound(word string, policy Policy) string {
	prefixLen := o.trie.longestPrefixLen(word)
	if prefixLen == 0 || prefixLen >= len(word) {
		return word
	}
	head, tail := word[:prefixLen], word[prefixLen:]
	return o.Restore(head, policy) + o.Restore(tail, policy)
}
