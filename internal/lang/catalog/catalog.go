// Package catalog is the static registry of supported languages: their
// tree-sitter grammars, file extensions, and premade scope queries keyed by
// (language, name).
//
// Modeled on providers/catalog/catalog.go's sync.RWMutex-guarded
// extension→metadata map, extended with a query table. Unlike the teacher's
// plugin-style provider registry (internal/registry's AutoRegister), this
// catalog is a fixed, compile-time-populated set: srgn supports a finite,
// enumerated list of languages (go, python, typescript, rust, csharp), so
// there is no runtime-loaded-plugin requirement to serve.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
)

// Language describes one supported grammar: its tree-sitter Language handle,
// recognized file extensions, and its premade (name -> query text) table.
type Language struct {
	ID         string
	Extensions []string
	Sitter     *sitter.Language
	Queries    map[string]string
}

var (
	mu    sync.RWMutex
	byID  = make(map[string]Language)
	byExt = make(map[string]Language)
)

func register(l Language) {
	l.ID = strings.ToLower(l.ID)
	mu.Lock()
	defer mu.Unlock()
	byID[l.ID] = l
	for _, ext := range l.Extensions {
		byExt[normalizeExt(ext)] = l
	}
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Lookup returns the Language registered under id ("go", "python", ...).
func Lookup(id string) (Language, bool) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := byID[strings.ToLower(id)]
	return l, ok
}

// LookupByExtension returns the Language whose Extensions include ext.
func LookupByExtension(ext string) (Language, bool) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := byExt[normalizeExt(ext)]
	return l, ok
}

// Languages returns every registered Language, sorted by ID.
func Languages() []Language {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Language, 0, len(byID))
	for _, l := range byID {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Query resolves a premade (language, name) pair to its query text.
func Query(langID, name string) (string, error) {
	l, ok := Lookup(langID)
	if !ok {
		return "", fmt.Errorf("unknown language %q", langID)
	}
	q, ok := l.Queries[name]
	if !ok {
		return "", fmt.Errorf("unknown query %q for language %q", name, langID)
	}
	return q, nil
}

func init() {
	register(goLanguage())
	register(pythonLanguage())
	register(typescriptLanguage())
	register(rustLanguage())
	register(csharpLanguage())
}
