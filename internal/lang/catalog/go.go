package catalog

import (
	"github.com/smacker/go-tree-sitter/golang"
)

func goLanguage() Language {
	return Language{
		ID:         "go",
		Extensions: []string{".go"},
		Sitter:     golang.GetLanguage(),
		Queries: map[string]string{
			"comments": `(comment) @target`,
			// Go has no dedicated doc-comment node; a doc comment is just a
			// comment node immediately preceding a declaration, so the
			// premade query reuses the same capture as "comments".
			"doc-strings":    `(comment) @target`,
			"imports":        `(import_spec path: (interpreted_string_literal) @target)`,
			"function-calls": `(call_expression function: (_) @target)`,
			"class":          `(type_spec name: (type_identifier) @target type: (struct_type))`,
		},
	}
}
