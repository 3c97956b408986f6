package catalog

import (
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

func typescriptLanguage() Language {
	return Language{
		ID:         "typescript",
		Extensions: []string{".ts", ".tsx"},
		Sitter:     typescript.GetLanguage(),
		Queries: map[string]string{
			"comments": `(comment) @target`,
			// TypeScript/JSDoc doc comments are plain comment nodes too;
			// callers distinguish them by leading "/**" at the text level,
			// outside the grammar scoper's concern.
			"doc-strings":    `(comment) @target`,
			"imports":        `(import_statement) @target`,
			"function-calls": `(call_expression function: (_) @target)`,
			"class":          `(class_declaration name: (type_identifier) @target)`,
		},
	}
}
