package catalog

import (
	"github.com/smacker/go-tree-sitter/csharp"
)

func csharpLanguage() Language {
	return Language{
		ID:         "csharp",
		Extensions: []string{".cs"},
		Sitter:     csharp.GetLanguage(),
		Queries: map[string]string{
			"comments":       `(comment) @target`,
			"doc-strings":    `((comment) @target (#match? @target "^///"))`,
			"imports":        `(using_directive) @target`,
			"function-calls": `(invocation_expression function: (_) @target)`,
			"class":          `(class_declaration name: (identifier) @target)`,
		},
	}
}
