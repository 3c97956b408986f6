package catalog

import (
	"github.com/smacker/go-tree-sitter/python"
)

func pythonLanguage() Language {
	return Language{
		ID:         "python",
		Extensions: []string{".py", ".pyw", ".pyi"},
		Sitter:     python.GetLanguage(),
		Queries: map[string]string{
			"comments": `(comment) @target`,
			"doc-strings": `
				(module . (expression_statement (string) @target))
				(function_definition body: (block . (expression_statement (string) @target)))
				(class_definition body: (block . (expression_statement (string) @target)))
			`,
			"imports": `
				(import_statement) @target
				(import_from_statement) @target
			`,
			"function-calls": `(call function: (_) @target)`,
			"class":          `(class_definition name: (identifier) @target)`,
		},
	}
}
