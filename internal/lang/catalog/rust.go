package catalog

import (
	"github.com/smacker/go-tree-sitter/rust"
)

func rustLanguage() Language {
	return Language{
		ID:         "rust",
		Extensions: []string{".rs"},
		Sitter:     rust.GetLanguage(),
		Queries: map[string]string{
			"comments": `
				(line_comment) @target
				(block_comment) @target
			`,
			"doc-strings": `
				((line_comment) @target (#match? @target "^///"))
				((line_comment) @target (#match? @target "^//!"))
			`,
			"imports":        `(use_declaration) @target`,
			"function-calls": `(call_expression function: (_) @target)`,
			// Rust has no "class"; the nearest equivalent srgn exposes under
			// the same catalog key is a struct definition.
			"class": `(struct_item name: (type_identifier) @target)`,
		},
	}
}
