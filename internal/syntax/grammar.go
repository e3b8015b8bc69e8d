package syntax

import (
	phpforest "github.com/alexaandru/go-sitter-forest/php"
	twigforest "github.com/alexaandru/go-sitter-forest/twig"
	xmlforest "github.com/alexaandru/go-sitter-forest/xml"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// grammars maps a mode's language name to its tree-sitter grammar.
// Looked up once per SyntaxTree construction; the language handle
// itself is safe to share across parsers.
var grammars = map[string]func() *sitter.Language{
	"php":  func() *sitter.Language { return sitter.NewLanguage(phpforest.GetLanguage()) },
	"twig": func() *sitter.Language { return sitter.NewLanguage(twigforest.GetLanguage()) },
	"xml":  func() *sitter.Language { return sitter.NewLanguage(xmlforest.GetLanguage()) },
}

// Language looks up a registered grammar by name. ok is false for the
// empty string or any name without a registered grammar, in which case
// the buffer stays un-highlighted (spec.md §7's grammar-incompatibility
// downgrade).
func Language(name string) (*sitter.Language, bool) {
	if name == "" {
		return nil, false
	}
	ctor, ok := grammars[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// RegisterLanguage adds or replaces a grammar under name, for embedders
// that ship additional go-sitter-forest grammars.
func RegisterLanguage(name string, ctor func() *sitter.Language) {
	grammars[name] = ctor
}
