// Package mode resolves a file path to editing behavior: its syntax
// grammar, auto-indent rule, and whitespace policy.
package mode

import (
	"path/filepath"
	"strings"
	"sync"
)

// AutoIndentFunc decides the indentation a newline inserted after
// prevLine should carry, from the text of prevLine alone.
type AutoIndentFunc func(prevLine string) string

// Mode describes how the editor treats a file of a particular kind.
type Mode struct {
	Name string

	// Language is the tree-sitter grammar name registered for this mode
	// in the syntax package's grammar registry, or "" for plain text.
	Language string

	TabWidth     int
	UseTabs      bool
	AutoIndent   AutoIndentFunc
	filenames    []string
	suffixes     []string
}

// defaultIndent copies the leading whitespace of prevLine.
func defaultIndent(prevLine string) string {
	i := 0
	for i < len(prevLine) && (prevLine[i] == ' ' || prevLine[i] == '\t') {
		i++
	}
	return prevLine[:i]
}

var (
	plain = Mode{Name: "plaintext", TabWidth: 8, UseTabs: true, AutoIndent: defaultIndent}

	registryOnce sync.Once
	registry     []Mode
)

// builtins constructs the lazily-initialized default mode table. Exact
// filenames are matched before suffixes; among suffixes, the longest
// match wins (".test.php" beats ".php").
func builtins() []Mode {
	return []Mode{
		{
			Name:       "php",
			Language:   "php",
			TabWidth:   4,
			UseTabs:    false,
			AutoIndent: defaultIndent,
			suffixes:   []string{".php", ".phtml", ".php5"},
		},
		{
			Name:       "twig",
			Language:   "twig",
			TabWidth:   2,
			UseTabs:    false,
			AutoIndent: defaultIndent,
			suffixes:   []string{".twig", ".html.twig"},
		},
		{
			Name:       "xml",
			Language:   "xml",
			TabWidth:   2,
			UseTabs:    false,
			AutoIndent: defaultIndent,
			suffixes:   []string{".xml", ".xsd", ".svg"},
		},
		{
			Name:       "makefile",
			TabWidth:   4,
			UseTabs:    true,
			AutoIndent: defaultIndent,
			filenames:  []string{"Makefile", "GNUmakefile", "makefile"},
		},
	}
}

// Register adds modes to the global table ahead of the built-ins. It is
// intended for callers that need a grammar not shipped in the default
// set. Safe to call before the first Resolve.
func Register(modes ...Mode) {
	registryOnce.Do(func() { registry = builtins() })
	registry = append(modes, registry...)
}

func ensureInit() {
	registryOnce.Do(func() { registry = builtins() })
}

// Resolve returns the Mode for path: exact filename match first, then
// the longest matching suffix, falling back to plain text.
func Resolve(path string) Mode {
	ensureInit()

	name := filepath.Base(path)

	for _, m := range registry {
		for _, fn := range m.filenames {
			if fn == name {
				return m
			}
		}
	}

	best := plain
	bestLen := -1
	lowerName := strings.ToLower(name)
	for _, m := range registry {
		for _, suf := range m.suffixes {
			if strings.HasSuffix(lowerName, strings.ToLower(suf)) && len(suf) > bestLen {
				best = m
				bestLen = len(suf)
			}
		}
	}
	return best
}

// Plain is the default mode used when nothing matches.
func Plain() Mode {
	return plain
}
