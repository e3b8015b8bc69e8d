package syntax

import (
	"testing"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/stretchr/testify/assert"
)

func TestLanguageRejectsEmptyName(t *testing.T) {
	_, ok := Language("")
	assert.False(t, ok)
}

func TestLanguageRejectsUnregisteredName(t *testing.T) {
	_, ok := Language("cobol-77")
	assert.False(t, ok)
}

func TestLanguageResolvesRegisteredGrammar(t *testing.T) {
	_, ok := Language("php")
	assert.True(t, ok)
}

func TestRegisterLanguageAddsNewGrammar(t *testing.T) {
	called := false
	RegisterLanguage("fake-lang-for-test", func() *sitter.Language {
		called = true
		return nil
	})

	lang, ok := Language("fake-lang-for-test")
	assert.True(t, ok)
	assert.True(t, called)
	assert.Nil(t, lang)
}

func TestRegisterLanguageCanReplaceExistingEntry(t *testing.T) {
	first := func() *sitter.Language { return nil }
	RegisterLanguage("fake-lang-replace", first)

	second := func() *sitter.Language { return nil }
	RegisterLanguage("fake-lang-replace", second)

	// Language always re-invokes the constructor; we only assert the
	// replacement took, not the (irrelevant here) returned value.
	_, ok := Language("fake-lang-replace")
	assert.True(t, ok)
}
