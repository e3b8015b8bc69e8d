package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFallsBackToPlain(t *testing.T) {
	m := Resolve("notes.txt")
	assert.Equal(t, Plain().Name, m.Name)
}

func TestResolveMatchesSuffix(t *testing.T) {
	m := Resolve("index.php")
	assert.Equal(t, "php", m.Name)
	assert.Equal(t, "php", m.Language)
}

func TestResolvePrefersLongestSuffix(t *testing.T) {
	m := Resolve("page.html.twig")
	assert.Equal(t, "twig", m.Name)
}

func TestResolveMatchesExactFilenameBeforeSuffix(t *testing.T) {
	m := Resolve("Makefile")
	assert.Equal(t, "makefile", m.Name)
	assert.True(t, m.UseTabs)
}

func TestResolveIsCaseInsensitiveOnSuffix(t *testing.T) {
	m := Resolve("SCHEMA.XSD")
	assert.Equal(t, "xml", m.Name)
}
