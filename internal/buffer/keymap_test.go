package buffer

import (
	"testing"

	"github.com/arcweave/runepad/internal/external"
	"github.com/stretchr/testify/assert"
)

func TestFeedFiresOnSingleKeyBinding(t *testing.T) {
	km := NewKeymap()
	fired := false
	km.Bind(func(*Buffer) { fired = true }, external.KeyEvent{Name: "Enter"})

	action, result := km.Feed(external.KeyEvent{Name: "Enter"})
	assert.Equal(t, external.Clear, result)
	assert.NotNil(t, action)
	action(nil)
	assert.True(t, fired)
}

func TestFeedContinuesOnSharedPrefix(t *testing.T) {
	km := NewKeymap()
	var fired string
	km.Bind(func(*Buffer) { fired = "gg" },
		external.KeyEvent{Rune: 'g'}, external.KeyEvent{Rune: 'g'})
	km.Bind(func(*Buffer) { fired = "gG" },
		external.KeyEvent{Rune: 'g'}, external.KeyEvent{Shift: true, Rune: 'G'})

	action, result := km.Feed(external.KeyEvent{Rune: 'g'})
	assert.Nil(t, action)
	assert.Equal(t, external.Continue, result)

	action, result = km.Feed(external.KeyEvent{Rune: 'g'})
	assert.Equal(t, external.Clear, result)
	action(nil)
	assert.Equal(t, "gg", fired)
}

func TestFeedClearsOnUnmatchedInput(t *testing.T) {
	km := NewKeymap()
	km.Bind(func(*Buffer) {}, external.KeyEvent{Rune: 'a'}, external.KeyEvent{Rune: 'b'})

	action, result := km.Feed(external.KeyEvent{Rune: 'z'})
	assert.Nil(t, action)
	assert.Equal(t, external.Clear, result)
}

func TestResetDiscardsPartialMatch(t *testing.T) {
	km := NewKeymap()
	fired := false
	km.Bind(func(*Buffer) { fired = true },
		external.KeyEvent{Rune: 'a'}, external.KeyEvent{Rune: 'b'})

	km.Feed(external.KeyEvent{Rune: 'a'})
	km.Reset()
	action, _ := km.Feed(external.KeyEvent{Rune: 'b'})
	assert.Nil(t, action)
	assert.False(t, fired)
}
