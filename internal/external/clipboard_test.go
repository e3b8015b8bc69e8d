package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRingClipboardClampsCapacityToAtLeastOne(t *testing.T) {
	c := NewRingClipboard(0)
	require.NoError(t, c.Set("a"))
	require.NoError(t, c.Set("b"))
	assert.Equal(t, []string{"b"}, c.History())
}

func TestGetOnEmptyClipboardReturnsEmptyString(t *testing.T) {
	c := NewRingClipboard(4)
	text, err := c.Get()
	assert.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestGetReturnsMostRecentlySetValue(t *testing.T) {
	c := NewRingClipboard(4)
	require.NoError(t, c.Set("first"))
	require.NoError(t, c.Set("second"))

	text, err := c.Get()
	assert.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestSetEvictsOldestEntryOverCapacity(t *testing.T) {
	c := NewRingClipboard(2)
	require.NoError(t, c.Set("a"))
	require.NoError(t, c.Set("b"))
	require.NoError(t, c.Set("c"))

	assert.Equal(t, []string{"b", "c"}, c.History())
}

func TestHistoryReturnsACopyNotTheLiveSlice(t *testing.T) {
	c := NewRingClipboard(4)
	require.NoError(t, c.Set("a"))

	h := c.History()
	h[0] = "mutated"

	fresh := c.History()
	assert.Equal(t, "a", fresh[0])
}
