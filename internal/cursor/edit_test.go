package cursor

import (
	"errors"
	"testing"

	"github.com/arcweave/runepad/internal/mode"
	"github.com/arcweave/runepad/internal/rope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) Get() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeClipboard) Set(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

func TestInsertCharReplacesSelection(t *testing.T) {
	r := rope.FromString("hello world")
	c := New(0).SelectAll(r)

	e := c.InsertChar(r, "x")
	assert.Equal(t, "x", e.Rope.String())
	assert.Equal(t, rope.ByteOffset(1), e.Cursor.Position)
	assert.Equal(t, rope.ByteOffset(0), e.Diff.ByteIndex)
	assert.Equal(t, rope.ByteOffset(11), e.Diff.OldLength)
	assert.Equal(t, rope.ByteOffset(1), e.Diff.NewLength)
}

func TestInsertNewLineAutoIndents(t *testing.T) {
	r := rope.FromString("\tfoo")
	c := New(r.Len())
	m := mode.Mode{AutoIndent: func(prev string) string {
		i := 0
		for i < len(prev) && (prev[i] == ' ' || prev[i] == '\t') {
			i++
		}
		return prev[:i]
	}}

	e := c.InsertNewLine(r, m)
	assert.Equal(t, "\tfoo\n\t", e.Rope.String())
}

func TestInsertTabDisabledIsNoop(t *testing.T) {
	r := rope.FromString("hello")
	c := New(0)
	e := c.InsertTab(r, mode.Mode{TabWidth: 4}, true)
	assert.Equal(t, r.String(), e.Rope.String())
}

func TestInsertTabUsesSpacesOrLiteralTab(t *testing.T) {
	r := rope.FromString("")
	c := New(0)

	e := c.InsertTab(r, mode.Mode{TabWidth: 4}, false)
	assert.Equal(t, "    ", e.Rope.String())

	e = c.InsertTab(r, mode.Mode{TabWidth: 4, UseTabs: true}, false)
	assert.Equal(t, "\t", e.Rope.String())
}

func TestDeleteForwardRemovesGraphemeAfterCursor(t *testing.T) {
	r := rope.FromString("abc")
	c := New(0)
	e := c.DeleteForward(r)
	assert.Equal(t, "bc", e.Rope.String())
}

func TestDeleteBackwardRemovesGraphemeBeforeCursor(t *testing.T) {
	r := rope.FromString("abc")
	c := New(r.Len())
	e := c.DeleteBackward(r)
	assert.Equal(t, "ab", e.Rope.String())
}

func TestDeleteLineRemovesTrailingNewline(t *testing.T) {
	r := rope.FromString("one\ntwo\nthree")
	c := New(r.LineStartOffset(1))
	e := c.DeleteLine(r)
	assert.Equal(t, "one\nthree", e.Rope.String())
}

func TestIndentAndOutdentLineRoundTrip(t *testing.T) {
	r := rope.FromString("foo")
	c := New(0)
	m := mode.Mode{TabWidth: 2}

	indented := c.IndentLine(r, m)
	assert.Equal(t, "  foo", indented.Rope.String())

	outdented := indented.Cursor.OutdentLine(indented.Rope, m)
	assert.Equal(t, "foo", outdented.Rope.String())
}

func TestCutCopiesToClipboardThenDeletes(t *testing.T) {
	r := rope.FromString("hello world")
	c := New(0).SelectAll(r)
	clip := &fakeClipboard{}

	e, err := c.Cut(r, clip)
	require.NoError(t, err)
	assert.Equal(t, "hello world", clip.text)
	assert.Equal(t, "", e.Rope.String())
}

func TestPasteInsertsClipboardContents(t *testing.T) {
	r := rope.FromString("world")
	c := New(0)
	clip := &fakeClipboard{text: "hello "}

	e, err := c.PasteFromClipboard(r, clip)
	require.NoError(t, err)
	assert.Equal(t, "hello world", e.Rope.String())
}

func TestPasteSurfacesClipboardError(t *testing.T) {
	r := rope.FromString("world")
	c := New(0)
	clip := &fakeClipboard{err: errors.New("clipboard unavailable")}

	_, err := c.PasteFromClipboard(r, clip)
	assert.Error(t, err)
}
