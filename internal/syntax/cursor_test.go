package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepestIsErrorFalseWhenNoTraceEntryIsAnError(t *testing.T) {
	trace := []Trace{{Type: "source_file"}, {Type: "element"}, {Type: "tag_name"}}
	assert.False(t, DeepestIsError(trace))
}

func TestDeepestIsErrorTrueWhenAnAncestorIsAnError(t *testing.T) {
	trace := []Trace{
		{Type: "source_file"},
		{Type: "ERROR", IsError: true},
		{Type: "tag_name", IsError: true},
	}
	assert.True(t, DeepestIsError(trace))
}

func TestDeepestIsErrorOnEmptyTraceIsFalse(t *testing.T) {
	assert.False(t, DeepestIsError(nil))
}

func TestTraceAtOnEmptyParsedSyntaxReturnsNil(t *testing.T) {
	c := NewSyntaxCursor(ParsedSyntax{})
	trace := c.TraceAt(0)
	assert.Nil(t, trace)
}
