package statuslog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJSONLineSinkPublishesOneLinePerMessage(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONLineSink(&buf)

	sink.Publish(StatusMessage{Level: LevelWarn, Text: "discarded parse", Time: time.Now()})
	sink.Publish(StatusMessage{Level: LevelInfo, Text: "saved", Time: time.Now()})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "discarded parse", FieldFromJSONLine(lines[0], "text"))
	assert.Equal(t, "WARN", FieldFromJSONLine(lines[0], "level"))
	assert.Equal(t, "saved", FieldFromJSONLine(lines[1], "text"))
}

func TestJSONLineSinkEncodesFieldsUnderFieldsPrefix(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONLineSink(&buf)

	sink.Publish(StatusMessage{
		Level:  LevelInfo,
		Text:   "ready",
		Fields: map[string]any{"component": "buffer"},
		Time:   time.Now(),
	})

	line := strings.TrimRight(buf.String(), "\n")
	assert.Equal(t, "buffer", FieldFromJSONLine(line, "fields.component"))
}

func TestLoggerWithSinkAlsoPublishesToIt(t *testing.T) {
	var discard bytes.Buffer
	var sinkBuf bytes.Buffer
	sink := NewJSONLineSink(&sinkBuf)

	l := New(Config{Level: LevelDebug, Output: &discard, Sink: sink})
	l.WithComponent("buffer").Warn("discarded stale parse completion for %s", "notes.txt")

	line := strings.TrimRight(sinkBuf.String(), "\n")
	assert.Equal(t, "WARN", FieldFromJSONLine(line, "level"))
	assert.Contains(t, FieldFromJSONLine(line, "text"), "notes.txt")
	assert.Equal(t, "buffer", FieldFromJSONLine(line, "fields.component"))
}

func TestFieldFromJSONLineReturnsEmptyForMissingPath(t *testing.T) {
	assert.Equal(t, "", FieldFromJSONLine(`{"level":"INFO"}`, "fields.missing"))
}
