package statuslog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevelRecognizesNamesAndDefaultsToInfo(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestLoggerSuppressesMessagesBelowItsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf, Prefix: "test"})

	l.Info("should not appear")
	l.Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}

func TestLoggerFormatsMessageWithPrefixAndArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf, Prefix: "runepad"})

	l.Error("failed to save %s: %v", "notes.txt", "disk full")

	out := buf.String()
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "runepad")
	assert.Contains(t, out, "failed to save notes.txt: disk full")
}

func TestWithFieldAddsStructuredFieldToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})

	l.WithField("path", "notes.txt").Info("saved")

	assert.Contains(t, buf.String(), "path=notes.txt")
}

func TestWithComponentIsShorthandForComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})

	l.WithComponent("buffer").Info("ready")

	assert.Contains(t, buf.String(), "component=buffer")
}

func TestWithFieldDoesNotMutateParentLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Config{Level: LevelDebug, Output: &buf})
	parent.WithField("path", "notes.txt")

	parent.Info("plain message")

	assert.NotContains(t, buf.String(), "path=")
}

func TestSetLevelChangesWhatIsEmitted(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelError, Output: &buf})

	l.Warn("hidden")
	l.SetLevel(LevelWarn)
	l.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		Null.Info("anything")
		Null.Error("anything")
	})
}

func TestGlobalReturnsSameLoggerAcrossCalls(t *testing.T) {
	a := Global()
	b := Global()
	assert.Same(t, a, b)
}

func TestSetGlobalInstallsProvidedLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := New(Config{Level: LevelDebug, Output: &buf})
	SetGlobal(custom)
	defer SetGlobal(New(DefaultConfig()))

	Global().Info("hello")
	assert.True(t, strings.Contains(buf.String(), "hello"))
}
