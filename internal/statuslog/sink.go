package statuslog

import (
	"io"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// StatusMessage is a single logged event, shaped for machine-readable
// export rather than the line-oriented Logger output.
type StatusMessage struct {
	Level  Level
	Text   string
	Fields map[string]any
	Time   time.Time
}

// Sink receives every message a Logger logs, in addition to its normal
// line output. Used for panels or external tools that want structured
// access to status messages rather than parsing log lines.
type Sink interface {
	Publish(StatusMessage)
}

// JSONLineSink writes each StatusMessage as one JSON object per line
// to w, built incrementally with sjson rather than a struct marshal so
// that Fields (an arbitrary any map) doesn't need its own schema.
type JSONLineSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONLineSink wraps w as a Sink.
func NewJSONLineSink(w io.Writer) *JSONLineSink {
	return &JSONLineSink{w: w}
}

// Publish writes msg as a JSON line.
func (s *JSONLineSink) Publish(msg StatusMessage) {
	doc := "{}"
	doc, _ = sjson.Set(doc, "level", msg.Level.String())
	doc, _ = sjson.Set(doc, "text", msg.Text)
	doc, _ = sjson.Set(doc, "time", msg.Time.Format(time.RFC3339Nano))
	for k, v := range msg.Fields {
		doc, _ = sjson.Set(doc, "fields."+k, v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write([]byte(doc))
	_, _ = s.w.Write([]byte("\n"))
}

// FieldFromJSONLine extracts a single field from a previously-written
// JSON line, for tooling that tails the sink's output (e.g. a
// ":messages" panel filtering on fields.component).
func FieldFromJSONLine(line, path string) string {
	return gjson.Get(line, path).String()
}
