package syntax

import (
	"context"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/arcweave/runepad/internal/diff"
	"github.com/arcweave/runepad/internal/schedule"
)

// ParserStatus reports what a SyntaxTree's background parser is doing.
type ParserStatus int

const (
	// StatusIdle means the last parse (if any) is applied and no parse
	// is outstanding.
	StatusIdle ParserStatus = iota
	// StatusParsing means a parse task has been spawned and has not yet
	// completed or been superseded.
	StatusParsing
	// StatusUnavailable means the buffer's mode has no registered
	// grammar; the tree stays permanently un-highlighted.
	StatusUnavailable
)

// ParsedSyntax is an immutable snapshot of a completed parse: the
// resulting tree and the exact byte content it was parsed from.
type ParsedSyntax struct {
	Tree   *sitter.Tree
	Source []byte
}

// SyntaxTree owns a language handle, the most recently completed parse,
// a parser pool for that language, and at most one outstanding parse
// task. Spawning a new task cancels whatever task was outstanding;
// a completion for a superseded task is discarded on arrival.
type SyntaxTree struct {
	language string
	lang     *sitter.Language
	pool     *parserPool

	current ParsedSyntax
	status  ParserStatus

	outstandingID   schedule.TaskID
	outstandingFlag *schedule.CancelFlag
	hasOutstanding  bool
}

// New creates a SyntaxTree for the named language. If no grammar is
// registered under that name the tree starts (and stays) in
// StatusUnavailable.
func New(language string) *SyntaxTree {
	lang, ok := Language(language)
	if !ok {
		return &SyntaxTree{language: language, status: StatusUnavailable}
	}
	return &SyntaxTree{
		language: language,
		lang:     lang,
		pool:     newParserPool(lang),
	}
}

// Available reports whether this tree has a usable grammar.
func (t *SyntaxTree) Available() bool {
	return t.status != StatusUnavailable
}

// Status returns the tree's current parser status.
func (t *SyntaxTree) Status() ParserStatus {
	return t.status
}

// Current returns the most recently completed parse, if any.
func (t *SyntaxTree) Current() (ParsedSyntax, bool) {
	return t.current, t.current.Tree != nil
}

// EnsureTree spawns an initial full parse if none has ever completed
// and none is outstanding.
func (t *SyntaxTree) EnsureTree(pool *schedule.Pool, text []byte) schedule.TaskID {
	if t.current.Tree != nil || t.hasOutstanding {
		return t.outstandingID
	}
	return t.SpawnParseTask(pool, text, true)
}

// SpawnParseTask cancels any outstanding parse and submits a new one.
// fresh forces a full reparse, ignoring the previous tree as an
// incremental-parse hint (used after undo/redo, where the previous
// tree's edits no longer describe how the text actually changed).
func (t *SyntaxTree) SpawnParseTask(pool *schedule.Pool, text []byte, fresh bool) schedule.TaskID {
	if !t.Available() {
		return 0
	}

	if t.hasOutstanding {
		t.outstandingFlag.Cancel()
	}

	flag := &schedule.CancelFlag{}
	var oldTree *sitter.Tree
	if !fresh {
		oldTree = t.current.Tree
	}
	parserPool := t.pool

	id := pool.Submit(func(ctx context.Context, _ schedule.TaskID) any {
		if flag.Cancelled() {
			return nil
		}

		parser := parserPool.get()
		tree, err := parser.ParseString(ctx, oldTree, text)
		parserPool.put(parser)

		if err != nil || flag.Cancelled() {
			return nil
		}

		return ParsedSyntax{Tree: tree, Source: text}
	})

	t.outstandingID = id
	t.outstandingFlag = flag
	t.hasOutstanding = true
	t.status = StatusParsing
	return id
}

// Edit adjusts the current tree's byte ranges for d, ahead of a
// forthcoming incremental reparse. It is a no-op if no tree exists yet.
func (t *SyntaxTree) Edit(d diff.OpaqueDiff) {
	if t.current.Tree == nil {
		return
	}
	t.current.Tree.Edit(sitter.InputEdit{
		StartIndex:    uint32(d.ByteIndex),
		OldEndIndex:   uint32(d.OldEnd()),
		NewEndIndex:   uint32(d.NewEnd()),
		StartPoint:    sitter.Point{},
		OldEndPoint:   sitter.Point{},
		NewEndPoint:   sitter.Point{},
	})
}

// HandleParseSyntaxDone applies a completion delivered for id, if it is
// still the outstanding task. A completion for any other id (a stale,
// superseded task) is discarded and reports false. A nil result (the
// task observed cancellation mid-flight) also reports false but still
// clears the outstanding bookkeeping.
func (t *SyntaxTree) HandleParseSyntaxDone(id schedule.TaskID, result any) bool {
	if id != t.outstandingID || !t.hasOutstanding {
		return false
	}
	t.hasOutstanding = false
	t.status = StatusIdle

	parsed, ok := result.(ParsedSyntax)
	if !ok {
		return false
	}
	t.current = parsed
	return true
}

// Close releases the most recently completed tree held by this
// SyntaxTree. Parsers held in its pool are not closed.
func (t *SyntaxTree) Close() {
	if t.current.Tree != nil {
		t.current.Tree.Close()
	}
}
