package buffer

import (
	"github.com/arcweave/runepad/internal/cursor"
	"github.com/arcweave/runepad/internal/edittree"
	"github.com/arcweave/runepad/internal/external"
	"github.com/arcweave/runepad/internal/mode"
	"github.com/arcweave/runepad/internal/rope"
	"github.com/arcweave/runepad/internal/schedule"
	"github.com/arcweave/runepad/internal/statuslog"
	"github.com/arcweave/runepad/internal/syntax"
)

// Clipboard is an alias of cursor.Clipboard so callers configuring a
// Buffer don't need to import the cursor package directly.
type Clipboard = cursor.Clipboard

// CenterState names the next of the three scroll placements
// CenterVisualCursor cycles through.
type CenterState int

const (
	CenterMiddle CenterState = iota
	CenterTop
	CenterBufferStart
)

// Buffer coordinates one open file: its cursor, its edit tree, its
// syntax tree, and viewport/scroll state. It is the reduction point
// for both synchronous edits (a key event) and asynchronous events (a
// parse completion arriving from the scheduler).
type Buffer struct {
	path string
	m    mode.Mode

	cur  cursor.Cursor
	tree *edittree.Tree
	syn  *syntax.SyntaxTree

	pool     *schedule.Pool
	ownsPool bool

	clip Clipboard
	fs   external.FileSystem
	vcs  external.VCS
	log  *statuslog.Logger

	viewport    external.Size
	lineOffset  uint32
	centerState CenterState
}

// New creates a Buffer for path with the given initial text. The mode
// (and therefore the syntax grammar) is resolved from path.
func New(path string, initialText string, opts ...Option) *Buffer {
	b := &Buffer{
		path:     path,
		m:        mode.Resolve(path),
		ownsPool: true,
		log:      statuslog.Global(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.pool == nil {
		b.pool = schedule.New(DefaultWorkerCount)
	}
	if b.clip == nil {
		b.clip = external.NewRingClipboard(16)
	}

	r := rope.FromString(initialText)
	b.tree = edittree.New(r)
	b.cur = cursor.New(0)
	b.syn = syntax.New(b.m.Language)
	b.syn.EnsureTree(b.pool, []byte(initialText))

	return b
}

// Close releases the buffer's resources, including its worker pool if
// it owns one.
func (b *Buffer) Close() {
	b.syn.Close()
	if b.ownsPool {
		b.pool.Close()
	}
}

// Mode returns the buffer's resolved mode.
func (b *Buffer) Mode() mode.Mode {
	return b.m
}

// Cursor returns the buffer's current cursor.
func (b *Buffer) Cursor() cursor.Cursor {
	return b.cur
}

// Rope returns the buffer's current staged text.
func (b *Buffer) Rope() rope.Rope {
	return b.tree.Staged()
}

// Status reports the buffer's modified state.
func (b *Buffer) Status() edittree.ModifiedStatus {
	return b.tree.Status()
}

// Completions exposes the scheduler's completion channel so a caller's
// event loop can select on it alongside front-end input.
func (b *Buffer) Completions() <-chan schedule.Completion {
	return b.pool.Completions
}

// applyEdit commits e's diff to the edit tree, updates the cursor,
// edits the syntax tree's byte ranges, and spawns a new incremental
// (fresh=false) reparse cancelling whatever parse was outstanding.
func (b *Buffer) applyEdit(e cursor.Edit) {
	if e.Diff.IsEmpty() {
		b.cur = e.Cursor
		return
	}

	b.tree.Commit(e.Diff, e.Rope)
	b.cur = e.Cursor

	b.syn.Edit(e.Diff)
	b.syn.SpawnParseTask(b.pool, []byte(e.Rope.String()), false)

	b.recomputeScroll()
}

// InsertChar inserts text at the cursor, replacing any selection.
func (b *Buffer) InsertChar(text string) {
	b.applyEdit(b.cur.InsertChar(b.tree.Staged(), text))
}

// InsertNewLine inserts a line break, auto-indenting per the buffer's
// mode.
func (b *Buffer) InsertNewLine() {
	b.applyEdit(b.cur.InsertNewLine(b.tree.Staged(), b.m))
}

// InsertTab inserts one tab stop; if disabled is true it inserts
// nothing and leaves the cursor unchanged.
func (b *Buffer) InsertTab(disabled bool) {
	b.applyEdit(b.cur.InsertTab(b.tree.Staged(), b.m, disabled))
}

// DeleteForward deletes the selection, or the grapheme after the
// cursor.
func (b *Buffer) DeleteForward() {
	b.applyEdit(b.cur.DeleteForward(b.tree.Staged()))
}

// DeleteBackward deletes the selection, or the grapheme before the
// cursor.
func (b *Buffer) DeleteBackward() {
	b.applyEdit(b.cur.DeleteBackward(b.tree.Staged()))
}

// DeleteWordForward deletes from the cursor to the start of the next
// word.
func (b *Buffer) DeleteWordForward() {
	b.applyEdit(b.cur.DeleteWordForward(b.tree.Staged()))
}

// DeleteWordBackward deletes from the start of the previous word to
// the cursor.
func (b *Buffer) DeleteWordBackward() {
	b.applyEdit(b.cur.DeleteWordBackward(b.tree.Staged()))
}

// DeleteLine deletes the cursor's current line.
func (b *Buffer) DeleteLine() {
	b.applyEdit(b.cur.DeleteLine(b.tree.Staged()))
}

// IndentLine indents the cursor's current line by one tab stop.
func (b *Buffer) IndentLine() {
	b.applyEdit(b.cur.IndentLine(b.tree.Staged(), b.m))
}

// OutdentLine removes up to one tab stop of leading whitespace from
// the cursor's current line.
func (b *Buffer) OutdentLine() {
	b.applyEdit(b.cur.OutdentLine(b.tree.Staged(), b.m))
}

// MoveLeft/MoveRight/MoveUp/MoveDown move the cursor; extend grows the
// selection instead of collapsing it.
func (b *Buffer) MoveLeft(extend bool)  { b.cur = b.cur.MoveLeft(b.tree.Staged(), extend); b.recomputeScroll() }
func (b *Buffer) MoveRight(extend bool) { b.cur = b.cur.MoveRight(b.tree.Staged(), extend); b.recomputeScroll() }
func (b *Buffer) MoveUp(extend bool)    { b.cur = b.cur.MoveUp(b.tree.Staged(), extend); b.recomputeScroll() }
func (b *Buffer) MoveDown(extend bool)  { b.cur = b.cur.MoveDown(b.tree.Staged(), extend); b.recomputeScroll() }

// MoveUpN/MoveDownN move by n lines in one step (e.g. page up/down).
func (b *Buffer) MoveUpN(n int, extend bool) {
	b.cur = b.cur.MoveUpN(b.tree.Staged(), n, extend)
	b.recomputeScroll()
}
func (b *Buffer) MoveDownN(n int, extend bool) {
	b.cur = b.cur.MoveDownN(b.tree.Staged(), n, extend)
	b.recomputeScroll()
}

// MoveToStartOfLine/MoveToEndOfLine move within the current line.
func (b *Buffer) MoveToStartOfLine(extend bool) {
	b.cur = b.cur.MoveToStartOfLine(b.tree.Staged(), extend)
}
func (b *Buffer) MoveToEndOfLine(extend bool) {
	b.cur = b.cur.MoveToEndOfLine(b.tree.Staged(), extend)
}

// MoveToStartOfBuffer/MoveToEndOfBuffer jump to the buffer's edges.
func (b *Buffer) MoveToStartOfBuffer(extend bool) {
	b.cur = b.cur.MoveToStartOfBuffer(b.tree.Staged(), extend)
	b.recomputeScroll()
}
func (b *Buffer) MoveToEndOfBuffer(extend bool) {
	b.cur = b.cur.MoveToEndOfBuffer(b.tree.Staged(), extend)
	b.recomputeScroll()
}

// BeginSelection/ClearSelection/SelectAll manage the selection without
// moving the cursor otherwise.
func (b *Buffer) BeginSelection() { b.cur = b.cur.BeginSelection() }
func (b *Buffer) ClearSelection() { b.cur = b.cur.ClearSelection() }
func (b *Buffer) SelectAll()      { b.cur = b.cur.SelectAll(b.tree.Staged()) }

// Copy copies the current selection to the clipboard.
func (b *Buffer) Copy() error {
	return b.cur.CopyToClipboard(b.tree.Staged(), b.clip)
}

// Cut removes the current selection, copying it to the clipboard
// first.
func (b *Buffer) Cut() error {
	e, err := b.cur.Cut(b.tree.Staged(), b.clip)
	if err != nil {
		return err
	}
	b.applyEdit(e)
	return nil
}

// Paste inserts the clipboard's contents at the cursor.
func (b *Buffer) Paste() error {
	e, err := b.cur.PasteFromClipboard(b.tree.Staged(), b.clip)
	if err != nil {
		return err
	}
	b.applyEdit(e)
	return nil
}

// Undo moves the edit tree to the parent of the current revision. The
// cursor is clamped into the resulting text's valid range but is not
// restored to wherever it was before the edit being undone; only the
// text changes.
func (b *Buffer) Undo() bool {
	r, _, ok := b.tree.Undo()
	if !ok {
		return false
	}
	b.clampCursor(r)
	b.reparseFresh(r)
	return true
}

// Redo moves the edit tree to the current revision's current child.
// Like Undo, the cursor is clamped but not restored.
func (b *Buffer) Redo() bool {
	r, _, ok := b.tree.Redo()
	if !ok {
		return false
	}
	b.clampCursor(r)
	b.reparseFresh(r)
	return true
}

// SwitchBranch moves the current revision's branch pointer by delta
// (+1 or -1), choosing which child Redo would follow next, without
// moving current itself.
func (b *Buffer) SwitchBranch(delta int) bool {
	switch {
	case delta > 0:
		return b.tree.NextChild()
	case delta < 0:
		return b.tree.PreviousChild()
	default:
		return false
	}
}

func (b *Buffer) clampCursor(r rope.Rope) {
	pos := b.cur.Position
	if pos > r.Len() {
		pos = r.Len()
	}
	b.cur = cursor.New(pos)
}

// reparseFresh forces a full (non-incremental) reparse: after an undo
// or redo the previous tree's recorded edits no longer describe how
// the text actually changed, so an incremental hint would be wrong.
func (b *Buffer) reparseFresh(r rope.Rope) {
	b.syn.SpawnParseTask(b.pool, []byte(r.String()), true)
	b.recomputeScroll()
}

// HandleCompletion applies a scheduler completion, if it is still the
// outstanding parse task. Stale completions (superseded by a newer
// task) are logged at Warn and otherwise ignored; the tree stays at
// its last-good parse.
func (b *Buffer) HandleCompletion(c schedule.Completion) {
	if !b.syn.HandleParseSyntaxDone(schedule.TaskID(c.ID), c.Result) {
		b.log.Warn("discarded stale parse completion for %s", b.path)
	}
}

// Save writes the buffer's text to its filesystem collaborator and, on
// success, marks the current revision as saved. A failed save leaves
// the buffer's modified status untouched.
func (b *Buffer) Save() error {
	text := b.tree.Staged().String()
	if err := b.fs.WriteAtomic(b.path, []byte(text)); err != nil {
		b.log.Warn("save failed for %s: %v", b.path, err)
		return err
	}
	b.tree.MarkSaved()
	return nil
}

