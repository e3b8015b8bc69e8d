package edittree

import (
	"strconv"

	"github.com/arcweave/runepad/internal/diff"
	"github.com/arcweave/runepad/internal/rope"
)

// RevisionID identifies a node in the edit tree's arena. IDs are
// monotonically increasing and never reused, so a stale ID is always
// distinguishable from a live one.
type RevisionID uint64

// node is one revision in the arena. Children are stored by ID, not by
// pointer, so the arena is the sole owner of the tree's shape.
type node struct {
	id        RevisionID
	parent    RevisionID
	hasParent bool
	children  []RevisionID

	// currentChild indexes into children: the branch that Redo follows
	// and the branch PreviousChild/NextChild cycle through.
	currentChild int

	diff diff.OpaqueDiff
	rope rope.Rope
}

// ModifiedStatus describes a buffer's relationship to its on-disk and
// committed state.
type ModifiedStatus int

const (
	// Unchanged means the staged text equals the last committed revision
	// and that revision is the one last saved to disk.
	Unchanged ModifiedStatus = iota
	// Modified means the staged text differs from the revision last
	// saved to disk.
	Modified
	// ModifiedOnDisk means the file on disk changed since this tree's
	// save point, independent of in-memory edits. Set externally by the
	// buffer coordinator once it observes an out-of-band disk change.
	ModifiedOnDisk
)

// Tree is a persistent, branching undo/redo tree. All revisions ever
// created remain reachable from the root for the lifetime of the tree;
// undo and redo move a cursor (current) through the arena rather than
// destroying history.
type Tree struct {
	arena   map[RevisionID]*node
	nextID  RevisionID
	root    RevisionID
	current RevisionID

	// staged is the working rope. It always equals the current
	// revision's rope except transiently inside Commit, which updates
	// staged before deciding whether d warrants a new revision.
	staged rope.Rope

	savedRevision    RevisionID
	modifiedExternal bool
}

// New creates an edit tree rooted at the given initial text. The root
// revision carries the empty diff and is both the current and saved
// revision.
func New(initial rope.Rope) *Tree {
	t := &Tree{arena: make(map[RevisionID]*node)}
	root := &node{
		id:           t.nextID,
		currentChild: -1,
		rope:         initial,
	}
	t.arena[root.id] = root
	t.root = root.id
	t.current = root.id
	t.savedRevision = root.id
	t.staged = initial
	t.nextID++
	return t
}

// Staged returns the working rope, including any edits not yet
// committed as a distinct revision.
func (t *Tree) Staged() rope.Rope {
	return t.staged
}

// Committed returns the rope snapshot of the current revision.
func (t *Tree) Committed() rope.Rope {
	return t.arena[t.current].rope
}

// Current returns the ID of the current revision.
func (t *Tree) Current() RevisionID {
	return t.current
}

// Commit records d as having been applied, producing newStaged. A
// no-op diff never creates a revision (empty-edit coalescing): the
// staged rope is simply replaced, which only matters when a caller
// re-stages identical text. Any other diff unconditionally creates a
// new child of current, pruning nothing: if current already has
// children, the new commit becomes an additional sibling and the
// current node's branch pointer moves to it.
func (t *Tree) Commit(d diff.OpaqueDiff, newStaged rope.Rope) RevisionID {
	t.staged = newStaged

	if d.IsEmpty() {
		return t.current
	}

	cur := t.arena[t.current]
	child := &node{
		id:           t.nextID,
		parent:       t.current,
		hasParent:    true,
		currentChild: -1,
		diff:         d,
		rope:         newStaged,
	}
	t.nextID++
	t.arena[child.id] = child

	cur.children = append(cur.children, child.id)
	cur.currentChild = len(cur.children) - 1

	t.current = child.id
	return child.id
}

// Undo moves current to its parent revision, if any. It reports the
// parent's rope, the reverse of the traversed edge's diff (the diff
// that undoes it), and true on success; on failure (current is the
// root) it reports the zero rope, the zero diff, and false, leaving
// the tree unchanged.
func (t *Tree) Undo() (rope.Rope, diff.OpaqueDiff, bool) {
	cur := t.arena[t.current]
	if !cur.hasParent {
		return rope.Rope{}, diff.OpaqueDiff{}, false
	}
	d := cur.diff.Reverse()
	t.current = cur.parent
	t.staged = t.arena[t.current].rope
	return t.staged, d, true
}

// Redo moves current to its current child, if any. It reports the
// child's rope, the traversed edge's diff, and true on success; on
// failure (current is a leaf) it reports the zero rope, the zero
// diff, and false.
func (t *Tree) Redo() (rope.Rope, diff.OpaqueDiff, bool) {
	cur := t.arena[t.current]
	if cur.currentChild < 0 || cur.currentChild >= len(cur.children) {
		return rope.Rope{}, diff.OpaqueDiff{}, false
	}
	child := t.arena[cur.children[cur.currentChild]]
	d := child.diff
	t.current = child.id
	t.staged = child.rope
	return t.staged, d, true
}

// PreviousChild moves the current node's branch pointer to the
// previous sibling branch (the one Redo would follow after this call),
// without changing current itself. It reports false if already at the
// first branch or if current has no children.
func (t *Tree) PreviousChild() bool {
	cur := t.arena[t.current]
	if len(cur.children) == 0 || cur.currentChild <= 0 {
		return false
	}
	cur.currentChild--
	return true
}

// NextChild moves the current node's branch pointer to the next
// sibling branch. It reports false if already at the last branch or if
// current has no children.
func (t *Tree) NextChild() bool {
	cur := t.arena[t.current]
	if len(cur.children) == 0 || cur.currentChild >= len(cur.children)-1 {
		return false
	}
	cur.currentChild++
	return true
}

// BranchCount returns the number of child branches current has.
func (t *Tree) BranchCount() int {
	return len(t.arena[t.current].children)
}

// MarkSaved records the current revision as the one persisted to disk,
// clearing the Modified/ModifiedOnDisk status.
func (t *Tree) MarkSaved() {
	t.savedRevision = t.current
	t.modifiedExternal = false
}

// MarkExternallyModified records that the underlying file changed on
// disk independent of in-memory edits. The buffer coordinator calls
// this after detecting an out-of-band change (e.g. a VCS checkout).
func (t *Tree) MarkExternallyModified() {
	t.modifiedExternal = true
}

// Status reports the buffer's modified state.
func (t *Tree) Status() ModifiedStatus {
	if t.modifiedExternal {
		return ModifiedOnDisk
	}
	if t.current != t.savedRevision || !t.staged.Equals(t.Committed()) {
		return Modified
	}
	return Unchanged
}

// Describe returns a short human-readable summary of the diff that
// produced revision id, such as "insert 12B @ 40" or "delete 3B @ 7".
func (t *Tree) Describe(id RevisionID) (string, bool) {
	n, ok := t.arena[id]
	if !ok || !n.hasParent {
		return "", false
	}
	d := n.diff
	switch {
	case d.OldLength == 0 && d.NewLength > 0:
		return describef("insert", int64(d.NewLength), d.ByteIndex), true
	case d.NewLength == 0 && d.OldLength > 0:
		return describef("delete", int64(d.OldLength), d.ByteIndex), true
	default:
		return describef("replace", d.Delta(), d.ByteIndex), true
	}
}

func describef(verb string, n int64, at rope.ByteOffset) string {
	return verb + " " + strconv.FormatInt(n, 10) + "B @ " + strconv.FormatInt(int64(at), 10)
}
