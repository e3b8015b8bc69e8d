package syntax

import sitter "github.com/alexaandru/go-tree-sitter-bare"

// Trace is one step of a root-to-leaf walk down a parse tree to the
// deepest node covering a byte position.
type Trace struct {
	Node    sitter.Node
	Type    string
	IsError bool
}

// SyntaxCursor answers point queries against a ParsedSyntax snapshot.
type SyntaxCursor struct {
	parsed ParsedSyntax
}

// NewSyntaxCursor wraps a parsed snapshot for querying.
func NewSyntaxCursor(parsed ParsedSyntax) SyntaxCursor {
	return SyntaxCursor{parsed: parsed}
}

// TraceAt walks from the root to the deepest node whose byte range
// contains byteIndex, returning every node on that path in root-first
// order. IsError is true on a Trace entry if that node or any ancestor
// on the path up to it is a parse error node or contains one along the
// path — callers checking "is this position inside broken syntax"
// should OR the IsError field across the whole returned slice rather
// than checking only the deepest entry, since an error node can wrap
// otherwise well-formed children.
func (c SyntaxCursor) TraceAt(byteIndex uint32) []Trace {
	if c.parsed.Tree == nil {
		return nil
	}
	root := c.parsed.Tree.RootNode()
	if root.IsNull() {
		return nil
	}

	var trace []Trace
	errSoFar := false
	node := root

	for {
		errSoFar = errSoFar || node.IsError() || node.IsMissing()
		trace = append(trace, Trace{Node: node, Type: node.Type(), IsError: errSoFar})

		next := childContaining(node, byteIndex)
		if next.IsNull() {
			break
		}
		node = next
	}

	return trace
}

func childContaining(node sitter.Node, byteIndex uint32) sitter.Node {
	count := node.ChildCount()
	for i := uint32(0); i < count; i++ {
		child := node.Child(i)
		if child.IsNull() {
			continue
		}
		if byteIndex >= child.StartByte() && byteIndex < child.EndByte() {
			return child
		}
	}
	return sitter.Node{}
}

// DeepestIsError reports whether any node along trace is an error node,
// per the TraceAt OR-across-path rule.
func DeepestIsError(trace []Trace) bool {
	for _, t := range trace {
		if t.IsError {
			return true
		}
	}
	return false
}
