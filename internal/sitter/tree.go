package sitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/ananke/internal/langtag"
)

// Point is a (row, column) position, zero-based, matching tree-sitter's own
// point convention.
type Point struct {
	Row    uint32
	Column uint32
}

// SyntaxTree is an immutable parse result pinned to the source bytes it was
// parsed from. The bytes must outlive the tree; the tree must outlive every
// Node handle taken from it.
type SyntaxTree struct {
	lang     langtag.Tag
	source   []byte
	raw      *sitter.Tree
	hasError bool
}

// Language reports which LanguageTag produced this tree.
func (t *SyntaxTree) Language() langtag.Tag { return t.lang }

// Source returns the exact byte buffer the tree is pinned to. Callers must
// not mutate the returned slice.
func (t *SyntaxTree) Source() []byte { return t.source }

// HasError reports whether the grammar's recovery left any error node in the
// tree. Recovery itself is the grammar's responsibility; this flag only
// signals that recovery occurred.
func (t *SyntaxTree) HasError() bool { return t.hasError }

// RootNode returns a handle to the tree's root.
func (t *SyntaxTree) RootNode() Node {
	return Node{tree: t.raw, raw: t.raw.RootNode()}
}

// Node is a non-owning handle into a SyntaxTree. Its lifetime is bounded by
// the SyntaxTree it was taken from; it carries no storage of its own.
type Node struct {
	tree *sitter.Tree
	raw  *sitter.Node
}

func wrapNode(tree *sitter.Tree, raw *sitter.Node) Node {
	if raw == nil {
		return Node{}
	}
	return Node{tree: tree, raw: raw}
}

// IsZero reports whether this Node handle refers to nothing (e.g. the result
// of navigating past a tree boundary).
func (n Node) IsZero() bool { return n.raw == nil }

// Type returns the node-type string interned by the grammar (e.g.
// "function_declaration").
func (n Node) Type() string {
	if n.raw == nil {
		return ""
	}
	return n.raw.Type()
}

// StartByte and EndByte give the half-open byte span [Start, End) this node
// covers in its tree's source buffer.
func (n Node) StartByte() int {
	if n.raw == nil {
		return 0
	}
	return int(n.raw.StartByte())
}

func (n Node) EndByte() int {
	if n.raw == nil {
		return 0
	}
	return int(n.raw.EndByte())
}

// StartPoint and EndPoint give the row/column span this node covers.
func (n Node) StartPoint() Point {
	if n.raw == nil {
		return Point{}
	}
	p := n.raw.StartPoint()
	return Point{Row: p.Row, Column: p.Column}
}

func (n Node) EndPoint() Point {
	if n.raw == nil {
		return Point{}
	}
	p := n.raw.EndPoint()
	return Point{Row: p.Row, Column: p.Column}
}

// IsNamed reports whether this is a named grammar production rather than an
// anonymous literal token.
func (n Node) IsNamed() bool {
	if n.raw == nil {
		return false
	}
	return n.raw.IsNamed()
}

// HasError reports whether this specific node is, or contains, a parse
// error.
func (n Node) HasError() bool {
	if n.raw == nil {
		return false
	}
	return n.raw.HasError()
}

// ChildCount and Child give positional access to every child, named or not.
func (n Node) ChildCount() int {
	if n.raw == nil {
		return 0
	}
	return int(n.raw.ChildCount())
}

func (n Node) Child(i int) Node {
	if n.raw == nil {
		return Node{}
	}
	return wrapNode(n.tree, n.raw.Child(i))
}

// NamedChildCount and NamedChild restrict positional access to named
// productions, skipping anonymous tokens.
func (n Node) NamedChildCount() int {
	if n.raw == nil {
		return 0
	}
	return int(n.raw.NamedChildCount())
}

func (n Node) NamedChild(i int) Node {
	if n.raw == nil {
		return Node{}
	}
	return wrapNode(n.tree, n.raw.NamedChild(i))
}

// Parent, NextSibling, and PrevSibling navigate without allocation; they
// return a zero Node at tree boundaries.
func (n Node) Parent() Node {
	if n.raw == nil {
		return Node{}
	}
	return wrapNode(n.tree, n.raw.Parent())
}

func (n Node) NextSibling() Node {
	if n.raw == nil {
		return Node{}
	}
	return wrapNode(n.tree, n.raw.NextSibling())
}

func (n Node) PrevSibling() Node {
	if n.raw == nil {
		return Node{}
	}
	return wrapNode(n.tree, n.raw.PrevSibling())
}

// ChildByFieldName looks up a child by its grammar field name (e.g. "name",
// "body"), which is how per-language extractors pull out identifiers
// without hard-coding positional indices.
func (n Node) ChildByFieldName(name string) Node {
	if n.raw == nil {
		return Node{}
	}
	return wrapNode(n.tree, n.raw.ChildByFieldName(name))
}

// Text returns the exact source slice this node spans: source[Start:End).
// Spec.md §4.1 requires get_node_text to be this byte-identical slice, never
// a decoded or re-encoded copy.
func Text(tree *SyntaxTree, n Node) string {
	if n.raw == nil {
		return ""
	}
	return string(tree.source[n.StartByte():n.EndByte()])
}
