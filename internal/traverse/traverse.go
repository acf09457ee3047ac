// Package traverse implements the generic Traversal Engine (spec.md §4.2):
// pre-, post-, and level-order walks over a sitter.SyntaxTree, plus the
// curated typed-node lookups the AST Extractor builds on.
package traverse

import (
	astsitter "github.com/oxhq/ananke/internal/sitter"
)

// Visitor is called once per visited node with its depth from the walk's
// root (root depth is 0). Returning false ("stop") terminates the walk
// globally; no further node in any order is visited afterward.
type Visitor func(n astsitter.Node, depth int) (cont bool)

// PreOrder visits root before its children, depth-first.
func PreOrder(root astsitter.Node, visit Visitor) {
	preOrder(root, 0, visit)
}

func preOrder(n astsitter.Node, depth int, visit Visitor) bool {
	if n.IsZero() {
		return true
	}
	if !visit(n, depth) {
		return false
	}
	for i := 0; i < n.ChildCount(); i++ {
		if !preOrder(n.Child(i), depth+1, visit) {
			return false
		}
	}
	return true
}

// PostOrder visits every child before its parent, depth-first.
func PostOrder(root astsitter.Node, visit Visitor) {
	postOrder(root, 0, visit)
}

func postOrder(n astsitter.Node, depth int, visit Visitor) bool {
	if n.IsZero() {
		return true
	}
	for i := 0; i < n.ChildCount(); i++ {
		if !postOrder(n.Child(i), depth+1, visit) {
			return false
		}
	}
	return visit(n, depth)
}

// LevelOrder visits nodes breadth-first by depth.
func LevelOrder(root astsitter.Node, visit Visitor) {
	if root.IsZero() {
		return
	}
	type item struct {
		node  astsitter.Node
		depth int
	}
	queue := []item{{root, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !visit(cur.node, cur.depth) {
			return
		}
		for i := 0; i < cur.node.ChildCount(); i++ {
			queue = append(queue, item{cur.node.Child(i), cur.depth + 1})
		}
	}
}

// FindByType collects every descendant (root excluded check is not
// performed; root is included if it matches) whose node-type string equals
// typeName, in pre-order.
func FindByType(root astsitter.Node, typeName string) []astsitter.Node {
	var out []astsitter.Node
	PreOrder(root, func(n astsitter.Node, _ int) bool {
		if n.Type() == typeName {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Predicate reports whether a node matches some caller-defined criterion.
type Predicate func(n astsitter.Node) bool

// FindAll performs a linear pre-order scan, collecting every node for which
// pred returns true.
func FindAll(root astsitter.Node, pred Predicate) []astsitter.Node {
	var out []astsitter.Node
	PreOrder(root, func(n astsitter.Node, _ int) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindFirst performs a linear pre-order scan and returns the first node
// matching pred. The zero Node and false are returned if none match.
func FindFirst(root astsitter.Node, pred Predicate) (astsitter.Node, bool) {
	var found astsitter.Node
	ok := false
	PreOrder(root, func(n astsitter.Node, _ int) bool {
		if pred(n) {
			found = n
			ok = true
			return false
		}
		return true
	})
	return found, ok
}
