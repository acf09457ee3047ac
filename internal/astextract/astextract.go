// Package astextract implements the AST Extractor (spec.md §4.4): for each
// supported LanguageTag, it runs the Traversal Engine's curated lookups and
// turns the resulting nodes into high-confidence Constraints.
package astextract

import (
	"fmt"
	"sort"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
	astsitter "github.com/oxhq/ananke/internal/sitter"
	"github.com/oxhq/ananke/internal/traverse"
)

// Extract builds the AST-derived Constraint list for tree under tag,
// following the three-step pipeline spec.md §4.4 prescribes: run the
// curated extractors, build one Constraint per node at confidence 0.95, and
// emit in pre-order of source position.
func Extract(tree *astsitter.SyntaxTree, tag langtag.Tag) []constraint.Constraint {
	root := tree.RootNode()

	type placed = struct {
		c     constraint.Constraint
		start int
	}
	var all []placed

	for _, n := range traverse.ExtractFunctions(root, tag) {
		all = append(all, placed{functionConstraint(tree, n, tag), n.StartByte()})
	}
	for _, n := range traverse.ExtractTypes(root, tag) {
		all = append(all, placed{typeConstraint(tree, n, tag), n.StartByte()})
	}
	for _, n := range traverse.ExtractImports(root, tag) {
		all = append(all, placed{importConstraint(tree, n, tag), n.StartByte()})
	}
	all = append(all, specializations(tree, root, tag)...)

	sort.SliceStable(all, func(i, j int) bool { return all[i].start < all[j].start })

	out := make([]constraint.Constraint, len(all))
	for i, p := range all {
		out[i] = p.c
	}
	return out
}

func functionConstraint(tree *astsitter.SyntaxTree, n astsitter.Node, tag langtag.Tag) constraint.Constraint {
	name := NameOf(tree, n, tag)
	prefix := "functions"
	if isAsync(tree, n) {
		prefix = "functions_async"
	}
	return constraint.Constraint{
		Name:        fmt.Sprintf("%s_%s", prefix, name),
		Kind:        constraint.KindSemantic,
		SourceTag:   constraint.SourceControlFlow,
		Confidence:  constraint.ConfidenceAST,
		Description: fmt.Sprintf("%s node %q", tag, n.Type()),
		Metadata:    locationMetadata(n),
	}
}

func typeConstraint(tree *astsitter.SyntaxTree, n astsitter.Node, tag langtag.Tag) constraint.Constraint {
	name := NameOf(tree, n, tag)
	return constraint.Constraint{
		Name:        fmt.Sprintf("%s_%s", typePrefix(n.Type()), name),
		Kind:        constraint.KindTypeSafety,
		SourceTag:   constraint.SourceTypeSystem,
		Confidence:  constraint.ConfidenceAST,
		Description: fmt.Sprintf("%s node %q", tag, n.Type()),
		Metadata:    locationMetadata(n),
	}
}

func importConstraint(tree *astsitter.SyntaxTree, n astsitter.Node, tag langtag.Tag) constraint.Constraint {
	name := NameOf(tree, n, tag)
	return constraint.Constraint{
		Name:        fmt.Sprintf("imports_%s", name),
		Kind:        constraint.KindStructural,
		SourceTag:   constraint.SourceControlFlow,
		Confidence:  constraint.ConfidenceAST,
		Description: fmt.Sprintf("%s node %q", tag, n.Type()),
		Metadata:    locationMetadata(n),
	}
}

func typePrefix(nodeType string) string {
	switch nodeType {
	case "interface_declaration", "interface_type", "trait_item":
		return "interface"
	case "class_declaration", "class_expression", "class_specifier":
		return "class"
	case "struct_type", "struct_item", "struct_specifier":
		return "struct"
	case "enum_declaration", "enum_item", "enum_specifier":
		return "enum"
	case "type_alias_declaration", "type_item", "type_definition", "type_alias_statement":
		return "type_alias"
	default:
		return "type"
	}
}

func locationMetadata(n astsitter.Node) map[string]string {
	return map[string]string{
		"start_byte": fmt.Sprintf("%d", n.StartByte()),
		"end_byte":   fmt.Sprintf("%d", n.EndByte()),
	}
}

// isAsync reports whether n (a function-like node) carries an "async"
// keyword child, the way JS/TS grammars surface it as an anonymous token
// rather than a field.
func isAsync(tree *astsitter.SyntaxTree, n astsitter.Node) bool {
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c.Type() == "async" || astsitter.Text(tree, c) == "async" {
			return true
		}
	}
	return false
}
