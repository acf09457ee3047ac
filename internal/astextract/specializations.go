package astextract

import (
	"fmt"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
	astsitter "github.com/oxhq/ananke/internal/sitter"
	"github.com/oxhq/ananke/internal/traverse"
)

// specializations implements spec.md §4.4's per-language rules: TypeScript
// interfaces/type aliases are already captured as type_safety by the
// generic type pass, so this covers Rust Result/Option occurrences, Python
// decorators, and Go struct tags. Zig error unions and try expressions are
// not handled here: no Zig grammar is linked, so only the pattern catalogue
// reports them.
func specializations(tree *astsitter.SyntaxTree, root astsitter.Node, tag langtag.Tag) []struct {
	c     constraint.Constraint
	start int
} {
	type placed = struct {
		c     constraint.Constraint
		start int
	}
	var out []placed

	switch tag {
	case langtag.Rust:
		for _, n := range traverse.FindAll(root, func(n astsitter.Node) bool {
			if n.Type() != "generic_type" && n.Type() != "type_identifier" {
				return false
			}
			text := astsitter.Text(tree, n)
			return text == "Result" || text == "Option"
		}) {
			out = append(out, placed{constraint.Constraint{
				Name:        fmt.Sprintf("operational_result_option_%d", n.StartByte()),
				Kind:        constraint.KindOperational,
				SourceTag:   constraint.SourceControlFlow,
				Confidence:  constraint.ConfidenceAST,
				Description: "Result/Option error-handling type",
				Metadata:    locationMetadata(n),
			}, n.StartByte()})
		}
	case langtag.Python:
		for _, n := range traverse.FindByType(root, "decorator") {
			out = append(out, placed{constraint.Constraint{
				Name:        fmt.Sprintf("structural_decorator_%s", NameOf(tree, n, tag)),
				Kind:        constraint.KindStructural,
				SourceTag:   constraint.SourceControlFlow,
				Confidence:  constraint.ConfidenceAST,
				Description: "decorator usage",
				Metadata:    locationMetadata(n),
			}, n.StartByte()})
		}
	case langtag.Go:
		for _, n := range traverse.FindByType(root, "field_declaration") {
			tagNode := findRawStringChild(n)
			if tagNode.IsZero() {
				continue
			}
			out = append(out, placed{constraint.Constraint{
				Name:        fmt.Sprintf("operational_struct_tag_%d", n.StartByte()),
				Kind:        constraint.KindOperational,
				SourceTag:   constraint.SourceControlFlow,
				Confidence:  constraint.ConfidenceAST,
				Description: "struct field tag",
				Metadata:    locationMetadata(n),
			}, n.StartByte()})
		}
	}

	out = append(out, errorHandlingConstructs(tree, root, tag)...)
	return out
}

func findRawStringChild(n astsitter.Node) astsitter.Node {
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c.Type() == "raw_string_literal" {
			return c
		}
	}
	return astsitter.Node{}
}

// errorHandlingNodeTypes is the curated table of try/catch-shaped
// constructs the AST extractor recognizes as operational, independent of
// the language-specific cases above.
var errorHandlingNodeTypes = map[langtag.Tag][]string{
	langtag.TypeScript: {"try_statement", "catch_clause"},
	langtag.JavaScript: {"try_statement", "catch_clause"},
	langtag.Python:     {"try_statement", "except_clause", "raise_statement"},
	langtag.Java:       {"try_statement", "catch_clause", "throw_statement"},
	langtag.Cpp:        {"try_statement", "catch_clause", "throw_statement"},
}

func errorHandlingConstructs(tree *astsitter.SyntaxTree, root astsitter.Node, tag langtag.Tag) []struct {
	c     constraint.Constraint
	start int
} {
	type placed = struct {
		c     constraint.Constraint
		start int
	}
	types, ok := errorHandlingNodeTypes[tag]
	if !ok {
		return nil
	}
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	var out []placed
	for _, n := range traverse.FindAll(root, func(n astsitter.Node) bool {
		_, ok := set[n.Type()]
		return ok
	}) {
		out = append(out, placed{constraint.Constraint{
			Name:        fmt.Sprintf("operational_error_handling_%d", n.StartByte()),
			Kind:        constraint.KindOperational,
			SourceTag:   constraint.SourceControlFlow,
			Confidence:  constraint.ConfidenceAST,
			Description: fmt.Sprintf("%s error-handling construct %q", tag, n.Type()),
			Metadata:    locationMetadata(n),
		}, n.StartByte()})
	}
	return out
}
