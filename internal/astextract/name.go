package astextract

import (
	"strings"

	"github.com/oxhq/ananke/internal/langtag"
	astsitter "github.com/oxhq/ananke/internal/sitter"
)

// NameOf derives a stable identifier for node, the way each language's
// provider config in the retrieved corpus does it: prefer a grammar "name"
// or "key" field, fall back to scanning for the first identifier-shaped
// child, and finally fall back to "anonymous" for unnamed function
// expressions.
func NameOf(tree *astsitter.SyntaxTree, n astsitter.Node, tag langtag.Tag) string {
	switch tag {
	case langtag.TypeScript, langtag.JavaScript:
		return jsFamilyName(tree, n)
	case langtag.Python:
		return pythonName(tree, n)
	case langtag.Go:
		return goName(tree, n)
	case langtag.Rust:
		return rustName(tree, n)
	case langtag.C, langtag.Cpp:
		return cFamilyName(tree, n)
	case langtag.Java:
		return javaName(tree, n)
	default:
		return genericName(tree, n)
	}
}

// genericName scans direct children for the first identifier-shaped node,
// the shared fallback every per-language case in the corpus reaches for.
func genericName(tree *astsitter.SyntaxTree, n astsitter.Node) string {
	for i := 0; i < n.ChildCount(); i++ {
		child := n.Child(i)
		if strings.Contains(child.Type(), "identifier") {
			return astsitter.Text(tree, child)
		}
	}
	return ""
}

func byFieldName(tree *astsitter.SyntaxTree, n astsitter.Node, field string) (string, bool) {
	f := n.ChildByFieldName(field)
	if f.IsZero() {
		return "", false
	}
	return astsitter.Text(tree, f), true
}

func jsFamilyName(tree *astsitter.SyntaxTree, n astsitter.Node) string {
	switch n.Type() {
	case "function_declaration", "class_declaration", "class_expression",
		"interface_declaration", "type_alias_declaration", "enum_declaration":
		if name, ok := byFieldName(tree, n, "name"); ok {
			return name
		}
	case "method_definition", "method_signature":
		if name, ok := byFieldName(tree, n, "key"); ok {
			return name
		}
	case "variable_declarator":
		if name, ok := byFieldName(tree, n, "id"); ok {
			return name
		}
	case "lexical_declaration", "variable_declaration":
		for i := 0; i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child.Type() == "variable_declarator" {
				if name, ok := byFieldName(tree, child, "id"); ok {
					return name
				}
			}
		}
	case "import_statement", "export_statement":
		if src, ok := byFieldName(tree, n, "source"); ok {
			return strings.Trim(src, `"'`)
		}
	case "arrow_function", "function_expression":
		parent := n.Parent()
		if !parent.IsZero() {
			switch parent.Type() {
			case "variable_declarator":
				if name, ok := byFieldName(tree, parent, "id"); ok {
					return name
				}
			case "pair", "method_definition":
				if name, ok := byFieldName(tree, parent, "key"); ok {
					return name
				}
			}
		}
		return "anonymous"
	}
	if name := genericName(tree, n); name != "" {
		return name
	}
	return "anonymous"
}

func pythonName(tree *astsitter.SyntaxTree, n astsitter.Node) string {
	switch n.Type() {
	case "function_definition", "async_function_definition", "class_definition":
		if name, ok := byFieldName(tree, n, "name"); ok {
			return name
		}
	case "assignment", "augmented_assignment":
		if name, ok := byFieldName(tree, n, "left"); ok {
			return name
		}
	case "lambda":
		return "anonymous"
	case "import_statement", "import_from_statement":
		for i := 0; i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child.Type() == "dotted_name" || child.Type() == "identifier" {
				return astsitter.Text(tree, child)
			}
		}
	}
	return genericName(tree, n)
}

func goName(tree *astsitter.SyntaxTree, n astsitter.Node) string {
	switch n.Type() {
	case "function_declaration", "method_declaration":
		if name, ok := byFieldName(tree, n, "name"); ok {
			return name
		}
	case "type_spec":
		if name, ok := byFieldName(tree, n, "name"); ok {
			return name
		}
	case "struct_type", "interface_type":
		if parent := n.Parent(); parent.Type() == "type_spec" {
			if name, ok := byFieldName(tree, parent, "name"); ok {
				return name
			}
		}
	case "type_declaration":
		for i := 0; i < n.ChildCount(); i++ {
			if n.Child(i).Type() == "type_spec" {
				if name, ok := byFieldName(tree, n.Child(i), "name"); ok {
					return name
				}
			}
		}
	case "import_spec":
		if path, ok := byFieldName(tree, n, "path"); ok {
			return strings.Trim(path, `"`)
		}
	case "import_declaration":
		return "import_block"
	}
	return genericName(tree, n)
}

func rustName(tree *astsitter.SyntaxTree, n astsitter.Node) string {
	switch n.Type() {
	case "function_item", "struct_item", "enum_item", "trait_item", "type_item":
		if name, ok := byFieldName(tree, n, "name"); ok {
			return name
		}
	case "impl_item":
		if name, ok := byFieldName(tree, n, "type"); ok {
			return name
		}
	case "use_declaration":
		if name, ok := byFieldName(tree, n, "argument"); ok {
			return name
		}
	case "closure_expression":
		return "anonymous"
	}
	return genericName(tree, n)
}

func cFamilyName(tree *astsitter.SyntaxTree, n astsitter.Node) string {
	switch n.Type() {
	case "function_definition":
		declarator := n.ChildByFieldName("declarator")
		for !declarator.IsZero() && declarator.Type() != "identifier" && declarator.Type() != "field_identifier" {
			next := declarator.ChildByFieldName("declarator")
			if next.IsZero() {
				break
			}
			declarator = next
		}
		if !declarator.IsZero() {
			return astsitter.Text(tree, declarator)
		}
	case "struct_specifier", "class_specifier", "enum_specifier":
		if name, ok := byFieldName(tree, n, "name"); ok {
			return name
		}
	case "preproc_include":
		if path, ok := byFieldName(tree, n, "path"); ok {
			return strings.Trim(path, `"<>`)
		}
	}
	return genericName(tree, n)
}

func javaName(tree *astsitter.SyntaxTree, n astsitter.Node) string {
	switch n.Type() {
	case "method_declaration", "constructor_declaration", "class_declaration",
		"interface_declaration", "enum_declaration", "record_declaration":
		if name, ok := byFieldName(tree, n, "name"); ok {
			return name
		}
	}
	return genericName(tree, n)
}
