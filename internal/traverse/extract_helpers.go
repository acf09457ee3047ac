package traverse

import (
	"github.com/oxhq/ananke/internal/langtag"
	astsitter "github.com/oxhq/ananke/internal/sitter"
)

// curatedNodeTypes is the hard-coded, versioned table of node-type names
// extract_functions/extract_types/extract_imports recognize per language,
// grounded on the alias tables the per-language providers in the retrieved
// corpus hard-code (e.g. providers/golang, providers/typescript, and
// providers/python's aliasMap functions).
type curatedNodeTypes struct {
	functions []string
	types     []string
	imports   []string
}

var curated = map[langtag.Tag]curatedNodeTypes{
	langtag.Go: {
		functions: []string{"function_declaration", "method_declaration", "func_literal"},
		types:     []string{"type_declaration", "type_spec", "interface_type", "struct_type"},
		imports:   []string{"import_declaration", "import_spec"},
	},
	langtag.TypeScript: {
		functions: []string{"function_declaration", "method_definition", "method_signature", "arrow_function", "function_expression"},
		types:     []string{"interface_declaration", "class_declaration", "type_alias_declaration", "enum_declaration"},
		imports:   []string{"import_statement", "export_statement"},
	},
	langtag.JavaScript: {
		functions: []string{"function_declaration", "method_definition", "arrow_function", "function_expression"},
		types:     []string{"class_declaration", "class_expression"},
		imports:   []string{"import_statement", "export_statement"},
	},
	langtag.Python: {
		functions: []string{"function_definition", "async_function_definition", "lambda"},
		types:     []string{"class_definition", "type_alias_statement"},
		imports:   []string{"import_statement", "import_from_statement"},
	},
	langtag.Rust: {
		functions: []string{"function_item", "closure_expression"},
		types:     []string{"struct_item", "enum_item", "trait_item", "impl_item", "type_item"},
		imports:   []string{"use_declaration"},
	},
	langtag.C: {
		functions: []string{"function_definition"},
		types:     []string{"struct_specifier", "enum_specifier", "type_definition"},
		imports:   []string{"preproc_include"},
	},
	langtag.Cpp: {
		functions: []string{"function_definition"},
		types:     []string{"struct_specifier", "class_specifier", "enum_specifier", "type_definition"},
		imports:   []string{"preproc_include", "using_declaration"},
	},
	langtag.Java: {
		functions: []string{"method_declaration", "constructor_declaration"},
		types:     []string{"class_declaration", "interface_declaration", "enum_declaration", "record_declaration"},
		imports:   []string{"import_declaration"},
	},
}

// ExtractFunctions recognizes the curated function-like node types for tag,
// in pre-order of source position.
func ExtractFunctions(root astsitter.Node, tag langtag.Tag) []astsitter.Node {
	return findAnyType(root, curated[tag].functions)
}

// ExtractTypes recognizes the curated type-declaration node types for tag.
func ExtractTypes(root astsitter.Node, tag langtag.Tag) []astsitter.Node {
	return findAnyType(root, curated[tag].types)
}

// ExtractImports recognizes the curated import/include node types for tag.
func ExtractImports(root astsitter.Node, tag langtag.Tag) []astsitter.Node {
	return findAnyType(root, curated[tag].imports)
}

func findAnyType(root astsitter.Node, types []string) []astsitter.Node {
	if len(types) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return FindAll(root, func(n astsitter.Node) bool {
		_, ok := set[n.Type()]
		return ok
	})
}
