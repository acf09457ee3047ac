package pattern

import "github.com/oxhq/ananke/internal/constraint"

func goRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_function_decl",
			Kind:        constraint.KindSemantic,
			Description: "function declaration",
			re:          mustCompile(`func\s+(\([^)]*\)\s+)?[A-Za-z_]\w*\s*\(`),
		},
		{
			Name:        "pattern_struct_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "struct type declaration",
			re:          mustCompile(`type\s+[A-Za-z_]\w*\s+struct\s*\{`),
		},
		{
			Name:        "pattern_interface_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "interface type declaration",
			re:          mustCompile(`type\s+[A-Za-z_]\w*\s+interface\s*\{`),
		},
		{
			Name:        "pattern_import",
			Kind:        constraint.KindStructural,
			Description: "import declaration",
			re:          mustCompile(`import\s+(\(|"[^"]+")`),
		},
		{
			Name:        "pattern_struct_tag",
			Kind:        constraint.KindOperational,
			Description: "struct field tag",
			re:          mustCompile("`[a-zA-Z_]+:\"[^\"]*\"`"),
		},
		{
			Name:        "pattern_error_check",
			Kind:        constraint.KindOperational,
			Description: "error-handling check",
			re:          mustCompile(`if\s+err\s*!=\s*nil\s*\{`),
		},
	}
}
