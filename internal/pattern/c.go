package pattern

import "github.com/oxhq/ananke/internal/constraint"

func cRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_function_decl",
			Kind:        constraint.KindSemantic,
			Description: "function definition",
			re:          mustCompile(`\b[A-Za-z_]\w*\s+[A-Za-z_]\w*\s*\([^;{]*\)\s*\{`),
		},
		{
			Name:        "pattern_struct_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "struct specifier",
			re:          mustCompile(`\bstruct\s+[A-Za-z_]\w*\s*\{`),
		},
		{
			Name:        "pattern_include",
			Kind:        constraint.KindStructural,
			Description: "preprocessor include",
			re:          mustCompile(`#include\s*[<"][^>"]+[>"]`),
		},
	}
}
