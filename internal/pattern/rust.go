package pattern

import "github.com/oxhq/ananke/internal/constraint"

func rustRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_function_decl",
			Kind:        constraint.KindSemantic,
			Description: "function item",
			re:          mustCompile(`\bfn\s+[A-Za-z_]\w*\s*(<[^>]*>)?\s*\(`),
		},
		{
			Name:        "pattern_struct_enum_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "struct or enum item",
			re:          mustCompile(`\b(struct|enum|trait)\s+[A-Za-z_]\w*`),
		},
		{
			Name:        "pattern_use_decl",
			Kind:        constraint.KindStructural,
			Description: "use declaration",
			re:          mustCompile(`\buse\s+[\w:]+(::\{[^}]*\})?;`),
		},
		{
			Name:        "pattern_result_option",
			Kind:        constraint.KindOperational,
			Description: "Result/Option error handling",
			re:          mustCompile(`\b(Result|Option)\s*<`),
		},
	}
}
