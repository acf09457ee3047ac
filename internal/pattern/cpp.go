package pattern

import "github.com/oxhq/ananke/internal/constraint"

func cppRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_function_decl",
			Kind:        constraint.KindSemantic,
			Description: "function definition",
			re:          mustCompile(`\b[A-Za-z_]\w*(::\w+)?\s+[A-Za-z_]\w*\s*\([^;{]*\)\s*(const\s*)?\{`),
		},
		{
			Name:        "pattern_class_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "class specifier",
			re:          mustCompile(`\bclass\s+[A-Za-z_]\w*`),
		},
		{
			Name:        "pattern_include_using",
			Kind:        constraint.KindStructural,
			Description: "include directive or using declaration",
			re:          mustCompile(`#include\s*[<"][^>"]+[>"]|\busing\s+[A-Za-z_]\w*\s*=`),
		},
	}
}
