package pattern

import "github.com/oxhq/ananke/internal/constraint"

func pythonRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_function_decl",
			Kind:        constraint.KindSemantic,
			Description: "function definition",
			re:          mustCompile(`(async\s+)?def\s+[A-Za-z_]\w*\s*\(`),
		},
		{
			Name:        "pattern_class_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "class definition",
			re:          mustCompile(`class\s+[A-Za-z_]\w*\s*[:(]`),
		},
		{
			Name:        "pattern_import",
			Kind:        constraint.KindStructural,
			Description: "import statement",
			re:          mustCompile(`(?m)^\s*(import\s+\w|from\s+[\w.]+\s+import\s)`),
		},
		{
			Name:        "pattern_decorator",
			Kind:        constraint.KindStructural,
			Description: "decorator usage",
			re:          mustCompile(`(?m)^\s*@[A-Za-z_][\w.]*`),
		},
	}
}
