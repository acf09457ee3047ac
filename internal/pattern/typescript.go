package pattern

import "github.com/oxhq/ananke/internal/constraint"

func typescriptRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_function_decl",
			Kind:        constraint.KindSemantic,
			Description: "function or method declaration",
			re:          mustCompile(`(async\s+)?function\s+[A-Za-z_$][\w$]*\s*\(|[A-Za-z_$][\w$]*\s*\([^)]*\)\s*(:\s*[\w<>\[\].| ]+)?\s*\{`),
		},
		{
			Name:        "pattern_class_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "class declaration",
			re:          mustCompile(`class\s+[A-Za-z_$][\w$]*`),
		},
		{
			Name:        "pattern_interface_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "interface declaration",
			re:          mustCompile(`interface\s+[A-Za-z_$][\w$]*`),
		},
		{
			Name:        "pattern_type_alias",
			Kind:        constraint.KindTypeSafety,
			Description: "type alias declaration",
			re:          mustCompile(`type\s+[A-Za-z_$][\w$]*\s*=`),
		},
		{
			Name:        "pattern_import",
			Kind:        constraint.KindStructural,
			Description: "import statement",
			re:          mustCompile(`import\s+.*\s+from\s+['"][^'"]+['"]`),
		},
		{
			Name:        "pattern_promise_async",
			Kind:        constraint.KindOperational,
			Description: "async/Promise usage",
			re:          mustCompile(`\basync\b|\bPromise\s*<`),
		},
	}
}
