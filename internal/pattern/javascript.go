package pattern

import "github.com/oxhq/ananke/internal/constraint"

func javascriptRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_function_decl",
			Kind:        constraint.KindSemantic,
			Description: "function declaration or expression",
			re:          mustCompile(`(async\s+)?function\s*[A-Za-z_$][\w$]*?\s*\(|\([^)]*\)\s*=>`),
		},
		{
			Name:        "pattern_class_decl",
			Kind:        constraint.KindStructural,
			Description: "class declaration",
			re:          mustCompile(`class\s+[A-Za-z_$][\w$]*`),
		},
		{
			Name:        "pattern_import_require",
			Kind:        constraint.KindStructural,
			Description: "import statement or require call",
			re:          mustCompile(`import\s+.*\s+from\s+['"][^'"]+['"]|require\(\s*['"][^'"]+['"]\s*\)`),
		},
		{
			Name:        "pattern_promise_async",
			Kind:        constraint.KindOperational,
			Description: "async/Promise usage",
			re:          mustCompile(`\basync\b|\bPromise\s*\(`),
		},
	}
}
