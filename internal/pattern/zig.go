package pattern

import "github.com/oxhq/ananke/internal/constraint"

// zigRules is the pattern-only path's sole coverage for Zig: spec.md §9
// documents Zig as having no linked grammar anywhere in the retrieved
// corpus, so this catalogue carries the entire AST-adjacent signal for the
// language.
func zigRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_function_decl",
			Kind:        constraint.KindSemantic,
			Description: "function declaration",
			re:          mustCompile(`\bfn\s+[A-Za-z_]\w*\s*\(`),
		},
		{
			Name:        "pattern_error_union",
			Kind:        constraint.KindOperational,
			Description: "error-union return type",
			re:          mustCompile(`\)\s*!\s*[A-Za-z_]\w*`),
		},
		{
			Name:        "pattern_try_expr",
			Kind:        constraint.KindOperational,
			Description: "try expression",
			re:          mustCompile(`\btry\s+[A-Za-z_]`),
		},
		{
			Name:        "pattern_struct_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "struct declaration",
			re:          mustCompile(`\bstruct\s*\{`),
		},
	}
}
