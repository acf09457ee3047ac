package pattern

import "github.com/oxhq/ananke/internal/constraint"

func javaRules() []Rule {
	return []Rule{
		{
			Name:        "pattern_method_decl",
			Kind:        constraint.KindSemantic,
			Description: "method declaration",
			re:          mustCompile(`\b(public|private|protected)\s+[\w<>\[\]]+\s+[A-Za-z_]\w*\s*\([^;{]*\)\s*\{`),
		},
		{
			Name:        "pattern_class_interface_decl",
			Kind:        constraint.KindTypeSafety,
			Description: "class or interface declaration",
			re:          mustCompile(`\b(class|interface)\s+[A-Za-z_]\w*`),
		},
		{
			Name:        "pattern_import",
			Kind:        constraint.KindStructural,
			Description: "import declaration",
			re:          mustCompile(`\bimport\s+[\w.]+;`),
		},
	}
}
