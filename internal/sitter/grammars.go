package sitter

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/oxhq/ananke/internal/langtag"
)

// grammars is the total table of linked tree-sitter grammars. Zig has no
// entry: no retrieved example links a Zig grammar, so Zig always resolves to
// GrammarUnavailable on the AST path, consistent with spec.md §9's
// documented Zig under-reporting allowance.
var grammars = map[langtag.Tag]func() *sitter.Language{
	langtag.Go:         golang.GetLanguage,
	langtag.Python:     python.GetLanguage,
	langtag.TypeScript: typescript.GetLanguage,
	langtag.JavaScript: javascript.GetLanguage,
	langtag.Rust:       rust.GetLanguage,
	langtag.C:          c.GetLanguage,
	langtag.Cpp:        cpp.GetLanguage,
	langtag.Java:       java.GetLanguage,
}

// grammarFor resolves a LanguageTag to its linked tree-sitter grammar. The
// bool return is false for Zig and for any tag outside the closed enum.
func grammarFor(tag langtag.Tag) (*sitter.Language, bool) {
	ctor, ok := grammars[tag]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// GrammarLinked reports whether tag has a linked tree-sitter grammar,
// without constructing one, for callers that need to know grammar
// availability before parsing.
func GrammarLinked(tag langtag.Tag) bool {
	_, ok := grammars[tag]
	return ok
}
