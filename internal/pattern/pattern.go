// Package pattern implements the Pattern Matcher (spec.md §4.3): per-language
// catalogues of textual patterns, each pairing a regex with a Constraint
// template. It operates on raw source bytes; no grammar is required.
//
// Known limitation, preserved deliberately: these regexes run over the raw
// source string and will match inside comments and string literals. Spec.md
// §9 documents this as a deliberate fallback precision trade-off, not a bug.
package pattern

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
)

// Rule pairs a compiled matcher with the Constraint template it produces.
type Rule struct {
	Name        string
	Kind        constraint.Kind
	Description string
	re          *regexp.Regexp
}

// catalog is the per-language rule set. Built once at package init; rules
// are immutable thereafter.
var catalog = map[langtag.Tag][]Rule{
	langtag.Go:         goRules(),
	langtag.TypeScript: typescriptRules(),
	langtag.JavaScript: javascriptRules(),
	langtag.Python:     pythonRules(),
	langtag.Rust:       rustRules(),
	langtag.Zig:        zigRules(),
	langtag.C:          cRules(),
	langtag.Cpp:        cppRules(),
	langtag.Java:       javaRules(),
}

func mustCompile(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}

// Match runs every rule in tag's catalogue against source and returns one
// Constraint per match, in source-scan order. Every emitted Constraint has
// confidence 0.75 and source_tag AST_Pattern per spec.md §4.3. An unknown
// LanguageTag yields an empty, non-error result.
func Match(source []byte, tag langtag.Tag) []constraint.Constraint {
	rules, ok := catalog[tag]
	if !ok {
		return nil
	}

	type placed struct {
		c     constraint.Constraint
		start int
	}
	var found []placed
	for _, rule := range rules {
		locs := rule.re.FindAllIndex(source, -1)
		for _, loc := range locs {
			found = append(found, placed{constraint.Constraint{
				Name:        rule.Name,
				Kind:        rule.Kind,
				SourceTag:   constraint.SourceASTPattern,
				Confidence:  constraint.ConfidencePattern,
				Description: rule.Description,
				Metadata: map[string]string{
					"start_byte": strconv.Itoa(loc[0]),
					"end_byte":   strconv.Itoa(loc[1]),
				},
			}, loc[0]})
		}
	}
	if len(found) == 0 {
		return nil
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })
	out := make([]constraint.Constraint, len(found))
	for i, p := range found {
		out[i] = p.c
	}
	return out
}
