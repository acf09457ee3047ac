// Package testmining implements the Clew Facade's extract_from_tests entry
// point (spec.md §4.8): it scans a test file's raw source for assertion
// calls and converts each into a Constraint with source_tag=Test_Mining.
package testmining

import (
	"path/filepath"
	"strconv"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
)

// assertionKind classifies the shape of a mined assertion. Confidence is
// quantized per kind, within the spec-mandated [0.85, 0.95] test-mining
// band.
type assertionKind string

const (
	kindEquality   assertionKind = "equality"
	kindTruthiness assertionKind = "truthiness"
	kindTypeCheck  assertionKind = "type_check"
	kindError      assertionKind = "error_expected"
	kindProperty   assertionKind = "property_check"
	kindRegex      assertionKind = "regex_match"
	kindComparison assertionKind = "comparison"
	kindMembership assertionKind = "membership"
)

var confidenceByKind = map[assertionKind]float64{
	kindEquality:   0.95,
	kindComparison: 0.93,
	kindError:      0.92,
	kindTypeCheck:  0.90,
	kindRegex:      0.90,
	kindMembership: 0.90,
	kindProperty:   0.88,
	kindTruthiness: 0.85,
}

type assertionRule struct {
	kind assertionKind
	re   *matcher
}

// Extract mines assertions from testSource, using fileName's extension to
// pick a language's assertion catalogue. When no assertion parser exists
// for that language, it returns an empty ConstraintSet — never an error,
// per spec.md §4.8.
func Extract(testSource []byte, fileName string) constraint.ConstraintSet {
	tag := langtag.FromExtension(filepath.Ext(fileName), nil)
	rules, ok := catalog[tag]
	if !ok {
		return constraint.ConstraintSet{
			Diagnostics: constraint.Diagnostics{StrategyUsed: "test_mining"},
		}
	}

	var out []constraint.Constraint
	for _, rule := range rules {
		for _, loc := range rule.re.findAllIndex(testSource) {
			out = append(out, constraint.Constraint{
				Name:        "test_mined_" + string(rule.kind) + "_" + strconv.Itoa(loc[0]),
				Kind:        constraint.KindSemantic,
				SourceTag:   constraint.SourceTestMining,
				Confidence:  confidenceByKind[rule.kind],
				Description: "assertion mined from test source: " + string(rule.kind),
				Metadata: map[string]string{
					"assertion_kind": string(rule.kind),
					"start_byte":     strconv.Itoa(loc[0]),
					"end_byte":       strconv.Itoa(loc[1]),
				},
			})
		}
	}
	return constraint.ConstraintSet{
		Constraints: out,
		Diagnostics: constraint.Diagnostics{StrategyUsed: "test_mining", TreeSitterAvailable: false},
	}
}
