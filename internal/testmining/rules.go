package testmining

import (
	"regexp"

	"github.com/oxhq/ananke/internal/langtag"
)

// matcher wraps a compiled regular expression, mirroring the pattern
// package's Rule design so the two mining paths stay structurally
// consistent with each other.
type matcher struct {
	re *regexp.Regexp
}

func mustMatcher(expr string) *matcher {
	return &matcher{re: regexp.MustCompile(expr)}
}

func (m *matcher) findAllIndex(source []byte) [][]int {
	return m.re.FindAllIndex(source, -1)
}

// catalog holds the per-language assertion rule sets. Go is grounded on
// testify (the corpus's own test dependency); the others mirror each
// ecosystem's dominant assertion library.
var catalog = map[langtag.Tag][]assertionRule{
	langtag.Go: {
		{kindEquality, mustMatcher(`assert\.Equal(?:Values)?\(`)},
		{kindComparison, mustMatcher(`assert\.(?:Greater|Less)(?:OrEqual)?\(`)},
		{kindTruthiness, mustMatcher(`assert\.(?:True|False)\(`)},
		{kindError, mustMatcher(`assert\.(?:NoError|Error)\(`)},
		{kindTypeCheck, mustMatcher(`assert\.IsType\(`)},
		{kindMembership, mustMatcher(`assert\.(?:Contains|Subset)\(`)},
		{kindRegex, mustMatcher(`assert\.Regexp\(`)},
		{kindProperty, mustMatcher(`assert\.(?:Len|Empty|NotEmpty|Nil|NotNil)\(`)},
	},
	langtag.Python: {
		{kindEquality, mustMatcher(`\bassertEqual\(|^\s*assert\s+\S+\s*==`)},
		{kindComparison, mustMatcher(`\bassert(?:Greater|Less)(?:Equal)?\(`)},
		{kindTruthiness, mustMatcher(`\bassertTrue\(|\bassertFalse\(`)},
		{kindError, mustMatcher(`\bassertRaises\(`)},
		{kindTypeCheck, mustMatcher(`\bassertIsInstance\(`)},
		{kindMembership, mustMatcher(`\bassertIn\(|\bassertNotIn\(`)},
		{kindRegex, mustMatcher(`\bassertRegex\(`)},
		{kindProperty, mustMatcher(`\bassertIsNone\(|\bassertIsNotNone\(`)},
	},
	langtag.TypeScript: {
		{kindEquality, mustMatcher(`\.toBe\(|\.toEqual\(`)},
		{kindComparison, mustMatcher(`\.toBeGreaterThan\(|\.toBeLessThan\(`)},
		{kindTruthiness, mustMatcher(`\.toBeTruthy\(|\.toBeFalsy\(`)},
		{kindError, mustMatcher(`\.toThrow\(`)},
		{kindTypeCheck, mustMatcher(`\.toBeInstanceOf\(`)},
		{kindMembership, mustMatcher(`\.toContain(?:Equal)?\(`)},
		{kindRegex, mustMatcher(`\.toMatch\(`)},
		{kindProperty, mustMatcher(`\.toHaveProperty\(|\.toBeDefined\(|\.toBeNull\(`)},
	},
	langtag.Rust: {
		{kindEquality, mustMatcher(`assert_eq!\(`)},
		{kindComparison, mustMatcher(`assert!\([^)]*(?:<|>)`)},
		{kindTruthiness, mustMatcher(`assert!\(`)},
		{kindError, mustMatcher(`#\[should_panic`)},
		{kindTypeCheck, mustMatcher(`matches!\(`)},
		{kindMembership, mustMatcher(`\.contains\(`)},
		{kindProperty, mustMatcher(`assert_ne!\(`)},
	},
}

func init() {
	catalog[langtag.JavaScript] = catalog[langtag.TypeScript]
}
