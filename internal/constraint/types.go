// Package constraint holds the pure data structures produced by the
// extraction core: Constraint, ConstraintSet, Hole, ExtractionResult, and
// CacheEntry. Nothing here touches tree-sitter or regex — it is the shared
// shape every extractor, detector, and the cache agree on.
package constraint

// Kind classifies what a Constraint asserts about the code it was extracted
// from.
type Kind string

const (
	KindTypeSafety  Kind = "type_safety"
	KindSemantic    Kind = "semantic"
	KindStructural  Kind = "structural"
	KindPerformance Kind = "performance"
	KindSecurity    Kind = "security"
	KindOperational Kind = "operational"
)

// SourceTag records a Constraint's provenance. The legacy member AST_Pattern
// predates the split between AST- and pattern-derived constraints and is
// kept as the pattern matcher's tag for compatibility with prior fixtures.
type SourceTag string

const (
	SourceASTPattern  SourceTag = "AST_Pattern"
	SourceTypeSystem  SourceTag = "Type_System"
	SourceControlFlow SourceTag = "Control_Flow"
	SourceDataFlow    SourceTag = "Data_Flow"
	SourceTestMining  SourceTag = "Test_Mining"
	SourceLLMAnalysis SourceTag = "LLM_Analysis"
	SourceTelemetry   SourceTag = "Telemetry"
	SourceConfig      SourceTag = "Config"
)

// Confidence quanta fixed by provenance. Merging a ConstraintSet must never
// raise a Constraint above the value its source_tag originally carried.
const (
	ConfidenceAST           = 0.95
	ConfidencePattern       = 0.75
	ConfidenceTelemetryMin  = 0.90
	ConfidenceTestMiningMin = 0.85
	ConfidenceTestMiningMax = 0.95
)

// Constraint is a named, typed, confidence-weighted predicate extracted from
// source.
type Constraint struct {
	Name        string
	Kind        Kind
	SourceTag   SourceTag
	Confidence  float64
	Description string
	Metadata    map[string]string
}

// ConstraintSet is an ordered, deduplicated collection of Constraints plus
// provenance diagnostics describing how it was produced.
type ConstraintSet struct {
	Constraints []Constraint
	Diagnostics Diagnostics
}

// Diagnostics records how a ConstraintSet came to be, independent of its
// contents: which strategy ran, whether a grammar was available, and any
// soft errors encountered along the way.
type Diagnostics struct {
	StrategyUsed        string
	TreeSitterAvailable bool
	TreeSitterErrors    []string
	ExtractionMicros    int64
	RequestID           string
}

// HoleKind classifies a detected unfinished-code location.
type HoleKind string

const (
	HoleEmptyFunctionBody     HoleKind = "empty_function_body"
	HoleUnimplementedMethod   HoleKind = "unimplemented_method"
	HoleIncompleteMatch       HoleKind = "incomplete_match"
	HoleMissingTypeAnnotation HoleKind = "missing_type_annotation"
	HoleUserMarkedTODO        HoleKind = "user_marked_todo"
)

// Origin distinguishes a Hole the author flagged explicitly from one the
// detector inferred from code shape.
type Origin string

const (
	OriginUserMarked Origin = "user_marked"
	OriginInferred   Origin = "inferred"
)

// Location pinpoints a Hole within a source file.
type Location struct {
	File      string
	Line      int
	Col       int
	StartByte int
	EndByte   int
}

// Hole is a detected unfinished-code location with a kind and confidence.
type Hole struct {
	Kind       HoleKind
	Location   Location
	Confidence float64
	Origin     Origin
	Hint       string
}

// ExtractionResult is the Hybrid Extractor's return value: the constraints it
// produced plus the diagnostics explaining how.
type ExtractionResult struct {
	Constraints         []Constraint
	StrategyUsed        string
	TreeSitterAvailable bool
	TreeSitterErrors    []string
	ExtractionMicros    int64
}

// CacheEntry is what the Constraint Cache stores: a fingerprint and the
// ConstraintSet it resolves to. The cache always hands back a deep clone of
// Set, never this struct itself.
type CacheEntry struct {
	Fingerprint string
	Set         ConstraintSet
}

// Clone returns a deep, independently owned copy of the ConstraintSet so
// that cache hits can never be mutated by a caller into affecting cache
// storage or other callers.
func (s ConstraintSet) Clone() ConstraintSet {
	out := ConstraintSet{
		Constraints: make([]Constraint, len(s.Constraints)),
		Diagnostics: s.Diagnostics,
	}
	for i, c := range s.Constraints {
		out.Constraints[i] = c.clone()
	}
	if s.Diagnostics.TreeSitterErrors != nil {
		out.Diagnostics.TreeSitterErrors = append([]string(nil), s.Diagnostics.TreeSitterErrors...)
	}
	return out
}

func (c Constraint) clone() Constraint {
	out := c
	if c.Metadata != nil {
		out.Metadata = make(map[string]string, len(c.Metadata))
		for k, v := range c.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}
