// Package hybrid implements the Hybrid Extractor (spec.md §4.6): the
// orchestrator that runs the AST and Pattern paths under a chosen strategy,
// merges and deduplicates their output, and records diagnostics.
package hybrid

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/oxhq/ananke/internal/astextract"
	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
	"github.com/oxhq/ananke/internal/pattern"
	astsitter "github.com/oxhq/ananke/internal/sitter"
	"github.com/oxhq/ananke/internal/xerr"
)

// Strategy selects which extractors run and how their outputs merge.
type Strategy string

const (
	TreeSitterOnly         Strategy = "tree_sitter_only"
	PatternOnly            Strategy = "pattern_only"
	TreeSitterWithFallback Strategy = "tree_sitter_with_fallback"
	Combined               Strategy = "combined"
)

// Extractor runs the hybrid pipeline. It is thread-compatible, not
// thread-safe per instance, because it owns a Parser Facade — spec.md §5.
// Per-thread instances are cheap to construct.
type Extractor struct {
	facade *astsitter.Facade
	logger *zap.Logger
}

// New builds an Extractor. A nil logger defaults to a no-op logger.
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{facade: astsitter.NewFacade(logger), logger: logger}
}

// Close releases the Extractor's Parser Facade.
func (e *Extractor) Close() { e.facade.Close() }

// Extract runs the state machine Start → Parse? → Extract(AST) →
// Extract(Patterns) → Merge → Emit, with Parse? skipped for PatternOnly.
// ExtractionMicros in the returned ExtractionResult is the wall-clock time,
// in microseconds, the chosen strategy took.
func (e *Extractor) Extract(ctx context.Context, source []byte, tag langtag.Tag, strategy Strategy, timeoutMicros int64) constraint.ExtractionResult {
	start := time.Now()

	var result constraint.ExtractionResult
	switch strategy {
	case TreeSitterOnly:
		result = e.treeSitterOnly(ctx, source, tag, timeoutMicros)
	case PatternOnly:
		result = e.patternOnly(source, tag)
	case TreeSitterWithFallback:
		result = e.treeSitterWithFallback(ctx, source, tag, timeoutMicros)
	case Combined:
		result = e.combined(ctx, source, tag, timeoutMicros)
	default:
		result = e.combined(ctx, source, tag, timeoutMicros)
	}

	result.ExtractionMicros = time.Since(start).Microseconds()
	return result
}

func (e *Extractor) parse(ctx context.Context, source []byte, tag langtag.Tag, timeoutMicros int64) (*astsitter.SyntaxTree, error) {
	return e.facade.Parse(ctx, source, tag, timeoutMicros)
}

func (e *Extractor) treeSitterOnly(ctx context.Context, source []byte, tag langtag.Tag, timeoutMicros int64) constraint.ExtractionResult {
	tree, err := e.parse(ctx, source, tag, timeoutMicros)
	if err != nil {
		e.logger.Debug("tree_sitter_only: grammar unavailable or timeout", zap.Error(err))
		return constraint.ExtractionResult{
			StrategyUsed:        string(TreeSitterOnly),
			TreeSitterAvailable: false,
			TreeSitterErrors:    []string{err.Error()},
		}
	}
	constraints := astextract.Extract(tree, tag)
	result := constraint.ExtractionResult{
		Constraints:         constraints,
		StrategyUsed:        string(TreeSitterOnly),
		TreeSitterAvailable: true,
	}
	if tree.HasError() {
		result.TreeSitterErrors = []string{"malformed input recovered"}
	}
	return result
}

func (e *Extractor) patternOnly(source []byte, tag langtag.Tag) constraint.ExtractionResult {
	constraints := pattern.Match(source, tag)
	return constraint.ExtractionResult{
		Constraints:         constraints,
		StrategyUsed:        string(PatternOnly),
		TreeSitterAvailable: false,
	}
}

func (e *Extractor) treeSitterWithFallback(ctx context.Context, source []byte, tag langtag.Tag, timeoutMicros int64) constraint.ExtractionResult {
	tree, err := e.parse(ctx, source, tag, timeoutMicros)
	if err != nil {
		e.logger.Debug("tree_sitter_with_fallback: falling back to patterns", zap.Error(err))
		result := e.patternOnly(source, tag)
		result.StrategyUsed = string(TreeSitterWithFallback)
		result.TreeSitterErrors = []string{err.Error()}
		return result
	}

	constraints := astextract.Extract(tree, tag)
	if len(constraints) == 0 && tree.HasError() {
		e.logger.Debug("tree_sitter_with_fallback: parse error with no recovered constraints, falling back")
		result := e.patternOnly(source, tag)
		result.StrategyUsed = string(TreeSitterWithFallback)
		result.TreeSitterErrors = []string{"malformed input, no recovered constraints"}
		return result
	}

	result := constraint.ExtractionResult{
		Constraints:         constraints,
		StrategyUsed:        string(TreeSitterWithFallback),
		TreeSitterAvailable: true,
	}
	if tree.HasError() {
		result.TreeSitterErrors = []string{"malformed input recovered"}
	}
	return result
}

func (e *Extractor) combined(ctx context.Context, source []byte, tag langtag.Tag, timeoutMicros int64) constraint.ExtractionResult {
	patternConstraints := pattern.Match(source, tag)

	tree, err := e.parse(ctx, source, tag, timeoutMicros)
	if err != nil {
		e.logger.Debug("combined: AST arm unavailable, pattern-only result", zap.Error(err))
		return constraint.ExtractionResult{
			Constraints:         patternConstraints,
			StrategyUsed:        string(Combined),
			TreeSitterAvailable: false,
			TreeSitterErrors:    []string{err.Error()},
		}
	}

	astConstraints := astextract.Extract(tree, tag)
	merged := constraint.MergeConstraints(astConstraints, patternConstraints)

	result := constraint.ExtractionResult{
		Constraints:         merged,
		StrategyUsed:        string(Combined),
		TreeSitterAvailable: true,
	}
	if tree.HasError() {
		result.TreeSitterErrors = []string{"malformed input recovered"}
	}
	return result
}

// IsGrammarUnavailable reports whether err came from an unlinked grammar, a
// convenience wrapper over errors.Is for callers outside this package.
func IsGrammarUnavailable(err error) bool {
	return errors.Is(err, xerr.ErrGrammarUnavailable)
}
