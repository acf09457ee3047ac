// Package sitter implements the Parser Facade (spec.md §4.1): a uniform
// parse operation over the linked tree-sitter grammars, producing immutable
// SyntaxTrees pinned to the bytes they were parsed from.
package sitter

import (
	"context"
	"fmt"
	"time"

	rawsitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"

	"github.com/oxhq/ananke/internal/langtag"
	"github.com/oxhq/ananke/internal/xerr"
)

// DefaultTimeoutMicros is used when a caller passes a non-positive
// timeout_micros, matching the facade constructor's documented fallback.
const DefaultTimeoutMicros = 2_000_000

// Facade holds the grammar state for one parsing thread. It is cheap to
// construct and must not be shared across goroutines — spec.md §5 makes the
// facade thread-compatible, not thread-safe per instance.
type Facade struct {
	parser *rawsitter.Parser
	logger *zap.Logger
}

// NewFacade builds a Facade. A nil logger defaults to a no-op logger so the
// facade never requires a caller to wire observability to function.
func NewFacade(logger *zap.Logger) *Facade {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Facade{parser: rawsitter.NewParser(), logger: logger}
}

// Parse produces a SyntaxTree for source under the given LanguageTag. It
// fails with ErrGrammarUnavailable when tag has no linked grammar and
// ErrParseTimeout when timeoutMicros elapses first; otherwise it always
// returns a tree, with HasError set when the grammar had to recover.
func (f *Facade) Parse(ctx context.Context, source []byte, tag langtag.Tag, timeoutMicros int64) (*SyntaxTree, error) {
	lang, ok := grammarFor(tag)
	if !ok {
		f.logger.Debug("grammar unavailable", zap.String("lang", string(tag)))
		return nil, fmt.Errorf("%w: %s", xerr.ErrGrammarUnavailable, tag)
	}
	f.parser.SetLanguage(lang)

	if timeoutMicros <= 0 {
		timeoutMicros = DefaultTimeoutMicros
	}
	parseCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMicros)*time.Microsecond)
	defer cancel()

	raw, err := f.parser.ParseCtx(parseCtx, nil, source)
	if err != nil {
		if parseCtx.Err() != nil {
			f.logger.Debug("parse timeout", zap.String("lang", string(tag)), zap.Int64("timeout_micros", timeoutMicros))
			return nil, fmt.Errorf("%w: %s after %dµs", xerr.ErrParseTimeout, tag, timeoutMicros)
		}
		return nil, fmt.Errorf("sitter: parse %s: %w", tag, err)
	}

	tree := &SyntaxTree{
		lang:     tag,
		source:   source,
		raw:      raw,
		hasError: raw.RootNode().HasError(),
	}
	if tree.hasError {
		f.logger.Debug("malformed input recovered", zap.String("lang", string(tag)))
	}
	return tree, nil
}

// Close releases the parser's internal grammar state. A Facade must not be
// used after Close.
func (f *Facade) Close() {
	f.parser.Close()
}
