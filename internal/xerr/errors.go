// Package xerr holds the sentinel errors shared across the extraction core.
// Callers compare against these with errors.Is; every wrap uses fmt.Errorf's
// %w verb so the sentinel survives traversal through higher-level calls.
package xerr

import "errors"

var (
	// ErrGrammarUnavailable is returned when a LanguageTag has no linked
	// tree-sitter grammar. Not fatal unless the caller chose tree_sitter_only.
	ErrGrammarUnavailable = errors.New("xerr: grammar unavailable")

	// ErrParseTimeout is returned when a parse exceeds its configured
	// timeout_micros budget.
	ErrParseTimeout = errors.New("xerr: parse timeout exceeded")

	// ErrUnknownLanguage names the soft error of an underivable LanguageTag.
	// No function in the core returns it: langtag lookups yield None, and
	// parsing under an unknown tag fails with ErrGrammarUnavailable.
	ErrUnknownLanguage = errors.New("xerr: unknown language")

	// ErrCacheFingerprintCollision marks an invariant violation: the same
	// fingerprint resolved to two different payloads. Per spec this must be
	// impossible by construction; if observed it is a fatal logic error.
	ErrCacheFingerprintCollision = errors.New("xerr: cache fingerprint collision")

	// ErrNoAssertionParser names the case of a file whose language has no
	// assertion parser registered. Test mining does not return it: it
	// reports that case as an empty ConstraintSet, not a failure.
	ErrNoAssertionParser = errors.New("xerr: no assertion parser for language")
)
