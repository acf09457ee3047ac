// Package clew is the public Facade (spec.md §4.8): the single entry point
// collaborators use to extract Constraints from code, tests, or telemetry
// without touching the extraction core's internal packages directly.
package clew

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oxhq/ananke/internal/cache"
	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/hybrid"
	"github.com/oxhq/ananke/internal/langtag"
	"github.com/oxhq/ananke/internal/telemetry"
	"github.com/oxhq/ananke/internal/testmining"
)

// Config configures a Facade. The zero value is usable: it selects the
// combined strategy, the default parse timeout, and a 256-entry cache.
type Config struct {
	// Strategy picks the Hybrid Extractor strategy extract_from_code uses.
	// Zero value resolves to hybrid.Combined.
	Strategy hybrid.Strategy

	// ParseTimeoutMicros bounds a single parse. Zero resolves to
	// sitter.DefaultTimeoutMicros.
	ParseTimeoutMicros int64

	// CacheCapacity is the Constraint Cache's max entry count. Zero resolves
	// to cache.DefaultCapacity; pass a negative value to explicitly disable
	// caching (see cache.New's capacity-0 contract — Facade maps negative
	// here to capacity 0 so a caller can opt out without importing the
	// cache package directly).
	CacheCapacity int

	// UserExtensions overrides or extends the builtin extension→LanguageTag
	// table, per spec.md §6.
	UserExtensions map[string]langtag.Tag

	// Logger receives structured diagnostics from every layer. A nil Logger
	// defaults to a no-op logger.
	Logger *zap.Logger
}

// Facade is the Clew entry point. It holds no mutable global state beyond
// its own Cache and Extractor, so parallel extraction requests from
// separate Facade instances are independent, per spec.md §5.
type Facade struct {
	cfg       Config
	extractor *hybrid.Extractor
	cache     *cache.Cache
	logger    *zap.Logger
}

// New constructs a Facade. The only failure mode is allocator failure
// inside the underlying cache construction, per spec.md §4.8.
func New(cfg Config) (*Facade, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Strategy == "" {
		cfg.Strategy = hybrid.Combined
	}

	capacity := cfg.CacheCapacity
	if capacity < 0 {
		capacity = 0
	} else if capacity == 0 {
		capacity = cache.DefaultCapacity
	}
	c, err := cache.New(capacity, logger)
	if err != nil {
		return nil, err
	}

	return &Facade{
		cfg:       cfg,
		extractor: hybrid.New(logger),
		cache:     c,
		logger:    logger,
	}, nil
}

// Close releases the Facade's Parser Facade resources.
func (f *Facade) Close() { f.extractor.Close() }

// ExtractFromCode runs the full hybrid pipeline under the Facade's
// configured strategy, consulting the Constraint Cache first. An unknown
// LanguageTag is not an error: the Hybrid Extractor's tree-sitter arm
// degrades to pattern-only, per spec.md §4.8.
func (f *Facade) ExtractFromCode(ctx context.Context, source []byte, tag langtag.Tag) constraint.ConstraintSet {
	requestID := uuid.NewString()
	start := time.Now()

	fp := cache.Fingerprint(source, tag, string(f.cfg.Strategy))
	if set, ok := f.cache.Get(fp); ok {
		f.logger.Debug("clew: cache hit", zap.String("fingerprint", fp), zap.String("request_id", requestID))
		set.Diagnostics.RequestID = requestID
		set.Diagnostics.ExtractionMicros = time.Since(start).Microseconds()
		return set
	}

	result := f.extractor.Extract(ctx, source, tag, f.cfg.Strategy, f.cfg.ParseTimeoutMicros)
	set := constraint.ConstraintSet{
		Constraints: result.Constraints,
		Diagnostics: constraint.Diagnostics{
			StrategyUsed:        result.StrategyUsed,
			TreeSitterAvailable: result.TreeSitterAvailable,
			TreeSitterErrors:    result.TreeSitterErrors,
			ExtractionMicros:    result.ExtractionMicros,
			RequestID:           requestID,
		},
	}

	if err := f.cache.Put(fp, set); err != nil {
		f.logger.Warn("clew: cache put failed", zap.Error(err), zap.String("request_id", requestID))
	}
	return set
}

// ExtractFromTests mines assertions out of a test file's raw source. When
// the file's extension carries no assertion catalogue, the returned
// ConstraintSet is empty, never an error.
func (f *Facade) ExtractFromTests(testSource []byte, fileName string) constraint.ConstraintSet {
	return testmining.Extract(testSource, fileName)
}

// ExtractFromTelemetry deterministically maps telemetry fields to
// Constraints when their thresholds are exceeded.
func (f *Facade) ExtractFromTelemetry(t telemetry.Telemetry) constraint.ConstraintSet {
	return telemetry.Extract(t)
}

// ResolveLanguageTag derives a LanguageTag from a file extension, honoring
// the Facade's configured UserExtensions overrides.
func (f *Facade) ResolveLanguageTag(extension string) langtag.Tag {
	return langtag.FromExtension(extension, f.cfg.UserExtensions)
}
