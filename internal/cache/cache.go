// Package cache implements the Constraint Cache (spec.md §4.7):
// content-addressed, in-process memoization of ConstraintSets keyed on
// (source fingerprint, language tag, strategy, extractor version).
package cache

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2/simplelru"
	"go.uber.org/zap"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
	"github.com/oxhq/ananke/internal/xerr"
)

// ExtractorVersion is folded into every fingerprint so a future change to
// extraction semantics invalidates prior cache entries rather than serving
// stale payloads under the same key.
const ExtractorVersion = "v1"

// DefaultCapacity is used when a caller passes a non-positive capacity to
// New, other than the explicit zero meaning "cache disabled".
const DefaultCapacity = 256

// Cache is shared across threads behind a single-writer/multiple-readers
// discipline: Get acquires a shared lock, Put (insert and eviction)
// acquires an exclusive lock, per spec.md §5.
type Cache struct {
	mu       sync.RWMutex
	lru      *lru.LRU[string, constraint.ConstraintSet]
	disabled bool
	logger   *zap.Logger
}

// New builds a Cache with the given entry capacity. Capacity 0 disables the
// cache entirely, per the cache_capacity configuration option in spec.md §6;
// every Get then misses and Put is a no-op. A nil logger defaults to a no-op
// logger.
func New(capacity int, logger *zap.Logger) (*Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if capacity == 0 {
		return &Cache{disabled: true, logger: logger}, nil
	}
	if capacity < 0 {
		capacity = DefaultCapacity
	}
	onEvict := func(fingerprint string, _ constraint.ConstraintSet) {
		logger.Debug("cache eviction", zap.String("fingerprint", fingerprint))
	}
	l, err := lru.NewLRU[string, constraint.ConstraintSet](capacity, onEvict)
	if err != nil {
		return nil, fmt.Errorf("cache: build LRU: %w", err)
	}
	return &Cache{lru: l, logger: logger}, nil
}

// Fingerprint computes the content-addressed cache key: a combination of
// the source bytes' hash, the LanguageTag, the strategy identifier, and the
// extractor version, so that any of the four changing yields a different
// key.
func Fingerprint(source []byte, tag langtag.Tag, strategy string) string {
	sourceHash := xxhash.Sum64(source)
	tagHash := xxhash.Sum64String(string(tag))
	strategyHash := xxhash.Sum64String(strategy)
	versionHash := xxhash.Sum64String(ExtractorVersion)
	combined := sourceHash ^ tagHash ^ strategyHash ^ versionHash
	return fmt.Sprintf("%016x", combined)
}

// Get returns a fresh, independently owned deep clone of the cached
// ConstraintSet for fingerprint, so that evicting the stored entry later
// never invalidates copies already returned.
func (c *Cache) Get(fingerprint string) (constraint.ConstraintSet, bool) {
	if c.disabled {
		return constraint.ConstraintSet{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.lru.Get(fingerprint)
	if !ok {
		return constraint.ConstraintSet{}, false
	}
	return set.Clone(), true
}

// Put deep-clones set into the cache under fingerprint. If fingerprint
// already maps to a payload whose constraint names or kinds differ (the
// comparison looks at nothing else), that is the invariant violation
// spec.md §7 calls an impossible-by-construction fatal logic error; Put
// reports it via ErrCacheFingerprintCollision instead of overwriting,
// since the contract guarantees it cannot legitimately happen.
func (c *Cache) Put(fingerprint string, set constraint.ConstraintSet) error {
	if c.disabled {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.lru.Peek(fingerprint); ok && !sameConstraints(existing, set) {
		c.logger.Error("cache fingerprint collision with differing payload", zap.String("fingerprint", fingerprint))
		return fmt.Errorf("%w: fingerprint %s", xerr.ErrCacheFingerprintCollision, fingerprint)
	}

	c.lru.Add(fingerprint, set.Clone())
	return nil
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	if c.disabled {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// Purge evicts every entry.
func (c *Cache) Purge() {
	if c.disabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}

func sameConstraints(a, b constraint.ConstraintSet) bool {
	if len(a.Constraints) != len(b.Constraints) {
		return false
	}
	for i := range a.Constraints {
		if a.Constraints[i].Name != b.Constraints[i].Name || a.Constraints[i].Kind != b.Constraints[i].Kind {
			return false
		}
	}
	return true
}
