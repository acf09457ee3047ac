package clew

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
	"github.com/oxhq/ananke/internal/telemetry"
)

// TestTypeScriptAsyncClassEndToEnd is spec.md §8 seed scenario 1, exercised
// through the public Facade rather than the internal hybrid package.
func TestTypeScriptAsyncClassEndToEnd(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)
	defer f.Close()

	src := []byte(`class UserService extends EventEmitter {
  async getUser(id: number): Promise<User> { return null; }
}`)
	set := f.ExtractFromCode(context.Background(), src, langtag.TypeScript)
	assert.NotEmpty(t, set.Constraints)
	assert.True(t, set.Diagnostics.TreeSitterAvailable)
}

// TestPythonNotImplementedError is spec.md §8 seed scenario 2.
func TestPythonNotImplementedError(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)
	defer f.Close()

	src := []byte("def handle(self):\n    raise NotImplementedError\n")
	set := f.ExtractFromCode(context.Background(), src, langtag.Python)
	assert.NotEmpty(t, set.Constraints)
}

// TestZigFallsBackToPatterns covers a language with no linked grammar: the
// combined strategy still returns pattern-derived constraints.
func TestZigFallsBackToPatterns(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)
	defer f.Close()

	src := []byte("fn main() void {\n    unreachable;\n}\n")
	set := f.ExtractFromCode(context.Background(), src, langtag.Zig)
	assert.NotEmpty(t, set.Constraints)
	assert.False(t, set.Diagnostics.TreeSitterAvailable)
}

func TestCacheHitAvoidsRecomputation(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)
	defer f.Close()

	src := []byte("func Add(a, b int) int { return a + b }")
	first := f.ExtractFromCode(context.Background(), src, langtag.Go)
	second := f.ExtractFromCode(context.Background(), src, langtag.Go)
	assert.Equal(t, first.Constraints, second.Constraints)
}

func TestExtractFromTestsDelegatesToTestMining(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)
	defer f.Close()

	src := []byte("func TestX(t *testing.T) { assert.Equal(t, 1, 1) }")
	set := f.ExtractFromTests(src, "x_test.go")
	assert.NotEmpty(t, set.Constraints)
	for _, c := range set.Constraints {
		assert.Equal(t, constraint.SourceTestMining, c.SourceTag)
	}
}

// TestExtractFromTelemetryThresholds is spec.md §8 seed scenario 6.
func TestExtractFromTelemetryThresholds(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)
	defer f.Close()

	set := f.ExtractFromTelemetry(telemetry.Telemetry{LatencyP99Millis: 120, ErrorRate: 0.5})
	assert.Len(t, set.Constraints, 2)
}

func TestNegativeCacheCapacityDisablesCaching(t *testing.T) {
	f, err := New(Config{CacheCapacity: -1})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 0, f.cache.Len())
	f.ExtractFromCode(context.Background(), []byte("func F() {}"), langtag.Go)
	assert.Equal(t, 0, f.cache.Len())
}

// TestCacheSpeedup is spec.md §8 seed scenario 5: the first extraction of a
// moderately complex source takes t1; the average of 10 subsequent
// extractions of the same (source, language, strategy) — all cache hits —
// takes t2; t2 must not exceed t1.
func TestCacheSpeedup(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)
	defer f.Close()

	src := []byte(`class UserService extends EventEmitter {
  async getUser(id: number): Promise<User> { return null; }
  async listUsers(): Promise<User[]> { return []; }
  async deleteUser(id: number): Promise<void> {}
}`)

	miss := time.Now()
	f.ExtractFromCode(context.Background(), src, langtag.TypeScript)
	t1 := time.Since(miss)

	var hitsTotal time.Duration
	for i := 0; i < 10; i++ {
		hitStart := time.Now()
		f.ExtractFromCode(context.Background(), src, langtag.TypeScript)
		hitsTotal += time.Since(hitStart)
	}
	t2 := hitsTotal / 10

	assert.LessOrEqual(t, t2, t1)
}

func TestResolveLanguageTagHonorsUserExtensions(t *testing.T) {
	f, err := New(Config{UserExtensions: map[string]langtag.Tag{".mjsx": langtag.JavaScript}})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, langtag.JavaScript, f.ResolveLanguageTag(".mjsx"))
	assert.Equal(t, langtag.Go, f.ResolveLanguageTag(".go"))
}
