package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
)

func TestFingerprintChangesWithEveryInput(t *testing.T) {
	base := Fingerprint([]byte("source"), langtag.Go, "combined")
	assert.NotEqual(t, base, Fingerprint([]byte("other"), langtag.Go, "combined"))
	assert.NotEqual(t, base, Fingerprint([]byte("source"), langtag.Python, "combined"))
	assert.NotEqual(t, base, Fingerprint([]byte("source"), langtag.Go, "pattern_only"))
}

func TestGetMissThenPutThenHit(t *testing.T) {
	c, err := New(8, nil)
	require.NoError(t, err)

	fp := Fingerprint([]byte("x"), langtag.Go, "combined")
	_, ok := c.Get(fp)
	assert.False(t, ok)

	set := constraint.ConstraintSet{Constraints: []constraint.Constraint{{Name: "a", Kind: constraint.KindSemantic}}}
	require.NoError(t, c.Put(fp, set))

	got, ok := c.Get(fp)
	require.True(t, ok)
	assert.Equal(t, set.Constraints, got.Constraints)
}

func TestCacheHitReturnsDeepIndependentCopy(t *testing.T) {
	c, err := New(8, nil)
	require.NoError(t, err)

	fp := Fingerprint([]byte("x"), langtag.Go, "combined")
	set := constraint.ConstraintSet{Constraints: []constraint.Constraint{{Name: "a", Metadata: map[string]string{"k": "v"}}}}
	require.NoError(t, c.Put(fp, set))

	first, _ := c.Get(fp)
	first.Constraints[0].Metadata["k"] = "mutated"

	second, _ := c.Get(fp)
	assert.Equal(t, "v", second.Constraints[0].Metadata["k"])
}

func TestCapacityZeroDisablesCache(t *testing.T) {
	c, err := New(0, nil)
	require.NoError(t, err)

	fp := Fingerprint([]byte("x"), langtag.Go, "combined")
	require.NoError(t, c.Put(fp, constraint.ConstraintSet{Constraints: []constraint.Constraint{{Name: "a"}}}))
	_, ok := c.Get(fp)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestEvictionRespectsCapacity(t *testing.T) {
	c, err := New(2, nil)
	require.NoError(t, err)

	for _, s := range []string{"a", "b", "c"} {
		fp := Fingerprint([]byte(s), langtag.Go, "combined")
		require.NoError(t, c.Put(fp, constraint.ConstraintSet{Constraints: []constraint.Constraint{{Name: s}}}))
	}
	assert.Equal(t, 2, c.Len())

	// "a" was least recently used and should have been evicted.
	_, ok := c.Get(Fingerprint([]byte("a"), langtag.Go, "combined"))
	assert.False(t, ok)
}

func TestPutCollisionWithDifferingPayloadReturnsError(t *testing.T) {
	c, err := New(8, nil)
	require.NoError(t, err)

	fp := "forced-collision"
	require.NoError(t, c.Put(fp, constraint.ConstraintSet{Constraints: []constraint.Constraint{{Name: "a"}}}))
	err = c.Put(fp, constraint.ConstraintSet{Constraints: []constraint.Constraint{{Name: "b"}}})
	assert.Error(t, err)
}
