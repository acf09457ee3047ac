package testmining

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/ananke/internal/constraint"
)

func TestExtractGoAssertions(t *testing.T) {
	src := []byte(`
func TestAdd(t *testing.T) {
	assert.Equal(t, 4, Add(2, 2))
	assert.NoError(t, err)
	assert.True(t, ok)
}
`)
	set := Extract(src, "add_test.go")
	assert.Len(t, set.Constraints, 3)
	for _, c := range set.Constraints {
		assert.Equal(t, constraint.SourceTestMining, c.SourceTag)
		assert.GreaterOrEqual(t, c.Confidence, constraint.ConfidenceTestMiningMin)
		assert.LessOrEqual(t, c.Confidence, constraint.ConfidenceTestMiningMax)
	}
}

func TestExtractPythonAssertRaises(t *testing.T) {
	src := []byte(`
def test_raises():
    with self.assertRaises(ValueError):
        do_thing()
`)
	set := Extract(src, "test_thing.py")
	var found bool
	for _, c := range set.Constraints {
		if c.Metadata["assertion_kind"] == string(kindError) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestExtractTypeScriptJestMatchers(t *testing.T) {
	src := []byte(`
test("adds", () => {
  expect(add(2, 2)).toBe(4);
  expect(() => risky()).toThrow();
});
`)
	set := Extract(src, "add.test.ts")
	assert.NotEmpty(t, set.Constraints)
}

func TestExtractRustAssertEq(t *testing.T) {
	src := []byte(`
#[test]
fn it_adds() {
    assert_eq!(add(2, 2), 4);
}
`)
	set := Extract(src, "lib_test.rs")
	assert.NotEmpty(t, set.Constraints)
}

func TestExtractUnknownExtensionYieldsEmptySet(t *testing.T) {
	set := Extract([]byte("whatever"), "notes.txt")
	assert.Empty(t, set.Constraints)
	assert.Equal(t, "test_mining", set.Diagnostics.StrategyUsed)
}

func TestExtractNeverPanicsOnEmptySource(t *testing.T) {
	assert.NotPanics(t, func() {
		Extract([]byte{}, "empty_test.go")
	})
}
