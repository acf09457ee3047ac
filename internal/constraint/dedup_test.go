package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConstraintsPrefersHigherConfidence(t *testing.T) {
	ast := []Constraint{{Name: "getUser", Kind: KindSemantic, Confidence: ConfidenceAST, SourceTag: SourceTypeSystem}}
	pattern := []Constraint{{Name: "getUser", Kind: KindSemantic, Confidence: ConfidencePattern, SourceTag: SourceASTPattern}}

	merged := MergeConstraints(ast, pattern)
	require.Len(t, merged, 1)
	assert.Equal(t, ConfidenceAST, merged[0].Confidence)
	assert.Equal(t, SourceTypeSystem, merged[0].SourceTag)
}

func TestMergeConstraintsKeepsDistinctMetadata(t *testing.T) {
	ast := []Constraint{{Name: "x", Kind: KindStructural, Metadata: map[string]string{"line": "1"}}}
	pattern := []Constraint{{Name: "x", Kind: KindStructural, Metadata: map[string]string{"line": "2"}}}

	merged := MergeConstraints(ast, pattern)
	assert.Len(t, merged, 2)
}

func TestMergeConstraintsAppendsPatternOnlyInSourceOrder(t *testing.T) {
	ast := []Constraint{{Name: "a", Kind: KindSemantic}}
	pattern := []Constraint{{Name: "b", Kind: KindStructural}, {Name: "c", Kind: KindStructural}}

	merged := MergeConstraints(ast, pattern)
	require.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].Name)
	assert.Equal(t, "b", merged[1].Name)
	assert.Equal(t, "c", merged[2].Name)
}

func TestDedupHolesKeepsHigherConfidenceOnOverlap(t *testing.T) {
	holes := []Hole{
		{Kind: HoleEmptyFunctionBody, Location: Location{File: "a.go", StartByte: 0, EndByte: 10}, Confidence: 0.9},
		{Kind: HoleEmptyFunctionBody, Location: Location{File: "a.go", StartByte: 5, EndByte: 15}, Confidence: 0.95},
	}

	out := DedupHoles(holes)
	require.Len(t, out, 1)
	assert.Equal(t, 0.95, out[0].Confidence)
}

func TestDedupHolesKeepsNonOverlapping(t *testing.T) {
	holes := []Hole{
		{Kind: HoleUserMarkedTODO, Location: Location{File: "a.go", StartByte: 0, EndByte: 5}, Confidence: 1},
		{Kind: HoleUserMarkedTODO, Location: Location{File: "a.go", StartByte: 50, EndByte: 55}, Confidence: 1},
	}

	out := DedupHoles(holes)
	assert.Len(t, out, 2)
}

func TestConstraintSetCloneIsIndependent(t *testing.T) {
	orig := ConstraintSet{Constraints: []Constraint{{Name: "x", Metadata: map[string]string{"a": "1"}}}}
	clone := orig.Clone()
	clone.Constraints[0].Metadata["a"] = "2"

	assert.Equal(t, "1", orig.Constraints[0].Metadata["a"])
	assert.Equal(t, "2", clone.Constraints[0].Metadata["a"])
}
