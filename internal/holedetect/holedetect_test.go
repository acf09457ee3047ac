package holedetect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
	astsitter "github.com/oxhq/ananke/internal/sitter"
)

func parse(t *testing.T, src string, tag langtag.Tag) *astsitter.SyntaxTree {
	t.Helper()
	f := astsitter.NewFacade(nil)
	t.Cleanup(f.Close)
	tree, err := f.Parse(context.Background(), []byte(src), tag, 0)
	require.NoError(t, err)
	return tree
}

// TestPythonNotImplementedError is spec.md §8 seed scenario 2.
func TestPythonNotImplementedError(t *testing.T) {
	src := "def unimplemented_method():\n    raise NotImplementedError(\"TODO\")\ndef implemented():\n    return True\n"
	tree := parse(t, src, langtag.Python)
	holes := DetectUnimplementedMethods(tree, tree.RootNode(), langtag.Python, "sample.py")

	require.Len(t, holes, 1)
	assert.Equal(t, constraint.HoleUnimplementedMethod, holes[0].Kind)
	assert.GreaterOrEqual(t, holes[0].Confidence, 0.95)
	assert.Equal(t, 1, holes[0].Location.Line)
}

// TestRustMatchWithTodo is spec.md §8 seed scenario 3.
func TestRustMatchWithTodo(t *testing.T) {
	src := `fn handle(x: Option<i32>) {
    match x {
        Some(v) => println!("{}", v),
        _ => todo!(),
    }
}`
	tree := parse(t, src, langtag.Rust)
	holes := DetectIncompleteMatches(tree, tree.RootNode(), langtag.Rust, "sample.rs")

	require.Len(t, holes, 1)
	assert.Equal(t, constraint.HoleIncompleteMatch, holes[0].Kind)
	assert.GreaterOrEqual(t, holes[0].Confidence, 0.9)
}

func TestEmptyFunctionBodyPython(t *testing.T) {
	src := "def stub():\n    pass\n"
	tree := parse(t, src, langtag.Python)
	holes := DetectEmptyFunctionBodies(tree, tree.RootNode(), langtag.Python, "s.py")
	require.Len(t, holes, 1)
	assert.GreaterOrEqual(t, holes[0].Confidence, 0.9)
}

func TestEmptyFunctionBodyTypeScript(t *testing.T) {
	src := "function stub() {}\n"
	tree := parse(t, src, langtag.TypeScript)
	holes := DetectEmptyFunctionBodies(tree, tree.RootNode(), langtag.TypeScript, "s.ts")
	require.Len(t, holes, 1)
}

func TestUserMarkedTODOOrigin(t *testing.T) {
	src := []byte("// TODO: fix this\nfunc x() {}\n")
	holes := DetectUserMarkedTODOs(src, langtag.Go, "s.go")
	require.Len(t, holes, 1)
	assert.Equal(t, constraint.OriginUserMarked, holes[0].Origin)
}

func TestEmptySourceYieldsEmptyList(t *testing.T) {
	tree := parse(t, "", langtag.Go)
	holes := DetectAll(tree, []byte(""), langtag.Go, "empty.go")
	assert.Empty(t, holes)
}

func TestUnknownLanguageYieldsEmptyListNeverError(t *testing.T) {
	holes := DetectAll(nil, []byte("whatever"), langtag.Tag("cobol"), "x.cbl")
	assert.Empty(t, holes)
}

func TestMissingTypeAnnotationTypeScriptAny(t *testing.T) {
	src := "function f(x: any) {}\n"
	tree := parse(t, src, langtag.TypeScript)
	holes := DetectMissingTypeAnnotations(tree, tree.RootNode(), langtag.TypeScript, "s.ts")
	require.Len(t, holes, 1)
	assert.InDelta(t, 0.85, holes[0].Confidence, 0.05)
}
