package sitter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/ananke/internal/langtag"
	"github.com/oxhq/ananke/internal/xerr"
)

func TestParseGoProducesTree(t *testing.T) {
	f := NewFacade(nil)
	defer f.Close()

	src := []byte("package main\n\nfunc main() {}\n")
	tree, err := f.Parse(context.Background(), src, langtag.Go, 0)
	require.NoError(t, err)
	assert.False(t, tree.HasError())
	assert.Equal(t, langtag.Go, tree.Language())

	root := tree.RootNode()
	assert.False(t, root.IsZero())
	assert.Equal(t, "source_file", root.Type())
}

func TestParseMalformedSetsHasError(t *testing.T) {
	f := NewFacade(nil)
	defer f.Close()

	src := []byte("package main\n\nfunc main( {\n")
	tree, err := f.Parse(context.Background(), src, langtag.Go, 0)
	require.NoError(t, err)
	assert.True(t, tree.HasError())
}

func TestParseZigIsGrammarUnavailable(t *testing.T) {
	f := NewFacade(nil)
	defer f.Close()

	_, err := f.Parse(context.Background(), []byte("const x = 1;"), langtag.Zig, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerr.ErrGrammarUnavailable))
}

func TestGetNodeTextMatchesByteSpan(t *testing.T) {
	f := NewFacade(nil)
	defer f.Close()

	src := []byte("package main\n\nfunc greet() {}\n")
	tree, err := f.Parse(context.Background(), src, langtag.Go, 0)
	require.NoError(t, err)

	root := tree.RootNode()
	var fn Node
	for i := 0; i < root.NamedChildCount(); i++ {
		if c := root.NamedChild(i); c.Type() == "function_declaration" {
			fn = c
			break
		}
	}
	require.False(t, fn.IsZero())
	text := Text(tree, fn)
	assert.Len(t, text, fn.EndByte()-fn.StartByte())
}

func TestGrammarLinkedExcludesZig(t *testing.T) {
	assert.True(t, GrammarLinked(langtag.Go))
	assert.False(t, GrammarLinked(langtag.Zig))
}
