package astextract

import (
	"context"
	"strconv"
	"strings"
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

func TestExtractGoFunctionsAndTypes(t *testing.T) {
	src := "package main\n\nfunc greet() {}\n\ntype Config struct {\n\tName string `json:\"name\"`\n}\n"
	tree := parse(t, src, langtag.Go)
	constraints := Extract(tree, langtag.Go)

	var haveFunc, haveType, haveTag bool
	for _, c := range constraints {
		assert.Equal(t, constraint.ConfidenceAST, c.Confidence)
		if strings.Contains(c.Name, "functions_greet") {
			haveFunc = true
		}
		if strings.HasPrefix(c.Name, "struct_Config") {
			assert.Equal(t, constraint.KindTypeSafety, c.Kind)
			haveType = true
		}
		if strings.HasPrefix(c.Name, "operational_struct_tag") {
			haveTag = true
		}
	}
	assert.True(t, haveFunc)
	assert.True(t, haveType)
	assert.True(t, haveTag)
}

func TestExtractTypeScriptAsyncClass(t *testing.T) {
	src := `class UserService extends EventEmitter {
  async getUser(id: number): Promise<User> { return null; }
}`
	tree := parse(t, src, langtag.TypeScript)
	constraints := Extract(tree, langtag.TypeScript)

	var haveFunction, haveClass bool
	for _, c := range constraints {
		if strings.Contains(c.Name, "functions") && strings.Contains(c.Name, "getUser") {
			haveFunction = true
			assert.Equal(t, constraint.ConfidenceAST, c.Confidence)
		}
		if strings.Contains(c.Name, "class") {
			haveClass = true
			assert.Equal(t, constraint.KindTypeSafety, c.Kind)
		}
	}
	assert.True(t, haveFunction)
	assert.True(t, haveClass)
}

func TestExtractRustResultOption(t *testing.T) {
	src := "fn parse(s: &str) -> Result<i32, String> {\n    Ok(1)\n}\n"
	tree := parse(t, src, langtag.Rust)
	constraints := Extract(tree, langtag.Rust)

	found := false
	for _, c := range constraints {
		if strings.HasPrefix(c.Name, "operational_result_option") {
			found = true
			assert.Equal(t, constraint.KindOperational, c.Kind)
		}
	}
	assert.True(t, found)
}

func TestExtractPreservesPreOrderBySourcePosition(t *testing.T) {
	src := "package main\n\nfunc a() {}\nfunc b() {}\n"
	tree := parse(t, src, langtag.Go)
	constraints := Extract(tree, langtag.Go)
	require.GreaterOrEqual(t, len(constraints), 2)
	for i := 1; i < len(constraints); i++ {
		prevStart, _ := strconv.Atoi(constraints[i-1].Metadata["start_byte"])
		curStart, _ := strconv.Atoi(constraints[i].Metadata["start_byte"])
		assert.LessOrEqual(t, prevStart, curStart)
	}
}
