//go:build grammar

// These tests link against the compiled parser. Build it first, then
// run with:
//
//	go test -tags grammar .
package notebook_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	notebook "github.com/koalazub/tree-sitter-notebook"
	"github.com/koalazub/tree-sitter-notebook/internal/cells"
)

func TestCanLoadGrammar(t *testing.T) {
	language := notebook.GetLanguage()
	require.NotNil(t, language, "error loading Notebook grammar")
	assert.Equal(t, uint32(tree_sitter.LANGUAGE_VERSION), language.AbiVersion())
}

func TestLanguageIdempotent(t *testing.T) {
	first := notebook.GetLanguage()
	second := notebook.GetLanguage()
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.AbiVersion(), second.AbiVersion())
}

func TestCheckVersion_LinkedGrammar(t *testing.T) {
	assert.NoError(t, notebook.CheckVersion(notebook.GetLanguage()))
}

func TestVersionError_ReportsRange(t *testing.T) {
	err := &notebook.VersionError{Got: 9, Min: 13, Max: 15}
	assert.Contains(t, err.Error(), "version 9")
	assert.Contains(t, err.Error(), "[13, 15]")
}

func TestQueriesCompile(t *testing.T) {
	language := notebook.GetLanguage()

	queries := []struct {
		name   string
		source string
	}{
		{"highlights", notebook.HighlightsQuery},
		{"injections", notebook.InjectionsQuery},
		{"textobjects", notebook.TextObjectsQuery},
	}
	for _, q := range queries {
		t.Run(q.name, func(t *testing.T) {
			compiled, err := notebook.CompileQuery(language, q.name, q.source)
			require.NoError(t, err)
			defer compiled.Close()
			assert.NotEmpty(t, compiled.CaptureNames())
		})
	}
}

func TestExtractCells(t *testing.T) {
	source := []byte(strings.Join([]string{
		`# %% [python tag="setup"]`,
		`import os`,
		`print(os.getcwd())`,
		``,
		`# %%`,
		`x = 1`,
		``,
		`# %% [bash]`,
		`ls -la`,
		``,
	}, "\n"))

	parser := tree_sitter.NewParser()
	defer parser.Close()
	require.NoError(t, parser.SetLanguage(notebook.GetLanguage()))

	tree := parser.Parse(source, nil)
	require.NotNil(t, tree)
	defer tree.Close()

	extracted := cells.Extract(tree.RootNode(), source)
	require.Len(t, extracted, 3)

	assert.Equal(t, "python", extracted[0].Language)
	assert.Equal(t, map[string]string{"tag": "setup"}, extracted[0].Attrs)
	assert.Equal(t, uint32(1), extracted[0].StartLine)

	assert.Equal(t, "", extracted[1].Language)
	assert.Empty(t, extracted[1].Attrs)

	assert.Equal(t, "bash", extracted[2].Language)
	assert.Contains(t, extracted[2].Content, "ls -la")
}
