package injection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koalazub/tree-sitter-notebook/internal/grammar"
)

func TestResolve_Builtin(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"python", "javascript", "json", "bash", "go", "rust"} {
		t.Run(name, func(t *testing.T) {
			lang, err := r.Resolve(name)
			require.NoError(t, err)
			assert.NotNil(t, lang)
		})
	}
}

func TestResolve_Aliases(t *testing.T) {
	r := NewRegistry()

	direct, err := r.Resolve("python")
	require.NoError(t, err)

	for _, alias := range []string{"py", "Python3", " python "} {
		lang, err := r.Resolve(alias)
		require.NoError(t, err)
		assert.Same(t, direct, lang, "alias %q should hit the same descriptor", alias)
	}
}

func TestResolve_EmptyTagUsesDefault(t *testing.T) {
	r := NewRegistry()
	lang, err := r.Resolve("")
	require.NoError(t, err)

	python, err := r.Resolve("python")
	require.NoError(t, err)
	assert.Same(t, python, lang)
}

func TestResolve_Unknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"cobol"`)
	assert.Contains(t, err.Error(), "compiled-in")
}

func TestResolve_UnknownWithEmptyLoader(t *testing.T) {
	r := NewRegistry()
	r.SetLoader(grammar.NewLoader([]string{t.TempDir()}))
	_, err := r.Resolve("cobol")
	assert.Error(t, err)
}

func TestHas(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.Has("python"))
	assert.True(t, r.Has("py"))
	assert.True(t, r.Has(""))
	assert.False(t, r.Has("cobol"))
}

func TestBuiltin_Sorted(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"bash", "go", "javascript", "json", "python", "rust"}, r.Builtin())
}
