package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readAsset reads a companion file from the repository root. The embed
// directives in the root package guarantee the embedded constants carry
// the same bytes, so validating the files validates the constants
// without linking the compiled parser.
func readAsset(t *testing.T, parts ...string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(append([]string{"..", ".."}, parts...)...))
	require.NoError(t, err)
	return data
}

func TestParse_ShippedNodeTypes(t *testing.T) {
	nodes, err := Parse(readAsset(t, "src", "node-types.json"))
	require.NoError(t, err)
	require.NoError(t, Validate(nodes))

	kinds := NamedKinds(nodes)
	assert.NotEmpty(t, kinds)
	assert.Contains(t, kinds, "document")
	assert.Contains(t, kinds, "cell")
	assert.Contains(t, kinds, "cell_content")

	cell, ok := Lookup(nodes, "cell")
	require.True(t, ok)
	assert.True(t, cell.Fields["marker"].Required)
	assert.False(t, cell.Fields["header"].Required)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty document", `[]`, "empty document"},
		{"empty type name", `[{"type": "", "named": true}]`, "empty type"},
		{"no named kinds", `[{"type": ";", "named": false}]`, "no named node kinds"},
		{
			"dangling field reference",
			`[{"type": "a", "named": true, "fields": {"x": {"multiple": false, "required": true, "types": [{"type": "ghost", "named": true}]}}}]`,
			`undeclared kind "ghost"`,
		},
		{
			"dangling child reference",
			`[{"type": "a", "named": true, "children": {"multiple": true, "required": false, "types": [{"type": "ghost", "named": true}]}}]`,
			`undeclared kind "ghost"`,
		},
		{
			"valid",
			`[{"type": "a", "named": true, "children": {"multiple": true, "required": false, "types": [{"type": "b", "named": true}]}}, {"type": "b", "named": true}]`,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			err = Validate(nodes)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestQueryDocuments_NonEmptyAndBalanced(t *testing.T) {
	for _, name := range []string{"highlights.scm", "injections.scm", "textobjects.scm"} {
		t.Run(name, func(t *testing.T) {
			data := readAsset(t, "queries", name)
			require.NotEmpty(t, data)

			depth := 0
			inString := false
			for _, b := range data {
				switch {
				case b == '"':
					inString = !inString
				case inString:
				case b == '(' || b == '[':
					depth++
				case b == ')' || b == ']':
					depth--
					require.GreaterOrEqual(t, depth, 0, "unbalanced close in %s", name)
				}
			}
			assert.Equal(t, 0, depth, "unbalanced parens in %s", name)
			assert.Contains(t, string(data), "@", "query %s defines no captures", name)
		})
	}
}
