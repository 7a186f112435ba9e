package cells

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"python", "python"},
		{"Python", "python"},
		{"py", "python"},
		{"python3", "python"},
		{" js ", "javascript"},
		{"sh", "bash"},
		{"ZSH", "bash"},
		{"golang", "go"},
		{"rs", "rust"},
		{"md", "markdown"},
		{"fortran", "fortran"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLanguage(tt.in))
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{`"slow"`, "slow"},
		{`'slow'`, "slow"},
		{`slow`, "slow"},
		{`"unterminated`, `"unterminated`},
		{`'mixed"`, `'mixed"`},
		{`""`, ""},
		{`"`, `"`},
		{``, ``},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Unquote(tt.in))
		})
	}
}
