package cells

import "strings"

// languageAliases maps common header spellings to canonical grammar
// names.
var languageAliases = map[string]string{
	"py":      "python",
	"python3": "python",
	"ipython": "python",
	"js":      "javascript",
	"node":    "javascript",
	"ts":      "typescript",
	"sh":      "bash",
	"shell":   "bash",
	"zsh":     "bash",
	"golang":  "go",
	"rs":      "rust",
	"jsonc":   "json",
	"md":      "markdown",
}

// NormalizeLanguage lowercases and trims a header language tag and
// resolves known aliases to canonical grammar names.
func NormalizeLanguage(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := languageAliases[name]; ok {
		return canonical
	}
	return name
}

// Unquote strips one layer of matching single or double quotes from an
// attribute value. Unmatched or absent quotes leave the value as-is.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
