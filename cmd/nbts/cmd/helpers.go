package cmd

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	notebook "github.com/koalazub/tree-sitter-notebook"
)

// loadLanguage returns the compiled-in notebook grammar after checking
// its ABI version against the runtime.
func loadLanguage() (*tree_sitter.Language, error) {
	lang := notebook.GetLanguage()
	if err := notebook.CheckVersion(lang); err != nil {
		return nil, err
	}
	return lang, nil
}

// parseNotebook parses source with the given language. The caller owns
// the returned tree and must Close it.
func parseNotebook(lang *tree_sitter.Language, source []byte) (*tree_sitter.Tree, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("configure parser: %w", err)
	}
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser returned no tree")
	}
	return tree, nil
}

// firstLine truncates multi-line node text for one-line-per-capture output.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
