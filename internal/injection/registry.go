// Package injection resolves cell language tags to tree-sitter
// grammars so tooling can parse cell bodies the way an editor applying
// queries/injections.scm would. A fixed set of common cell languages is
// compiled in; anything else can be supplied as a shared library via a
// grammar.Loader.
package injection

import (
	"fmt"
	"sort"
	"strings"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	ts_bash "github.com/tree-sitter/tree-sitter-bash/bindings/go"
	ts_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_json "github.com/tree-sitter/tree-sitter-json/bindings/go"
	ts_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ts_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/koalazub/tree-sitter-notebook/internal/cells"
	"github.com/koalazub/tree-sitter-notebook/internal/grammar"
)

// Registry maps normalized language names to grammar descriptors.
type Registry struct {
	languages map[string]*tree_sitter.Language
	loader    *grammar.Loader
}

// langPtr wraps a Language() call that returns unsafe.Pointer.
func langPtr(p unsafe.Pointer) *tree_sitter.Language {
	return tree_sitter.NewLanguage(p)
}

// NewRegistry creates a registry with all compiled-in cell grammars.
func NewRegistry() *Registry {
	r := &Registry{languages: make(map[string]*tree_sitter.Language)}
	r.add("python", langPtr(ts_python.Language()))
	r.add("javascript", langPtr(ts_javascript.Language()))
	r.add("json", langPtr(ts_json.Language()))
	r.add("bash", langPtr(ts_bash.Language()))
	r.add("go", langPtr(ts_go.Language()))
	r.add("rust", langPtr(ts_rust.Language()))
	return r
}

func (r *Registry) add(name string, lang *tree_sitter.Language) {
	if lang != nil {
		r.languages[name] = lang
	}
}

// SetLoader configures a fallback loader for languages without a
// compiled-in grammar.
func (r *Registry) SetLoader(l *grammar.Loader) {
	r.loader = l
}

// Resolve returns the grammar for a cell language tag. The tag is
// normalized first, so "py" and "Python3" both resolve to python.
func (r *Registry) Resolve(name string) (*tree_sitter.Language, error) {
	canonical := cells.NormalizeLanguage(name)
	if canonical == "" {
		canonical = cells.DefaultLanguage
	}

	if lang, ok := r.languages[canonical]; ok {
		return lang, nil
	}
	if r.loader != nil {
		if lang, err := r.loader.Load(canonical); err == nil {
			r.languages[canonical] = lang
			return lang, nil
		}
	}
	return nil, fmt.Errorf("no grammar for cell language %q (compiled-in: %s)",
		name, strings.Join(r.Builtin(), ", "))
}

// Has reports whether a grammar is available for the language tag
// without dlopening anything.
func (r *Registry) Has(name string) bool {
	canonical := cells.NormalizeLanguage(name)
	if canonical == "" {
		canonical = cells.DefaultLanguage
	}
	if _, ok := r.languages[canonical]; ok {
		return true
	}
	return r.loader != nil && r.loader.Path(canonical) != ""
}

// Builtin returns the sorted names of compiled-in grammars.
func (r *Registry) Builtin() []string {
	names := make([]string, 0, len(r.languages))
	for name := range r.languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
