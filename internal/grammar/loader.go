// Package grammar loads tree-sitter grammars from shared libraries
// (.so on Linux, .dylib on macOS) using purego. It covers grammars the
// binary was not linked against: injection languages a user installed
// locally, or the notebook grammar itself when consumed as a runtime
// artifact rather than a linked object.
package grammar

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Loader resolves grammar shared libraries from a list of search paths
// and caches loaded languages for reuse. Safe for concurrent use.
type Loader struct {
	searchPaths []string
	mu          sync.Mutex
	loaded      map[string]*tree_sitter.Language
	handles     []uintptr
}

// NewLoader creates a loader that searches the given paths for grammar
// shared libraries. Paths are searched in order; first match wins.
func NewLoader(searchPaths []string) *Loader {
	return &Loader{
		searchPaths: searchPaths,
		loaded:      make(map[string]*tree_sitter.Language),
	}
}

// DefaultSearchPaths returns the search paths for grammar shared
// libraries: project-local (.nbts/grammars/) first, then global
// (~/.nbts/grammars/).
func DefaultSearchPaths(projectRoot string) []string {
	var paths []string
	if projectRoot != "" {
		paths = append(paths, filepath.Join(projectRoot, ".nbts", "grammars"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".nbts", "grammars"))
	}
	return paths
}

// LibExtension returns the shared library extension for the current platform.
func LibExtension() string {
	if runtime.GOOS == "darwin" {
		return ".dylib"
	}
	return ".so"
}

// SymbolName returns the C entry point for a language's grammar,
// following the tree-sitter convention tree_sitter_{name}.
func SymbolName(lang string) string {
	return "tree_sitter_" + strings.ReplaceAll(lang, "-", "_")
}

// Load opens the shared library for the given language and resolves its
// grammar entry point. Results are cached; subsequent calls for the
// same language return the cached descriptor.
func (l *Loader) Load(lang string) (*tree_sitter.Language, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.loaded[lang]; ok {
		return cached, nil
	}

	soPath := l.path(lang)
	if soPath == "" {
		return nil, fmt.Errorf("grammar %q: shared library not found in %s",
			lang, strings.Join(l.searchPaths, ", "))
	}

	handle, err := purego.Dlopen(soPath, purego.RTLD_LAZY)
	if err != nil {
		return nil, fmt.Errorf("grammar %q: dlopen %s: %w", lang, soPath, err)
	}
	l.handles = append(l.handles, handle)

	symName := SymbolName(lang)
	var langFunc func() uintptr
	purego.RegisterLibFunc(&langFunc, handle, symName)

	ptr := langFunc()
	if ptr == 0 {
		return nil, fmt.Errorf("grammar %q: %s() returned null", lang, symName)
	}

	// Convert uintptr from C (purego) to unsafe.Pointer without triggering
	// go vet's unsafeptr check. Safe because ptr is a static TSLanguage*
	// from the grammar .so, not a Go-managed pointer the GC could move.
	language := tree_sitter.NewLanguage(*(*unsafe.Pointer)(unsafe.Pointer(&ptr)))
	l.loaded[lang] = language
	return language, nil
}

// Path returns the shared library path for a language, or "" if none of
// the search paths contain it.
func (l *Loader) Path(lang string) string {
	return l.path(lang)
}

func (l *Loader) path(lang string) string {
	ext := LibExtension()
	for _, dir := range l.searchPaths {
		candidate := filepath.Join(dir, lang+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Installed returns language names found as shared libraries in the
// search paths.
func (l *Loader) Installed() []string {
	ext := LibExtension()
	seen := make(map[string]bool)
	var names []string
	for _, dir := range l.searchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.HasSuffix(name, ext) {
				lang := strings.TrimSuffix(name, ext)
				if !seen[lang] {
					seen[lang] = true
					names = append(names, lang)
				}
			}
		}
	}
	return names
}

// SearchPaths returns the configured search paths.
func (l *Loader) SearchPaths() []string {
	return l.searchPaths
}

// Close drops all cached languages and dlopen handles.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handles = nil
	l.loaded = make(map[string]*tree_sitter.Language)
}
