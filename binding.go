// Package notebook provides tree-sitter language support for the
// notebook cell format consumed by the Nothelix plugin for Helix.
//
// The parser itself is generated by the tree-sitter CLI and compiled
// separately; this package binds the resulting artifact and re-exports
// the companion query documents as embedded constants. Build the
// grammar object before linking anything that imports this package:
//
//	tree-sitter generate
//	cc -c -std=c11 -fPIC -Isrc src/parser.c -o src/parser.o
//
// and pass the object to the linker (CGO_LDFLAGS=src/parser.o).
package notebook

// #cgo CFLAGS: -std=c11 -fPIC
// const void *tree_sitter_notebook(void);
import "C"

import (
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Language returns the raw TSLanguage pointer for the notebook grammar.
//
// The descriptor comes from the externally compiled parser. The call is
// a single function-pointer indirection into static data: it cannot
// fail, has no side effects, always returns the same descriptor, and is
// safe from any goroutine without coordination. This is the only place
// the package crosses the C boundary.
func Language() unsafe.Pointer {
	return unsafe.Pointer(C.tree_sitter_notebook())
}

// GetLanguage wraps Language for use with go-tree-sitter.
func GetLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(Language())
}
