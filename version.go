package notebook

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// VersionError reports an ABI mismatch between a grammar descriptor and
// the linked go-tree-sitter runtime. Callers get the actual and
// supported versions so they can decide whether to abort or pick a
// different grammar build.
type VersionError struct {
	Got uint32
	Min uint32
	Max uint32
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("notebook grammar ABI version %d outside supported range [%d, %d] — regenerate the parser with a matching tree-sitter CLI",
		e.Got, e.Min, e.Max)
}

// CheckVersion verifies that lang was generated with an ABI version the
// runtime can load. Returns *VersionError on mismatch, nil otherwise.
func CheckVersion(lang *tree_sitter.Language) error {
	got := lang.AbiVersion()
	if got < tree_sitter.MIN_COMPATIBLE_LANGUAGE_VERSION || got > tree_sitter.LANGUAGE_VERSION {
		return &VersionError{
			Got: got,
			Min: tree_sitter.MIN_COMPATIBLE_LANGUAGE_VERSION,
			Max: tree_sitter.LANGUAGE_VERSION,
		}
	}
	return nil
}

// CompileQuery compiles one of the embedded query documents against
// lang. The name is only used in the error message.
func CompileQuery(lang *tree_sitter.Language, name, source string) (*tree_sitter.Query, error) {
	q, qerr := tree_sitter.NewQuery(lang, source)
	if qerr != nil {
		return nil, fmt.Errorf("compile %s query: %w", name, qerr)
	}
	return q, nil
}
