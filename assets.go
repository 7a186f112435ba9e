package notebook

import (
	_ "embed"
)

// Companion documents generated alongside the parser. They are baked in
// at build time, never change during execution, and may be read
// concurrently without synchronization.

// NodeTypes is the content of the node-types.json file for this grammar.
//
//go:embed src/node-types.json
var NodeTypes string

// HighlightsQuery is the syntax highlighting query for this language.
//
//go:embed queries/highlights.scm
var HighlightsQuery string

// InjectionsQuery is the injection query for this language. It maps
// cell bodies to the grammar named by the cell's language tag.
//
//go:embed queries/injections.scm
var InjectionsQuery string

// TextObjectsQuery is the text objects query for this language.
//
//go:embed queries/textobjects.scm
var TextObjectsQuery string
