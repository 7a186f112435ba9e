// Package cells extracts notebook cells from a parsed syntax tree.
// A cell is a marker line, an optional [language key=value ...] header,
// and a free-form body that editors hand to the language named by the
// header.
package cells

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// DefaultLanguage is the injection language for cells without a tag,
// matching the default in queries/injections.scm.
const DefaultLanguage = "python"

// Cell is one extracted notebook cell. Language is the raw header tag
// ("" when the cell is untagged); line numbers are 1-based and span the
// whole cell including its marker.
type Cell struct {
	Language  string            `json:"language,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	StartLine uint32            `json:"start_line"`
	EndLine   uint32            `json:"end_line"`
	Content   string            `json:"content"`
}

// Extract walks a parsed notebook document and returns its cells in
// source order. Non-cell children (stray content before the first
// marker) are skipped.
func Extract(root *tree_sitter.Node, source []byte) []Cell {
	var out []Cell
	for i := uint(0); i < uint(root.ChildCount()); i++ {
		child := root.Child(i)
		if child.Kind() != "cell" {
			continue
		}
		out = append(out, extractCell(child, source))
	}
	return out
}

func extractCell(n *tree_sitter.Node, source []byte) Cell {
	cell := Cell{
		StartLine: uint32(n.StartPosition().Row + 1),
		EndLine:   uint32(n.EndPosition().Row + 1),
	}

	if header := n.ChildByFieldName("header"); header != nil {
		if lang := header.ChildByFieldName("language"); lang != nil {
			cell.Language = nodeText(lang, source)
		}
		cell.Attrs = extractAttrs(header, source)
	}
	if content := n.ChildByFieldName("content"); content != nil {
		cell.Content = nodeText(content, source)
	}
	return cell
}

// extractAttrs collects key=value pairs from a cell header. A key
// without a value becomes a boolean-style entry with an empty value.
func extractAttrs(header *tree_sitter.Node, source []byte) map[string]string {
	var attrs map[string]string
	for i := uint(0); i < uint(header.ChildCount()); i++ {
		child := header.Child(i)
		if child.Kind() != "attribute" {
			continue
		}
		key := child.ChildByFieldName("key")
		if key == nil {
			continue
		}
		value := ""
		if v := child.ChildByFieldName("value"); v != nil {
			value = Unquote(nodeText(v, source))
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[nodeText(key, source)] = value
	}
	return attrs
}

// nodeText returns the source text for a node.
func nodeText(n *tree_sitter.Node, source []byte) string {
	return string(source[n.StartByte():n.EndByte()])
}
