// Package schema models the node-types.json document the tree-sitter
// CLI generates alongside a parser. The document enumerates every node
// kind the grammar can produce plus the structural shape (fields,
// children, subtypes) of each.
package schema

import (
	"encoding/json"
	"fmt"
	"sort"
)

// TypeRef names a node kind from inside a field, child, or subtype list.
type TypeRef struct {
	Type  string `json:"type"`
	Named bool   `json:"named"`
}

// ChildSpec describes the nodes allowed in a field or child position.
type ChildSpec struct {
	Multiple bool      `json:"multiple"`
	Required bool      `json:"required"`
	Types    []TypeRef `json:"types"`
}

// NodeType is one entry of the node-types document.
type NodeType struct {
	Type     string               `json:"type"`
	Named    bool                 `json:"named"`
	Fields   map[string]ChildSpec `json:"fields,omitempty"`
	Children *ChildSpec           `json:"children,omitempty"`
	Subtypes []TypeRef            `json:"subtypes,omitempty"`
}

// Parse decodes a node-types document.
func Parse(data []byte) ([]NodeType, error) {
	var nodes []NodeType
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("parse node-types: %w", err)
	}
	return nodes, nil
}

// Validate checks structural well-formedness: the document is
// non-empty, every entry has a name, at least one node is named, and
// every field/child/subtype reference resolves to a declared entry.
// Supertype members are declared only through their supertype, so
// references are checked against the full declared set.
func Validate(nodes []NodeType) error {
	if len(nodes) == 0 {
		return fmt.Errorf("node-types: empty document")
	}

	declared := make(map[string]bool, len(nodes))
	named := 0
	for i, n := range nodes {
		if n.Type == "" {
			return fmt.Errorf("node-types: entry %d has empty type", i)
		}
		declared[n.Type] = true
		if n.Named {
			named++
		}
	}
	if named == 0 {
		return fmt.Errorf("node-types: no named node kinds")
	}

	check := func(owner string, refs []TypeRef) error {
		for _, ref := range refs {
			if !declared[ref.Type] {
				return fmt.Errorf("node-types: %s references undeclared kind %q", owner, ref.Type)
			}
		}
		return nil
	}

	for _, n := range nodes {
		for field, spec := range n.Fields {
			if err := check(n.Type+"."+field, spec.Types); err != nil {
				return err
			}
		}
		if n.Children != nil {
			if err := check(n.Type, n.Children.Types); err != nil {
				return err
			}
		}
		if err := check(n.Type, n.Subtypes); err != nil {
			return err
		}
	}
	return nil
}

// NamedKinds returns the sorted names of all named node kinds.
func NamedKinds(nodes []NodeType) []string {
	var kinds []string
	for _, n := range nodes {
		if n.Named {
			kinds = append(kinds, n.Type)
		}
	}
	sort.Strings(kinds)
	return kinds
}

// Lookup finds the entry for a node kind.
func Lookup(nodes []NodeType, kind string) (NodeType, bool) {
	for _, n := range nodes {
		if n.Type == kind {
			return n, true
		}
	}
	return NodeType{}, false
}
