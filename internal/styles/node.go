// Package styles implements the style-tree compiler: it walks nested
// selector trees, resolves each node's effective CSS selector, filters
// nodes against exclusion patterns, and renders declaration blocks in one
// of several output formats.
//
// The compiler is pure and synchronous. It performs no I/O, no CSS
// validation, and no cascade resolution; it is a deterministic serializer
// over caller-supplied trees. Output bytes are significant: downstream
// tooling asserts on literal strings, so brace, semicolon, and newline
// placement per format mode must not drift.
package styles

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the child-node variants of a style tree.
type Kind int

const (
	// KindSelector is an ordinary rule node keyed by selector syntax.
	KindSelector Kind = iota
	// KindAtRule is a grouping node keyed by a full at-rule name,
	// e.g. "@media (max-width: 600px)".
	KindAtRule
)

const (
	// DeclsKey is the reserved mapping key holding a node's declaration block.
	DeclsKey = "$"
	// UseKey is reserved at the top level of a style source file to pull in
	// partials. The loader consumes it before the tree reaches the compiler.
	UseKey = "$use"
)

// Decl is one authored property/value pair. Property names are camelCase
// in source and hyphenated at render time. A nil Value marks the property
// absent; absent properties never appear in output.
type Decl struct {
	Property string
	Value    any
}

// Node is one level of a style tree: an optional ordered declaration block
// plus child nodes keyed by selector or at-rule syntax. Trees are read-only
// to the compiler and supplied whole for one compilation pass.
type Node struct {
	Key      string
	Kind     Kind
	Decls    []Decl
	Children []*Node
}

// ParseTree decodes one YAML document into a style tree root. Mapping order
// is preserved, so declaration order and child visitation order follow the
// source. An empty document yields an empty root that compiles to nothing.
func ParseTree(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding style tree: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Node{}, nil
	}
	return ParseMapping(doc.Content[0])
}

// ParseMapping converts a YAML mapping into a style tree root. The top-level
// UseKey entry, if present, is skipped; resolving it is the loader's job.
func ParseMapping(m *yaml.Node) (*Node, error) {
	root := &Node{}
	if err := parseInto(root, m, ""); err != nil {
		return nil, err
	}
	return root, nil
}

func parseInto(n *Node, m *yaml.Node, path string) error {
	m = deref(m)
	if m.Kind != yaml.MappingNode {
		return fmt.Errorf("style node %q: expected a mapping, got %s", path, kindName(m.Kind))
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i].Value
		val := m.Content[i+1]
		switch key {
		case DeclsKey:
			decls, err := parseDecls(val, path)
			if err != nil {
				return err
			}
			n.Decls = decls
		case UseKey:
			continue
		default:
			child := &Node{Key: key}
			if len(key) > 0 && key[0] == '@' {
				child.Kind = KindAtRule
			}
			if err := parseInto(child, val, childPath(path, key)); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		}
	}
	return nil
}

// parseDecls reads a declaration block. Property values of unsupported
// shapes (sequences, nested mappings) degrade to absent rather than failing
// the unit; the collector's skip-on-absent rule handles them from there.
func parseDecls(m *yaml.Node, path string) ([]Decl, error) {
	m = deref(m)
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style node %q: %s must be a mapping of properties, got %s",
			path, DeclsKey, kindName(m.Kind))
	}
	decls := make([]Decl, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		prop := m.Content[i].Value
		val := deref(m.Content[i+1])
		var v any
		if val.Kind == yaml.ScalarNode {
			if err := val.Decode(&v); err != nil {
				v = nil
			}
		}
		decls = append(decls, Decl{Property: prop, Value: v})
	}
	return decls, nil
}

func deref(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + " > " + key
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
