// Package loader reads unit style sources from disk and resolves their
// partial imports. The transitive file set it returns is what the watch
// loop tracks, so a change to any included partial recompiles the units
// that use it.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/styletree/styletree/internal/styles"
)

// Load reads the style source at path into a tree, splicing in any files
// named by a top-level $use list before the file's own entries. Referenced
// paths are relative to the including file. A file included twice (or
// cyclically) is loaded once, first inclusion wins. The returned slice
// holds the absolute paths of every file read, the entry file included.
func Load(path string) (*styles.Node, []string, error) {
	root := &styles.Node{}
	seen := make(map[string]bool)
	var files []string

	if err := loadInto(root, path, seen, &files); err != nil {
		return nil, files, err
	}
	return root, files, nil
}

func loadInto(root *styles.Node, path string, seen map[string]bool, files *[]string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if seen[abs] {
		return nil
	}
	seen[abs] = true
	*files = append(*files, abs)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: style source must be a mapping", path)
	}

	// Partials first, so the including file's own rules land after (and in
	// CSS terms override) what they pull in.
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value != styles.UseKey {
			continue
		}
		refs, err := usePaths(m.Content[i+1])
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, ref := range refs {
			if err := loadInto(root, filepath.Join(filepath.Dir(path), ref), seen, files); err != nil {
				return err
			}
		}
	}

	node, err := styles.ParseMapping(m)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if root.Decls == nil {
		root.Decls = node.Decls
	}
	root.Children = append(root.Children, node.Children...)
	return nil
}

// usePaths accepts either a single scalar path or a sequence of them.
func usePaths(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		paths := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s entries must be file paths", styles.UseKey)
			}
			paths = append(paths, item.Value)
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("%s must be a path or a list of paths", styles.UseKey)
	}
}
