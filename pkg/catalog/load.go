package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

// LoadYAML decodes a document mapping schema names to nodes. JSON documents
// are accepted as well. Unknown node fields are rejected.
func LoadYAML(r io.Reader) (map[string]*schema.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc map[string]*schema.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]*schema.Node{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	for name, node := range doc {
		if name == "" {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidName)
		}
		if node == nil {
			return nil, fmt.Errorf("%w: %w: %s", ErrInvalidDocument, ErrNilNode, name)
		}
	}
	if doc == nil {
		doc = map[string]*schema.Node{}
	}
	return doc, nil
}

// LoadFile decodes the schema document at path.
func LoadFile(path string) (map[string]*schema.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nodes, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

// LoadDir registers every *.yaml, *.yml and *.json document in dir and
// returns the number of schemas registered.
func (r *Registry) LoadDir(dir string) (int, error) {
	return r.LoadFS(os.DirFS(dir), ".")
}

// LoadFS is LoadDir over an fs.FS. Files are read in name order, so a name
// defined twice keeps the last definition.
func (r *Registry) LoadFS(fsys fs.FS, dir string) (int, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !isSchemaFile(entry.Name()) {
			continue
		}
		name := path.Join(dir, entry.Name())
		nodes, err := loadFSFile(fsys, name)
		if err != nil {
			return count, err
		}
		for _, key := range sortedNames(nodes) {
			if err := r.Register(key, nodes[key]); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func loadFSFile(fsys fs.FS, name string) (map[string]*schema.Node, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nodes, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return nodes, nil
}

func isSchemaFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func sortedNames(nodes map[string]*schema.Node) []string {
	return slices.Sorted(maps.Keys(nodes))
}
