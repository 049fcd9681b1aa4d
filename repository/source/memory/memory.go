package memory

import (
	"fmt"

	"github.com/0xalexb/komposera/defaults"
)

// Source serves config fragments from an in-memory map of config path to
// YAML document. It backs tests and embedded defaults.
type Source struct {
	name    string
	configs map[string]string
}

// New creates a memory source. The map is copied; name shows up as the
// source location in diagnostics.
func New(name string, configs map[string]string) *Source {
	copied := make(map[string]string, len(configs))
	for path, doc := range configs {
		copied[path] = doc
	}
	return &Source{name: name, configs: copied}
}

// Provider implements repository.Source.
func (s *Source) Provider() string {
	return "memory"
}

// Location implements repository.Source.
func (s *Source) Location() string {
	return s.name
}

// Load implements repository.Source.
func (s *Source) Load(path string) ([]byte, error) {
	doc, ok := s.configs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, defaults.ErrNotFound)
	}
	return []byte(doc), nil
}
