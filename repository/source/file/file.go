package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/komposera/defaults"
)

// ErrNotDirectory is returned when the root passed to New points to a
// file instead of a directory.
var ErrNotDirectory = errors.New("config root is not a directory")

// Source serves config fragments from a directory tree. The config path
// "db/mysql" resolves to <root>/db/mysql.yaml, falling back to .yml.
type Source struct {
	root string
}

// New creates a file source rooted at dir. The directory must exist; its
// contents are read lazily on every load.
func New(dir string) (*Source, error) {
	cleanRoot := filepath.Clean(dir)

	stat, err := os.Stat(cleanRoot)
	if err != nil {
		return nil, fmt.Errorf("stat config root %q: %w", cleanRoot, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanRoot, ErrNotDirectory)
	}

	abs, err := filepath.Abs(cleanRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving config root %q: %w", cleanRoot, err)
	}

	return &Source{root: abs}, nil
}

// Provider implements repository.Source.
func (s *Source) Provider() string {
	return "file"
}

// Location implements repository.Source.
func (s *Source) Location() string {
	return s.root
}

// Load implements repository.Source. Paths that resolve outside the root
// report not-found rather than reading through the tree boundary.
func (s *Source) Load(path string) ([]byte, error) {
	base := filepath.Join(s.root, filepath.FromSlash(path))
	if !strings.HasPrefix(base, s.root+string(filepath.Separator)) {
		return nil, fmt.Errorf("%s: %w", path, defaults.ErrNotFound)
	}

	for _, ext := range []string{".yaml", ".yml"} {
		data, err := os.ReadFile(base + ext) // #nosec G304 -- path is cleaned and root-contained
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading file %q: %w", base+ext, err)
		}
	}
	return nil, fmt.Errorf("%s: %w", path, defaults.ErrNotFound)
}
