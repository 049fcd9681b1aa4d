package repository

import (
	"errors"
	"fmt"

	"github.com/0xalexb/komposera/defaults"
	"github.com/0xalexb/komposera/logging"
)

// Source supplies raw fragment documents by config path.
type Source interface {
	// Provider names the source kind for diagnostics.
	Provider() string

	// Location describes where the source reads from.
	Location() string

	// Load returns the raw document at path, or an error matching
	// defaults.ErrNotFound.
	Load(path string) ([]byte, error)
}

// SearchPath is a defaults.Repository over an ordered list of sources.
// The first source holding a path wins; later sources never shadow
// earlier ones.
type SearchPath struct {
	sources []Source
}

// New builds a search-path repository. Sources are consulted in the
// given order.
func New(sources ...Source) *SearchPath {
	return &SearchPath{sources: sources}
}

// LoadConfig implements defaults.Repository. Every call re-parses the
// document, so callers always receive an independently mutable defaults
// list.
func (sp *SearchPath) LoadConfig(path string, primary bool) (*defaults.Loaded, error) {
	for _, src := range sp.sources {
		data, err := src.Load(path)
		if errors.Is(err, defaults.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", path, src.Location(), err)
		}
		loaded, err := parseFragment(data, path)
		if err != nil {
			return nil, err
		}
		logging.Component("repository").Debug("config loaded",
			"path", path,
			"provider", src.Provider(),
			"primary", primary,
		)
		return loaded, nil
	}
	return nil, fmt.Errorf("%s: %w", path, defaults.ErrNotFound)
}

// Sources implements defaults.Repository.
func (sp *SearchPath) Sources() []defaults.SourceInfo {
	infos := make([]defaults.SourceInfo, len(sp.sources))
	for i, src := range sp.sources {
		infos[i] = defaults.SourceInfo{
			Provider: src.Provider(),
			Location: src.Location(),
		}
	}
	return infos
}
