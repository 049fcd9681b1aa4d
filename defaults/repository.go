package defaults

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a repository has no config at the requested
// path. Optional entries treat it as "skip", required entries turn it
// into a MissingConfigError.
var ErrNotFound = errors.New("config not found")

// SchemaProvider names sources that hold schemas rather than configs.
// They are omitted from missing-config diagnostics.
const SchemaProvider = "schema"

// Loaded is a config fragment as a repository hands it to the engine.
type Loaded struct {
	// Defaults is the fragment's declared defaults list. The engine takes
	// ownership and mutates it, so repositories must return a fresh copy
	// on every call.
	Defaults []*Element

	// Config is the fragment body with the defaults declaration removed.
	// The engine never reads it; it rides along for the merge stage
	// downstream.
	Config map[string]any
}

// Clone returns a copy with an independently mutable defaults list. The
// body map is shared and treated as read-only.
func (l *Loaded) Clone() *Loaded {
	if l == nil {
		return nil
	}
	return &Loaded{
		Defaults: CloneList(l.Defaults),
		Config:   l.Config,
	}
}

// SourceInfo describes one config source for diagnostics.
type SourceInfo struct {
	Provider string
	Location string
}

// String renders the source the way search-path diagnostics list it.
func (s SourceInfo) String() string {
	return fmt.Sprintf("provider=%s, path=%s", s.Provider, s.Location)
}

// Repository loads config fragments for the engine.
//
// Implementations must behave deterministically within one composition:
// the same path may be requested several times and every call must yield
// an equivalent, independently mutable result. Returning shared element
// pointers corrupts the composition.
type Repository interface {
	// LoadConfig returns the fragment at path, or an error matching
	// ErrNotFound when no source has it. primary marks the root config of
	// the composition.
	LoadConfig(path string, primary bool) (*Loaded, error)

	// Sources lists the repository's sources in search order. It serves
	// diagnostics only.
	Sources() []SourceInfo
}
