// Package komposera composes layered configurations: it resolves a
// primary config plus user overrides into a deterministic, fully
// expanded defaults list ready for merging.
package komposera

import (
	"errors"
	"log/slog"
	"os"

	"github.com/0xalexb/komposera/defaults"
	"github.com/0xalexb/komposera/logging"
	"github.com/0xalexb/komposera/override"
	"github.com/0xalexb/komposera/repository"
)

// ErrNoRepository is returned by New when neither a repository nor any
// sources were configured.
var ErrNoRepository = errors.New("composer requires a repository or at least one source")

// Composer resolves defaults lists against a fixed repository. It is
// safe for concurrent use when its repository is.
type Composer struct {
	repo defaults.Repository
	log  *slog.Logger
}

// New creates a Composer from the given options. A repository, or
// sources to build one from, is required.
func New(opts ...Option) (*Composer, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.LogLevel != "" {
		slog.SetDefault(logging.New(logging.Config{Level: options.LogLevel}, os.Stderr))
	}

	return newComposer(&options)
}

func newComposer(options *Options) (*Composer, error) {
	repo := options.Repository
	if repo == nil && len(options.Sources) > 0 {
		repo = repository.New(options.Sources...)
	}
	if repo == nil {
		return nil, ErrNoRepository
	}
	if options.Caching {
		repo = repository.NewCaching(repo)
	}

	return &Composer{
		repo: repo,
		log:  logging.Component("composer"),
	}, nil
}

// Compose resolves the defaults list of the named primary config with
// the given override arguments applied. Overrides use the
// [+|~]group[@pkg[:pkg2]][=value] syntax of the override package.
func (c *Composer) Compose(name string, overrides ...string) ([]*defaults.Element, error) {
	parsed, err := override.Parse(overrides)
	if err != nil {
		return nil, err
	}
	extra, err := defaults.FromOverrides(parsed)
	if err != nil {
		return nil, err
	}

	seed := make([]*defaults.Element, 0, len(extra)+1)
	seed = append(seed, &defaults.Element{Name: name, Primary: true})
	seed = append(seed, extra...)

	list, err := defaults.Expand("", seed, c.repo)
	if err != nil {
		return nil, err
	}

	c.log.Debug("composition resolved",
		"config", name,
		"overrides", len(overrides),
		"entries", len(list),
	)

	return list, nil
}

// ComposeElement resolves the defaults list of a single element. The
// element is cloned; the caller's copy stays untouched.
func (c *Composer) ComposeElement(element *defaults.Element) ([]*defaults.Element, error) {
	return defaults.ComputeForElement(element.Clone(), c.repo)
}
