package komposera

import (
	"github.com/0xalexb/komposera/defaults"
	"github.com/0xalexb/komposera/repository"

	"go.uber.org/fx"
)

// Options holds configuration settings for a Composer or an App.
type Options struct {
	Repository defaults.Repository
	Sources    []repository.Source
	Caching    bool
	LogLevel   string
	Modules    []fx.Option
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithRepository uses a prebuilt repository. It takes precedence over
// WithSources.
func WithRepository(repo defaults.Repository) Option {
	return func(opts *Options) {
		opts.Repository = repo
	}
}

// WithSources builds a search-path repository over the given sources.
// Call multiple times to append; earlier sources win.
func WithSources(sources ...repository.Source) Option {
	return func(opts *Options) {
		opts.Sources = append(opts.Sources, sources...)
	}
}

// WithCaching wraps the repository with a per-path cache. Useful when
// compositions revisit the same configs, at the cost of not observing
// source changes between calls.
func WithCaching() Option {
	return func(opts *Options) {
		opts.Caching = true
	}
}

// WithLogLevel sets the process default log level for composition
// logging. Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithModules adds Fx modules to an App's container. Ignored by New.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}
