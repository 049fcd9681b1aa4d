package komposera

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when a module is created with an empty name.
var ErrEmptyName = errors.New("module name cannot be empty")

// NewModule creates an Fx module providing a named *Composer. The name
// is used as both the module name and the DI named tag, so an
// application can run several composers over different repositories.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*Composer, error) {
					return New(opts...)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
