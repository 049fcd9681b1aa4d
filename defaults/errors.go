package defaults

import (
	"fmt"
	"strings"
)

// CompositionError reports contradictory instructions in a defaults list:
// duplicate self markers, overrides or renames with no target, add-only
// overrides that would replace, malformed override values.
type CompositionError struct {
	msg string
}

func (e *CompositionError) Error() string {
	return e.msg
}

func compositionErrorf(format string, args ...any) error {
	return &CompositionError{msg: fmt.Sprintf(format, args...)}
}

// MissingConfigError reports a required config that no source provides.
type MissingConfigError struct {
	// Path is the config path that could not be found.
	Path string

	msg string
}

func (e *MissingConfigError) Error() string {
	return e.msg
}

// missingConfigError builds the user-facing message, appending the
// repository's sources when withSearchPath is set. Schema sources are
// left out; they never satisfy a config load.
func missingConfigError(repo Repository, path, msg string, withSearchPath bool) error {
	if withSearchPath {
		var b strings.Builder
		b.WriteString(msg)
		b.WriteString("\nSearch path:")
		for _, src := range repo.Sources() {
			if src.Provider == SchemaProvider {
				continue
			}
			b.WriteString("\n\t")
			b.WriteString(src.String())
		}
		msg = b.String()
	}
	return &MissingConfigError{Path: path, msg: msg}
}
