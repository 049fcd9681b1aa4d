package override

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Parse parses a list of override arguments. Each argument takes the
// form [+|~]group[@pkg[:pkg2]][=value]: + appends a new choice, ~
// deletes one, @pkg scopes the override to a package and @pkg:pkg2
// renames the package. The value is required except for deletes.
func Parse(args []string) ([]Override, error) {
	overrides := make([]Override, 0, len(args))
	for _, arg := range args {
		o, err := parseOne(arg)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

func parseOne(arg string) (Override, error) {
	var o Override

	rest := arg
	switch {
	case strings.HasPrefix(rest, "+"):
		o.Add = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "~"):
		o.Delete = true
		rest = rest[1:]
	}
	if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "~") {
		return Override{}, fmt.Errorf("error parsing override '%s': at most one of + and ~ allowed", arg)
	}

	key := rest
	var rawValue string
	hasValue := false
	if k, v, found := strings.Cut(rest, "="); found {
		key, rawValue, hasValue = k, v, true
	}
	if !hasValue && !o.Delete {
		return Override{}, fmt.Errorf("error parsing override '%s': missing =value", arg)
	}

	group := key
	if g, pkgs, found := strings.Cut(key, "@"); found {
		group = g
		p1, p2, renamed := strings.Cut(pkgs, ":")
		o.Pkg1 = p1
		if renamed {
			if p2 == "" {
				return Override{}, fmt.Errorf("error parsing override '%s': rename target package is empty", arg)
			}
			o.Pkg2 = p2
			o.PackageRename = true
		}
	}
	if group == "" {
		return Override{}, fmt.Errorf("error parsing override '%s': missing config group", arg)
	}
	o.KeyOrGroup = group

	if hasValue {
		value, err := parseValue(rawValue)
		if err != nil {
			return Override{}, fmt.Errorf("error parsing override '%s': %w", arg, err)
		}
		o.Value = value
	}
	return o, nil
}

// parseValue keeps scalar values as strings. Bracketed values decode as
// YAML so downstream validation sees their real shape instead of raw
// text.
func parseValue(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var v any
		if err := yaml.Unmarshal([]byte(trimmed), &v); err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", raw, err)
		}
		return v, nil
	}
	return raw, nil
}
