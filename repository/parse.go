package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/komposera/defaults"
)

const (
	defaultsKey = "defaults"
	optionalKey = "optional"
)

// parseFragment decodes a fragment document. The top-level defaults
// sequence becomes the declared list; the rest of the mapping stays in
// the body.
func parseFragment(data []byte, path string) (*defaults.Loaded, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	loaded := &defaults.Loaded{Config: doc}
	raw, ok := doc[defaultsKey]
	if !ok {
		return loaded, nil
	}
	delete(doc, defaultsKey)

	seq, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("parsing config %s: defaults must be a list, got %T", path, raw)
	}
	list := make([]*defaults.Element, 0, len(seq))
	for i, item := range seq {
		el, err := parseEntry(item)
		if err != nil {
			return nil, fmt.Errorf("parsing config %s: defaults[%d]: %w", path, i, err)
		}
		list = append(list, el)
	}
	loaded.Defaults = list
	return loaded, nil
}

// parseEntry converts one defaults entry. Scalars name ungrouped configs
// or carry the _self_ and ~group[=value] forms; single-pair mappings
// select from a group, with group@pkg and group@pkg:pkg2 key forms, a
// null value for deletion, and an "optional: true" sibling.
func parseEntry(item any) (*defaults.Element, error) {
	switch v := item.(type) {
	case string:
		return parseScalarEntry(v)
	case map[string]any:
		return parseMappingEntry(v)
	default:
		return nil, fmt.Errorf("unsupported entry %v (%T)", item, item)
	}
}

func parseScalarEntry(s string) (*defaults.Element, error) {
	if rest, found := strings.CutPrefix(s, "~"); found {
		key, value, _ := strings.Cut(rest, "=")
		group, pkg1, pkg2, err := parseGroupKey(key)
		if err != nil {
			return nil, fmt.Errorf("delete entry %q: %w", s, err)
		}
		if pkg2 != "" {
			return nil, fmt.Errorf("delete entry %q may not rename a package", s)
		}
		if value == "" {
			value = defaults.DeleteName
		}
		return &defaults.Element{
			Group:   group,
			Name:    value,
			Package: pkg1,
			Delete:  true,
		}, nil
	}
	if s == "" {
		return nil, errors.New("empty entry")
	}
	return &defaults.Element{Name: s}, nil
}

func parseMappingEntry(m map[string]any) (*defaults.Element, error) {
	var (
		el       *defaults.Element
		optional bool
	)
	for key, value := range m {
		if key == optionalKey {
			b, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("optional must be a boolean, got %v (%T)", value, value)
			}
			optional = b
			continue
		}
		if el != nil {
			return nil, errors.New("entry selects more than one group")
		}

		group, pkg1, pkg2, err := parseGroupKey(key)
		if err != nil {
			return nil, err
		}
		el = &defaults.Element{
			Group:    group,
			Package:  pkg1,
			Package2: pkg2,
		}
		switch name := value.(type) {
		case nil:
			if pkg2 != "" {
				return nil, fmt.Errorf("delete entry %q may not rename a package", key)
			}
			el.Name = defaults.DeleteName
			el.Delete = true
		case string:
			el.Name = name
		default:
			return nil, fmt.Errorf("config name for group %q must be a string, got %v (%T)", key, value, value)
		}
	}
	if el == nil {
		return nil, errors.New("entry selects no group")
	}
	el.Optional = optional
	return el, nil
}

// parseGroupKey splits group[@pkg1[:pkg2]].
func parseGroupKey(key string) (group, pkg1, pkg2 string, err error) {
	group = key
	if g, pkgs, found := strings.Cut(key, "@"); found {
		group = g
		pkg1, pkg2, _ = strings.Cut(pkgs, ":")
	}
	if group == "" {
		return "", "", "", fmt.Errorf("entry key %q names no group", key)
	}
	return group, pkg1, pkg2, nil
}
