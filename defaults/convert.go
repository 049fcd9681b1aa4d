package defaults

import (
	"fmt"

	"github.com/0xalexb/komposera/override"
)

// FromOverrides maps parsed user overrides onto defaults-list entries
// ready to seed Expand. Delete overrides without a value target the
// whole group through the DeleteName sentinel; every other override must
// carry a config name.
func FromOverrides(overrides []override.Override) ([]*Element, error) {
	ret := make([]*Element, 0, len(overrides))
	for _, o := range overrides {
		if o.Add && o.PackageRename {
			return nil, compositionErrorf("Add syntax does not support package rename, remove + prefix")
		}

		value := o.Value
		if o.Delete && value == nil {
			value = DeleteName
		}

		name, ok := value.(string)
		if !ok {
			if o.Delete {
				return nil, compositionErrorf("Defaults list supported delete syntax is in the form" +
					" ~group and ~group=value, where value is a group name (string)")
			}
			return nil, compositionErrorf("Config group override value type cannot be a %s", overrideValueType(value))
		}

		el := &Element{
			Group:        o.KeyOrGroup,
			Name:         name,
			FromOverride: true,
			AddOnly:      o.Add,
			Delete:       o.Delete,
		}
		if o.PackageRename {
			el.Package = o.Pkg1
			el.Package2 = o.Pkg2
		} else {
			el.Package = o.SubjectPackage()
		}
		ret = append(ret, el)
	}
	return ret, nil
}

func overrideValueType(v any) string {
	switch v.(type) {
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	default:
		return fmt.Sprintf("%T", v)
	}
}
