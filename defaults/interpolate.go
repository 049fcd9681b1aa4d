package defaults

import (
	"strconv"
	"strings"
)

// interpolationView resolves ${...} references in deferred entries. Two
// reference shapes are supported: a qualified group name, resolved
// against the choices known when the view is built, and the legacy
// positional form defaults.N[.group], resolved against the declared list
// as written, before any expansion touched it.
type interpolationView struct {
	choices  map[string]string
	declared []*Element
}

// newInterpolationView snapshots the choice map. Choices registered
// while deferred entries expand do not leak into references resolved
// afterwards.
func newInterpolationView(choices map[string]string, declared []*Element) *interpolationView {
	snapshot := make(map[string]string, len(choices))
	for k, v := range choices {
		snapshot[k] = v
	}
	return &interpolationView{choices: snapshot, declared: declared}
}

// resolve maps a full-string ${...} reference to a config name.
func (v *interpolationView) resolve(expr string) (string, error) {
	ref, ok := strings.CutPrefix(expr, "${")
	if !ok || !strings.HasSuffix(ref, "}") {
		return "", compositionErrorf("Unsupported interpolation '%s' in the defaults list", expr)
	}
	ref = strings.TrimSuffix(ref, "}")
	if strings.ContainsAny(ref, "${}") {
		return "", compositionErrorf("Unsupported interpolation '%s' in the defaults list", expr)
	}

	if rest, found := strings.CutPrefix(ref, "defaults."); found {
		return v.resolvePositional(expr, rest)
	}
	if name, found := v.choices[ref]; found {
		return name, nil
	}
	return "", compositionErrorf("Could not resolve '%s' in the defaults list", expr)
}

// resolvePositional handles defaults.N[.group]: N indexes the declared
// list, and a grouped entry must be referenced with its group spelled
// out.
func (v *interpolationView) resolvePositional(expr, rest string) (string, error) {
	idxStr, group, hasGroup := strings.Cut(rest, ".")
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(v.declared) {
		return "", compositionErrorf("Could not resolve '%s': no defaults list entry at position %s", expr, idxStr)
	}
	entry := v.declared[idx]
	if hasGroup {
		if entry.Group != group {
			return "", compositionErrorf("Could not resolve '%s': entry %d selects from group '%s'", expr, idx, entry.Group)
		}
		return entry.Name, nil
	}
	if entry.Group != "" {
		return "", compositionErrorf("Could not resolve '%s': entry %d is a group selection, reference it as ${defaults.%d.%s}",
			expr, idx, idx, entry.Group)
	}
	return entry.Name, nil
}
