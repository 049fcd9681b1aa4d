package defaults

import (
	"errors"
	"fmt"
)

// expansion carries the state shared by one top-level composition call:
// the repository, the accumulated group-to-choice map, and the delete
// bookkeeping. A fresh expansion is created per call and threaded through
// the recursion, so independent compositions never share mutable state.
type expansion struct {
	repo    Repository
	choices map[string]string
	deletes *deleteTable
}

func newExpansion(repo Repository) *expansion {
	return &expansion{
		repo:    repo,
		choices: make(map[string]string),
		deletes: newDeleteTable(),
	}
}

// recordChoice binds a qualified group to a config name. The first
// registration wins; later declarations already had their say because
// every list is walked back to front.
func (exp *expansion) recordChoice(qualifiedGroup, name string) {
	if _, ok := exp.choices[qualifiedGroup]; !ok {
		exp.choices[qualifiedGroup] = name
	}
}

// defaultsList pairs the declared list as written with the working copy
// one expansion level mutates. The declared form feeds positional
// interpolation, which counts entries the way the file lists them.
type defaultsList struct {
	declared  []*Element
	effective []*Element
}

// ComputeForElement resolves one root element into its fully expanded,
// deterministically ordered defaults list.
func ComputeForElement(element *Element, repo Repository) ([]*Element, error) {
	exp := newExpansion(repo)
	ret, err := exp.computeElement(element)
	if err != nil {
		return nil, err
	}
	return exp.finish(ret)
}

// Expand flattens an already-assembled defaults list, typically a primary
// config entry followed by entries converted from user overrides.
// selfName names the enclosing config for resolving SelfName entries;
// pass "" when there is none. The list is mutated in place; clone first
// to keep the input.
func Expand(selfName string, list []*Element, repo Repository) ([]*Element, error) {
	exp := newExpansion(repo)

	// Deletes and choices declared anywhere in the seed list take effect
	// across the whole expansion, regardless of position.
	for i := len(list) - 1; i >= 0; i-- {
		d := list[i]
		if d.Delete {
			exp.deletes.register(deleteKeyFor(d))
			continue
		}
		if d.Group != "" {
			exp.recordChoice(d.QualifiedGroupName(), d.Name)
		}
	}

	dl := &defaultsList{declared: CloneList(list), effective: list}
	ret, err := exp.expandList(selfName, dl)
	if err != nil {
		return nil, err
	}
	return exp.finish(ret)
}

// computeElement loads the element's config and expands its declared
// defaults, with the element itself standing in as the list's self entry.
// A registered deletion matching the element suppresses it entirely and
// returns an empty list.
func (exp *expansion) computeElement(element *Element) ([]*Element, error) {
	if exp.deletes.deleteIfMatching(element) {
		return nil, nil
	}

	path := element.ConfigPath()
	loaded, err := exp.repo.LoadConfig(path, element.Primary)
	if errors.Is(err, ErrNotFound) {
		if element.Optional {
			element.setSkipLoad(SkipReasonMissingOptional)
			return []*Element{element}, nil
		}
		return nil, missingConfigError(exp.repo, path,
			fmt.Sprintf("Cannot find config : %s, check that it's in your config search path", path),
			true)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	dl := &defaultsList{
		declared:  CloneList(loaded.Defaults),
		effective: loaded.Defaults,
	}
	if err := normalizeSelf(element, dl); err != nil {
		return nil, err
	}

	return exp.expandList(element.Name, dl)
}

// normalizeSelf enforces the single-self invariant on a freshly loaded
// list. An explicit self entry inherits the loading element's group and
// package; a second one is a conflict. A list without one gets an
// implicit self at the front, carrying the element's flags except the
// override markers, which describe how the element got into its parent
// list and do not transfer to its content.
func normalizeSelf(element *Element, dl *defaultsList) error {
	found := false
	for _, d := range dl.effective {
		if d.Name != SelfName {
			continue
		}
		if found {
			return compositionErrorf("Duplicate _self_ defined in %s", element.ConfigPath())
		}
		found = true
		if d.Group != "" {
			return compositionErrorf("Invalid _self_ in %s, a self entry may not select a group", element.ConfigPath())
		}
		d.Group = element.Group
		d.Package = element.Package
	}
	if !found {
		self := element.Clone()
		self.Name = SelfName
		self.FromOverride = false
		self.AddOnly = false
		dl.effective = append([]*Element{self}, dl.effective...)
	}
	return nil
}

// expandList flattens one level of a defaults list. The walk runs back
// to front: the last declaration for a group records the winning choice
// before earlier entries resolve against it, while the output order still
// follows the first declaration. Override and interpolation entries stay
// in place as placeholders and expand after the walk, once every sibling
// choice is known.
func (exp *expansion) expandList(selfName string, dl *defaultsList) ([]*Element, error) {
	var deferred []*Element

	sublists := make([][]*Element, 0, len(dl.effective))
	for i := len(dl.effective) - 1; i >= 0; i-- {
		d := dl.effective[i]

		var sublist []*Element
		switch d.Kind() {
		case KindSelf:
			if selfName == "" {
				return nil, compositionErrorf("defaults list contains a _self_ item but there is no enclosing config to resolve it")
			}
			self := d.Clone()
			if choice, ok := exp.choices[self.QualifiedGroupName()]; ok {
				self.Name = choice
			} else {
				self.Name = selfName
			}
			sublist = []*Element{self}

		case KindPackageRename:
			// Applied after the level is flat, see applyRenames.
			sublist = []*Element{d}

		case KindDelete:
			exp.deletes.register(deleteKeyFor(d))
			sublist = []*Element{d}

		case KindOverride, KindInterpolation:
			deferred = append(deferred, d)
			sublist = []*Element{d}

		case KindSelection:
			if exp.deletes.deleteIfMatching(d) {
				sublist = []*Element{d}
				break
			}
			if d.Group != "" {
				if choice, ok := exp.choices[d.QualifiedGroupName()]; ok {
					d.Name = choice
				}
			}
			var err error
			sublist, err = exp.computeElement(d)
			if err != nil {
				return nil, err
			}
		}

		// A nested config's selections propagate outward through the
		// choice map. Unresolved placeholders contribute nothing yet.
		if d.Kind() != KindInterpolation {
			for j := len(sublist) - 1; j >= 0; j-- {
				dd := sublist[j]
				if dd.Group == "" || dd.Name == KeepName || dd.Delete || dd.SkipLoad {
					continue
				}
				exp.recordChoice(dd.QualifiedGroupName(), dd.Name)
			}
		}

		sublists = append(sublists, sublist)
	}

	// Back to declaration order, flattened.
	result := make([]*Element, 0, len(sublists))
	for i := len(sublists) - 1; i >= 0; i-- {
		result = append(result, sublists[i]...)
	}

	result, err := applyRenames(result)
	if err != nil {
		return nil, err
	}
	if err := verifyOverrideConflicts(result); err != nil {
		return nil, err
	}
	result, err = exp.expandDeferred(result, deferred, dl.declared)
	if err != nil {
		return nil, err
	}
	return dedupe(result), nil
}

// finish runs the terminal checks of a composition: every must-match
// deletion found a target, and the delete directives themselves leave the
// list.
func (exp *expansion) finish(list []*Element) ([]*Element, error) {
	if key, ok := exp.deletes.unmatchedMust(); ok {
		return nil, compositionErrorf("Could not delete. No match for '%s' in the defaults list.", key)
	}
	out := make([]*Element, 0, len(list))
	for _, d := range list {
		if d.Delete {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}
