package defaults

// applyRenames resolves deferred package renames. The rightmost remaining
// directive is removed from the list and retargets the first entry whose
// group and current package match its source; an unset source package
// matches only unset. Working right to left lets directives chain: a
// rename may retarget the result of an earlier one.
func applyRenames(list []*Element) ([]*Element, error) {
	for {
		idx := -1
		for i := len(list) - 1; i >= 0; i-- {
			if list[i].IsPackageRename() {
				idx = i
				break
			}
		}
		if idx == -1 {
			return list, nil
		}

		rename := list[idx]
		list = append(list[:idx], list[idx+1:]...)

		renamed := false
		for _, d := range list {
			if d.Group != rename.Group || d.Package != rename.Package {
				continue
			}
			d.Package = rename.SubjectPackage()
			renamed = true
			break
		}
		if !renamed {
			return nil, compositionErrorf("Could not rename package. No match for '%s' in the defaults list",
				rename.QualifiedGroupName())
		}
	}
}

// verifyOverrideConflicts checks every override entry against the entries
// before it: an add-only override must not find an existing choice for
// its qualified group, a plain override must.
func verifyOverrideConflicts(list []*Element) error {
	for i := len(list) - 1; i >= 0; i-- {
		d := list[i]
		if !d.FromOverride || d.Delete {
			continue
		}
		fqgn := d.QualifiedGroupName()
		match := findMatchBefore(list, i, fqgn)
		if d.AddOnly && match != nil {
			return compositionErrorf("Could not add '%s=%s'. '%s' is already in the defaults list.",
				fqgn, d.Name, fqgn)
		}
		if !d.AddOnly && match == nil {
			return compositionErrorf("Could not override '%s'. No match in the defaults list."+
				"\nTo append to your default list use +%s=%s",
				fqgn, fqgn, d.Name)
		}
	}
	return nil
}

// findMatchBefore returns the first entry before position idx sharing the
// qualified group name, or nil.
func findMatchBefore(list []*Element, idx int, qualifiedGroup string) *Element {
	for _, d := range list[:idx] {
		if d.Group != "" && d.QualifiedGroupName() == qualifiedGroup {
			return d
		}
	}
	return nil
}

// expandDeferred resolves queued override and interpolation placeholders
// now that the choice map covers the whole level, expands each through
// the repository, and splices the expansion in front of its placeholder.
// The dedup pass then absorbs the placeholder itself. The queue holds the
// placeholders in reverse declaration order, so a later declaration
// expands, and registers its nested choices, before an earlier one.
func (exp *expansion) expandDeferred(list []*Element, deferred []*Element, declared []*Element) ([]*Element, error) {
	if len(deferred) == 0 {
		return list, nil
	}
	view := newInterpolationView(exp.choices, declared)
	for _, d := range deferred {
		if d.IsInterpolation() {
			resolved, err := view.resolve(d.Name)
			if err != nil {
				return nil, err
			}
			d.Name = resolved
		}
		sublist, err := exp.computeElement(d)
		if err != nil {
			return nil, err
		}
		// Only rename directives were consumed since the walk, and a
		// deferred entry is never one, so the placeholder is still here.
		idx := indexOf(list, d)
		spliced := make([]*Element, 0, len(list)+len(sublist))
		spliced = append(spliced, list[:idx]...)
		spliced = append(spliced, sublist...)
		spliced = append(spliced, list[idx:]...)
		list = spliced
	}
	return list, nil
}

// indexOf locates an element in the list by identity.
func indexOf(list []*Element, e *Element) int {
	for i, d := range list {
		if d == e {
			return i
		}
	}
	return -1
}

// dedupe keeps the first occurrence of every qualified group name.
// Delete directives and deleted entries pass through without claiming
// their group, so the surviving choice keeps its first declared position
// even when a deletion marker precedes it. Ungrouped entries always
// pass.
func dedupe(list []*Element) []*Element {
	seen := make(map[string]struct{})
	out := make([]*Element, 0, len(list))
	for _, d := range list {
		if d.Group == "" {
			out = append(out, d)
			continue
		}
		fqgn := d.QualifiedGroupName()
		if _, dup := seen[fqgn]; dup {
			continue
		}
		if !d.Deleted && !d.Delete {
			seen[fqgn] = struct{}{}
		}
		out = append(out, d)
	}
	return out
}
