package defaults

// DeleteKey identifies one registered deletion: the qualified group it
// targets, an optional choice the entry must carry to match, and whether
// matching nothing is an error. Must is set only for deletions that
// originate from explicit user overrides; deletions declared inside
// config files are allowed to miss.
type DeleteKey struct {
	QualifiedGroup string
	Value          string
	Must           bool
}

// String renders the key the way users write it: group[@pkg][=value].
func (k DeleteKey) String() string {
	if k.Value == "" {
		return k.QualifiedGroup
	}
	return k.QualifiedGroup + "=" + k.Value
}

// deleteKeyFor derives the key a delete directive registers. The
// DeleteName sentinel stands for "any choice" and maps to an empty Value.
func deleteKeyFor(e *Element) DeleteKey {
	value := e.Name
	if value == DeleteName {
		value = ""
	}
	return DeleteKey{
		QualifiedGroup: e.QualifiedGroupName(),
		Value:          value,
		Must:           e.FromOverride,
	}
}

// deleteTable tracks registered deletions and how many entries each one
// matched. Keys keep registration order so that validation failures are
// reported deterministically.
type deleteTable struct {
	keys   []DeleteKey
	counts map[DeleteKey]int
}

func newDeleteTable() *deleteTable {
	return &deleteTable{counts: make(map[DeleteKey]int)}
}

// register adds the key with a zero match count. Re-registering keeps the
// existing count.
func (t *deleteTable) register(key DeleteKey) {
	if _, ok := t.counts[key]; ok {
		return
	}
	t.keys = append(t.keys, key)
	t.counts[key] = 0
}

// deleteIfMatching marks the element deleted when a registered key
// matches its qualified group and, for value-qualified keys, its name.
// Every matching key's count goes up, whether or not the key is
// must-match.
func (t *deleteTable) deleteIfMatching(e *Element) bool {
	matched := false
	for _, key := range t.keys {
		if key.QualifiedGroup != e.QualifiedGroupName() {
			continue
		}
		if key.Value != "" && key.Value != e.Name {
			continue
		}
		matched = true
		t.counts[key]++
		e.Deleted = true
		e.setSkipLoad(SkipReasonDeleted)
	}
	return matched
}

// unmatchedMust returns the first must-match key that matched nothing, in
// registration order.
func (t *deleteTable) unmatchedMust() (DeleteKey, bool) {
	for _, key := range t.keys {
		if key.Must && t.counts[key] == 0 {
			return key, true
		}
	}
	return DeleteKey{}, false
}
