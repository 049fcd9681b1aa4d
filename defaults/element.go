package defaults

import "strings"

// Config names with a reserved meaning inside a defaults list.
const (
	// SelfName marks the position where the declaring config's own values
	// merge relative to its nested defaults.
	SelfName = "_self_"

	// DeleteName is the config name carried by an unqualified delete
	// directive. Any choice in the directive's group matches it.
	DeleteName = "_delete_"

	// KeepName pins an entry in the list without letting it act as the
	// group's choice.
	KeepName = "_keep_"
)

// Reasons recorded on entries that stay in the final list but must not
// contribute configuration content.
const (
	SkipReasonMissingOptional = "missing_optional_config"
	SkipReasonDeleted         = "deleted_from_list"
)

// Element is one entry of a defaults list. The zero value is not useful;
// at least Name must be set. Empty strings mean unset throughout.
type Element struct {
	// Name is the chosen config name within Group, a sentinel name, an
	// explicit path for ungrouped entries, or an unresolved ${...}
	// reference.
	Name string

	// Group is the config group the entry selects from. Ungrouped entries
	// (primary configs, explicit paths) leave it empty.
	Group string

	// Package is the location in the merged tree where the config's
	// values land. Empty selects the default location.
	Package string

	// Package2, when set, turns the entry into a directive renaming the
	// package of another entry from Package to Package2.
	Package2 string

	// Optional tolerates a missing config: the entry stays in the list
	// with SkipLoad set instead of failing the composition.
	Optional bool

	// Primary marks the root config of a composition. It is forwarded to
	// the repository on load and not otherwise interpreted.
	Primary bool

	// FromOverride is set on entries synthesized from user overrides.
	// Their expansion is deferred until the declared lists have been
	// walked.
	FromOverride bool

	// AddOnly restricts an override entry to appending: it must not find
	// an existing choice for its group.
	AddOnly bool

	// Delete marks a delete directive.
	Delete bool

	// Deleted marks an entry a delete directive matched.
	Deleted bool

	// SkipLoad tells consumers the entry contributes no config content.
	SkipLoad bool

	// SkipLoadReason says why SkipLoad is set, one of the SkipReason
	// constants.
	SkipLoadReason string
}

// Kind classifies an Element for expansion. Exactly one kind applies to
// any entry; the checks are ordered so that combined markers resolve the
// same way everywhere (a rename synthesized from an override is still a
// rename).
type Kind int

const (
	// KindSelection is a plain selection, expanded recursively through
	// the repository.
	KindSelection Kind = iota

	// KindSelf is the SelfName placeholder.
	KindSelf

	// KindPackageRename is a deferred package rename directive.
	KindPackageRename

	// KindDelete is a delete directive.
	KindDelete

	// KindOverride is an override-synthesized entry whose expansion waits
	// until all sibling choices are known.
	KindOverride

	// KindInterpolation is an entry whose name is an unresolved ${...}
	// reference.
	KindInterpolation
)

// Kind returns the element's classification.
func (e *Element) Kind() Kind {
	switch {
	case e.Name == SelfName:
		return KindSelf
	case e.IsPackageRename():
		return KindPackageRename
	case e.Delete:
		return KindDelete
	case e.FromOverride:
		return KindOverride
	case e.IsInterpolation():
		return KindInterpolation
	default:
		return KindSelection
	}
}

// ConfigPath returns the repository path of the entry: group/name for
// grouped entries, the bare name otherwise.
func (e *Element) ConfigPath() string {
	if e.Group != "" {
		return e.Group + "/" + e.Name
	}
	return e.Name
}

// QualifiedGroupName returns the group plus "@package" when a package is
// set. It is the unit of uniqueness for choices and deduplication: the
// same group under two packages composes twice.
func (e *Element) QualifiedGroupName() string {
	if e.Package != "" {
		return e.Group + "@" + e.Package
	}
	return e.Group
}

// IsPackageRename reports whether the entry is a package rename
// directive.
func (e *Element) IsPackageRename() bool {
	return e.Package2 != ""
}

// SubjectPackage returns the package the entry ultimately addresses: the
// rename destination for rename directives, the declared package
// otherwise.
func (e *Element) SubjectPackage() string {
	if e.IsPackageRename() {
		return e.Package2
	}
	return e.Package
}

// IsInterpolation reports whether Name is an unresolved ${...} reference.
func (e *Element) IsInterpolation() bool {
	return strings.Contains(e.Name, "${")
}

// Clone returns a copy of the element. The engine mutates working
// elements in place, so anything handing a list to it must clone first.
func (e *Element) Clone() *Element {
	c := *e
	return &c
}

// CloneList clones every element of a defaults list.
func CloneList(list []*Element) []*Element {
	out := make([]*Element, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}

func (e *Element) setSkipLoad(reason string) {
	e.SkipLoad = true
	e.SkipLoadReason = reason
}

// String renders the entry in override-like notation:
// [~][+]group[@pkg[:pkg2]]=name, with trailing markers for deleted and
// optional entries.
func (e *Element) String() string {
	pkg := e.Package
	if e.IsPackageRename() {
		pkg += ":" + e.Package2
	}

	var b strings.Builder
	if e.Delete {
		b.WriteByte('~')
	}
	if e.AddOnly {
		b.WriteByte('+')
	}
	b.WriteString(e.Group)
	if pkg != "" {
		b.WriteByte('@')
		b.WriteString(pkg)
	}
	if e.Group != "" || pkg != "" {
		b.WriteByte('=')
	}
	b.WriteString(e.Name)
	if e.Deleted {
		b.WriteString(" (DELETED)")
	}
	if e.Optional {
		b.WriteString(" (optional)")
	}
	return b.String()
}
