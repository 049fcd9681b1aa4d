package override

// Override is one parsed defaults override argument.
type Override struct {
	// KeyOrGroup is the config group the override targets.
	KeyOrGroup string

	// Value is the chosen config name. Scalars stay strings; bracketed
	// values decode into their YAML shapes so the composition layer can
	// reject them with a precise message. A delete override without a
	// value leaves it nil.
	Value any

	// Pkg1 and Pkg2 are the package qualifiers. Pkg1 alone scopes the
	// override to a package; the pkg1:pkg2 pair renames a package.
	Pkg1 string
	Pkg2 string

	// Add marks the +group=name form: append, never replace.
	Add bool

	// Delete marks the ~group[=value] form.
	Delete bool

	// PackageRename is set when the @pkg1:pkg2 form was used.
	PackageRename bool
}

// SubjectPackage returns the package the override ultimately addresses:
// the rename destination when renaming, the declared package otherwise.
func (o Override) SubjectPackage() string {
	if o.PackageRename {
		return o.Pkg2
	}
	return o.Pkg1
}
