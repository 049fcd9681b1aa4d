// Package defaults computes the composition order of layered
// configurations.
//
// A config fragment may declare a defaults list: an ordered set of entries
// naming other fragments to compose with, sentinel markers, and
// directives. This package flattens such lists recursively into a single
// deterministic sequence that downstream merge code can walk front to
// back.
//
// # Entries
//
// An [Element] selects a config by group and name, or carries a special
// meaning through one of the sentinel names:
//
//   - [SelfName] marks where the declaring config's own values merge
//     relative to its nested defaults. A list without one behaves as if it
//     started with it.
//   - [DeleteName] paired with the Delete flag removes every choice of a
//     group from the final list.
//   - [KeepName] pins an entry without letting it act as the group's
//     choice.
//
// Entries may also rename the package (the target location in the merged
// tree) of another entry, reference another entry's choice through a
// ${...} name, or originate from user overrides, which append or replace
// choices after the declared lists have been read.
//
// # Resolution
//
// [ComputeForElement] expands a single root element, [Expand] an
// assembled list (typically a primary config followed by override
// entries, see [FromOverrides]). Both walk each list back to front so the
// last declaration of a group decides its choice, while the final order
// still follows the first declaration. Within one call a group resolves
// to exactly one non-deleted entry; repeated selections collapse onto the
// first position.
//
// Fragments are supplied by a [Repository]. The engine mutates the lists
// it is given, so repositories must hand out independently mutable copies
// on every load.
//
// Contradictory inputs fail with a [CompositionError]; a required config
// that no source provides fails with a [MissingConfigError].
package defaults
