package defaults

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSelf(t *testing.T) {
	t.Parallel()

	t.Run("implicit self is prepended", func(t *testing.T) {
		t.Parallel()

		element := &Element{Group: "db", Name: "mysql", Package: "backup", FromOverride: true, AddOnly: true}
		dl := &defaultsList{effective: []*Element{{Group: "c", Name: "c1"}}}

		require.NoError(t, normalizeSelf(element, dl))
		require.Len(t, dl.effective, 2)

		self := dl.effective[0]
		assert.Equal(t, SelfName, self.Name)
		assert.Equal(t, "db", self.Group)
		assert.Equal(t, "backup", self.Package)
		assert.False(t, self.FromOverride, "override markers do not transfer to content")
		assert.False(t, self.AddOnly)
	})

	t.Run("explicit self inherits group and package", func(t *testing.T) {
		t.Parallel()

		element := &Element{Group: "db", Name: "mysql", Package: "backup"}
		self := &Element{Name: SelfName}
		dl := &defaultsList{effective: []*Element{{Group: "c", Name: "c1"}, self}}

		require.NoError(t, normalizeSelf(element, dl))
		require.Len(t, dl.effective, 2)
		assert.Equal(t, "db", self.Group)
		assert.Equal(t, "backup", self.Package)
	})

	t.Run("duplicate self fails", func(t *testing.T) {
		t.Parallel()

		element := &Element{Name: "duplicate_self"}
		dl := &defaultsList{effective: []*Element{{Name: SelfName}, {Name: SelfName}}}

		err := normalizeSelf(element, dl)
		require.Error(t, err)
		assert.EqualError(t, err, "Duplicate _self_ defined in duplicate_self")
	})

	t.Run("grouped self fails", func(t *testing.T) {
		t.Parallel()

		element := &Element{Name: "bad_self"}
		dl := &defaultsList{effective: []*Element{{Group: "db", Name: SelfName}}}

		err := normalizeSelf(element, dl)
		require.Error(t, err)
		assert.ErrorContains(t, err, "bad_self")
	})
}

func TestApplyRenames(t *testing.T) {
	t.Parallel()

	t.Run("retargets first matching entry", func(t *testing.T) {
		t.Parallel()

		list := []*Element{
			{Group: "b", Name: "b1"},
			{Group: "b", Name: "b1", Package: "pkg"},
			{Group: "b", Name: "b1", Package2: "dst"},
		}

		got, err := applyRenames(list)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "dst", got[0].Package, "unset source package matches the unpackaged entry")
		assert.Equal(t, "pkg", got[1].Package)
	})

	t.Run("renames chain when the first step is declared last", func(t *testing.T) {
		t.Parallel()

		list := []*Element{
			{Group: "b", Name: "b1"},
			{Group: "b", Name: "b1", Package: "mid", Package2: "dst"},
			{Group: "b", Name: "b1", Package2: "mid"},
		}

		got, err := applyRenames(list)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "dst", got[0].Package, "rightmost directive applies first and feeds the next")
	})

	t.Run("no match fails", func(t *testing.T) {
		t.Parallel()

		list := []*Element{
			{Group: "b", Name: "b1"},
			{Group: "a", Name: "a1", Package: "XXX", Package2: "dst"},
		}

		_, err := applyRenames(list)
		require.Error(t, err)
		assert.EqualError(t, err, "Could not rename package. No match for 'a@XXX' in the defaults list")
	})
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	t.Run("first occurrence wins", func(t *testing.T) {
		t.Parallel()

		list := []*Element{
			{Name: "root"},
			{Group: "b", Name: "b2"},
			{Group: "c", Name: "c1"},
			{Group: "b", Name: "b2"},
			{Name: "root"},
		}

		got := dedupe(list)
		expected := []*Element{
			{Name: "root"},
			{Group: "b", Name: "b2"},
			{Group: "c", Name: "c1"},
			{Name: "root"},
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Fatalf("unexpected list (-want +got):\n%s", diff)
		}
	})

	t.Run("packages split the group", func(t *testing.T) {
		t.Parallel()

		list := []*Element{
			{Group: "b", Name: "b1"},
			{Group: "b", Name: "b1", Package: "backup"},
		}

		got := dedupe(list)
		assert.Len(t, got, 2)
	})

	t.Run("deletion markers do not claim the group", func(t *testing.T) {
		t.Parallel()

		list := []*Element{
			{Group: "b", Name: "b1", Deleted: true, SkipLoad: true, SkipLoadReason: SkipReasonDeleted},
			{Group: "b", Name: "b1", Delete: true},
			{Group: "b", Name: "b3"},
		}

		got := dedupe(list)
		require.Len(t, got, 3, "the surviving choice must not be dropped")
		assert.Equal(t, "b3", got[2].Name)

		got = dedupe(append(got, &Element{Group: "b", Name: "b3"}))
		assert.Len(t, got, 3, "the surviving choice claims the group")
	})
}
