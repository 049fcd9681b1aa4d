package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteKey_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "db", DeleteKey{QualifiedGroup: "db"}.String())
	assert.Equal(t, "db=mysql", DeleteKey{QualifiedGroup: "db", Value: "mysql"}.String())
	assert.Equal(t, "db@backup=mysql", DeleteKey{QualifiedGroup: "db@backup", Value: "mysql"}.String())
}

func TestDeleteKeyFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		element  *Element
		expected DeleteKey
	}{
		{
			name:     "unqualified delete",
			element:  &Element{Group: "db", Name: DeleteName, Delete: true},
			expected: DeleteKey{QualifiedGroup: "db"},
		},
		{
			name:     "value qualified delete",
			element:  &Element{Group: "db", Name: "mysql", Delete: true},
			expected: DeleteKey{QualifiedGroup: "db", Value: "mysql"},
		},
		{
			name:     "delete with package",
			element:  &Element{Group: "db", Name: DeleteName, Package: "backup", Delete: true},
			expected: DeleteKey{QualifiedGroup: "db@backup"},
		},
		{
			name:     "delete from override must match",
			element:  &Element{Group: "db", Name: DeleteName, Delete: true, FromOverride: true},
			expected: DeleteKey{QualifiedGroup: "db", Must: true},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, deleteKeyFor(testCase.element))
		})
	}
}

func TestDeleteTable_Matching(t *testing.T) {
	t.Parallel()

	table := newDeleteTable()
	table.register(DeleteKey{QualifiedGroup: "db", Value: "mysql"})

	miss := &Element{Group: "db", Name: "postgresql"}
	require.False(t, table.deleteIfMatching(miss))
	assert.False(t, miss.Deleted)

	wrongPackage := &Element{Group: "db", Name: "mysql", Package: "backup"}
	require.False(t, table.deleteIfMatching(wrongPackage))

	hit := &Element{Group: "db", Name: "mysql"}
	require.True(t, table.deleteIfMatching(hit))
	assert.True(t, hit.Deleted)
	assert.True(t, hit.SkipLoad)
	assert.Equal(t, SkipReasonDeleted, hit.SkipLoadReason)
}

func TestDeleteTable_UnqualifiedMatchesAnyChoice(t *testing.T) {
	t.Parallel()

	table := newDeleteTable()
	table.register(DeleteKey{QualifiedGroup: "db"})

	for _, name := range []string{"mysql", "postgresql"} {
		e := &Element{Group: "db", Name: name}
		require.True(t, table.deleteIfMatching(e))
		assert.True(t, e.Deleted)
	}
}

func TestDeleteTable_UnmatchedMustReportedInRegistrationOrder(t *testing.T) {
	t.Parallel()

	table := newDeleteTable()
	table.register(DeleteKey{QualifiedGroup: "zz", Must: true})
	table.register(DeleteKey{QualifiedGroup: "aa", Must: true})
	table.register(DeleteKey{QualifiedGroup: "mm", Must: false})

	key, ok := table.unmatchedMust()
	require.True(t, ok)
	assert.Equal(t, "zz", key.QualifiedGroup, "first registered unmatched key wins")

	table.deleteIfMatching(&Element{Group: "zz", Name: "z1"})

	key, ok = table.unmatchedMust()
	require.True(t, ok)
	assert.Equal(t, "aa", key.QualifiedGroup)

	table.deleteIfMatching(&Element{Group: "aa", Name: "a1"})

	_, ok = table.unmatchedMust()
	assert.False(t, ok, "non-must keys never report")
}

func TestDeleteTable_RegisterKeepsCount(t *testing.T) {
	t.Parallel()

	table := newDeleteTable()
	key := DeleteKey{QualifiedGroup: "db", Must: true}
	table.register(key)
	table.deleteIfMatching(&Element{Group: "db", Name: "mysql"})

	table.register(key)

	_, ok := table.unmatchedMust()
	assert.False(t, ok, "re-registration must not reset the match count")
}
