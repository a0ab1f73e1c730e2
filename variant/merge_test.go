package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCompoundOverwritesScalarConflict(t *testing.T) {
	a := Object()
	require.NoError(t, a.Set("x", Int(1)))
	require.NoError(t, a.Set("y", Int(2)))

	b := Object()
	require.NoError(t, b.Set("x", Int(99)))
	require.NoError(t, b.Set("z", Int(3)))

	require.NoError(t, a.Merge(b, false))

	v, _ := a.Get("x")
	n, _ := v.Int64()
	assert.Equal(t, int64(99), n)

	v, _ = a.Get("y")
	n, _ = v.Int64()
	assert.Equal(t, int64(2), n)

	v, _ = a.Get("z")
	n, _ = v.Int64()
	assert.Equal(t, int64(3), n)
}

func TestMergeCompoundRecursesOnNestedCompounds(t *testing.T) {
	inner1 := Object()
	require.NoError(t, inner1.Set("k", Int(1)))
	a := Object()
	require.NoError(t, a.Set("nested", inner1))

	inner2 := Object()
	require.NoError(t, inner2.Set("k2", Int(2)))
	b := Object()
	require.NoError(t, b.Set("nested", inner2))

	require.NoError(t, a.Merge(b, false))

	nested, ok := a.Get("nested")
	require.True(t, ok)
	assert.Equal(t, 2, nested.Len())
}

func TestMergeListWithoutMergeListFlagReplaces(t *testing.T) {
	a := Array()
	require.NoError(t, a.PushBack(Int(1)))

	b := Array()
	require.NoError(t, b.PushBack(Int(2)))
	require.NoError(t, b.PushBack(Int(3)))

	require.NoError(t, a.Merge(b, false))
	assert.Equal(t, 2, a.Len())
}

func TestMergeListAppendsUniqueByDeepEquality(t *testing.T) {
	a := Array()
	require.NoError(t, a.PushBack(Int(1)))
	require.NoError(t, a.PushBack(Int(2)))

	b := Array()
	require.NoError(t, b.PushBack(Int(2)))
	require.NoError(t, b.PushBack(Int(3)))

	require.NoError(t, a.Merge(b, true))

	assert.Equal(t, 3, a.Len())
	var vals []int64
	require.NoError(t, a.RangeArray(func(i int, val Value) bool {
		n, _ := val.Int64()
		vals = append(vals, n)

		return true
	}))
	assert.ElementsMatch(t, []int64{1, 2, 3}, vals)
}

func TestMergeValuesLeavesOperandsUntouched(t *testing.T) {
	a := Object()
	require.NoError(t, a.Set("x", Int(1)))
	b := Object()
	require.NoError(t, b.Set("y", Int(2)))

	merged, err := MergeValues(a, b, false)
	require.NoError(t, err)
	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}
