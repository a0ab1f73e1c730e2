package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/tag"
)

func TestIntPicksNarrowestKind(t *testing.T) {
	assert.Equal(t, tag.KindByte, Int(1).Kind())
	assert.Equal(t, tag.KindByte, Int(-128).Kind())
	assert.Equal(t, tag.KindShort, Int(128).Kind())
	assert.Equal(t, tag.KindShort, Int(-32768).Kind())
	assert.Equal(t, tag.KindInt, Int(32768).Kind())
	assert.Equal(t, tag.KindInt, Int(2147483647).Kind())
	assert.Equal(t, tag.KindLong, Int(2147483648).Kind())
	assert.Equal(t, tag.KindLong, Int(-1<<40).Kind())
}

func TestPredicates(t *testing.T) {
	assert.True(t, Array().IsArray())
	assert.True(t, Array().IsStructured())
	assert.False(t, Array().IsPrimitive())

	assert.True(t, Object().IsObject())
	assert.True(t, Object().IsStructured())

	assert.True(t, String("x").IsString())
	assert.True(t, String("x").IsPrimitive())

	assert.True(t, Bool(true).IsBoolean())
	assert.True(t, Bool(true).IsNumberInteger())

	assert.True(t, Null().IsNull())
	assert.True(t, Null().IsPrimitive())

	assert.True(t, Of(tag.NewByteArray([]byte{1, 2})).IsBinary())
	assert.True(t, Of(tag.NewIntArray([]int32{1})).IsBinary())
	assert.True(t, Of(tag.NewLongArray([]int64{1})).IsBinary())

	assert.True(t, Int(5).IsNumberInteger())
	assert.True(t, Int(5).IsNumber())
	assert.True(t, Float64(1.5).IsNumberFloat())
	assert.True(t, Float64(1.5).IsNumber())
}

func TestLen(t *testing.T) {
	assert.Equal(t, 0, Null().Len())
	assert.Equal(t, 1, Int(5).Len())
	assert.Equal(t, 1, String("x").Len())

	arr := Array()
	require.NoError(t, arr.PushBack(Int(1)))
	require.NoError(t, arr.PushBack(Int(2)))
	assert.Equal(t, 2, arr.Len())

	obj := Object()
	require.NoError(t, obj.Set("a", Int(1)))
	assert.Equal(t, 1, obj.Len())

	assert.Equal(t, 2, Of(tag.NewByteArray([]byte{1, 2})).Len())
	assert.Equal(t, 3, Of(tag.NewIntArray([]int32{1, 2, 3})).Len())
	assert.Equal(t, 1, Of(tag.NewLongArray([]int64{9})).Len())
}

func TestObjectGetSetRemoveRename(t *testing.T) {
	obj := Object()
	require.NoError(t, obj.Set("a", Int(1)))
	require.NoError(t, obj.Set("b", String("hi")))

	v, ok := obj.Get("a")
	require.True(t, ok)
	n, err := v.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok = obj.Get("missing")
	assert.False(t, ok)

	assert.True(t, obj.Rename("a", "renamed"))
	_, ok = obj.Get("a")
	assert.False(t, ok)
	_, ok = obj.Get("renamed")
	assert.True(t, ok)

	assert.True(t, obj.Remove("b"))
	assert.False(t, obj.Remove("b"))
	assert.Equal(t, 1, obj.Len())
}

func TestArrayIndexSetRemove(t *testing.T) {
	arr := Array()
	require.NoError(t, arr.PushBack(Int(10)))
	require.NoError(t, arr.PushBack(Int(20)))
	require.NoError(t, arr.PushBack(Int(30)))

	v, err := arr.Index(1)
	require.NoError(t, err)
	n, _ := v.Int64()
	assert.Equal(t, int64(20), n)

	require.NoError(t, arr.SetIndex(1, Int(99)))
	v, _ = arr.Index(1)
	n, _ = v.Int64()
	assert.Equal(t, int64(99), n)

	require.NoError(t, arr.RemoveIndex(0))
	assert.Equal(t, 2, arr.Len())
	v, _ = arr.Index(0)
	n, _ = v.Int64()
	assert.Equal(t, int64(99), n)

	_, err = arr.Index(5)
	assert.Error(t, err)
}

func TestNonContainerOpsReturnDomainError(t *testing.T) {
	v := Int(5)

	_, err := v.Index(0)
	assert.ErrorIs(t, err, errs.ErrDomain)

	_, ok := v.Get("x")
	assert.False(t, ok)

	err = v.Set("x", Int(1))
	assert.ErrorIs(t, err, errs.ErrDomain)

	err = v.PushBack(Int(1))
	assert.ErrorIs(t, err, errs.ErrDomain)
}

func TestRangeAndRangeArray(t *testing.T) {
	obj := Object()
	require.NoError(t, obj.Set("b", Int(2)))
	require.NoError(t, obj.Set("a", Int(1)))

	var keys []string
	require.NoError(t, obj.Range(func(key string, val Value) bool {
		keys = append(keys, key)

		return true
	}))
	assert.Equal(t, []string{"a", "b"}, keys)

	arr := Array()
	require.NoError(t, arr.PushBack(Int(1)))
	require.NoError(t, arr.PushBack(Int(2)))
	require.NoError(t, arr.PushBack(Int(3)))

	var seen []int
	require.NoError(t, arr.RangeArray(func(i int, val Value) bool {
		n, _ := val.Int64()
		seen = append(seen, int(n))

		return n != 2
	}))
	assert.Equal(t, []int{1, 2}, seen)
}
