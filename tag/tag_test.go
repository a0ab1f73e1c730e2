package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelfmt/nbt/errs"
)

func TestScalarConstructorsAndAccessors(t *testing.T) {
	require.Equal(t, KindByte, NewByte(5).Kind())
	b, err := NewByte(5).Byte()
	require.NoError(t, err)
	assert.Equal(t, uint8(5), b)

	_, err = NewByte(5).Int()
	assert.ErrorIs(t, err, errs.ErrWrongTagType)

	s, _ := NewString("héllo").String()
	assert.Equal(t, "héllo", s)
}

func TestListHomogeneity(t *testing.T) {
	l := NewEmptyList()
	require.Equal(t, KindEnd, l.ElemKind())

	require.NoError(t, l.Append(NewByte(1)))
	require.Equal(t, KindByte, l.ElemKind())
	require.NoError(t, l.Append(NewByte(2)))

	err := l.Append(NewInt(3))
	require.Error(t, err, "appending a mismatched kind to a non-empty list must fail")
	assert.Equal(t, 2, l.Len())
}

func TestListRemoveAtResetsElemKindWhenEmpty(t *testing.T) {
	l := NewEmptyList()
	require.NoError(t, l.Append(NewByte(1)))
	require.NoError(t, l.RemoveAt(0))
	assert.Equal(t, KindEnd, l.ElemKind())
}

func TestListEqual(t *testing.T) {
	a := NewEmptyList()
	_ = a.Append(NewInt(1))
	_ = a.Append(NewInt(2))

	b := NewEmptyList()
	_ = b.Append(NewInt(1))
	_ = b.Append(NewInt(2))

	assert.True(t, a.Equal(b))

	_ = b.Append(NewInt(3))
	assert.False(t, a.Equal(b))
}

func TestCompoundOrderingIsSortedByKey(t *testing.T) {
	c := NewCompoundEmpty()
	c.Set("zebra", NewInt(1))
	c.Set("apple", NewInt(2))
	c.Set("mango", NewInt(3))

	assert.Equal(t, []string{"apple", "mango", "zebra"}, c.Keys())
}

func TestCompoundEqualityIgnoresInsertionOrder(t *testing.T) {
	a := NewCompoundEmpty()
	a.Set("x", NewInt(1))
	a.Set("y", NewInt(2))

	b := NewCompoundEmpty()
	b.Set("y", NewInt(2))
	b.Set("x", NewInt(1))

	assert.True(t, a.Equal(b))
}

func TestCloneIsDeep(t *testing.T) {
	inner := NewCompoundEmpty()
	inner.Set("n", NewInt(42))
	orig := NewCompound(inner)

	clone := orig.Clone()
	cloneC, _ := clone.Compound()
	cloneC.Set("n", NewInt(99))

	origC, _ := orig.Compound()
	v, _ := origC.Get("n")
	n, _ := v.Int()
	assert.Equal(t, int32(42), n, "mutating the clone must not affect the original")
}

func TestMergeCommutativityOnDisjointCompounds(t *testing.T) {
	a := NewCompoundEmpty()
	a.Set("a1", NewInt(1))
	b := NewCompoundEmpty()
	b.Set("b1", NewInt(2))

	merged1 := a.Clone()
	merged1.Merge(b, false)

	merged2 := b.Clone()
	merged2.Merge(a, false)

	assert.True(t, merged1.Equal(merged2))
}

func TestMergeRecursesIntoNestedCompounds(t *testing.T) {
	a := NewCompoundEmpty()
	innerA := NewCompoundEmpty()
	innerA.Set("x", NewInt(1))
	a.Set("inner", NewCompound(innerA))

	b := NewCompoundEmpty()
	innerB := NewCompoundEmpty()
	innerB.Set("y", NewInt(2))
	b.Set("inner", NewCompound(innerB))

	a.Merge(b, false)

	innerTag, ok := a.Get("inner")
	require.True(t, ok)
	innerC, _ := innerTag.Compound()
	assert.Equal(t, 2, innerC.Len())
}

func TestMergeListAppendsUniqueElements(t *testing.T) {
	la := NewEmptyList()
	_ = la.Append(NewInt(1))
	_ = la.Append(NewInt(2))

	lb := NewEmptyList()
	_ = lb.Append(NewInt(2))
	_ = lb.Append(NewInt(3))

	a := NewCompoundEmpty()
	a.Set("l", NewList(la))
	b := NewCompoundEmpty()
	b.Set("l", NewList(lb))

	a.Merge(b, true)

	lt, _ := a.Get("l")
	lst, _ := lt.List()
	assert.Equal(t, 3, lst.Len())
}

func TestHashStableAndDistinguishesValues(t *testing.T) {
	h1 := NewInt(1).Hash()
	h2 := NewInt(1).Hash()
	h3 := NewInt(2).Hash()

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
}

func TestHashDistinguishesKindsWithSameBitPattern(t *testing.T) {
	// Byte(0) and End are structurally different tags.
	assert.NotEqual(t, End().Hash(), NewByte(0).Hash())
}

func TestFloatEqualityIsBitExact(t *testing.T) {
	a := NewFloat(1.5)
	b := NewFloat(1.5)
	assert.True(t, a.Equal(b))
}

func TestArrayTagsEqualAndClone(t *testing.T) {
	orig := NewIntArray([]int32{1, 2, 3})
	clone := orig.Clone()
	assert.True(t, orig.Equal(clone))

	arr, _ := clone.IntArray()
	arr[0] = 99
	origArr, _ := orig.IntArray()
	assert.Equal(t, int32(1), origArr[0], "clone must not alias the original backing array")
}
