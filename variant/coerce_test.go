package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/tag"
)

func TestInt64WidensAllIntegerKinds(t *testing.T) {
	cases := []Value{Int(1), Int(200), Int(40000), Int(1 << 40)}
	for _, v := range cases {
		n, err := v.Int64()
		require.NoError(t, err)
		assert.NotZero(t, n)
	}

	_, err := String("x").Int64()
	assert.ErrorIs(t, err, errs.ErrDomain)
}

func TestFloat64WidensFloatAndInteger(t *testing.T) {
	f, err := Float32(1.5).Float64()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 1e-6)

	f, err = Float64(2.5).Float64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	f, err = Int(3).Float64()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = String("x").Float64()
	assert.ErrorIs(t, err, errs.ErrDomain)
}

func TestBoolTruthiness(t *testing.T) {
	b, err := Bool(true).Bool()
	require.NoError(t, err)
	assert.True(t, b)

	b, err = Bool(false).Bool()
	require.NoError(t, err)
	assert.False(t, b)

	_, err = Int(1).Bool()
	assert.ErrorIs(t, err, errs.ErrDomain)
}

func TestStringAndArrayCoercions(t *testing.T) {
	s, err := String("hi").StringValue()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
	_, err = Int(1).StringValue()
	assert.ErrorIs(t, err, errs.ErrDomain)

	b, err := Of(tag.NewByteArray([]byte{1, 2, 3})).ByteArrayValue()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	_, err = Int(1).ByteArrayValue()
	assert.ErrorIs(t, err, errs.ErrDomain)

	ia, err := Of(tag.NewIntArray([]int32{1, 2})).IntArrayValue()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, ia)
	_, err = Int(1).IntArrayValue()
	assert.ErrorIs(t, err, errs.ErrDomain)

	la, err := Of(tag.NewLongArray([]int64{1, 2})).LongArrayValue()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, la)
	_, err = Int(1).LongArrayValue()
	assert.ErrorIs(t, err, errs.ErrDomain)
}
