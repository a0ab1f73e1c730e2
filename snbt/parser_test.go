package snbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/tag"
)

func TestParseScalars(t *testing.T) {
	cases := []struct {
		in   string
		kind tag.Kind
	}{
		{"1b", tag.KindByte},
		{"1B", tag.KindByte},
		{"1s", tag.KindShort},
		{"5", tag.KindInt},
		{"2147483648", tag.KindLong},
		{"5l", tag.KindLong},
		{"1.5", tag.KindDouble},
		{"1.5f", tag.KindFloat},
		{"1.5d", tag.KindDouble},
		{"-3", tag.KindInt},
		{"1 /*b*/", tag.KindByte},
	}
	for _, c := range cases {
		v, n, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.kind, v.Kind(), c.in)
		assert.True(t, n > 0)
	}
}

func TestParseByteRangeOverflow(t *testing.T) {
	_, _, err := Parse("256b")
	assert.ErrorIs(t, err, errs.ErrNumberRange)
}

func TestParseKeywords(t *testing.T) {
	v, _, err := Parse("true")
	require.NoError(t, err)
	b, _ := v.Byte()
	assert.Equal(t, uint8(1), b)

	v, _, err = Parse("false")
	require.NoError(t, err)
	b, _ = v.Byte()
	assert.Equal(t, uint8(0), b)

	v, _, err = Parse("null")
	require.NoError(t, err)
	assert.True(t, v.IsEnd())
}

func TestParseUnquotedStringNotKeywordPrefix(t *testing.T) {
	v, _, err := Parse("nullable")
	require.NoError(t, err)
	s, err := v.String()
	require.NoError(t, err)
	assert.Equal(t, "nullable", s)
}

func TestParseQuotedStringEscapes(t *testing.T) {
	v, _, err := Parse(`"a\nb\tc\"d"`)
	require.NoError(t, err)
	s, err := v.String()
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tc\"d", s)
}

func TestParseUnicodeSurrogatePair(t *testing.T) {
	v, _, err := Parse("\"\\ud83d\\ude00\"")
	require.NoError(t, err)
	s, err := v.String()
	require.NoError(t, err)
	assert.Equal(t, "😀", s)
}

func TestParseUnicodeLoneSurrogate(t *testing.T) {
	_, _, err := Parse(`"\ud83d"`)
	assert.ErrorIs(t, err, errs.ErrInvalidSurrogate)
}

func TestParseList(t *testing.T) {
	v, _, err := Parse("[1, 2, 3,]")
	require.NoError(t, err)
	l, err := v.List()
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, tag.KindInt, l.ElemKind())
}

func TestParseListRejectsMixedKinds(t *testing.T) {
	_, _, err := Parse(`[1, "a"]`)
	assert.ErrorIs(t, err, errs.ErrListElementType)
}

func TestParseByteArray(t *testing.T) {
	v, _, err := Parse("[B;1b,2b,3b]")
	require.NoError(t, err)
	b, err := v.ByteArray()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestParseIntArrayUnsuffixed(t *testing.T) {
	v, _, err := Parse("[I;1,2,3]")
	require.NoError(t, err)
	a, err := v.IntArray()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, a)
}

func TestParseLongArrayRequiresSuffix(t *testing.T) {
	_, _, err := Parse("[L;1,2,3]")
	assert.ErrorIs(t, err, errs.ErrSyntax)

	v, _, err := Parse("[L;1l,2l,3l]")
	require.NoError(t, err)
	a, err := v.LongArray()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, a)
}

func TestParseCommentedArrayPrefix(t *testing.T) {
	v, _, err := Parse("[ /*B;*/ 1b, 2b]")
	require.NoError(t, err)
	b, err := v.ByteArray()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
}

func TestParseCompound(t *testing.T) {
	v, _, err := Parse(`{a: 1b, "b c" = "d"}`)
	require.NoError(t, err)
	c, err := v.Compound()
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	a, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, tag.KindByte, a.Kind())
}

func TestParseComments(t *testing.T) {
	v, _, err := Parse("// leading comment\n{a: 1 /* inline */, b: 2} # trailing")
	require.NoError(t, err)
	c, err := v.Compound()
	require.NoError(t, err)
	assert.True(t, c.Has("a"))
}

func TestParseStrictTrailingRejectsGarbage(t *testing.T) {
	_, _, err := Parse("1 garbage", WithStrictTrailing())
	assert.ErrorIs(t, err, errs.ErrTrailingBytes)
}

func TestParseBase64Fallback(t *testing.T) {
	v, _, err := Parse(`"aGVsbG8=" /*BASE64*/`)
	require.NoError(t, err)
	s, err := v.String()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}
