package snbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelfmt/nbt/tag"
)

func TestEmitCompoundWithLineFeed(t *testing.T) {
	c := tag.NewCompoundEmpty()
	c.Set("a", tag.NewByte(1))

	got := Emit(tag.NewCompound(c), CompoundLineFeed, 2)
	assert.Equal(t, "{\n  a: 1b\n}", got)
}

func TestEmitMinimizeInline(t *testing.T) {
	c := tag.NewCompoundEmpty()
	c.Set("a", tag.NewByte(1))
	c.Set("b", tag.NewInt(2))

	got := Emit(tag.NewCompound(c), 0, 0)
	assert.Contains(t, got, "a: 1b")
	assert.Contains(t, got, "b: 2")
	assert.NotContains(t, got, "\n")
}

func TestEmitIntDefaultSuppressesMarker(t *testing.T) {
	got := Emit(tag.NewInt(5), Default, 2)
	assert.Equal(t, "5", got)
}

func TestEmitIntMarkedWithFlag(t *testing.T) {
	got := Emit(tag.NewInt(5), MarkIntTag, 2)
	assert.Equal(t, "5i", got)
}

func TestEmitCommentMarks(t *testing.T) {
	got := Emit(tag.NewByte(1), CommentMarks, 2)
	assert.Equal(t, "1 /*b*/", got)
}

func TestEmitForceUppercase(t *testing.T) {
	got := Emit(tag.NewByte(1), ForceUppercase, 2)
	assert.Equal(t, "1B", got)
}

func TestEmitByteArray(t *testing.T) {
	got := Emit(tag.NewByteArray([]byte{1, 2, 3}), 0, 0)
	assert.Equal(t, "[B;1b, 2b, 3b]", got)
}

func TestEmitIntArrayUnmarked(t *testing.T) {
	got := Emit(tag.NewIntArray([]int32{1, 2, 3}), 0, 0)
	assert.Equal(t, "[I;1, 2, 3]", got)
}

func TestEmitListInline(t *testing.T) {
	l := tag.NewEmptyList()
	_ = l.Append(tag.NewInt(1))
	_ = l.Append(tag.NewInt(2))

	got := Emit(tag.NewList(l), 0, 0)
	assert.Equal(t, "[1, 2]", got)
}

func TestEmitForceQuoteString(t *testing.T) {
	got := Emit(tag.NewString("hello"), ForceQuote, 0)
	assert.Equal(t, `"hello"`, got)
}

func TestEmitUnquotedStringWhenTrivial(t *testing.T) {
	got := Emit(tag.NewString("hello"), 0, 0)
	assert.Equal(t, "hello", got)
}

func TestEmitQuotesStringThatLooksNumeric(t *testing.T) {
	got := Emit(tag.NewString("123"), 0, 0)
	assert.Equal(t, `"123"`, got)
}

func TestEmitBase64FallbackForInvalidUTF8(t *testing.T) {
	got := Emit(tag.NewString(string([]byte{0xff, 0xfe})), 0, 0)
	assert.Contains(t, got, base64Marker)
}

func TestEmitParseRoundTrip(t *testing.T) {
	c := tag.NewCompoundEmpty()
	c.Set("name", tag.NewString("test"))
	c.Set("value", tag.NewInt(42))
	orig := tag.NewCompound(c)

	text := Emit(orig, PrettyFilePrint, 2)
	parsed, _, err := Parse(text, WithStrictTrailing())
	require.NoError(t, err)
	assert.True(t, orig.Equal(parsed))
}

func TestToJSONCollapsesNumericArray(t *testing.T) {
	got := ToJSON(tag.NewIntArray([]int32{1, 2, 3}), 2)
	assert.Equal(t, "[1, 2, 3]", got)
}

func TestToJSONQuotesAllKeys(t *testing.T) {
	c := tag.NewCompoundEmpty()
	c.Set("a", tag.NewInt(1))

	got := ToJSON(tag.NewCompound(c), 2)
	assert.Equal(t, "{\n  \"a\": 1\n}", got)
}

func TestToJSONOmitsTypeMarkers(t *testing.T) {
	got := ToJSON(tag.NewByte(1), 0)
	assert.Equal(t, "1", got)
}
