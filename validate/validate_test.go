package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelfmt/nbt/binary"
	"github.com/voxelfmt/nbt/format"
	"github.com/voxelfmt/nbt/tag"
)

func sampleTree() *binary.Tree {
	root := tag.NewCompoundEmpty()
	root.Set("name", tag.NewString("Bananrama"))
	root.Set("health", tag.NewFloat(20.5))

	l := tag.NewEmptyList()
	_ = l.Append(tag.NewInt(1))
	_ = l.Append(tag.NewInt(2))
	root.Set("scores", tag.NewList(l))

	root.Set("ints", tag.NewIntArray([]int32{1, 2, 3}))

	return &binary.Tree{Name: "", Root: root}
}

func TestValidateAcceptsWellFormedStreamForEveryDialect(t *testing.T) {
	for _, d := range []format.Dialect{
		format.LittleEndian,
		format.LittleEndianHdr,
		format.BigEndian,
		format.BigEndianHdr,
		format.Network,
	} {
		t.Run(d.String(), func(t *testing.T) {
			out, err := binary.Encode(sampleTree(), d)
			require.NoError(t, err)
			assert.True(t, Validate(out, d, true))
			assert.True(t, Validate(out, d, false))
		})
	}
}

func TestValidateRejectsTruncatedStream(t *testing.T) {
	out, err := binary.Encode(sampleTree(), format.LittleEndian)
	require.NoError(t, err)

	assert.False(t, Validate(out[:len(out)-1], format.LittleEndian, false))
}

func TestValidateRejectsNonCompoundRoot(t *testing.T) {
	assert.False(t, Validate([]byte{3, 0, 0, 0, 0, 0}, format.LittleEndian, false))
}

func TestValidateRejectsUnknownTypeCode(t *testing.T) {
	// TAG_Compound(10), root name len 0, entry type 99 (invalid), rest irrelevant.
	data := []byte{10, 0, 0, 99, 0, 0}
	assert.False(t, Validate(data, format.LittleEndian, false))
}

func TestStrictMatchSizeRejectsTrailingBytes(t *testing.T) {
	out, err := binary.Encode(sampleTree(), format.LittleEndian)
	require.NoError(t, err)

	withTrailing := append(out, 0xFF)
	assert.True(t, Validate(withTrailing, format.LittleEndian, false))
	assert.False(t, Validate(withTrailing, format.LittleEndian, true))
}

func TestValidateRejectsHeaderTooShort(t *testing.T) {
	assert.False(t, Validate([]byte{1, 2, 3}, format.LittleEndianHdr, false))
}
