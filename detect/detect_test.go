package detect

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
	// 300 takes a two-byte varint under Network; with a one-byte value such
	// as 7 the Network bytes also validate as BigEndian, which detection
	// tries first.
	root.Set("x", tag.NewInt(300))

	return &binary.Tree{Name: "", Root: root}
}

func TestContentFormatPrecedenceOrder(t *testing.T) {
	// LittleEndian and Network both happily validate many byte strings; make
	// sure LittleEndianWithHeader wins when a stream is actually ambiguous
	// by constructing one through the real header-bearing encoder.
	out, err := binary.Encode(sampleTree(), format.LittleEndianHdr)
	require.NoError(t, err)

	d, ok := ContentFormat(out, true)
	require.True(t, ok)
	assert.Equal(t, format.LittleEndianHdr, d)
}

func TestContentFormatDetectsEachDialect(t *testing.T) {
	for _, want := range []format.Dialect{
		format.LittleEndian,
		format.LittleEndianHdr,
		format.BigEndian,
		format.BigEndianHdr,
		format.Network,
	} {
		out, err := binary.Encode(sampleTree(), want)
		require.NoError(t, err)

		got, ok := ContentFormat(out, true)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestContentFormatReturnsFalseForGarbage(t *testing.T) {
	_, ok := ContentFormat([]byte{0xFF, 0xFF, 0xFF}, true)
	assert.False(t, ok)
}

func TestContentCompressionRecognizesGzip(t *testing.T) {
	c, ok := ContentCompression([]byte{0x1F, 0x8B, 0x08, 0x00})
	require.True(t, ok)
	assert.Equal(t, format.CompressionGzip, c)
}

func TestContentCompressionRecognizesZlib(t *testing.T) {
	c, ok := ContentCompression([]byte{0x78, 0x9C, 0x00})
	require.True(t, ok)
	assert.Equal(t, format.CompressionZlib, c)
}

func TestContentCompressionDefaultsToNone(t *testing.T) {
	c, ok := ContentCompression([]byte{0x10, 0x20, 0x30})
	require.True(t, ok)
	assert.Equal(t, format.CompressionNone, c)
}
