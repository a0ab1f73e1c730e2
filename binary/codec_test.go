package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelfmt/nbt/format"
	"github.com/voxelfmt/nbt/tag"
)

func sampleTree() *Tree {
	root := tag.NewCompoundEmpty()
	root.Set("name", tag.NewString("Bananrama"))
	root.Set("health", tag.NewFloat(20.5))
	root.Set("score", tag.NewLong(9001))

	inv := tag.NewEmptyList()
	item1 := tag.NewCompoundEmpty()
	item1.Set("id", tag.NewShort(1))
	item2 := tag.NewCompoundEmpty()
	item2.Set("id", tag.NewShort(2))
	_ = inv.Append(tag.NewCompound(item1))
	_ = inv.Append(tag.NewCompound(item2))
	root.Set("inventory", tag.NewList(inv))

	root.Set("bytes", tag.NewByteArray([]byte{1, 2, 3}))
	root.Set("ints", tag.NewIntArray([]int32{10, 20, 30}))
	root.Set("longs", tag.NewLongArray([]int64{100, 200}))

	return &Tree{Name: "root", Root: root}
}

func roundTrip(t *testing.T, d format.Dialect) {
	t.Helper()

	tree := sampleTree()
	out, err := Encode(tree, d)
	require.NoError(t, err)

	got, err := Decode(out, d)
	require.NoError(t, err)
	assert.False(t, got.Overflowed)
	assert.Equal(t, tree.Name, got.Name)
	assert.True(t, tree.Root.Equal(got.Root))
}

func TestRoundTripAllDialects(t *testing.T) {
	for _, d := range []format.Dialect{
		format.LittleEndian,
		format.LittleEndianHdr,
		format.BigEndian,
		format.BigEndianHdr,
		format.Network,
	} {
		t.Run(d.String(), func(t *testing.T) {
			roundTrip(t, d)
		})
	}
}

func TestHeaderStorageVersionFromOption(t *testing.T) {
	tree := sampleTree()
	out, err := Encode(tree, format.LittleEndianHdr, WithStorageVersion(7))
	require.NoError(t, err)

	got, err := Decode(out, format.LittleEndianHdr)
	require.NoError(t, err)
	require.NotNil(t, got.Header)
	assert.Equal(t, int32(7), got.Header.StorageVersion)
	assert.Equal(t, int32(len(out)-format.HeaderSize), got.Header.PayloadLength)
}

func TestHeaderStorageVersionFromChildTag(t *testing.T) {
	tree := sampleTree()
	tree.Root.Set(storageVersionKey, tag.NewInt(42))

	out, err := Encode(tree, format.BigEndianHdr)
	require.NoError(t, err)

	got, err := Decode(out, format.BigEndianHdr)
	require.NoError(t, err)
	assert.Equal(t, int32(42), got.Header.StorageVersion)
}

func TestDecodeRejectsNonCompoundRoot(t *testing.T) {
	// A stream whose first byte is TAG_Int (3) rather than TAG_Compound (10).
	data := []byte{3, 0, 0, 0, 0, 0}
	_, err := Decode(data, format.LittleEndian)
	require.Error(t, err)
}

func TestDecodeTruncatedStreamMarksOverflowed(t *testing.T) {
	tree := sampleTree()
	out, err := Encode(tree, format.LittleEndian)
	require.NoError(t, err)

	truncated := out[:len(out)/2]
	got, err := Decode(truncated, format.LittleEndian)
	require.NoError(t, err)
	assert.True(t, got.Overflowed)
}

func TestNetworkDialectUsesVarintsForIntAndLong(t *testing.T) {
	root := tag.NewCompoundEmpty()
	root.Set("n", tag.NewInt(1))
	root.Set("l", tag.NewLong(1))
	tree := &Tree{Name: "", Root: root}

	out, err := Encode(tree, format.Network)
	require.NoError(t, err)

	// TAG_Compound(10), root name len varint(0); entries in key order:
	// TAG_Long(4), key len varint(1), 'l', zigzag varint(1)=2;
	// TAG_Int(3), key len varint(1), 'n', zigzag varint(1)=2; End(0).
	assert.Equal(t, []byte{10, 0, 4, 1, 'l', 2, 3, 1, 'n', 2, 0}, out)
}
