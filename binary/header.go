package binary

import "github.com/voxelfmt/nbt/tag"

// storageVersionKey is the well-known child tag name consulted when encoding
// a header-bearing dialect and no explicit WithStorageVersion option was
// given (§6.1): if the root compound holds an Int tag under this key, its
// value becomes the header's storage_version.
const storageVersionKey = "StorageVersion"

// Header is the 8-byte framing prefix carried by LittleEndianWithHeader and
// BigEndianWithHeader (§6.1): a storage_version field followed by the
// payload_length of the bytes that follow the header.
type Header struct {
	StorageVersion int32
	PayloadLength  int32
}

// resolveStorageVersion implements the precedence rule for storage_version:
// an explicit option wins, then a "StorageVersion" Int child of the root
// compound, then 0.
func resolveStorageVersion(root *tag.Compound, explicit *int32) int32 {
	if explicit != nil {
		return *explicit
	}
	if root != nil {
		if v, ok := root.Get(storageVersionKey); ok {
			if n, err := v.Int(); err == nil {
				return n
			}
		}
	}

	return 0
}
