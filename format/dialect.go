// Package format defines the enumerations shared by the binary, validate, and
// detect packages: the on-wire dialect and the outer compression wrapper.
package format

// Dialect identifies one of the five on-wire binary encodings described in
// §4.2.1 of the format specification.
type Dialect uint8

const (
	// LittleEndian has no header; Int/Short/Long/Float/Double are little-endian
	// fixed width, array/list lengths are int32 and string lengths int16.
	LittleEndian Dialect = 0x1
	// LittleEndianHdr is LittleEndian prefixed by the 8-byte storage header.
	LittleEndianHdr Dialect = 0x2
	// BigEndian has no header; fixed width fields are big-endian.
	BigEndian Dialect = 0x3
	// BigEndianHdr is BigEndian prefixed by the 8-byte storage header.
	BigEndianHdr Dialect = 0x4
	// Network uses LEB128 varints throughout, including for Int and Long.
	Network Dialect = 0x5
)

// String returns the human-readable dialect name.
func (d Dialect) String() string {
	switch d {
	case LittleEndian:
		return "LittleEndian"
	case LittleEndianHdr:
		return "LittleEndianWithHeader"
	case BigEndian:
		return "BigEndian"
	case BigEndianHdr:
		return "BigEndianWithHeader"
	case Network:
		return "Network"
	default:
		return "Unknown"
	}
}

// HasHeader reports whether the dialect is framed by the 8-byte storage header.
func (d Dialect) HasHeader() bool {
	return d == LittleEndianHdr || d == BigEndianHdr
}

// IsNetwork reports whether the dialect uses the varint stream instead of
// fixed-width integers.
func (d Dialect) IsNetwork() bool {
	return d == Network
}

// IsLittleEndian reports whether the dialect's fixed-width fields, if any, are
// little-endian. Network reports false; its Short/Float/Double fields are
// always little-endian, written by the varint stream.
func (d Dialect) IsLittleEndian() bool {
	return d == LittleEndian || d == LittleEndianHdr
}

// DetectionOrder is the fixed precedence used by the format detector (§4.6):
// the first dialect in this list whose validator accepts the bytes wins.
var DetectionOrder = []Dialect{
	LittleEndianHdr,
	LittleEndian,
	BigEndianHdr,
	BigEndian,
	Network,
}

// HeaderSize is the length in bytes of the storage header carried by
// LittleEndianHdr and BigEndianHdr: a 4-byte storage_version then a 4-byte
// payload_length (§6.1).
const HeaderSize = 8
