package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint          WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64         WireType = 1 // fixed64, sfixed64, double
	WireLengthDelimited WireType = 2 // string, bytes, nested messages, packed repeated fields
	WireStartGroup      WireType = 3 // legacy groups, rejected by the editing passes
	WireEndGroup        WireType = 4 // legacy groups, rejected by the editing passes
	WireFixed32         WireType = 5 // fixed32, sfixed32, float
)

// MakeTag combines a field number and wire type into the varint tag that
// precedes every encoded field.
func MakeTag(fieldNumber uint32, wireType WireType) uint32 {
	return fieldNumber<<3 | uint32(wireType)
}

// ParseTag splits a tag into its field number and wire type.
func ParseTag(tag uint64) (uint32, WireType) {
	return uint32(tag >> 3), WireType(tag & 0x7)
}

// TagSize returns the number of bytes the encoded tag for fieldNumber
// occupies.
func TagSize(fieldNumber uint32) int {
	return Varint32Size(fieldNumber << 3)
}
