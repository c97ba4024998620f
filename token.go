package protostream

import "fmt"

// Token is returned by StartObject and StartRepeatedObject and must be
// handed back to the matching end call. It packs everything needed to close
// the object and to catch mismatched calls:
//
//	bits 61-63  size of the field's encoded tag, so an empty object can be
//	            erased back past its tag
//	bit  60     set when the object came from StartRepeatedObject
//	bits 51-59  nesting depth at the start call, truncated to 9 bits
//	bits 32-50  object serial number, truncated to 19 bits
//	bits 0-31   offset of the object's size slot in the buffer
type Token uint64

// makeToken packs the token fields. Depth and serial are masked rather than
// range-checked; the end-call comparison masks the same way, so overflow
// merely weakens error detection instead of corrupting state.
func makeToken(tagSize int, repeated bool, depth, objectID int32, sizePos int) Token {
	var repeatedBit uint64
	if repeated {
		repeatedBit = 1 << 60
	}
	return Token((0x07&uint64(tagSize))<<61 |
		repeatedBit |
		(0x01ff&uint64(depth))<<51 |
		(0x07ffff&uint64(objectID))<<32 |
		(0xffffffff & uint64(sizePos)))
}

func (t Token) tagSize() int {
	return int((t >> 61) & 0x07)
}

func (t Token) repeated() bool {
	return (t>>60)&0x1 != 0
}

func (t Token) depth() int32 {
	return int32((t >> 51) & 0x01ff)
}

func (t Token) objectID() int32 {
	return int32((t >> 32) & 0x07ffff)
}

func (t Token) sizePos() int {
	return int(t & 0xffffffff)
}

// objectOrdinal converts a masked object serial back to the ordinal of the
// start call that produced it. Serials count down from -1.
func objectOrdinal(objectID int32) int32 {
	return (-1 & 0x07ffff) - objectID
}

// String renders the token's fields for error messages.
func (t Token) String() string {
	if t == 0 {
		return "Token(0)"
	}
	return fmt.Sprintf("Token(val=0x%x depth=%d object=%d tagSize=%d sizePos=%d)",
		uint64(t), t.depth(), objectOrdinal(t.objectID()), t.tagSize(), t.sizePos())
}
