package protostream

import (
	"github.com/OrionOS-Project/frameworks-base-sub001/wire"
)

// ===== NESTED OBJECTS =====

// StartObject opens a singular nested message field and returns the token
// that must be handed back to EndObject once the object's fields have been
// written. Objects nest freely; every Start must be matched by its End in
// LIFO order before the stream is finalized.
func (s *Stream) StartObject(field FieldKey) (Token, error) {
	id, err := s.checkWrite(field, CountSingle|TypeObject)
	if err != nil {
		return 0, err
	}
	return s.startObjectImpl(id, false), nil
}

// EndObject closes the object opened by the matching StartObject.
func (s *Stream) EndObject(token Token) error {
	if s.compacted {
		return ErrAlreadyFinalized
	}
	return s.endObjectImpl(token, false)
}

// StartRepeatedObject opens one element of a repeated nested message field.
func (s *Stream) StartRepeatedObject(field FieldKey) (Token, error) {
	id, err := s.checkWrite(field, CountRepeated|TypeObject)
	if err != nil {
		return 0, err
	}
	return s.startObjectImpl(id, true), nil
}

// EndRepeatedObject closes the element opened by the matching
// StartRepeatedObject.
func (s *Stream) EndRepeatedObject(token Token) error {
	if s.compacted {
		return ErrAlreadyFinalized
	}
	return s.endObjectImpl(token, true)
}

func (s *Stream) startObjectImpl(id uint32, repeated bool) Token {
	s.writeTag(id, wire.WireLengthDelimited)
	sizePos := s.buf.WritePos()
	s.depth++
	s.nextObjectID--

	// Stash the enclosing object's token in this object's size slot. The
	// open objects form a stack threaded through the buffer, so the stream
	// itself only holds the innermost token.
	s.buf.WriteRawFixed32(uint32(uint64(s.expectedToken) >> 32))
	s.buf.WriteRawFixed32(uint32(s.expectedToken))
	s.expectedToken = makeToken(wire.TagSize(id), repeated, s.depth, s.nextObjectID, sizePos)
	return s.expectedToken
}

func (s *Stream) endObjectImpl(token Token, repeated bool) error {
	sizePos := token.sizePos()
	// Minus 8 accounts for the stashed token occupying the size slot.
	childRawSize := s.buf.WritePos() - sizePos - 8

	if repeated != token.repeated() {
		return newWrongEndVariantError(token, repeated)
	}

	// The token must name the innermost open object at the current depth.
	// That much checking catches the common error of a missing EndObject
	// somewhere below.
	if s.depth&0x01ff != token.depth() || s.expectedToken != token {
		return newTokenMismatchError(token, s.expectedToken, s.depth)
	}

	// Pop: the enclosing object's token comes back out of the size slot.
	s.expectedToken = Token(uint64(s.buf.RawFixed32At(sizePos))<<32 |
		uint64(s.buf.RawFixed32At(sizePos+4)))
	s.depth--

	if childRawSize > 0 {
		// Leave the slot unresolved for the compaction pass: negative raw
		// size in the first half, -1 encoded size in the second.
		s.buf.EditRawFixed32(sizePos, uint32(-int32(childRawSize)))
		s.buf.EditRawFixed32(sizePos+4, 0xffffffff)
	} else if repeated {
		// An empty repeated element stays on the wire with a zero size.
		s.buf.EditRawFixed32(sizePos, 0)
		s.buf.EditRawFixed32(sizePos+4, 0)
	} else {
		// An empty singular object vanishes, tag included.
		s.buf.RewindWriteTo(sizePos - token.tagSize())
	}
	return nil
}
