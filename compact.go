package protostream

import (
	"fmt"

	"github.com/OrionOS-Project/frameworks-base-sub001/wire"
)

// ===== FINALIZATION =====

// Bytes finalizes the stream and returns the encoded message.
//
// The first call runs the compaction passes that resolve every deferred
// length slot into its final varint. After that the stream is sealed: the
// write methods fail with ErrAlreadyFinalized, while Bytes itself may be
// called again and returns the same data.
//
// If objects are still open, Bytes fails with an UnbalancedNestingError and
// leaves the stream untouched, so the caller can close the missing objects
// and try again.
func (s *Stream) Bytes() ([]byte, error) {
	if err := s.compactIfNecessary(); err != nil {
		return nil, err
	}
	return s.buf.Bytes(s.buf.ReadableSize()), nil
}

// compactIfNecessary runs the two-pass size resolution once.
func (s *Stream) compactIfNecessary() error {
	if s.compacted {
		return nil
	}
	if s.depth != 0 {
		return &UnbalancedNestingError{Depth: s.depth}
	}
	s.buf.StartEditing()
	readableSize := s.buf.ReadableSize()

	// First pass computes every object's encoded size and caches it in the
	// second half of its size slot.
	if _, err := s.editEncodedSize(readableSize); err != nil {
		return err
	}

	// Second pass rewrites the buffer in place, replacing each eight-byte
	// size slot with the final varint.
	s.buf.RewindReadTo(0)
	if err := s.compactSizes(readableSize); err != nil {
		return err
	}
	if s.copyBegin < readableSize {
		s.buf.WriteFromThisBuffer(s.copyBegin, readableSize-s.copyBegin)
	}

	// Freeze the compacted region as the stream's final content.
	s.buf.StartEditing()
	s.compacted = true
	return nil
}

// editEncodedSize walks one object's raw bytes and returns the object's
// final encoded size, patching the cached encoded size into the slot of
// every child along the way.
func (s *Stream) editEncodedSize(rawSize int) (int, error) {
	objectEnd := s.buf.ReadPos() + rawSize
	encodedSize := 0

	for tagPos := s.buf.ReadPos(); tagPos < objectEnd; tagPos = s.buf.ReadPos() {
		tag := s.readRawTag()
		encodedSize += wire.Varint32Size(tag)

		switch wire.WireType(tag & 0x07) {
		case wire.WireVarint:
			encodedSize++
			for s.buf.ReadRawByte()&0x80 != 0 {
				encodedSize++
			}
		case wire.WireFixed64:
			encodedSize += 8
			s.buf.SkipRead(8)
		case wire.WireLengthDelimited:
			childRawSize := int(int32(s.buf.ReadRawFixed32()))
			childEncodedSizePos := s.buf.ReadPos()
			childEncodedSize := int(int32(s.buf.ReadRawFixed32()))
			if childRawSize >= 0 {
				if childRawSize != childEncodedSize {
					return 0, &InternalConsistencyError{
						Offset: childEncodedSizePos,
						Detail: fmt.Sprintf("Pre-computed size where the precomputed size and the raw size in the buffer don't match! childRawSize=%d childEncodedSize=%d childEncodedSizePos=%d",
							childRawSize, childEncodedSize, childEncodedSizePos),
					}
				}
				s.buf.SkipRead(childRawSize)
			} else {
				var err error
				childEncodedSize, err = s.editEncodedSize(-childRawSize)
				if err != nil {
					return 0, err
				}
				s.buf.EditRawFixed32(childEncodedSizePos, uint32(childEncodedSize))
			}
			encodedSize += wire.Varint32Size(uint32(childEncodedSize)) + childEncodedSize
		case wire.WireStartGroup, wire.WireEndGroup:
			return 0, &InternalConsistencyError{
				Offset: tagPos,
				Detail: fmt.Sprintf("groups not supported at index %d", tagPos),
			}
		case wire.WireFixed32:
			encodedSize += 4
			s.buf.SkipRead(4)
		default:
			return 0, &InternalConsistencyError{
				Offset: tagPos,
				Detail: fmt.Sprintf("editEncodedSize Bad tag tag=0x%x wireType=%d -- %s",
					tag, tag&0x07, s.buf.DebugString()),
			}
		}
	}
	return encodedSize, nil
}

// compactSizes walks one object's raw bytes, bulk-copying everything except
// the eight-byte size slots forward and writing each slot's cached encoded
// size as a varint in its place. The write cursor never catches up with the
// read cursor, so the rewrite is safe in place.
func (s *Stream) compactSizes(rawSize int) error {
	objectEnd := s.buf.ReadPos() + rawSize

	for tagPos := s.buf.ReadPos(); tagPos < objectEnd; tagPos = s.buf.ReadPos() {
		tag := s.readRawTag()

		// Fields of the other wire types are only skipped here; their bytes
		// ride along in the bulk copy done at the next size slot, or at the
		// end of compactIfNecessary.
		switch wire.WireType(tag & 0x07) {
		case wire.WireVarint:
			for s.buf.ReadRawByte()&0x80 != 0 {
			}
		case wire.WireFixed64:
			s.buf.SkipRead(8)
		case wire.WireLengthDelimited:
			// Copy everything up to and including this field's tag.
			s.buf.WriteFromThisBuffer(s.copyBegin, s.buf.ReadPos()-s.copyBegin)

			childRawSize := int(int32(s.buf.ReadRawFixed32()))
			childEncodedSize := int(int32(s.buf.ReadRawFixed32()))
			s.buf.WriteRawVarint32(uint32(childEncodedSize))
			s.copyBegin = s.buf.ReadPos()

			if childRawSize >= 0 {
				s.buf.SkipRead(childEncodedSize)
			} else {
				if err := s.compactSizes(-childRawSize); err != nil {
					return err
				}
			}
		case wire.WireStartGroup, wire.WireEndGroup:
			return &InternalConsistencyError{
				Offset: tagPos,
				Detail: fmt.Sprintf("groups not supported at index %d", tagPos),
			}
		case wire.WireFixed32:
			s.buf.SkipRead(4)
		default:
			return &InternalConsistencyError{
				Offset: tagPos,
				Detail: fmt.Sprintf("compactSizes Bad tag tag=0x%x wireType=%d -- %s",
					tag, tag&0x07, s.buf.DebugString()),
			}
		}
	}
	return nil
}

// readRawTag reads the next tag, returning zero at the end of the readable
// region.
func (s *Stream) readRawTag() uint32 {
	if s.buf.ReadPos() == s.buf.ReadableSize() {
		return 0
	}
	return uint32(s.buf.ReadRawUnsigned())
}
