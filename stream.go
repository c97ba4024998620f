// Package protostream builds protocol-buffers wire format messages in a
// single forward pass, without generated code and without knowing nested
// message sizes up front.
//
// Length-delimited fields are laid out with a fixed 8-byte size slot
// instead of the final varint length. Nested messages reserve their slot at
// StartObject time and fill in a deferred size marker at EndObject time; a
// finalization step then resolves all deferred sizes bottom-up and compacts
// every slot into the single varint the wire format requires. The result is
// a byte-exact protobuf message produced with one buffer and no
// intermediate object graph.
package protostream

import (
	"fmt"

	"github.com/OrionOS-Project/frameworks-base-sub001/wire"
)

// Stream is a protobuf wire format encoder. Fields are appended with the
// Write and Start/End methods and the encoded message is produced by Bytes.
//
// A Stream is a strictly sequential, single-goroutine builder: no method is
// safe for concurrent use, and after Bytes succeeds the stream is sealed
// against further writes.
type Stream struct {
	buf *wire.Buffer

	// Nesting state. Only the innermost unmatched StartObject token is
	// held here; the tokens of enclosing objects are stashed in their own
	// size slots, forming a stack threaded through the buffer.
	depth         int32
	nextObjectID  int32
	expectedToken Token

	// Finalization state.
	copyBegin int
	compacted bool
}

// New creates a stream with the default buffer capacity.
func New() *Stream {
	return NewSize(0)
}

// NewSize creates a stream whose buffer starts with the given capacity in
// bytes. Sizes of zero or less fall back to the default.
func NewSize(capacity int) *Stream {
	return &Stream{
		buf:          wire.NewBufferSize(capacity),
		nextObjectID: -1,
	}
}

// checkWrite guards every mutating call: the stream must not be finalized
// and the field key must carry the flags the calling method expects.
func (s *Stream) checkWrite(field, expected FieldKey) (uint32, error) {
	if s.compacted {
		return 0, ErrAlreadyFinalized
	}
	return checkFieldKey(field, expected)
}

// writeTag writes the varint tag for a field.
func (s *Stream) writeTag(id uint32, wireType wire.WireType) {
	s.buf.WriteRawVarint32(wire.MakeTag(id, wireType))
}

// writeKnownLengthHeader writes the tag and size slot for a
// length-delimited field whose size is known at write time. The size goes
// into both slot halves so the finalization passes can tell the field was
// never deferred.
func (s *Stream) writeKnownLengthHeader(id uint32, size int) {
	s.writeTag(id, wire.WireLengthDelimited)
	s.buf.WriteRawFixed32(uint32(size))
	s.buf.WriteRawFixed32(uint32(size))
}

// writeUnsignedVarintFromSignedInt32 writes a signed 32-bit value the way
// protobuf varint fields expect it: non-negative values keep their natural
// width, negative values are sign-extended to 64 bits first and take ten
// bytes.
func (s *Stream) writeUnsignedVarintFromSignedInt32(v int32) {
	if v >= 0 {
		s.buf.WriteRawVarint32(uint32(v))
	} else {
		s.buf.WriteRawVarint64(uint64(int64(v)))
	}
}

// DebugString summarizes buffer and nesting state for debugging.
func (s *Stream) DebugString() string {
	return fmt.Sprintf("Stream( %s depth=%d expectedToken=%s compacted=%t )",
		s.buf.DebugString(), s.depth, s.expectedToken, s.compacted)
}
