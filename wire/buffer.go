// Package wire provides the raw byte store and low-level helpers for
// building protocol-buffers wire format data.
package wire

import (
	"encoding/binary"
	"fmt"
)

const defaultBufferSize = 8 * 1024

// ===== RAW BUFFER =====

// Buffer is a growable byte store with independent read and write cursors.
// Writes append while the write cursor sits at the end of the data and
// overwrite in place after the cursor has been rewound. The read cursor is
// used only while an editing pass rewrites the data; StartEditing freezes
// the readable region and arms both cursors for such a pass.
//
// Offsets that fall outside the written region are defects in the calling
// code and panic rather than returning errors.
type Buffer struct {
	data         []byte
	writePos     int
	readPos      int
	readableSize int // frozen by StartEditing, -1 while building
}

// NewBuffer creates a buffer with the default initial capacity.
func NewBuffer() *Buffer {
	return NewBufferSize(0)
}

// NewBufferSize creates a buffer with the given initial capacity. Sizes of
// zero or less fall back to the default.
func NewBufferSize(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = defaultBufferSize
	}
	return &Buffer{
		data:         make([]byte, 0, capacity),
		readableSize: -1,
	}
}

// ===== WRITE METHODS =====

// WriteRawByte writes one byte at the write cursor.
func (b *Buffer) WriteRawByte(v byte) {
	if b.writePos == len(b.data) {
		b.data = append(b.data, v)
	} else {
		b.data[b.writePos] = v
	}
	b.writePos++
}

// WriteRawBuffer writes the contents of data at the write cursor. A nil or
// empty slice writes nothing.
func (b *Buffer) WriteRawBuffer(data []byte) {
	if len(data) == 0 {
		return
	}
	n := copy(b.data[b.writePos:], data)
	if n < len(data) {
		b.data = append(b.data, data[n:]...)
	}
	b.writePos += len(data)
}

// WriteRawString writes the bytes of s at the write cursor.
func (b *Buffer) WriteRawString(s string) {
	if len(s) == 0 {
		return
	}
	n := copy(b.data[b.writePos:], s)
	if n < len(s) {
		b.data = append(b.data, s[n:]...)
	}
	b.writePos += len(s)
}

// WriteRawVarint64 writes an unsigned LEB128 varint at the write cursor.
func (b *Buffer) WriteRawVarint64(v uint64) {
	for v >= 0x80 {
		b.WriteRawByte(byte(v) | 0x80)
		v >>= 7
	}
	b.WriteRawByte(byte(v))
}

// WriteRawVarint32 writes the low 32 bits of a value as a varint. Callers
// encoding negative numbers must sign-extend to 64 bits themselves and use
// WriteRawVarint64.
func (b *Buffer) WriteRawVarint32(v uint32) {
	b.WriteRawVarint64(uint64(v))
}

// WriteRawZigZag32 writes a zigzag-encoded signed 32-bit value.
func (b *Buffer) WriteRawZigZag32(v int32) {
	b.WriteRawVarint64(EncodeZigZag32(v))
}

// WriteRawZigZag64 writes a zigzag-encoded signed 64-bit value.
func (b *Buffer) WriteRawZigZag64(v int64) {
	b.WriteRawVarint64(EncodeZigZag64(v))
}

// WriteRawFixed32 writes 4 bytes, little endian.
func (b *Buffer) WriteRawFixed32(v uint32) {
	b.WriteRawByte(byte(v))
	b.WriteRawByte(byte(v >> 8))
	b.WriteRawByte(byte(v >> 16))
	b.WriteRawByte(byte(v >> 24))
}

// WriteRawFixed64 writes 8 bytes, little endian.
func (b *Buffer) WriteRawFixed64(v uint64) {
	b.WriteRawFixed32(uint32(v))
	b.WriteRawFixed32(uint32(v >> 32))
}

// WritePos returns the write cursor position.
func (b *Buffer) WritePos() int {
	return b.writePos
}

// RewindWriteTo moves the write cursor back to pos, abandoning whatever was
// written after it.
func (b *Buffer) RewindWriteTo(pos int) {
	if pos < 0 || pos > b.writePos {
		panic(fmt.Sprintf("wire: can only rewind the write cursor backwards: pos=%d writePos=%d", pos, b.writePos))
	}
	b.writePos = pos
}

// EditRawFixed32 overwrites 4 little-endian bytes at pos without moving the
// write cursor.
func (b *Buffer) EditRawFixed32(pos int, v uint32) {
	binary.LittleEndian.PutUint32(b.data[pos:pos+4], v)
}

// RawFixed32At reads 4 little-endian bytes at pos without moving the read
// cursor.
func (b *Buffer) RawFixed32At(pos int) uint32 {
	return binary.LittleEndian.Uint32(b.data[pos : pos+4])
}

// ===== EDITING =====

// StartEditing freezes the readable region at the current write cursor and
// rewinds both cursors to zero, so an editing pass can read the data while
// rewriting it in place. Editing passes must only shrink the data; an edit
// may never write past the bytes it has already consumed.
func (b *Buffer) StartEditing() {
	b.readableSize = b.writePos
	b.writePos = 0
	b.readPos = 0
}

// ReadableSize returns the region size frozen by the last StartEditing
// call, or -1 if editing has not started.
func (b *Buffer) ReadableSize() int {
	return b.readableSize
}

// WriteFromThisBuffer copies n already-written bytes starting at srcOff to
// the write cursor. The source may only sit at or ahead of the write
// cursor, so data moves toward the front of the buffer.
func (b *Buffer) WriteFromThisBuffer(srcOff, n int) {
	if b.readableSize < 0 {
		panic("wire: WriteFromThisBuffer called before StartEditing")
	}
	if srcOff < b.writePos {
		panic(fmt.Sprintf("wire: can only copy forward: srcOff=%d writePos=%d", srcOff, b.writePos))
	}
	if srcOff+n > b.readableSize {
		panic(fmt.Sprintf("wire: copy source out of range: srcOff=%d n=%d readableSize=%d", srcOff, n, b.readableSize))
	}
	if srcOff != b.writePos {
		copy(b.data[b.writePos:b.writePos+n], b.data[srcOff:srcOff+n])
	}
	b.writePos += n
}

// ===== READ METHODS =====

// ReadPos returns the read cursor position.
func (b *Buffer) ReadPos() int {
	return b.readPos
}

// ReadRawByte reads one byte at the read cursor.
func (b *Buffer) ReadRawByte() byte {
	v := b.data[b.readPos]
	b.readPos++
	return v
}

// ReadRawUnsigned reads an unsigned LEB128 varint at the read cursor.
func (b *Buffer) ReadRawUnsigned() uint64 {
	var result uint64
	var shift uint
	for {
		c := b.ReadRawByte()
		result |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return result
		}
		shift += 7
	}
}

// ReadRawFixed32 reads 4 little-endian bytes at the read cursor.
func (b *Buffer) ReadRawFixed32() uint32 {
	v := binary.LittleEndian.Uint32(b.data[b.readPos : b.readPos+4])
	b.readPos += 4
	return v
}

// ReadRawFixed64 reads 8 little-endian bytes at the read cursor.
func (b *Buffer) ReadRawFixed64() uint64 {
	v := binary.LittleEndian.Uint64(b.data[b.readPos : b.readPos+8])
	b.readPos += 8
	return v
}

// SkipRead advances the read cursor n bytes.
func (b *Buffer) SkipRead(n int) {
	if n < 0 || b.readPos+n > b.readableSize {
		panic(fmt.Sprintf("wire: skip past the readable region: readPos=%d n=%d readableSize=%d", b.readPos, n, b.readableSize))
	}
	b.readPos += n
}

// RewindReadTo moves the read cursor back to pos.
func (b *Buffer) RewindReadTo(pos int) {
	if pos < 0 || pos > b.readPos {
		panic(fmt.Sprintf("wire: can only rewind the read cursor backwards: pos=%d readPos=%d", pos, b.readPos))
	}
	b.readPos = pos
}

// ===== OUTPUT =====

// Bytes returns an independent copy of the first n bytes of the buffer.
func (b *Buffer) Bytes(n int) []byte {
	out := make([]byte, n)
	copy(out, b.data[:n])
	return out
}

// DebugString summarizes the cursor state for error messages.
func (b *Buffer) DebugString() string {
	return fmt.Sprintf("Buffer( writePos=%d readPos=%d readableSize=%d capacity=%d )",
		b.writePos, b.readPos, b.readableSize, cap(b.data))
}
