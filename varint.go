package protostream

import (
	"github.com/OrionOS-Project/frameworks-base-sub001/wire"
)

// ===== VARINT FIELDS =====

// WriteInt32 writes an int32 field. A zero value writes nothing.
func (s *Stream) WriteInt32(field FieldKey, v int32) error {
	id, err := s.checkWrite(field, CountSingle|TypeInt32)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireVarint)
		s.writeUnsignedVarintFromSignedInt32(v)
	}
	return nil
}

// WriteRepeatedInt32 adds one value to a repeated int32 field.
func (s *Stream) WriteRepeatedInt32(field FieldKey, v int32) error {
	id, err := s.checkWrite(field, CountRepeated|TypeInt32)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireVarint)
	s.writeUnsignedVarintFromSignedInt32(v)
	return nil
}

// WritePackedInt32 writes vals as one length-delimited packed run. An empty
// or nil slice writes nothing.
func (s *Stream) WritePackedInt32(field FieldKey, vals []int32) error {
	id, err := s.checkWrite(field, CountPacked|TypeInt32)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	size := 0
	for _, v := range vals {
		if v >= 0 {
			size += wire.Varint32Size(uint32(v))
		} else {
			size += 10
		}
	}
	s.writeKnownLengthHeader(id, size)
	for _, v := range vals {
		s.writeUnsignedVarintFromSignedInt32(v)
	}
	return nil
}

// WriteInt64 writes an int64 field. A zero value writes nothing.
func (s *Stream) WriteInt64(field FieldKey, v int64) error {
	id, err := s.checkWrite(field, CountSingle|TypeInt64)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireVarint)
		s.buf.WriteRawVarint64(uint64(v))
	}
	return nil
}

// WriteRepeatedInt64 adds one value to a repeated int64 field.
func (s *Stream) WriteRepeatedInt64(field FieldKey, v int64) error {
	id, err := s.checkWrite(field, CountRepeated|TypeInt64)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireVarint)
	s.buf.WriteRawVarint64(uint64(v))
	return nil
}

// WritePackedInt64 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedInt64(field FieldKey, vals []int64) error {
	id, err := s.checkWrite(field, CountPacked|TypeInt64)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	size := 0
	for _, v := range vals {
		size += wire.VarintSize(uint64(v))
	}
	s.writeKnownLengthHeader(id, size)
	for _, v := range vals {
		s.buf.WriteRawVarint64(uint64(v))
	}
	return nil
}

// WriteUInt32 writes a uint32 field. A zero value writes nothing.
func (s *Stream) WriteUInt32(field FieldKey, v uint32) error {
	id, err := s.checkWrite(field, CountSingle|TypeUInt32)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireVarint)
		s.buf.WriteRawVarint32(v)
	}
	return nil
}

// WriteRepeatedUInt32 adds one value to a repeated uint32 field.
func (s *Stream) WriteRepeatedUInt32(field FieldKey, v uint32) error {
	id, err := s.checkWrite(field, CountRepeated|TypeUInt32)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireVarint)
	s.buf.WriteRawVarint32(v)
	return nil
}

// WritePackedUInt32 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedUInt32(field FieldKey, vals []uint32) error {
	id, err := s.checkWrite(field, CountPacked|TypeUInt32)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	size := 0
	for _, v := range vals {
		size += wire.Varint32Size(v)
	}
	s.writeKnownLengthHeader(id, size)
	for _, v := range vals {
		s.buf.WriteRawVarint32(v)
	}
	return nil
}

// WriteUInt64 writes a uint64 field. A zero value writes nothing.
func (s *Stream) WriteUInt64(field FieldKey, v uint64) error {
	id, err := s.checkWrite(field, CountSingle|TypeUInt64)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireVarint)
		s.buf.WriteRawVarint64(v)
	}
	return nil
}

// WriteRepeatedUInt64 adds one value to a repeated uint64 field.
func (s *Stream) WriteRepeatedUInt64(field FieldKey, v uint64) error {
	id, err := s.checkWrite(field, CountRepeated|TypeUInt64)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireVarint)
	s.buf.WriteRawVarint64(v)
	return nil
}

// WritePackedUInt64 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedUInt64(field FieldKey, vals []uint64) error {
	id, err := s.checkWrite(field, CountPacked|TypeUInt64)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	size := 0
	for _, v := range vals {
		size += wire.VarintSize(v)
	}
	s.writeKnownLengthHeader(id, size)
	for _, v := range vals {
		s.buf.WriteRawVarint64(v)
	}
	return nil
}

// WriteSInt32 writes a zigzag-encoded sint32 field. A zero value writes
// nothing. Prefer this over int32 for fields that often hold negative
// numbers; the encoding stays short where a plain varint takes ten bytes.
func (s *Stream) WriteSInt32(field FieldKey, v int32) error {
	id, err := s.checkWrite(field, CountSingle|TypeSInt32)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireVarint)
		s.buf.WriteRawZigZag32(v)
	}
	return nil
}

// WriteRepeatedSInt32 adds one value to a repeated sint32 field.
func (s *Stream) WriteRepeatedSInt32(field FieldKey, v int32) error {
	id, err := s.checkWrite(field, CountRepeated|TypeSInt32)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireVarint)
	s.buf.WriteRawZigZag32(v)
	return nil
}

// WritePackedSInt32 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedSInt32(field FieldKey, vals []int32) error {
	id, err := s.checkWrite(field, CountPacked|TypeSInt32)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	size := 0
	for _, v := range vals {
		size += wire.ZigZag32Size(v)
	}
	s.writeKnownLengthHeader(id, size)
	for _, v := range vals {
		s.buf.WriteRawZigZag32(v)
	}
	return nil
}

// WriteSInt64 writes a zigzag-encoded sint64 field. A zero value writes
// nothing.
func (s *Stream) WriteSInt64(field FieldKey, v int64) error {
	id, err := s.checkWrite(field, CountSingle|TypeSInt64)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireVarint)
		s.buf.WriteRawZigZag64(v)
	}
	return nil
}

// WriteRepeatedSInt64 adds one value to a repeated sint64 field.
func (s *Stream) WriteRepeatedSInt64(field FieldKey, v int64) error {
	id, err := s.checkWrite(field, CountRepeated|TypeSInt64)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireVarint)
	s.buf.WriteRawZigZag64(v)
	return nil
}

// WritePackedSInt64 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedSInt64(field FieldKey, vals []int64) error {
	id, err := s.checkWrite(field, CountPacked|TypeSInt64)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	size := 0
	for _, v := range vals {
		size += wire.ZigZag64Size(v)
	}
	s.writeKnownLengthHeader(id, size)
	for _, v := range vals {
		s.buf.WriteRawZigZag64(v)
	}
	return nil
}

// WriteBool writes a bool field. False writes nothing.
func (s *Stream) WriteBool(field FieldKey, v bool) error {
	id, err := s.checkWrite(field, CountSingle|TypeBool)
	if err != nil {
		return err
	}
	if v {
		s.writeTag(id, wire.WireVarint)
		s.buf.WriteRawByte(1)
	}
	return nil
}

// WriteRepeatedBool adds one value to a repeated bool field.
func (s *Stream) WriteRepeatedBool(field FieldKey, v bool) error {
	id, err := s.checkWrite(field, CountRepeated|TypeBool)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireVarint)
	if v {
		s.buf.WriteRawByte(1)
	} else {
		s.buf.WriteRawByte(0)
	}
	return nil
}

// WritePackedBool writes vals as one length-delimited packed run.
func (s *Stream) WritePackedBool(field FieldKey, vals []bool) error {
	id, err := s.checkWrite(field, CountPacked|TypeBool)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	s.writeKnownLengthHeader(id, len(vals))
	for _, v := range vals {
		if v {
			s.buf.WriteRawByte(1)
		} else {
			s.buf.WriteRawByte(0)
		}
	}
	return nil
}

// WriteEnum writes an enum field as its int32 number. A zero value writes
// nothing.
func (s *Stream) WriteEnum(field FieldKey, v int32) error {
	id, err := s.checkWrite(field, CountSingle|TypeEnum)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireVarint)
		s.writeUnsignedVarintFromSignedInt32(v)
	}
	return nil
}

// WriteRepeatedEnum adds one value to a repeated enum field.
func (s *Stream) WriteRepeatedEnum(field FieldKey, v int32) error {
	id, err := s.checkWrite(field, CountRepeated|TypeEnum)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireVarint)
	s.writeUnsignedVarintFromSignedInt32(v)
	return nil
}

// WritePackedEnum writes vals as one length-delimited packed run.
func (s *Stream) WritePackedEnum(field FieldKey, vals []int32) error {
	id, err := s.checkWrite(field, CountPacked|TypeEnum)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	size := 0
	for _, v := range vals {
		if v >= 0 {
			size += wire.Varint32Size(uint32(v))
		} else {
			size += 10
		}
	}
	s.writeKnownLengthHeader(id, size)
	for _, v := range vals {
		s.writeUnsignedVarintFromSignedInt32(v)
	}
	return nil
}
