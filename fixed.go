package protostream

import (
	"math"

	"github.com/OrionOS-Project/frameworks-base-sub001/wire"
)

// ===== FIXED-WIDTH FIELDS =====

// WriteDouble writes a double field as eight little-endian bytes. A zero
// value writes nothing; NaN is not zero and is written.
func (s *Stream) WriteDouble(field FieldKey, v float64) error {
	id, err := s.checkWrite(field, CountSingle|TypeDouble)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireFixed64)
		s.buf.WriteRawFixed64(math.Float64bits(v))
	}
	return nil
}

// WriteRepeatedDouble adds one value to a repeated double field.
func (s *Stream) WriteRepeatedDouble(field FieldKey, v float64) error {
	id, err := s.checkWrite(field, CountRepeated|TypeDouble)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireFixed64)
	s.buf.WriteRawFixed64(math.Float64bits(v))
	return nil
}

// WritePackedDouble writes vals as one length-delimited packed run. An
// empty or nil slice writes nothing.
func (s *Stream) WritePackedDouble(field FieldKey, vals []float64) error {
	id, err := s.checkWrite(field, CountPacked|TypeDouble)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	s.writeKnownLengthHeader(id, len(vals)*8)
	for _, v := range vals {
		s.buf.WriteRawFixed64(math.Float64bits(v))
	}
	return nil
}

// WriteFloat writes a float field as four little-endian bytes. A zero
// value writes nothing.
func (s *Stream) WriteFloat(field FieldKey, v float32) error {
	id, err := s.checkWrite(field, CountSingle|TypeFloat)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireFixed32)
		s.buf.WriteRawFixed32(math.Float32bits(v))
	}
	return nil
}

// WriteRepeatedFloat adds one value to a repeated float field.
func (s *Stream) WriteRepeatedFloat(field FieldKey, v float32) error {
	id, err := s.checkWrite(field, CountRepeated|TypeFloat)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireFixed32)
	s.buf.WriteRawFixed32(math.Float32bits(v))
	return nil
}

// WritePackedFloat writes vals as one length-delimited packed run.
func (s *Stream) WritePackedFloat(field FieldKey, vals []float32) error {
	id, err := s.checkWrite(field, CountPacked|TypeFloat)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	s.writeKnownLengthHeader(id, len(vals)*4)
	for _, v := range vals {
		s.buf.WriteRawFixed32(math.Float32bits(v))
	}
	return nil
}

// WriteFixed32 writes a fixed32 field. A zero value writes nothing.
func (s *Stream) WriteFixed32(field FieldKey, v uint32) error {
	id, err := s.checkWrite(field, CountSingle|TypeFixed32)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireFixed32)
		s.buf.WriteRawFixed32(v)
	}
	return nil
}

// WriteRepeatedFixed32 adds one value to a repeated fixed32 field.
func (s *Stream) WriteRepeatedFixed32(field FieldKey, v uint32) error {
	id, err := s.checkWrite(field, CountRepeated|TypeFixed32)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireFixed32)
	s.buf.WriteRawFixed32(v)
	return nil
}

// WritePackedFixed32 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedFixed32(field FieldKey, vals []uint32) error {
	id, err := s.checkWrite(field, CountPacked|TypeFixed32)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	s.writeKnownLengthHeader(id, len(vals)*4)
	for _, v := range vals {
		s.buf.WriteRawFixed32(v)
	}
	return nil
}

// WriteFixed64 writes a fixed64 field. A zero value writes nothing.
func (s *Stream) WriteFixed64(field FieldKey, v uint64) error {
	id, err := s.checkWrite(field, CountSingle|TypeFixed64)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireFixed64)
		s.buf.WriteRawFixed64(v)
	}
	return nil
}

// WriteRepeatedFixed64 adds one value to a repeated fixed64 field.
func (s *Stream) WriteRepeatedFixed64(field FieldKey, v uint64) error {
	id, err := s.checkWrite(field, CountRepeated|TypeFixed64)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireFixed64)
	s.buf.WriteRawFixed64(v)
	return nil
}

// WritePackedFixed64 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedFixed64(field FieldKey, vals []uint64) error {
	id, err := s.checkWrite(field, CountPacked|TypeFixed64)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	s.writeKnownLengthHeader(id, len(vals)*8)
	for _, v := range vals {
		s.buf.WriteRawFixed64(v)
	}
	return nil
}

// WriteSFixed32 writes a signed fixed32 field. A zero value writes nothing.
func (s *Stream) WriteSFixed32(field FieldKey, v int32) error {
	id, err := s.checkWrite(field, CountSingle|TypeSFixed32)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireFixed32)
		s.buf.WriteRawFixed32(uint32(v))
	}
	return nil
}

// WriteRepeatedSFixed32 adds one value to a repeated sfixed32 field.
func (s *Stream) WriteRepeatedSFixed32(field FieldKey, v int32) error {
	id, err := s.checkWrite(field, CountRepeated|TypeSFixed32)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireFixed32)
	s.buf.WriteRawFixed32(uint32(v))
	return nil
}

// WritePackedSFixed32 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedSFixed32(field FieldKey, vals []int32) error {
	id, err := s.checkWrite(field, CountPacked|TypeSFixed32)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	s.writeKnownLengthHeader(id, len(vals)*4)
	for _, v := range vals {
		s.buf.WriteRawFixed32(uint32(v))
	}
	return nil
}

// WriteSFixed64 writes a signed fixed64 field. A zero value writes nothing.
func (s *Stream) WriteSFixed64(field FieldKey, v int64) error {
	id, err := s.checkWrite(field, CountSingle|TypeSFixed64)
	if err != nil {
		return err
	}
	if v != 0 {
		s.writeTag(id, wire.WireFixed64)
		s.buf.WriteRawFixed64(uint64(v))
	}
	return nil
}

// WriteRepeatedSFixed64 adds one value to a repeated sfixed64 field.
func (s *Stream) WriteRepeatedSFixed64(field FieldKey, v int64) error {
	id, err := s.checkWrite(field, CountRepeated|TypeSFixed64)
	if err != nil {
		return err
	}
	s.writeTag(id, wire.WireFixed64)
	s.buf.WriteRawFixed64(uint64(v))
	return nil
}

// WritePackedSFixed64 writes vals as one length-delimited packed run.
func (s *Stream) WritePackedSFixed64(field FieldKey, vals []int64) error {
	id, err := s.checkWrite(field, CountPacked|TypeSFixed64)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return nil
	}
	s.writeKnownLengthHeader(id, len(vals)*8)
	for _, v := range vals {
		s.buf.WriteRawFixed64(uint64(v))
	}
	return nil
}
