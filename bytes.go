package protostream

// ===== STRING AND BYTES FIELDS =====

// WriteString writes a string field. Go strings are already UTF-8, so the
// bytes go out as-is. An empty string writes nothing.
func (s *Stream) WriteString(field FieldKey, v string) error {
	id, err := s.checkWrite(field, CountSingle|TypeString)
	if err != nil {
		return err
	}
	if len(v) > 0 {
		s.writeUTF8String(id, v)
	}
	return nil
}

// WriteRepeatedString adds one value to a repeated string field. Unlike
// the singular form, an empty string still writes an element so the count
// of elements round-trips.
func (s *Stream) WriteRepeatedString(field FieldKey, v string) error {
	id, err := s.checkWrite(field, CountRepeated|TypeString)
	if err != nil {
		return err
	}
	if len(v) == 0 {
		s.writeKnownLengthHeader(id, 0)
		return nil
	}
	s.writeUTF8String(id, v)
	return nil
}

// WriteBytes writes a bytes field. A nil or empty slice writes nothing.
func (s *Stream) WriteBytes(field FieldKey, v []byte) error {
	id, err := s.checkWrite(field, CountSingle|TypeBytes)
	if err != nil {
		return err
	}
	if len(v) > 0 {
		s.writeKnownLengthHeader(id, len(v))
		s.buf.WriteRawBuffer(v)
	}
	return nil
}

// WriteRepeatedBytes adds one value to a repeated bytes field. A nil or
// empty slice still writes a zero-length element.
func (s *Stream) WriteRepeatedBytes(field FieldKey, v []byte) error {
	id, err := s.checkWrite(field, CountRepeated|TypeBytes)
	if err != nil {
		return err
	}
	s.writeKnownLengthHeader(id, len(v))
	s.buf.WriteRawBuffer(v)
	return nil
}

func (s *Stream) writeUTF8String(id uint32, v string) {
	s.writeKnownLengthHeader(id, len(v))
	s.buf.WriteRawString(v)
}
