package protostream

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectEncoding(t *testing.T) {
	tests := []struct {
		name  string
		write func(s *Stream) error
		want  []byte
	}{
		{
			// The canonical two-field example: an int32 and a nested
			// message holding one string.
			name: "scalar_then_object",
			write: func(s *Stream) error {
				if err := s.WriteInt32(TypeInt32|CountSingle|1, 150); err != nil {
					return err
				}
				token, err := s.StartObject(TypeObject | CountSingle | 2)
				if err != nil {
					return err
				}
				if err := s.WriteString(TypeString|CountSingle|1, "testing"); err != nil {
					return err
				}
				return s.EndObject(token)
			},
			want: []byte{
				0x08, 0x96, 0x01,
				0x12, 0x09, 0x0a, 0x07, 0x74, 0x65, 0x73, 0x74, 0x69, 0x6e, 0x67,
			},
		},
		{
			name: "object_then_scalar",
			write: func(s *Stream) error {
				token, err := s.StartObject(TypeObject | CountSingle | 2)
				if err != nil {
					return err
				}
				if err := s.WriteInt32(TypeInt32|CountSingle|1, 1); err != nil {
					return err
				}
				if err := s.EndObject(token); err != nil {
					return err
				}
				return s.WriteInt32(TypeInt32|CountSingle|1, 150)
			},
			want: []byte{0x12, 0x02, 0x08, 0x01, 0x08, 0x96, 0x01},
		},
		{
			name: "nested_objects",
			write: func(s *Stream) error {
				outer, err := s.StartObject(TypeObject | CountSingle | 2)
				if err != nil {
					return err
				}
				inner, err := s.StartObject(TypeObject | CountSingle | 3)
				if err != nil {
					return err
				}
				if err := s.WriteString(TypeString|CountSingle|1, "hi"); err != nil {
					return err
				}
				if err := s.EndObject(inner); err != nil {
					return err
				}
				return s.EndObject(outer)
			},
			want: []byte{0x12, 0x06, 0x1a, 0x04, 0x0a, 0x02, 0x68, 0x69},
		},
		{
			name: "sibling_repeated_objects",
			write: func(s *Stream) error {
				for _, name := range []string{"a", "b"} {
					token, err := s.StartRepeatedObject(TypeObject | CountRepeated | 1)
					if err != nil {
						return err
					}
					if err := s.WriteString(TypeString|CountSingle|1, name); err != nil {
						return err
					}
					if err := s.EndRepeatedObject(token); err != nil {
						return err
					}
				}
				return nil
			},
			want: []byte{
				0x0a, 0x03, 0x0a, 0x01, 0x61,
				0x0a, 0x03, 0x0a, 0x01, 0x62,
			},
		},
		{
			name: "empty_singular_object_vanishes",
			write: func(s *Stream) error {
				token, err := s.StartObject(TypeObject | CountSingle | 2)
				if err != nil {
					return err
				}
				return s.EndObject(token)
			},
			want: []byte{},
		},
		{
			// Zero-valued singular fields write nothing, so the object is
			// still empty and still vanishes.
			name: "object_of_omitted_fields_vanishes",
			write: func(s *Stream) error {
				token, err := s.StartObject(TypeObject | CountSingle | 2)
				if err != nil {
					return err
				}
				if err := s.WriteInt32(TypeInt32|CountSingle|1, 0); err != nil {
					return err
				}
				if err := s.WriteString(TypeString|CountSingle|3, ""); err != nil {
					return err
				}
				return s.EndObject(token)
			},
			want: []byte{},
		},
		{
			name: "empty_repeated_object_stays",
			write: func(s *Stream) error {
				token, err := s.StartRepeatedObject(TypeObject | CountRepeated | 2)
				if err != nil {
					return err
				}
				return s.EndRepeatedObject(token)
			},
			want: []byte{0x12, 0x00},
		},
		{
			name: "empty_singular_object_inside_parent",
			write: func(s *Stream) error {
				outer, err := s.StartObject(TypeObject | CountSingle | 2)
				if err != nil {
					return err
				}
				if err := s.WriteInt32(TypeInt32|CountSingle|1, 1); err != nil {
					return err
				}
				inner, err := s.StartObject(TypeObject | CountSingle | 3)
				if err != nil {
					return err
				}
				if err := s.EndObject(inner); err != nil {
					return err
				}
				return s.EndObject(outer)
			},
			want: []byte{0x12, 0x02, 0x08, 0x01},
		},
		{
			name: "empty_repeated_object_inside_parent",
			write: func(s *Stream) error {
				outer, err := s.StartObject(TypeObject | CountSingle | 2)
				if err != nil {
					return err
				}
				inner, err := s.StartRepeatedObject(TypeObject | CountRepeated | 3)
				if err != nil {
					return err
				}
				if err := s.EndRepeatedObject(inner); err != nil {
					return err
				}
				return s.EndObject(outer)
			},
			want: []byte{0x12, 0x02, 0x1a, 0x00},
		},
		{
			name: "packed_field_inside_object",
			write: func(s *Stream) error {
				token, err := s.StartObject(TypeObject | CountSingle | 2)
				if err != nil {
					return err
				}
				if err := s.WritePackedInt32(TypeInt32|CountPacked|4, []int32{3, 270, 86942}); err != nil {
					return err
				}
				return s.EndObject(token)
			},
			want: []byte{0x12, 0x08, 0x22, 0x06, 0x03, 0x8e, 0x02, 0x9e, 0xa7, 0x05},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encode(t, tt.write)
			if len(tt.want) == 0 {
				if len(got) != 0 {
					t.Errorf("Expected no output, got % x", got)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("encoded bytes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestObjectSizeNeedsTwoByteVarint(t *testing.T) {
	// A child larger than 127 bytes forces the final length varint to two
	// bytes, so the compaction pass has to shrink the eight-byte size slot
	// by six rather than seven bytes.
	payload := strings.Repeat("x", 200)
	got := encode(t, func(s *Stream) error {
		token, err := s.StartObject(TypeObject | CountSingle | 2)
		if err != nil {
			return err
		}
		if err := s.WriteString(TypeString|CountSingle|1, payload); err != nil {
			return err
		}
		return s.EndObject(token)
	})

	// Inner message: tag 0x0a, length 200 as 0xc8 0x01, then the payload,
	// 203 bytes in all. Outer: tag 0x12, length 203 as 0xcb 0x01.
	want := append([]byte{0x12, 0xcb, 0x01, 0x0a, 0xc8, 0x01}, payload...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encoded bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectDeepNesting(t *testing.T) {
	// Depth is stored in nine bits of the token and compared under the same
	// mask, so nesting far past 511 levels still balances.
	const levels = 600

	s := New()
	tokens := make([]Token, 0, levels)
	for i := 0; i < levels; i++ {
		token, err := s.StartObject(TypeObject | CountSingle | 1)
		if err != nil {
			t.Fatalf("StartObject at level %d failed: %v", i, err)
		}
		tokens = append(tokens, token)
	}
	if err := s.WriteInt32(TypeInt32|CountSingle|2, 1); err != nil {
		t.Fatalf("WriteInt32 failed: %v", err)
	}
	for i := levels - 1; i >= 0; i-- {
		if err := s.EndObject(tokens[i]); err != nil {
			t.Fatalf("EndObject at level %d failed: %v", i, err)
		}
	}

	data, err := s.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(data) < 2*levels+2 {
		t.Fatalf("Encoded output too short for %d levels: %d bytes", levels, len(data))
	}
	if data[0] != 0x0a {
		t.Errorf("Expected outermost tag 0x0a, got 0x%02x", data[0])
	}
}

func TestObjectTokenString(t *testing.T) {
	s := New()
	token, err := s.StartObject(TypeObject | CountSingle | 2)
	if err != nil {
		t.Fatalf("StartObject failed: %v", err)
	}

	got := token.String()
	for _, want := range []string{"Token(val=0x", "depth=1", "object=1", "tagSize=1", "sizePos=1"} {
		if !strings.Contains(got, want) {
			t.Errorf("token String should contain %q, got: %s", want, got)
		}
	}

	if Token(0).String() != "Token(0)" {
		t.Errorf("Expected Token(0), got %s", Token(0).String())
	}
}

func TestObjectTokensDistinguishStartCalls(t *testing.T) {
	// An elided empty object rewinds the buffer, so a second start of the
	// same field lands on the same depth, tag size and size position. Only
	// the object serial tells the two tokens apart, and it must be enough
	// to reject the stale one.
	s := New()

	first, err := s.StartObject(TypeObject | CountSingle | 1)
	if err != nil {
		t.Fatalf("StartObject failed: %v", err)
	}
	if err := s.EndObject(first); err != nil {
		t.Fatalf("EndObject failed: %v", err)
	}

	second, err := s.StartObject(TypeObject | CountSingle | 1)
	if err != nil {
		t.Fatalf("StartObject failed: %v", err)
	}
	if first.sizePos() != second.sizePos() || first.depth() != second.depth() {
		t.Fatalf("Expected the second start to reuse the same slot, got %s and %s", first, second)
	}
	if first == second {
		t.Fatal("Expected distinct tokens for distinct start calls")
	}

	if err := s.EndObject(first); err == nil {
		t.Error("Expected the stale token to be rejected")
	}
	if err := s.EndObject(second); err != nil {
		t.Errorf("EndObject with the live token failed: %v", err)
	}
}
