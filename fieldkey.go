package protostream

// FieldKey identifies a protobuf field: the low 32 bits hold the field
// number, and the upper bits carry flags for the field's declared type and
// cardinality. One constant therefore fully describes a field, the way
// schema-generated code usually provides it:
//
//	const DeviceName = protostream.TypeString | protostream.CountSingle | 1
type FieldKey uint64

const (
	fieldTypeShift          = 32
	fieldTypeMask  FieldKey = 0x0ff << fieldTypeShift

	fieldCountShift          = 40
	fieldCountMask  FieldKey = 0x0f << fieldCountShift
)

// Value type flags. Exactly one must be set on every key.
const (
	TypeDouble   FieldKey = 1 << fieldTypeShift
	TypeFloat    FieldKey = 2 << fieldTypeShift
	TypeInt32    FieldKey = 3 << fieldTypeShift
	TypeInt64    FieldKey = 4 << fieldTypeShift
	TypeUInt32   FieldKey = 5 << fieldTypeShift
	TypeUInt64   FieldKey = 6 << fieldTypeShift
	TypeSInt32   FieldKey = 7 << fieldTypeShift
	TypeSInt64   FieldKey = 8 << fieldTypeShift
	TypeFixed32  FieldKey = 9 << fieldTypeShift
	TypeFixed64  FieldKey = 10 << fieldTypeShift
	TypeSFixed32 FieldKey = 11 << fieldTypeShift
	TypeSFixed64 FieldKey = 12 << fieldTypeShift
	TypeBool     FieldKey = 13 << fieldTypeShift
	TypeString   FieldKey = 14 << fieldTypeShift
	TypeBytes    FieldKey = 15 << fieldTypeShift
	TypeEnum     FieldKey = 16 << fieldTypeShift
	TypeObject   FieldKey = 17 << fieldTypeShift
)

var fieldTypeNames = []string{
	"Double",
	"Float",
	"Int32",
	"Int64",
	"UInt32",
	"UInt64",
	"SInt32",
	"SInt64",
	"Fixed32",
	"Fixed64",
	"SFixed32",
	"SFixed64",
	"Bool",
	"String",
	"Bytes",
	"Enum",
	"Object",
}

// Cardinality flags. Exactly one must be set on every key.
const (
	CountSingle   FieldKey = 1 << fieldCountShift
	CountRepeated FieldKey = 2 << fieldCountShift
	CountPacked   FieldKey = 5 << fieldCountShift
)

// MakeFieldKey combines a field number with type and cardinality flags.
// Composing the constants directly works just as well; this helper mostly
// serves call sites that compute field numbers at runtime.
func MakeFieldKey(number uint32, flags FieldKey) FieldKey {
	return flags | FieldKey(number)
}

// Number returns the field number held in the low 32 bits of the key.
func (f FieldKey) Number() uint32 {
	return uint32(f)
}

// checkFieldKey validates that key carries the type and cardinality the
// calling method expects. The type must match exactly. The cardinality must
// match exactly, except that a packed key is accepted where a repeated one
// is expected, so packed fields can also be written element by element.
func checkFieldKey(key, expected FieldKey) (uint32, error) {
	if uint32(key) == 0 {
		return 0, &InvalidFieldError{Key: key, Expected: expected}
	}
	keyCount := key & fieldCountMask
	expectedCount := expected & fieldCountMask
	if key&fieldTypeMask != expected&fieldTypeMask ||
		!(keyCount == expectedCount ||
			(keyCount == CountPacked && expectedCount == CountRepeated)) {
		return 0, &InvalidFieldError{Key: key, Expected: expected}
	}
	return uint32(key), nil
}

// fieldTypeName returns the developer-facing name of the key's type flag.
func fieldTypeName(f FieldKey) (string, bool) {
	index := int(f>>fieldTypeShift&0xff) - 1
	if index >= 0 && index < len(fieldTypeNames) {
		return fieldTypeNames[index], true
	}
	return "", false
}

// fieldCountName returns the method-name fragment for the key's
// cardinality.
func fieldCountName(f FieldKey) (string, bool) {
	switch f & fieldCountMask {
	case CountSingle:
		return "", true
	case CountRepeated:
		return "Repeated", true
	case CountPacked:
		return "Packed", true
	}
	return "", false
}

// methodPrefix returns "Start" for object-typed flags and "Write" for
// everything else, matching how the method set is named.
func methodPrefix(flags FieldKey) string {
	if flags&fieldTypeMask == TypeObject {
		return "Start"
	}
	return "Write"
}

// methodNameForFlags reconstructs the method name that matches a set of
// type and cardinality flags, for use in validation messages.
func methodNameForFlags(flags FieldKey) string {
	countName, _ := fieldCountName(flags)
	typeName, _ := fieldTypeName(flags)
	return methodPrefix(flags) + countName + typeName
}
