package protostream

import (
	"errors"
	"fmt"
)

// ErrAlreadyFinalized is returned by every write, start and end call made
// after Bytes has sealed the stream.
var ErrAlreadyFinalized = errors.New("write called after the stream was finalized")

// InvalidFieldError reports a write or start call that does not agree with
// the type or cardinality flags of the field key it was given, or a key
// with no field number at all. It always indicates a bug at the call site.
type InvalidFieldError struct {
	Key      FieldKey // the key the caller passed
	Expected FieldKey // the flags the called method requires
}

// Error spells out which method the key should have been used with.
func (e *InvalidFieldError) Error() string {
	if uint32(e.Key) == 0 {
		return fmt.Sprintf("invalid proto field %d fieldKey=0x%x", uint32(e.Key), uint64(e.Key))
	}
	called := methodNameForFlags(e.Expected)
	countName, okCount := fieldCountName(e.Key)
	typeName, okType := fieldTypeName(e.Key)
	if !okCount || !okType {
		return fmt.Sprintf("%s called with an invalid fieldKey: 0x%x. The field number might be %d.",
			called, uint64(e.Key), uint32(e.Key))
	}
	msg := fmt.Sprintf("%s called for field %d which should be used with %s%s%s",
		called, uint32(e.Key), methodPrefix(e.Key), countName, typeName)
	if e.Key&fieldCountMask == CountPacked {
		msg += " or WriteRepeated" + typeName
	}
	return msg + "."
}

// MismatchedNestingError reports an end call whose token does not match the
// innermost open object, or the wrong end variant for the object. The
// stream's nesting state is no longer trustworthy afterward; abandon it.
type MismatchedNestingError struct {
	Token    Token // the token handed to the end call
	Expected Token // the token the stream was expecting, zero if unknown
	Depth    int32 // stream depth when the call was made
	msg      string
}

func (e *MismatchedNestingError) Error() string {
	return e.msg
}

func newWrongEndVariantError(token Token, repeated bool) *MismatchedNestingError {
	msg := "EndObject called where EndRepeatedObject should have been"
	if repeated {
		msg = "EndRepeatedObject called where EndObject should have been"
	}
	return &MismatchedNestingError{Token: token, msg: msg}
}

func newTokenMismatchError(token, expected Token, depth int32) *MismatchedNestingError {
	return &MismatchedNestingError{
		Token:    token,
		Expected: expected,
		Depth:    depth,
		msg: fmt.Sprintf("mismatched StartObject/EndObject calls: current depth %d token=%s expectedToken=%s",
			depth, token, expected),
	}
}

// UnbalancedNestingError reports a finalize attempt while objects are still
// open.
type UnbalancedNestingError struct {
	Depth int32 // number of missing end calls
}

func (e *UnbalancedNestingError) Error() string {
	return fmt.Sprintf("trying to finalize with %d missing calls to EndObject", e.Depth)
}

// InternalConsistencyError reports intermediate buffer state that the
// finalization passes cannot reconcile. It indicates a defect in the
// encoder itself, not in the calling code, and is never recoverable.
type InternalConsistencyError struct {
	Offset int // buffer offset where the fault was noticed
	Detail string
}

func (e *InternalConsistencyError) Error() string {
	return e.Detail
}
