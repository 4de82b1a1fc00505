package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBase is returned when a filter type embeds no base struct to
	// bind against.
	ErrNoBase = errors.New("filter requires an embedded base struct")

	// ErrMultiBase is returned when a filter type embeds more than one
	// base struct. Schema binding does not support multiple inheritance.
	ErrMultiBase = errors.New("filter cannot embed more than one base struct")

	// ErrNilPattern is returned when a regex operator receives a nil
	// compiled pattern.
	ErrNilPattern = errors.New("regex pattern must not be nil")

	// ErrUnboundField is returned when an operator is called on a zero
	// handle that never went through the binder.
	ErrUnboundField = errors.New("field handle is not bound to a schema field")

	// ErrNonPointer is returned when the decode target is not a pointer.
	ErrNonPointer = errors.New("target should be a pointer")
)

// ErrTargetNil is returned when the passed target, which should be a pointer,
// is passed as a nil value.
type ErrTargetNil struct{}

func (e *ErrTargetNil) Error() string { return "target interface is nil" }

// ErrFilterKind is returned when the type parameter given to the binder is
// not a struct.
type ErrFilterKind struct {
	Type string
}

func (e ErrFilterKind) Error() string {
	return fmt.Sprintf("filter %s is not a struct type", e.Type)
}

// ErrBaseKind is returned when the embedded base is not a struct.
type ErrBaseKind struct {
	Type string
}

func (e ErrBaseKind) Error() string {
	return fmt.Sprintf("base %s is not a struct type", e.Type)
}

// ErrNotHandle is returned when a filter type declares an exported field
// that is neither a Handle nor a typed Field.
type ErrNotHandle struct {
	Field string
	Type  string
}

func (e ErrNotHandle) Error() string {
	return fmt.Sprintf("filter field %s of type %s is not a field handle", e.Field, e.Type)
}

// ErrUnknownField is returned when a name does not resolve to any field of
// the base struct.
type ErrUnknownField struct {
	Field string
}

func (e ErrUnknownField) Error() string {
	return fmt.Sprintf("no field %q in the base struct", e.Field)
}

// ErrHandleType is returned when a typed handle's element type does not
// match the declared type of the base field it is bound to.
type ErrHandleType struct {
	Field string
	Want  string
	Got   string
}

func (e ErrHandleType) Error() string {
	return fmt.Sprintf("handle for %s should be of type %s, got %s", e.Field, e.Want, e.Got)
}

// ErrFieldKind is returned when an operator is used on a field whose
// declared kind does not support it.
type ErrFieldKind struct {
	Op    string
	Field string
	Kind  Kind
}

func (e ErrFieldKind) Error() string {
	return fmt.Sprintf("%s requires a string field, %s is %s", e.Op, e.Field, e.Kind)
}

// ErrOperandType is returned when an operator receives an operand of an
// unsupported type.
type ErrOperandType struct {
	Op   string
	Want string
	Got  any
}

func (e ErrOperandType) Error() string {
	return fmt.Sprintf("%s operand should be of type %s, got %T", e.Op, e.Want, e.Got)
}

// ErrCondArg is returned when a conjunction or query argument is neither a
// Condition nor a bool.
type ErrCondArg struct {
	Got any
}

func (e ErrCondArg) Error() string {
	return fmt.Sprintf("argument should be a Condition or bool, got %T", e.Got)
}

// ErrFieldArg is returned when a free operator receives a field argument
// that is neither a [Field] nor a string.
type ErrFieldArg struct {
	Got any
}

func (e ErrFieldArg) Error() string {
	return fmt.Sprintf("field should be a Field or string, got %T", e.Got)
}

// ErrRecordType is returned when a record of the wrong type is handed to a
// bound schema.
type ErrRecordType struct {
	Want string
	Got  string
}

func (e ErrRecordType) Error() string {
	return fmt.Sprintf("record should be of type %s, got %s", e.Want, e.Got)
}

// ErrRecordKind is returned when a document is requested from a value no
// document can be built from.
type ErrRecordKind struct {
	Got any
}

func (e ErrRecordKind) Error() string {
	return fmt.Sprintf("cannot build a document from %T", e.Got)
}

// ErrDecode is returned by [Decoder.Decode] to wrap third party decoding
// errors.
type ErrDecode struct {
	Source any
	Target any
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode %v into %T", e.Source, e.Target)
}
