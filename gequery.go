// Package gequery provides a typed builder for MongoDB-style query filters
// in golang.
//
// Filters are plain structs embedding the record type they query, with the
// queryable fields redeclared as [Field] handles. The basic usage starts
// with binding such a filter type via [Bind] or [MustBind]; the resulting
// [Schema] hands out populated handles whose comparison methods produce
// composable [Cond] values, merged into a final [Query] by [NewQuery].
package gequery

import (
	"regexp"

	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/gequery/adapter/binder"
	"github.com/vinicius-lino-figueiredo/gequery/adapter/builder"
	"github.com/vinicius-lino-figueiredo/gequery/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/gequery/adapter/document"
	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

var (
	// ErrNoBase is returned by [Bind] when the filter type embeds no base
	// struct to bind against.
	ErrNoBase = domain.ErrNoBase
	// ErrMultiBase is returned by [Bind] when the filter type embeds more
	// than one base struct.
	ErrMultiBase = domain.ErrMultiBase
	// ErrNilPattern is returned by [RegexQuery] when the compiled pattern
	// is nil.
	ErrNilPattern = domain.ErrNilPattern
	// ErrUnboundField is returned when an operator is called on a zero
	// handle that never went through [Bind].
	ErrUnboundField = domain.ErrUnboundField
	// ErrNonPointer is returned by [Schema.Decode] when the target is not
	// a pointer.
	ErrNonPointer = domain.ErrNonPointer
)

// ErrTargetNil is returned when user provides a nil value as a target to
// decode data, for example, calling [Schema.Decode].
type ErrTargetNil = domain.ErrTargetNil

// ErrFilterKind is returned by [Bind] when the type parameter is not a
// struct.
type ErrFilterKind = domain.ErrFilterKind

// ErrBaseKind is returned by [Bind] when the embedded base is not a struct.
type ErrBaseKind = domain.ErrBaseKind

// ErrNotHandle is returned by [Bind] when the filter declares an exported
// field that is neither a [Handle] nor a typed [Field].
type ErrNotHandle = domain.ErrNotHandle

// ErrUnknownField is returned when a name does not resolve to any field of
// the base struct.
type ErrUnknownField = domain.ErrUnknownField

// ErrHandleType is returned by [Bind] when a typed handle's element type
// does not match the base field it is bound to.
type ErrHandleType = domain.ErrHandleType

// ErrFieldKind is returned when an operator is used on a field whose kind
// does not support it, for example [Handle.Contains] on a numeric field.
type ErrFieldKind = domain.ErrFieldKind

// ErrOperandType is returned when an operator receives an operand of an
// unsupported type.
type ErrOperandType = domain.ErrOperandType

// ErrCondArg is returned by [And] and [NewQuery] when an argument is
// neither a [Cond] nor a bool.
type ErrCondArg = domain.ErrCondArg

// ErrFieldArg is returned by [Exists] and [RegexQuery] when the field
// argument is neither a bound handle nor a string.
type ErrFieldArg = domain.ErrFieldArg

// ErrRecordType is returned by [Schema.Document] when the record is not of
// the schema's base type.
type ErrRecordType = domain.ErrRecordType

// ErrRecordKind is returned when a document is requested from a value no
// document can be built from.
type ErrRecordKind = domain.ErrRecordKind

// ErrDecode is returned by [Schema.Decode] to wrap third party decoding
// errors.
type ErrDecode = domain.ErrDecode

// M is a plain string-keyed document, the shape every condition and query
// renders to.
type M = domain.M

// Kind classifies the value a schema field holds.
type Kind = domain.Kind

// Kind values derived from base field types during binding.
const (
	KindInvalid = domain.KindInvalid
	KindString  = domain.KindString
	KindBool    = domain.KindBool
	KindInt     = domain.KindInt
	KindUint    = domain.KindUint
	KindFloat   = domain.KindFloat
	KindTime    = domain.KindTime
	KindBytes   = domain.KindBytes
	KindList    = domain.KindList
	KindMap     = domain.KindMap
	KindStruct  = domain.KindStruct
	KindAny     = domain.KindAny
)

// Handle is an untyped reference to a single schema field, carrying its
// resolved name and kind. Its comparison methods accept any operand.
type Handle = builder.Handle

// Field is a [Handle] parameterized by the base field's type, restricting
// comparison operands at compile time.
type Field[T any] = builder.Field[T]

// Cond is an immutable set of field conditions, combined with [Cond.And]
// and rendered by [NewQuery].
type Cond = builder.Cond

// Query is a complete filter document ready for the wire. Alternatives are
// combined with [Query.Or].
type Query = builder.Query

// Schema is a filter type bound to its base record struct.
type Schema[F any] = binder.Schema[F]

// Decoder converts between different data representations.
type Decoder = domain.Decoder

// DocumentFactory converts records into [M] documents. It should accept
// structs and string-keyed maps; if nil is given as argument, a document of
// length 0 should be returned.
type DocumentFactory = domain.DocumentFactory

// NewHandle returns an unbound handle with an explicit name and kind, for
// building conditions outside any bound schema.
func NewHandle(name string, kind Kind) Handle {
	return builder.NewHandle(name, kind)
}

// NewField returns a typed handle with an explicit name, deriving its kind
// from T.
func NewField[T any](name string) Field[T] {
	return builder.NewField[T](name)
}

// And merges conditions into a single conjunction. Arguments may be [Cond]
// values or bools; bools are no-ops so comparisons can sit next to literal
// predicates. Repeated comparisons on the same field fold into a list of
// acceptable alternatives.
func And(parts ...any) Cond {
	return builder.And(parts...)
}

// Exists produces a condition requiring the field to be present. The field
// may be a bound handle or a raw name.
func Exists(field any) Cond {
	return builder.Exists(field)
}

// RegexQuery produces a condition matching the field against a compiled
// regular expression. The field may be a bound handle or a raw name.
func RegexQuery(field any, pattern *regexp.Regexp) Cond {
	return builder.RegexQuery(field, pattern)
}

// NewQuery merges the given conditions, in order, into a final query
// document. It surfaces any error deferred by the conditions' operators.
func NewQuery(parts ...any) (Query, error) {
	return builder.NewQuery(parts...)
}

// Bind inspects the filter type F and returns its [Schema]. F must embed
// exactly one base record struct; every other exported field of F must be a
// [Handle] or [Field] naming a base field. Binding can be configured with
// the following options:
//
// - [WithTag]: sets the struct tag read for field naming.
//
// - [WithDecoder]: sets the decoder used by [Schema.Decode].
//
// - [WithDocumentFactory]: sets the factory used by [Schema.Document].
func Bind[F any](options ...Option) (*Schema[F], error) {
	return binder.Bind[F](options...)
}

// MustBind is [Bind] panicking on error, for package level schema values.
func MustBind[F any](options ...Option) *Schema[F] {
	return binder.MustBind[F](options...)
}

// NewDocument converts a record struct or map into an [M] using the default
// configuration. It implements [DocumentFactory].
func NewDocument(in any) (M, error) {
	return document.NewDocument(in)
}

// Option configures schema binding through the functional options pattern.
type Option = binder.Option

// WithTag sets the struct tag read for field naming, on the base and the
// filter alike. Defaults to "bson".
func WithTag(tag string) Option {
	return binder.WithTag(tag)
}

// WithDecoder sets the decoder used by [Schema.Decode].
func WithDecoder(d Decoder) Option {
	return binder.WithDecoder(d)
}

// WithDocumentFactory sets the factory used by [Schema.Document].
func WithDocumentFactory(f DocumentFactory) Option {
	return binder.WithDocumentFactory(f)
}

// DecoderOption configures [NewDecoder] through the functional options
// pattern.
type DecoderOption = decoder.Option

// NewDecoder returns the default [Decoder] implementation, accepting the
// following options:
//
// - [WithDecoderTag]: sets the struct tag read for field naming.
//
// - [WithDecodeHook]: sets a mapstructure hook applied to every value.
func NewDecoder(options ...DecoderOption) Decoder {
	return decoder.NewDecoder(options...)
}

// WithDecoderTag sets the struct tag a decoder reads for field naming.
func WithDecoderTag(tag string) DecoderOption {
	return decoder.WithTag(tag)
}

// WithDecodeHook sets a mapstructure hook applied to every value before it
// is assigned to the decode target.
func WithDecodeHook(hook mapstructure.DecodeHookFunc) DecoderOption {
	return decoder.WithDecodeHook(hook)
}

// DocumentOption configures [NewDocumentFactory] through the functional
// options pattern.
type DocumentOption = document.Option

// NewDocumentFactory returns a [DocumentFactory], accepting the following
// options:
//
// - [WithDocumentTag]: sets the struct tag read for field naming.
func NewDocumentFactory(options ...DocumentOption) DocumentFactory {
	return document.NewFactory(options...)
}

// WithDocumentTag sets the struct tag a document factory reads for field
// naming.
func WithDocumentTag(tag string) DocumentOption {
	return document.WithTag(tag)
}
