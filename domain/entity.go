package domain

// M is the generic string-keyed mapping documents, filter fragments and
// queries are made of. Values are scalars, nested M instances or lists.
type M map[string]any

// Kind identifies the unwrapped declared type of a schema field. The binder
// derives it from the record struct; operators use it for runtime checks and
// diagnostics.
type Kind uint8

// Numeric representations of supported field kinds. Pointer fields report
// the kind of their element type.
const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindInt
	KindUint
	KindFloat
	KindTime
	KindBytes
	KindList
	KindMap
	KindStruct
	KindAny
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindAny:
		return "any"
	}
	return "invalid"
}
