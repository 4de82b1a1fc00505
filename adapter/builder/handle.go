// Package builder contains the expression engine: field handles whose
// operators produce [Cond] fragments, and the terminal [Query] compilation
// into a mongo-like filter document.
package builder

import (
	"time"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

var timeType = reflect.TypeOf(time.Time{})

// Handle is an untyped reference to a single schema field. It exposes the
// operator surface with loosely typed operands and performs at runtime the
// checks [Field] enforces at compile time. The zero Handle is unbound:
// every operator on it defers [domain.ErrUnboundField] into the result.
type Handle struct {
	name string
	kind domain.Kind
}

// NewHandle returns a handle for the given resolved field name. The kind
// gates kind-checked operators such as [Handle.Contains]. Most callers get
// their handles from the binder instead.
func NewHandle(name string, kind domain.Kind) Handle {
	return Handle{name: name, kind: kind}
}

// Name implements [domain.Field].
func (h Handle) Name() string { return h.name }

// Kind implements [domain.Field].
func (h Handle) Kind() domain.Kind { return h.kind }

// Eq produces the equality fragment {name: v}. When merged with another
// comparison on the same name the values fold into an ordered list (see
// [Cond.And]).
func (h Handle) Eq(v any) Cond { return h.cond(v) }

// Gt produces {name: {"$gt": v}}. Like the other ordering operators it is
// equality with an operator document operand, so it inherits the equality
// merge and fold rules.
func (h Handle) Gt(v any) Cond { return h.cond(domain.M{"$gt": v}) }

// Gte produces {name: {"$gte": v}}.
func (h Handle) Gte(v any) Cond { return h.cond(domain.M{"$gte": v}) }

// Lt produces {name: {"$lt": v}}.
func (h Handle) Lt(v any) Cond { return h.cond(domain.M{"$lt": v}) }

// Lte produces {name: {"$lte": v}}.
func (h Handle) Lte(v any) Cond { return h.cond(domain.M{"$lte": v}) }

// AnyOf produces the pre-folded list fragment {name: [vs...]}, the explicit
// equals-any-of form. Later comparisons on the same name append to the list.
func (h Handle) AnyOf(vs ...any) Cond {
	if h.name == "" {
		return Cond{err: domain.ErrUnboundField}
	}
	list := make([]any, len(vs))
	copy(list, vs)
	return Cond{m: map[string]entry{h.name: {val: list, cmp: true, folded: true}}}
}

// Contains produces the substring fragment {name: {"$regex": operand}}. The
// field must be declared string-kind and the operand must be a string; any
// violation is deferred into the returned Cond.
func (h Handle) Contains(operand any) Cond {
	if h.name == "" {
		return Cond{err: domain.ErrUnboundField}
	}
	if h.kind != domain.KindString {
		return Cond{err: domain.ErrFieldKind{Op: "contains", Field: h.name, Kind: h.kind}}
	}
	s, ok := operand.(string)
	if !ok {
		return Cond{err: domain.ErrOperandType{Op: "contains", Want: "string", Got: operand}}
	}
	return h.cond(domain.M{"$regex": s})
}

func (h Handle) cond(v any) Cond {
	if h.name == "" {
		return Cond{err: domain.ErrUnboundField}
	}
	return Cond{m: map[string]entry{h.name: {val: v, cmp: true}}}
}

// KindOf returns the [domain.Kind] for a reflected type. Pointer types
// report the kind of their element type.
func KindOf(t reflect.Type) domain.Kind {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return domain.KindInvalid
	}
	switch t.Kind() {
	case reflect.String:
		return domain.KindString
	case reflect.Bool:
		return domain.KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return domain.KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return domain.KindUint
	case reflect.Float32, reflect.Float64:
		return domain.KindFloat
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return domain.KindBytes
		}
		return domain.KindList
	case reflect.Map:
		return domain.KindMap
	case reflect.Struct:
		if t == timeType {
			return domain.KindTime
		}
		return domain.KindStruct
	case reflect.Interface:
		return domain.KindAny
	}
	return domain.KindInvalid
}
