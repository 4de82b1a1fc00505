package builder

import (
	"github.com/goccy/go-reflect"
)

// Field is the typed handle for one schema field. T is the field's unwrapped
// declared type, so operand mistakes fail at compile time instead of at
// query-build time. The zero value is unbound; the binder populates the
// embedded [Handle] when the filter type is bound.
type Field[T any] struct {
	Handle
}

// NewField returns a bound typed handle, deriving the kind from T. Most
// callers declare Field values on a filter struct and let the binder fill
// them in.
func NewField[T any](name string) Field[T] {
	return Field[T]{Handle: NewHandle(name, KindOf(reflect.TypeOf((*T)(nil)).Elem()))}
}

// ElemType reports T. The binder checks it against the declared type of the
// base field the handle binds to.
func (f Field[T]) ElemType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Eq produces {name: v}.
func (f Field[T]) Eq(v T) Cond { return f.Handle.Eq(v) }

// Gt produces {name: {"$gt": v}}.
func (f Field[T]) Gt(v T) Cond { return f.Handle.Gt(v) }

// Gte produces {name: {"$gte": v}}.
func (f Field[T]) Gte(v T) Cond { return f.Handle.Gte(v) }

// Lt produces {name: {"$lt": v}}.
func (f Field[T]) Lt(v T) Cond { return f.Handle.Lt(v) }

// Lte produces {name: {"$lte": v}}.
func (f Field[T]) Lte(v T) Cond { return f.Handle.Lte(v) }

// AnyOf produces the equals-any-of list {name: [vs...]}.
func (f Field[T]) AnyOf(vs ...T) Cond {
	list := make([]any, len(vs))
	for n, v := range vs {
		list[n] = v
	}
	return f.Handle.AnyOf(list...)
}

// Contains produces the substring fragment {name: {"$regex": operand}}. The
// field must be declared string-kind; any other kind defers
// [domain.ErrFieldKind] into the result.
func (f Field[T]) Contains(operand string) Cond {
	return f.Handle.Contains(operand)
}
