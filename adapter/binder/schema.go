package binder

import (
	"iter"
	"slices"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gequery/adapter/builder"
	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

// Schema is a filter type bound to its base record struct. It hands out the
// typed field handles the filter declares and converts records of the base
// type to and from documents.
type Schema[F any] struct {
	config
	filter *F
	base   reflect.Type
	fields map[string]builder.Handle
	types  map[string]reflect.Type
	order  []string
}

// Fields returns the filter value with every handle field populated.
func (s *Schema[F]) Fields() *F {
	return s.filter
}

// Field returns the handle bound to a resolved field name. Unlike the
// filter's own fields this reaches every field of the base, declared on the
// filter or not.
func (s *Schema[F]) Field(name string) (builder.Handle, error) {
	h, ok := s.fields[name]
	if !ok {
		return builder.Handle{}, domain.ErrUnknownField{Field: name}
	}
	return h, nil
}

// Keys yields the resolved field names of the base in declaration order.
func (s *Schema[F]) Keys() iter.Seq[string] {
	return slices.Values(s.order)
}

// Handles yields name and handle pairs in declaration order.
func (s *Schema[F]) Handles() iter.Seq2[string, builder.Handle] {
	return func(yield func(string, builder.Handle) bool) {
		for _, name := range s.order {
			if !yield(name, s.fields[name]) {
				return
			}
		}
	}
}

// Len returns the number of bound fields.
func (s *Schema[F]) Len() int {
	return len(s.order)
}

// Document converts a record of the base type into a [domain.M] using the
// configured document factory.
func (s *Schema[F]) Document(record any) (domain.M, error) {
	t := reflect.TypeOf(record)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return nil, domain.ErrRecordKind{Got: record}
	}
	if t != s.base {
		return nil, domain.ErrRecordType{Want: s.base.String(), Got: t.String()}
	}
	return s.factory(record)
}

// Decode hydrates target, a pointer to a record, from a document using the
// configured decoder.
func (s *Schema[F]) Decode(source any, target any) error {
	return s.dec.Decode(source, target)
}
