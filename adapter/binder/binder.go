// Package binder binds filter struct types to their embedded base record
// structs, producing the typed field handles used to build queries.
package binder

import (
	"strings"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gequery/adapter/builder"
	"github.com/vinicius-lino-figueiredo/gequery/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/gequery/adapter/document"
	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

// TagName is the struct tag read for field naming by default.
const TagName = "bson"

var (
	handleType = reflect.TypeOf(builder.Handle{})
	timeType   = reflect.TypeOf(time.Time{})
)

// typedField is implemented by every [builder.Field] instantiation.
type typedField interface {
	ElemType() reflect.Type
}

// Bind inspects the filter type F and returns its [Schema]. F must be a
// struct embedding exactly one base record struct; every other exported
// field of F must be a [builder.Handle] or a [builder.Field] whose name
// resolves, under the same tag rules applied to the base, to a base field
// of the same type.
func Bind[F any](options ...Option) (*Schema[F], error) {
	cfg := config{tag: TagName}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.factory == nil {
		cfg.factory = document.NewFactory(document.WithTag(cfg.tag))
	}
	if cfg.dec == nil {
		cfg.dec = decoder.NewDecoder(decoder.WithTag(cfg.tag))
	}

	filterType := reflect.TypeOf((*F)(nil)).Elem()
	if filterType.Kind() != reflect.Struct {
		return nil, domain.ErrFilterKind{Type: filterType.String()}
	}
	base, err := baseOf(filterType)
	if err != nil {
		return nil, err
	}

	s := &Schema[F]{
		config: cfg,
		filter: new(F),
		base:   base,
		fields: map[string]builder.Handle{},
		types:  map[string]reflect.Type{},
	}
	s.collect(base, map[reflect.Type]bool{})
	if err := s.populate(filterType); err != nil {
		return nil, err
	}
	return s, nil
}

// MustBind is [Bind] panicking on error, for package level schema values.
func MustBind[F any](options ...Option) *Schema[F] {
	s, err := Bind[F](options...)
	if err != nil {
		panic(err)
	}
	return s
}

// baseOf returns the single embedded base struct type of the filter.
func baseOf(filterType reflect.Type) (reflect.Type, error) {
	var base reflect.Type
	for n := range filterType.NumField() {
		field := filterType.Field(n)
		if !field.Anonymous {
			continue
		}
		if base != nil {
			return nil, domain.ErrMultiBase
		}
		base = field.Type
	}
	if base == nil {
		return nil, domain.ErrNoBase
	}
	for base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return nil, domain.ErrBaseKind{Type: base.String()}
	}
	return base, nil
}

// collect resolves the base struct's fields into handles, visiting embedded
// structs after the direct fields so on name collisions the shallower field
// wins.
func (s *Schema[F]) collect(base reflect.Type, seen map[reflect.Type]bool) {
	if seen[base] {
		return
	}
	seen[base] = true

	var embedded []reflect.Type
	for n := range base.NumField() {
		field := base.Field(n)
		if field.PkgPath != "" {
			continue
		}
		if field.Anonymous {
			ft := field.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				embedded = append(embedded, ft)
				continue
			}
		}
		name, ok := s.fieldName(field)
		if !ok {
			continue
		}
		if _, taken := s.fields[name]; taken {
			continue
		}
		s.fields[name] = builder.NewHandle(name, builder.KindOf(field.Type))
		s.types[name] = unwrap(field.Type)
		s.order = append(s.order, name)
	}
	for _, ft := range embedded {
		s.collect(ft, seen)
	}
}

// populate sets every handle field of the filter value to its bound handle.
func (s *Schema[F]) populate(filterType reflect.Type) error {
	value := reflect.ValueOf(s.filter).Elem()
	for n := range filterType.NumField() {
		field := filterType.Field(n)
		if field.Anonymous || field.PkgPath != "" {
			continue
		}
		name, ok := s.fieldName(field)
		if !ok {
			continue
		}
		h, bound := s.fields[name]
		if !bound {
			return domain.ErrUnknownField{Field: name}
		}
		target := value.Field(n)
		if field.Type == handleType {
			target.Set(reflect.ValueOf(h))
			continue
		}
		typed, ok := reflect.New(field.Type).Elem().Interface().(typedField)
		if !ok {
			return domain.ErrNotHandle{Field: field.Name, Type: field.Type.String()}
		}
		if want, got := s.types[name], typed.ElemType(); got != want {
			return domain.ErrHandleType{Field: name, Want: want.String(), Got: got.String()}
		}
		handleValue := target.FieldByName("Handle")
		if !handleValue.IsValid() || handleValue.Type() != handleType {
			return domain.ErrNotHandle{Field: field.Name, Type: field.Type.String()}
		}
		handleValue.Set(reflect.ValueOf(h))
	}
	return nil
}

// fieldName resolves the bound name for a struct field. A tag of "-"
// excludes the field; an absent or empty tag name falls back to the
// lowercased field name.
func (s *Schema[F]) fieldName(field reflect.StructField) (string, bool) {
	tag, ok := field.Tag.Lookup(s.tag)
	if !ok {
		return strings.ToLower(field.Name), true
	}
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, true
}

func unwrap(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
