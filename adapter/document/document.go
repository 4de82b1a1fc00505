// Package document contains the default [domain.DocumentFactory]
// implementation. It flattens record structs and maps into plain [domain.M]
// documents using the same naming rules the schema binder applies.
package document

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

// TagName is the struct tag read for field naming by default.
const TagName = "bson"

var timeType = reflect.TypeOf(time.Time{})

// Factory converts record values into [domain.M] documents.
type Factory struct {
	tag string
}

// NewFactory returns a [domain.DocumentFactory] built from the provided
// configuration options.
func NewFactory(options ...Option) domain.DocumentFactory {
	f := &Factory{tag: TagName}
	for _, option := range options {
		option(f)
	}
	return f.Document
}

var defaultFactory = NewFactory()

// NewDocument converts a record struct or map into a [domain.M] using the
// default configuration. It implements [domain.DocumentFactory].
func NewDocument(in any) (domain.M, error) {
	return defaultFactory(in)
}

// Document converts a record struct or map into a [domain.M]. Nil records
// produce an empty document.
func (f *Factory) Document(in any) (domain.M, error) {
	if in == nil {
		return domain.M{}, nil
	}
	if m, ok := parseSimple(in); ok {
		return m, nil
	}

	r := reflect.ValueNoEscapeOf(in)
	for r.Kind() == reflect.Ptr || r.Kind() == reflect.Interface {
		if r.IsNil() {
			return domain.M{}, nil
		}
		r = r.Elem()
	}
	switch {
	case r.Kind() == reflect.Map && r.Type().Key().Kind() == reflect.String:
		v, err := f.parseMap(r)
		if err != nil {
			return nil, err
		}
		return v.(domain.M), nil
	case r.Kind() == reflect.Struct && r.Type() != timeType:
		return f.parseStruct(r)
	default:
		return nil, domain.ErrRecordKind{Got: in}
	}
}

// parseSimple short-circuits inputs that are already documents.
func parseSimple(in any) (domain.M, bool) {
	switch t := in.(type) {
	case domain.M:
		res := make(domain.M, len(t))
		maps.Copy(res, t)
		return res, true
	case map[string]any:
		res := make(domain.M, len(t))
		maps.Copy(res, t)
		return res, true
	}
	return nil, false
}

func (f *Factory) parseReflect(r reflect.Value) (any, error) {
	for r.Kind() == reflect.Ptr || r.Kind() == reflect.Interface {
		if r.IsNil() {
			return nil, nil
		}
		r = r.Elem()
	}
	switch r.Kind() {
	case reflect.Invalid:
		return nil, nil
	case reflect.Slice:
		if r.IsNil() {
			return nil, nil
		}
		if r.Type().Elem().Kind() == reflect.Uint8 {
			return r.Interface(), nil
		}
		return f.parseList(r)
	case reflect.Array:
		return f.parseList(r)
	case reflect.Map:
		if r.IsNil() {
			return nil, nil
		}
		return f.parseMap(r)
	case reflect.Struct:
		if r.Type() == timeType {
			return r.Interface(), nil
		}
		return f.parseStruct(r)
	default:
		return r.Interface(), nil
	}
}

func (f *Factory) parseList(r reflect.Value) (any, error) {
	length := r.Len()
	res := make([]any, length)
	for n := range length {
		v, err := f.parseReflect(r.Index(n))
		if err != nil {
			return nil, err
		}
		res[n] = v
	}
	return res, nil
}

func (f *Factory) parseMap(r reflect.Value) (any, error) {
	res := make(domain.M, r.Len())
	for _, k := range r.MapKeys() {
		v, err := f.parseReflect(r.MapIndex(k))
		if err != nil {
			return nil, err
		}
		res[k.String()] = v
	}
	return res, nil
}

func (f *Factory) parseStruct(r reflect.Value) (domain.M, error) {
	res := make(domain.M, r.NumField())
	if err := f.fillStruct(res, r); err != nil {
		return nil, err
	}
	return res, nil
}

// fillStruct writes the exported fields of r into res, recursing through
// embedded structs so their promoted fields land on the same level. Embedded
// structs are visited after the direct fields, so on name collisions the
// shallower field wins.
func (f *Factory) fillStruct(res domain.M, r reflect.Value) error {
	typ := r.Type()
	var embedded []reflect.Value
	for n := range typ.NumField() {
		field := typ.Field(n)
		if field.PkgPath != "" {
			continue
		}
		value := r.Field(n)
		if field.Anonymous {
			ft := field.Type
			nilPtr := false
			for ft.Kind() == reflect.Ptr {
				if value.IsNil() {
					nilPtr = true
					break
				}
				value = value.Elem()
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				if !nilPtr {
					embedded = append(embedded, value)
				}
				continue
			}
		}
		name, opts, ok := f.fieldName(field)
		if !ok {
			continue
		}
		if _, taken := res[name]; taken {
			continue
		}
		if slices.Contains(opts, "omitempty") && isEmpty(value) {
			continue
		}
		v, err := f.parseReflect(value)
		if err != nil {
			return err
		}
		res[name] = v
	}
	for _, value := range embedded {
		if err := f.fillStruct(res, value); err != nil {
			return err
		}
	}
	return nil
}

// fieldName resolves the document key for a struct field. A tag of "-"
// excludes the field; an absent or empty tag name falls back to the
// lowercased field name.
func (f *Factory) fieldName(field reflect.StructField) (string, []string, bool) {
	tag, ok := field.Tag.Lookup(f.tag)
	if !ok {
		return strings.ToLower(field.Name), nil, true
	}
	if tag == "-" {
		return "", nil, false
	}
	segments := strings.Split(tag, ",")
	name := segments[0]
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, segments[1:], true
}

func isEmpty(r reflect.Value) bool {
	switch r.Kind() {
	case reflect.Slice, reflect.Map:
		return r.Len() == 0
	}
	return r.IsZero()
}
