// Package domain contains domain-specific interfaces and entities for
// gequery.
//
// This package defines the contracts shared by the adapter packages: field
// handles produced by the schema binder, decoders that hydrate records from
// documents, and factories that turn records into documents.
package domain

// Field represents a bound reference to a single schema field.
// Implementations are produced by the schema binder and accepted by the
// builder's free operators wherever a raw field name would do.
type Field interface {
	// Name returns the resolved document name of the field.
	Name() string
	// Kind returns the unwrapped declared kind of the field.
	Kind() Kind
}

// Decoder converts between different data representations.
type Decoder interface {
	// Decode converts from one data format to another.
	Decode(any, any) error
}

// DocumentFactory represents a function that converts a record into a plain
// [M] document, honoring the same naming rules the schema binder applies.
type DocumentFactory = func(any) (M, error)
