package binder

import "github.com/vinicius-lino-figueiredo/gequery/domain"

type config struct {
	tag     string
	dec     domain.Decoder
	factory domain.DocumentFactory
}

// WithTag sets the struct tag read for field naming, on the base and the
// filter alike. Defaults to [TagName].
func WithTag(tag string) Option {
	return func(c *config) {
		c.tag = tag
	}
}

// WithDecoder sets the decoder used by [Schema.Decode].
func WithDecoder(d domain.Decoder) Option {
	return func(c *config) {
		c.dec = d
	}
}

// WithDocumentFactory sets the factory used by [Schema.Document].
func WithDocumentFactory(f domain.DocumentFactory) Option {
	return func(c *config) {
		c.factory = f
	}
}

// Option configures schema binding through the functional options pattern.
type Option func(*config)
