package document

// WithTag sets the struct tag read for field naming. Defaults to [TagName].
func WithTag(tag string) Option {
	return func(f *Factory) {
		f.tag = tag
	}
}

// Option configures document conversion through the functional options
// pattern.
type Option func(*Factory)
