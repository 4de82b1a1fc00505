package decoder

import "github.com/mitchellh/mapstructure"

// WithTag sets the struct tag read for field naming. Defaults to [TagName].
func WithTag(tag string) Option {
	return func(d *Decoder) {
		d.tag = tag
	}
}

// WithDecodeHook sets a mapstructure hook applied to every value before it
// is assigned to the target.
func WithDecodeHook(hook mapstructure.DecodeHookFunc) Option {
	return func(d *Decoder) {
		d.hook = hook
	}
}

// Option configures decoding through the functional options pattern.
type Option func(*Decoder)
