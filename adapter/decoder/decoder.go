// Package decoder contains the default [domain.Decoder] implementation.
package decoder

import (
	"fmt"

	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

// TagName is the struct tag read for field naming by default.
const TagName = "bson"

// Decoder implements domain.Decoder on top of mapstructure.
type Decoder struct {
	tag  string
	hook mapstructure.DecodeHookFunc
}

// NewDecoder returns a new implementation of domain.Decoder.
func NewDecoder(options ...Option) domain.Decoder {
	d := &Decoder{tag: TagName}
	for _, option := range options {
		option(d)
	}
	return d
}

// Decode implements domain.Decoder.
func (d *Decoder) Decode(source any, target any) error {
	if target == nil {
		return &domain.ErrTargetNil{}
	}

	value := reflect.ValueNoEscapeOf(target)
	if value.Kind() != reflect.Ptr {
		return domain.ErrNonPointer
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    d.tag,
		DecodeHook: d.hook,
		Squash:     true,
		Result:     target,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(source); err != nil {
		errDec := domain.ErrDecode{Source: source, Target: target}
		return fmt.Errorf("%w: %w", errDec, err)
	}
	return nil
}
