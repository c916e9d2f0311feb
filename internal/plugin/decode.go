package plugin

import (
	"bytes"
	stderrors "errors"
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// validatable is implemented by option structs with rules beyond their shape.
type validatable interface {
	Validate() error
}

// schemaPlugin adapts a typed options struct T into a Plugin.
type schemaPlugin[T any] struct {
	meta Metadata
}

func newSchemaPlugin[T any](meta Metadata) *schemaPlugin[T] {
	return &schemaPlugin[T]{meta: meta}
}

func (p *schemaPlugin[T]) Metadata() Metadata { return p.meta }

// DecodeOptions re-encodes opts and decodes them strictly into T, so
// unknown keys and wrong shapes are rejected the same way the loader does.
func (p *schemaPlugin[T]) DecodeOptions(opts descriptor.Options) (any, error) {
	var out T
	if len(opts) > 0 {
		data, err := yaml.Marshal(map[string]any(opts))
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "failed to re-encode plugin options").
				Fatal().
				WithContext(errors.ContextPlugin, p.meta.Name).
				Build()
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&out); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.PluginOptionsError(p.meta.Name, "invalid options").WithCause(err).Build()
		}
	}
	if v, ok := any(&out).(validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, errors.PluginOptionsError(p.meta.Name, err.Error()).Build()
		}
	}
	return out, nil
}
