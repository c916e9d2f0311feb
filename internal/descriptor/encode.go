package descriptor

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Encode writes d to w in format. Activation order and metadata values are
// written exactly as loaded; option keys are emitted in sorted order.
func (d *Descriptor) Encode(w io.Writer, format Format) error {
	def := d.definition()
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(def); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode site definition").Build()
		}
		return enc.Close()
	case FormatJSON, FormatJSONC:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(def); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode site definition").Build()
		}
		return nil
	default:
		return errors.MalformedConfig("unsupported definition format: " + string(format)).Build()
	}
}
