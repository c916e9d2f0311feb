package descriptor

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/foundation"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Format is the serialization of a site definition.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc" // JSON with comments and trailing commas
)

var formatNormalizer = foundation.NewNormalizer(map[string]Format{
	"yaml":  FormatYAML,
	"yml":   FormatYAML,
	"json":  FormatJSON,
	"jsonc": FormatJSONC,
}, "")

// ParseFormat maps a format name or file extension ("yml", ".json") to a Format.
func ParseFormat(s string) (Format, error) {
	f, err := formatNormalizer.NormalizeWithError(strings.TrimPrefix(s, "."))
	if err != nil {
		return "", errors.MalformedConfig("unsupported definition format: "+s).
			WithContext("valid_values", []string{"yaml", "yml", "json", "jsonc"}).
			Build()
	}
	return f, nil
}

// FormatFromPath picks the Format from path's extension.
func FormatFromPath(path string) (Format, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		if classified, ok := errors.AsClassified(err); ok {
			return "", classified.WithContext(errors.ContextSource, path)
		}
		return "", err
	}
	return f, nil
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatJSONC:
		return true
	default:
		return false
	}
}

func (f Format) String() string { return string(f) }
