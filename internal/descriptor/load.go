package descriptor

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
)

// Load reads, decodes and validates the site definition at path. The format
// is taken from the file extension. On failure no descriptor is returned.
func Load(path string, opts ...LoadOption) (*Descriptor, error) {
	o := newLoadOptions(opts)

	format, err := FormatFromPath(path)
	if err != nil {
		o.recorder.IncLoadOutcome(metrics.LoadMalformed)
		return nil, err
	}

	// #nosec G304 -- definition paths are provided by the operator via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		o.recorder.IncLoadOutcome(metrics.LoadIO)
		msg := "failed to read site definition"
		if os.IsNotExist(err) {
			msg = "site definition not found"
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, msg).
			Fatal().
			WithContext(errors.ContextSource, path).
			Build()
	}

	return parse(data, format, path, o)
}

// Parse decodes and validates a site definition held in memory.
func Parse(data []byte, format Format, opts ...LoadOption) (*Descriptor, error) {
	return parse(data, format, inlineSource, newLoadOptions(opts))
}

func parse(data []byte, format Format, source string, o *loadOptions) (*Descriptor, error) {
	start := time.Now()
	desc, err := decodeAndValidate(data, format, source, o)
	elapsed := time.Since(start)
	o.recorder.ObserveLoadDuration(elapsed)

	if err != nil {
		if errors.HasCategory(err, errors.CategoryFileSystem) {
			o.recorder.IncLoadOutcome(metrics.LoadIO)
		} else {
			o.recorder.IncLoadOutcome(metrics.LoadMalformed)
		}
		return nil, err
	}

	o.recorder.IncLoadOutcome(metrics.LoadSuccess)
	o.recorder.SetPluginCount(len(desc.plugins))
	o.logger.Debug("Loaded site definition",
		logfields.Path(source),
		logfields.Format(format.String()),
		logfields.Count(len(desc.plugins)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return desc, nil
}

func decodeAndValidate(data []byte, format Format, source string, o *loadOptions) (*Descriptor, error) {
	if !format.Valid() {
		return nil, errors.MalformedConfig("unsupported definition format: "+string(format)).
			WithContext(errors.ContextSource, source).
			Build()
	}

	if len(o.envFiles) > 0 {
		if err := o.loadEnvFiles(); err != nil {
			return nil, err
		}
	}
	if o.expandEnv {
		data = []byte(os.ExpandEnv(string(data)))
	}
	if format == FormatJSONC {
		data = jsonc.ToJSON(data)
	}

	def, err := decodeStrict(data)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to decode site definition").
			Fatal().
			UserAction().
			WithContext(errors.ContextSource, source).
			Build()
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to decode site definition").
			Fatal().
			UserAction().
			WithContext(errors.ContextSource, source).
			Build()
	}

	if err := validate(def, &root, o).ToError(source); err != nil {
		return nil, err
	}
	return newDescriptor(*def, source, format), nil
}

// decodeStrict decodes exactly one document and rejects unknown keys.
// JSON is decoded through the same path since it is a subset of YAML 1.2.
func decodeStrict(data []byte) (*definition, error) {
	var def definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&def); err != nil {
		if stderrors.Is(err, io.EOF) {
			return &def, nil
		}
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !stderrors.Is(err, io.EOF) {
		return nil, stderrors.New("definition contains multiple documents or trailing content")
	}
	return &def, nil
}
