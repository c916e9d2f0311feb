package descriptor

import (
	"log/slog"

	"git.home.luguber.info/inful/sitecfg/internal/metrics"
)

const inlineSource = "<inline>"

// LoadOption customizes Load, Parse and New.
type LoadOption func(*loadOptions)

type loadOptions struct {
	expandEnv  bool
	envFiles   []string
	repeatable map[string]bool
	recorder   metrics.Recorder
	logger     *slog.Logger
}

func newLoadOptions(opts []LoadOption) *loadOptions {
	o := &loadOptions{
		repeatable: map[string]bool{},
		recorder:   metrics.NoopRecorder{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEnvExpansion expands ${VAR} references against the process environment
// before decoding. Off by default so loaded values match the file verbatim.
func WithEnvExpansion(enabled bool) LoadOption {
	return func(o *loadOptions) { o.expandEnv = enabled }
}

// WithEnvFile loads KEY=VALUE files into the process environment before
// expansion. Missing files are skipped and variables already set win.
// Implies WithEnvExpansion(true).
func WithEnvFile(paths ...string) LoadOption {
	return func(o *loadOptions) {
		o.envFiles = append(o.envFiles, paths...)
		o.expandEnv = true
	}
}

// AllowRepeated lets the named plugins appear more than once in the
// activation list, for orchestrators that support repeated activation.
func AllowRepeated(names ...string) LoadOption {
	return func(o *loadOptions) {
		for _, n := range names {
			o.repeatable[n] = true
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) LoadOption {
	return func(o *loadOptions) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
