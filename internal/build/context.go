package build

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
)

// Context holds the descriptor for the duration of one build invocation.
type Context struct {
	ID         string
	Descriptor *descriptor.Descriptor
	StartedAt  time.Time
	Logger     *slog.Logger
	Recorder   metrics.Recorder
}

// ContextOption customizes NewContext.
type ContextOption func(*Context)

// WithLogger sets the logger; the build ID is attached to it.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) ContextOption {
	return func(c *Context) {
		if r != nil {
			c.Recorder = r
		}
	}
}

// NewContext creates a build context with a fresh build ID.
func NewContext(desc *descriptor.Descriptor, opts ...ContextOption) *Context {
	c := &Context{
		ID:         uuid.NewString(),
		Descriptor: desc,
		StartedAt:  time.Now(),
		Logger:     slog.Default(),
		Recorder:   metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Logger = c.Logger.With(logfields.BuildID(c.ID))
	return c
}
