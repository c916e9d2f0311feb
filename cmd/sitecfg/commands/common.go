// Package commands implements the sitecfg subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
)

// Global is state shared by every subcommand.
type Global struct {
	Out    io.Writer
	Logger *slog.Logger
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site definition path" default:"site.yaml" env:"SITECFG_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`
	EnvFile []string         `name:"env-file" help:"Load KEY=VALUE files and expand environment references in the definition"`

	Validate ValidateCmd `cmd:"" help:"Load the site definition and resolve its plugins"`
	Show     ShowCmd     `cmd:"" help:"Print the loaded site definition"`
	Plan     PlanCmd     `cmd:"" help:"Print the resolved plugin steps in activation order"`
	Init     InitCmd     `cmd:"" help:"Write an example site definition"`
	Watch    WatchCmd    `cmd:"" help:"Revalidate the site definition whenever it changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func (c *CLI) loadOptions(g *Global, rec metrics.Recorder) []descriptor.LoadOption {
	opts := []descriptor.LoadOption{descriptor.WithLogger(g.logger())}
	if len(c.EnvFile) > 0 {
		opts = append(opts, descriptor.WithEnvFile(c.EnvFile...))
	}
	if rec != nil {
		opts = append(opts, descriptor.WithRecorder(rec))
	}
	return opts
}

func (c *CLI) load(g *Global) (*descriptor.Descriptor, error) {
	return descriptor.Load(c.Config, c.loadOptions(g, nil)...)
}
