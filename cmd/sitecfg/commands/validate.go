package commands

import (
	"context"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/build"
	"git.home.luguber.info/inful/sitecfg/internal/plugin"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	desc, err := root.load(g)
	if err != nil {
		return err
	}
	bc := build.NewContext(desc, build.WithLogger(g.logger()))
	if _, err := build.Resolve(context.Background(), bc, plugin.NewBuiltinRegistry()); err != nil {
		return err
	}
	names := desc.PluginNames()
	_, err = fmt.Fprintf(g.out(), "ok: %s (%q, %d plugins: %s)\n",
		desc.Source(), desc.Site().Title, len(names), strings.Join(names, ", "))
	return err
}
