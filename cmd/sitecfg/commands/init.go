package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing site definition"`
	Format string `short:"f" help:"Definition format (yaml, json, jsonc); replaces the extension of --config"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if i.Format != "" {
		format, err := descriptor.ParseFormat(i.Format)
		if err != nil {
			return err
		}
		path = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format.String()
	}
	fmt.Fprintf(g.out(), "Writing site definition to %s\n", path)
	if err := descriptor.WriteExample(path, i.Force); err != nil {
		fmt.Fprintln(g.out(), "Initialization failed")
		return err
	}
	fmt.Fprintln(g.out(), "initialized successfully")
	return nil
}
