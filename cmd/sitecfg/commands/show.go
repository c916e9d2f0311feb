package commands

import (
	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" help:"Output format (yaml, json, jsonc); defaults to the definition's own format"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	desc, err := root.load(g)
	if err != nil {
		return err
	}
	format := desc.Format()
	if s.Format != "" {
		if format, err = descriptor.ParseFormat(s.Format); err != nil {
			return err
		}
	}
	return desc.Encode(g.out(), format)
}
