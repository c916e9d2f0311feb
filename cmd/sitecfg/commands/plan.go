package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/sitecfg/internal/build"
	"git.home.luguber.info/inful/sitecfg/internal/plugin"
)

// PlanCmd implements the 'plan' command.
type PlanCmd struct{}

func (p *PlanCmd) Run(g *Global, root *CLI) error {
	desc, err := root.load(g)
	if err != nil {
		return err
	}
	bc := build.NewContext(desc, build.WithLogger(g.logger()))
	plan, err := build.Resolve(context.Background(), bc, plugin.NewBuiltinRegistry())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(g.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "STEP\tPLUGIN\tKIND\tVERSION\n")
	for _, step := range plan.Steps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", step.Index+1, step.Plugin.Name, step.Plugin.Kind, step.Plugin.Version)
	}
	return tw.Flush()
}
