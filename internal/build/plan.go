package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/plugin"
)

// Step is one resolved plugin activation.
type Step struct {
	// Index is the activation's position in the descriptor.
	Index      int
	Activation descriptor.PluginActivation
	Plugin     plugin.Metadata
	// Options is the plugin's typed options, e.g. plugin.ManifestOptions.
	Options any
}

// Plan is the ordered list of steps for one build.
type Plan struct {
	BuildID string
	Steps   []Step
}

// Handler invokes one step of a plan.
type Handler func(ctx context.Context, step Step) error

// Resolve maps every activation of bc.Descriptor onto a registered plugin, in
// order. It fails on the first activation whose plugin is unknown or whose
// options the plugin rejects.
func Resolve(ctx context.Context, bc *Context, registry *plugin.Registry) (*Plan, error) {
	activations := bc.Descriptor.Plugins()
	plan := &Plan{BuildID: bc.ID, Steps: make([]Step, 0, len(activations))}

	for i, activation := range activations {
		if err := ctx.Err(); err != nil {
			bc.Recorder.IncPlanOutcome(metrics.PlanCanceled)
			return nil, canceled(err)
		}

		p, err := registry.Get(activation.Resolve)
		if err != nil {
			bc.Recorder.IncPlanOutcome(metrics.PlanUnknownPlugin)
			bc.Logger.Error("Unknown plugin", logfields.Plugin(activation.Resolve), logfields.Step(i))
			return nil, withIndex(err, i, bc.Descriptor.Source())
		}

		opts, err := p.DecodeOptions(activation.Options)
		if err != nil {
			bc.Recorder.IncPlanOutcome(metrics.PlanInvalidOptions)
			bc.Logger.Error("Invalid plugin options", logfields.Plugin(activation.Resolve), logfields.Step(i), logfields.Error(err))
			return nil, withIndex(err, i, bc.Descriptor.Source())
		}

		plan.Steps = append(plan.Steps, Step{
			Index:      i,
			Activation: activation,
			Plugin:     p.Metadata(),
			Options:    opts,
		})
	}

	bc.Recorder.IncPlanOutcome(metrics.PlanSuccess)
	bc.Logger.Debug("Resolved plugin plan", logfields.Count(len(plan.Steps)))
	return plan, nil
}

// Run invokes handler for each step in order and stops at the first error.
// Cancellation is checked between steps.
func Run(ctx context.Context, bc *Context, plan *Plan, handler Handler) error {
	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return canceled(err)
		}
		start := time.Now()
		if err := handler(ctx, step); err != nil {
			bc.Logger.Error("Plugin step failed", logfields.Plugin(step.Plugin.Name), logfields.Step(step.Index), logfields.Error(err))
			if errors.IsClassified(err) {
				return err
			}
			return errors.WrapError(err, errors.CategoryPlugin, "plugin step failed").
				Fatal().
				WithContext(errors.ContextPlugin, step.Plugin.Name).
				WithContext(errors.ContextIndex, step.Index).
				Build()
		}
		bc.Logger.Debug("Plugin step completed",
			logfields.Plugin(step.Plugin.Name),
			logfields.Step(step.Index),
			logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	}
	return nil
}

func withIndex(err error, index int, source string) error {
	classified, ok := errors.AsClassified(err)
	if !ok {
		return err
	}
	return classified.WithContext(errors.ContextIndex, index).WithContext(errors.ContextSource, source)
}

func canceled(err error) error {
	return errors.WrapError(err, errors.CategoryCanceled, "build canceled").Build()
}
