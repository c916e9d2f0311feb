package metrics

import "time"

// LoadOutcome enumerates the result of loading a site definition.
type LoadOutcome string

const (
	LoadSuccess   LoadOutcome = "success"
	LoadMalformed LoadOutcome = "malformed"
	LoadIO        LoadOutcome = "io"
)

// PlanOutcome enumerates the result of resolving plugin activations.
type PlanOutcome string

const (
	PlanSuccess        PlanOutcome = "success"
	PlanUnknownPlugin  PlanOutcome = "unknown_plugin"
	PlanInvalidOptions PlanOutcome = "invalid_options"
	PlanCanceled       PlanOutcome = "canceled"
)

// Recorder defines observability hooks for descriptor loading and plan resolution.
type Recorder interface {
	ObserveLoadDuration(d time.Duration)
	IncLoadOutcome(outcome LoadOutcome)
	IncPlanOutcome(outcome PlanOutcome)
	SetPluginCount(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoadDuration(time.Duration) {}
func (NoopRecorder) IncLoadOutcome(LoadOutcome)        {}
func (NoopRecorder) IncPlanOutcome(PlanOutcome)        {}
func (NoopRecorder) SetPluginCount(int)                {}
