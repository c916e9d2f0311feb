package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	loadDuration prom.Histogram
	loadOutcome  *prom.CounterVec
	planOutcome  *prom.CounterVec
	pluginCount  prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		loadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitecfg",
			Name:      "load_duration_seconds",
			Help:      "Duration of site definition loads",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		}),
		loadOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "load_outcomes_total",
			Help:      "Site definition loads by outcome",
		}, []string{"outcome"}),
		planOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "plan_outcomes_total",
			Help:      "Plugin plan resolutions by outcome",
		}, []string{"outcome"}),
		pluginCount: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitecfg",
			Name:      "plugin_activations",
			Help:      "Plugin activations in the last loaded definition",
		}),
	}
	reg.MustRegister(pr.loadDuration, pr.loadOutcome, pr.planOutcome, pr.pluginCount)
	return pr
}

func (p *PrometheusRecorder) ObserveLoadDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLoadOutcome(outcome LoadOutcome) {
	if p == nil {
		return
	}
	p.loadOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncPlanOutcome(outcome PlanOutcome) {
	if p == nil {
		return
	}
	p.planOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetPluginCount(n int) {
	if p == nil {
		return
	}
	p.pluginCount.Set(float64(n))
}
