// Package metrics provides load and plan metrics for sitecfg.
//
// Components receive a Recorder through dependency injection. NoopRecorder
// is the default; the watch command swaps in a PrometheusRecorder when a
// metrics address is configured:
//
//	reg := prom.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	desc, err := descriptor.Load(path, descriptor.WithRecorder(rec))
package metrics
