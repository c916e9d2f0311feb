package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitecfg/internal/build"
	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/plugin"
	"git.home.luguber.info/inful/sitecfg/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
	Debounce    time.Duration `help:"Quiet period before reloading" default:"500ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	logger := g.logger()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		srv := &http.Server{
			Addr:              w.MetricsAddr,
			Handler:           metricsMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Serving metrics", logfields.Addr(w.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	registry := plugin.NewBuiltinRegistry()
	check := func(desc *descriptor.Descriptor) {
		bc := build.NewContext(desc, build.WithLogger(logger), build.WithRecorder(recorder))
		plan, err := build.Resolve(ctx, bc, registry)
		if err != nil {
			logger.Error("Site definition rejected", logfields.Path(desc.Source()), logfields.Error(err))
			return
		}
		logger.Info("Site definition valid", logfields.Path(desc.Source()), logfields.Count(len(plan.Steps)))
	}

	loadOpts := root.loadOptions(g, recorder)
	load := func(path string) (*descriptor.Descriptor, error) {
		return descriptor.Load(path, loadOpts...)
	}

	if desc, err := load(root.Config); err != nil {
		logger.Error("Initial load failed", logfields.Path(root.Config), logfields.Error(err))
	} else {
		check(desc)
	}

	watcher, err := watch.New(root.Config, load, func(desc *descriptor.Descriptor, err error) {
		if err == nil {
			check(desc)
		}
	}, watch.WithDebounce(w.Debounce), watch.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("Stopping watcher", slog.String("reason", context.Cause(ctx).Error()))
	return watcher.Stop()
}

func metricsMux(reg *prom.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	return mux
}
