package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"uf2status/app"
	"uf2status/hal"
	"uf2status/internal/config"
	"uf2status/internal/events"
	"uf2status/internal/logging"
	"uf2status/internal/metrics"
	"uf2status/internal/simwindow"
	"uf2status/ui/screen"
	"uf2status/ui/status"
)

type runOptions struct {
	headless    bool
	ticks       uint64
	hz          int
	script      string
	loop        bool
	metricsAddr string
	traceLED    bool
	scale       int
}

var errWindowClosed = errors.New("window closed")

func newRunCmd(g *globalOptions) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulator",
		Long: `Run the status UI against the host HAL.

States come from --script ("state[:duration],...") and, in window mode,
from keys 1-6. With --config the profile is watched and labels are redrawn
on change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := g.loadBoard(cmd.Flags(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return o.run(ctx, b, g.configPath)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&o.headless, "headless", false, "Run without a window")
	f.Uint64Var(&o.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = until the script ends or interrupt)")
	f.IntVar(&o.hz, "hz", 60, "Tick rate in headless mode")
	f.StringVar(&o.script, "script", "", `State script, e.g. "mounted,writing:2s,finished" (empty runs the demo script in headless mode)`)
	f.BoolVar(&o.loop, "loop", false, "Repeat the script")
	f.StringVar(&o.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	f.BoolVar(&o.traceLED, "trace-led", false, "Log every LED change")
	f.IntVar(&o.scale, "scale", 3, "Window scale")
	return cmd
}

func (o *runOptions) run(ctx context.Context, b config.Board, configPath string) error {
	log := logging.GetLogger("sim")

	cfg, err := b.AppConfig()
	if err != nil {
		return err
	}
	hc := b.HostConfig()
	hc.Logger = logging.NewHALLogger(logging.GetLogger("device"))
	hc.TraceLED = o.traceLED
	h := hal.NewWithConfig(hc)

	sys, err := app.New(h, cfg)
	if err != nil {
		return err
	}
	defer sys.Close()

	bus := events.New()
	applied := make(chan status.State, 16)
	sys.Observe(func(st status.State, l screen.Layout, err error) {
		bus.Publish(events.StateAppliedEvent{State: st, Layout: l, Err: err})
	})
	defer bus.Subscribe(func(e events.StateRequestedEvent) {
		log.Debug("State requested", "state", e.State, "source", e.Source)
		sys.SetState(e.State)
	})()
	defer bus.Subscribe(func(e events.StateAppliedEvent) {
		metrics.RecordState(e.State)
		if e.Layout != 0 {
			metrics.RecordRedraw(e.Layout)
		}
		if e.Err != nil {
			metrics.RecordError("apply")
			log.Warn("State applied with errors", "state", e.State, "error", e.Err)
		} else {
			log.Info("State applied", "state", e.State, "layout", e.Layout)
		}
		select {
		case applied <- e.State:
		default:
		}
	})()
	defer bus.Subscribe(func(e events.ConfigReloadedEvent) {
		if err := sys.SetLabels(e.Labels); err != nil {
			metrics.RecordError("redraw")
			log.Warn("Redraw after reload failed", "error", err)
			return
		}
		metrics.RecordRedraw(app.LayoutFor(sys.State()))
	})()

	if configPath != "" {
		w := config.NewWatcher(configPath, logging.GetLogger("config"),
			config.WithErrorHandler(func(error) { metrics.RecordError("config") }))
		w.OnReload(func(nb config.Board) {
			bus.Publish(events.ConfigReloadedEvent{Path: configPath, Labels: nb.ScreenLabels()})
		})
		if err := w.Start(ctx); err != nil {
			log.Warn("Config watcher disabled", "error", err)
		} else {
			defer w.Stop()
		}
	}

	if o.metricsAddr != "" {
		srv := serveMetrics(o.metricsAddr, log)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(sctx)
		}()
	}

	if err := sys.SetState(status.StateBootloaderStarted); err != nil {
		log.Warn("Initial state", "error", err)
	}

	script := o.script
	if script == "" && o.headless {
		script = app.DemoScript
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	scriptDone := make(chan error, 1)
	if script != "" {
		steps, err := app.ParseScript(script)
		if err != nil {
			return err
		}
		go func() {
			request := func(st status.State) error {
				bus.Publish(events.StateRequestedEvent{State: st, Source: "script"})
				return waitApplied(ctx, applied, st)
			}
			scriptDone <- app.Play(ctx, steps, o.loop, request, nil)
		}()
	}

	if o.headless {
		return o.runHeadless(ctx, scriptDone, script != "")
	}

	err = simwindow.Run(h, simwindow.Options{
		Title: "uf2status " + b.Name,
		Scale: o.scale,
		OnState: func(st status.State) {
			bus.Publish(events.StateRequestedEvent{State: st, Source: "key"})
		},
		Step: func() error {
			if ctx.Err() != nil {
				return errWindowClosed
			}
			return nil
		},
	})
	if errors.Is(err, errWindowClosed) {
		return nil
	}
	return err
}

func (o *runOptions) runHeadless(ctx context.Context, scriptDone <-chan error, scripted bool) error {
	hctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if scripted && o.ticks == 0 {
		go func() {
			select {
			case <-scriptDone:
				cancel()
			case <-hctx.Done():
			}
		}()
	}
	err := hal.RunHeadless(hctx, nil, hal.HeadlessConfig{Enabled: true, Hz: o.hz, Ticks: o.ticks})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// waitApplied blocks until st has gone through the system.
func waitApplied(ctx context.Context, applied <-chan status.State, st status.State) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case got := <-applied:
			if got == st {
				return nil
			}
		}
	}
}

func serveMetrics(addr string, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server", "error", err)
		}
	}()
	return srv
}
