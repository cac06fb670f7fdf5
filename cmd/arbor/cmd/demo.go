package cmd

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/colornames"

	"github.com/go-drift/arbor/pkg/animation"
	"github.com/go-drift/arbor/pkg/config"
	arborerrors "github.com/go-drift/arbor/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run sample animations",
		Long: `Run a fade, a pulse and a regressive slide on wall-clock timers and
log every frame.

Settings are read from arbor.yaml in the current directory unless --config
names another file. With --watch, edits to that file are applied while the
demo runs.

Usage:
  arbor demo                       # One second per animation
  arbor demo --duration 3s         # Slower
  arbor demo --config demo.yaml    # Custom refresh interval and log level
  arbor demo --watch --duration 10s  # Reload settings on change`,
		Usage: "arbor demo [--config path] [--duration d] [--watch]",
		Run:   runDemo,
	})
}

type demoOptions struct {
	configPath string
	duration   time.Duration
	watch      bool
}

func parseDemoArgs(args []string) (demoOptions, error) {
	opts := demoOptions{configPath: config.FileName, duration: time.Second}
	for i := 0; i < len(args); {
		if args[i] == "--watch" {
			opts.watch = true
			i++
			continue
		}
		if v, n, ok, err := flagValue(args, i, "config"); ok {
			if err != nil {
				return opts, err
			}
			opts.configPath = v
			i += n
			continue
		}
		if v, n, ok, err := flagValue(args, i, "duration"); ok {
			if err != nil {
				return opts, err
			}
			d, err := time.ParseDuration(v)
			if err != nil {
				return opts, fmt.Errorf("invalid --duration %q: %w", v, err)
			}
			if d <= 0 {
				return opts, fmt.Errorf("--duration must be positive, got %s", d)
			}
			opts.duration = d
			i += n
			continue
		}
		return opts, fmt.Errorf("unknown argument %q\n\nUsage: arbor demo [--config path] [--duration d] [--watch]", args[i])
	}
	return opts, nil
}

func runDemo(args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}

	settings, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}
	config.Set(settings)
	if err := config.ApplyLogLevel(settings); err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
		With().Timestamp().Logger()
	log.Logger = logger
	arborerrors.SetHandler(&arborerrors.LogHandler{Verbose: settings.VerboseErrors, Logger: &logger})

	if opts.watch {
		stop, err := config.Watch(opts.configPath, func(s config.Settings) {
			if err := config.ApplyLogLevel(s); err != nil {
				logger.Warn().Err(err).Msg("keeping previous log level")
			}
			arborerrors.SetHandler(&arborerrors.LogHandler{Verbose: s.VerboseErrors, Logger: &logger})
			logger.Info().
				Dur("refresh_interval", s.RefreshInterval).
				Str("log_level", s.LogLevel).
				Msg("settings reloaded")
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(); err != nil {
				logger.Warn().Err(err).Msg("failed to stop settings watcher")
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, 4*opts.duration+time.Second)
	defer cancelTimeout()

	sched := animation.NewScheduler(animation.WithTimerSource(animation.NewWallTimers(nil)))
	defer sched.Shutdown()

	logger.Info().
		Dur("refresh_interval", settings.RefreshInterval).
		Dur("duration", opts.duration).
		Msg("starting demo")

	var wg sync.WaitGroup
	done := func(name string) func(animation.Status) {
		wg.Add(1)
		return func(s animation.Status) {
			logger.Info().Str("animation", name).Int("repeats", s.Repeats()).Msg("finished")
			wg.Done()
		}
	}

	lt := animation.NewLifeTime(opts.duration)
	box := newLogTarget(logger, "box")

	tint := animation.TweenRGBA(colornames.Lightgray, colornames.Steelblue)
	sched.AnimateFor(lt, animation.Strong(box)).Go(animation.Funcs{
		OnRun: func(s animation.Status) {
			c := tint.Evaluate(s.FadeIn())
			box.logger.Debug().
				Float64("alpha", s.FadeIn()).
				Str("tint", fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)).
				Msg("fade")
		},
		OnFinish: done("fade"),
	})

	sched.AnimateFor(lt.WithDuration(opts.duration/2), animation.Strong(box)).
		ForIterations(2).
		Go(animation.Funcs{
			OnRun: func(s animation.Status) {
				box.logger.Debug().Float64("scale", 1+0.2*s.Pulse()).Msg("pulse")
			},
			OnFinish: done("pulse"),
		})

	slide := animation.TweenPoint(image.Pt(0, 0), image.Pt(240, 0))
	sched.AnimateFor(lt.StartingIn(opts.duration/4), animation.Strong(box)).
		WithStride(animation.Regressive).
		Go(animation.Funcs{
			OnRun: func(s animation.Status) {
				box.logger.Debug().Stringer("offset", slide.At(s)).Msg("slide")
			},
			OnFinish: done("slide"),
		})

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		revalidates, repaints := box.counts()
		logger.Info().
			Int("revalidates", revalidates).
			Int("repaints", repaints).
			Msg("demo complete")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("demo interrupted: %w", ctx.Err())
	}
}

// logTarget is an animation target that logs refresh requests.
type logTarget struct {
	mu          sync.Mutex
	logger      zerolog.Logger
	revalidates int
	repaints    int
}

func newLogTarget(logger zerolog.Logger, name string) *logTarget {
	return &logTarget{logger: logger.With().Str("target", name).Logger()}
}

func (t *logTarget) Revalidate() {
	t.mu.Lock()
	t.revalidates++
	t.mu.Unlock()
}

func (t *logTarget) Repaint() {
	t.mu.Lock()
	t.repaints++
	t.mu.Unlock()
	t.logger.Trace().Msg("repaint")
}

func (t *logTarget) counts() (revalidates, repaints int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revalidates, t.repaints
}
