package exec

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/cloudposse/chronometer/internal/console"
	tui "github.com/cloudposse/chronometer/internal/tui/stopwatch"
	tuiUtils "github.com/cloudposse/chronometer/internal/tui/utils"
	log "github.com/cloudposse/chronometer/pkg/logger"
	"github.com/cloudposse/chronometer/pkg/schema"
	"github.com/cloudposse/chronometer/pkg/stopwatch"
	"github.com/cloudposse/chronometer/pkg/ui/theme"
)

// BannerText is printed in a figlet font when ui.banner is on.
const BannerText = "Chronometer"

// active is the stopwatch of the running session, closed by CloseActiveSession.
var active atomic.Pointer[stopwatch.Stopwatch]

// SessionOptions selects the front end and streams for a session.
type SessionOptions struct {
	In  io.Reader
	Out io.Writer

	// Interactive runs the full-screen UI instead of the line console.
	Interactive bool

	// StopwatchOptions are applied after the configured ones.
	StopwatchOptions []stopwatch.Option
}

// ExecuteSession runs one stopwatch session and returns its final state.
func ExecuteSession(ctx context.Context, cfg *schema.Configuration, opts SessionOptions) (stopwatch.Snapshot, error) {
	updates := make(chan stopwatch.ElapsedTime, 1)

	swOpts := []stopwatch.Option{stopwatch.WithTickInterval(cfg.Stopwatch.TickInterval)}
	if opts.Interactive {
		swOpts = append(swOpts, stopwatch.WithListener(stopwatch.ChannelListener(updates)))
	}
	swOpts = append(swOpts, opts.StopwatchOptions...)

	s := stopwatch.New(swOpts...)
	active.Store(s)
	defer active.CompareAndSwap(s, nil)

	log.Debug("Starting session", "interactive", opts.Interactive, "tick_interval", cfg.Stopwatch.TickInterval)

	var err error
	if opts.Interactive {
		styles := theme.NewStyles(theme.DefaultScheme())
		_, err = tui.Execute(ctx, s, updates, tui.Options{
			Title:         cfg.UI.Title,
			LapListHeight: cfg.UI.LapListHeight,
			Styles:        &styles,
		}, opts.In, opts.Out)
	} else {
		err = runConsole(ctx, cfg, s, opts)
	}
	close(updates)

	snap := s.Snapshot()
	log.Debug("Session ended", "elapsed", stopwatch.FormatTime(snap.Elapsed), "laps", len(snap.Laps))
	return snap, err
}

func runConsole(ctx context.Context, cfg *schema.Configuration, s *stopwatch.Stopwatch, opts SessionOptions) error {
	if cfg.UI.Banner {
		if err := tuiUtils.PrintDecoratedText(opts.Out, BannerText); err != nil {
			log.Warn("Failed to print banner", "error", err)
		}
	}
	if cfg.UI.Title != "" {
		if _, err := io.WriteString(opts.Out, cfg.UI.Title+"\n"); err != nil {
			return err
		}
	}
	return console.New(s, opts.In, opts.Out).Run(ctx)
}

// CloseActiveSession closes the stopwatch of the running session, if any.
func CloseActiveSession() {
	if s := active.Load(); s != nil {
		s.Close()
	}
}
