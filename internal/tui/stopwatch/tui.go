package stopwatch

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	errUtils "github.com/cloudposse/chronometer/errors"
	sw "github.com/cloudposse/chronometer/pkg/stopwatch"
)

// Execute runs the full-screen UI until the user quits or ctx is done.
// The stopwatch is closed on return; the caller owns and closes updates.
func Execute(ctx context.Context, s *sw.Stopwatch, updates <-chan sw.ElapsedTime, opts Options, in io.Reader, out io.Writer) (*App, error) {
	app := NewApp(s, updates, opts)

	p := tea.NewProgram(app,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	s.Close()
	if err != nil && ctx.Err() == nil {
		return app, errUtils.Build(errUtils.ErrRunTUI).WithCause(err).Err()
	}
	return app, nil
}
