// Package stopwatch is the full-screen terminal front end of the chronometer.
package stopwatch

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	log "github.com/cloudposse/chronometer/pkg/logger"
	sw "github.com/cloudposse/chronometer/pkg/stopwatch"
	"github.com/cloudposse/chronometer/pkg/ui/theme"
)

const (
	DefaultLapListHeight = 10
	defaultWidth         = 40

	stateRunning = "Running"
	statePaused  = "Paused"
	lapsHeading  = "Laps"
)

// tickMsg carries a display value published by the stopwatch.
type tickMsg sw.ElapsedTime

// Options configures an App.
type Options struct {
	Title         string
	LapListHeight int
	Styles        *theme.Styles
}

type App struct {
	stopwatch *sw.Stopwatch
	updates   <-chan sw.ElapsedTime

	title    string
	styles   theme.Styles
	keys     keyMap
	help     help.Model
	laps     viewport.Model
	lapsMax  int
	quitting bool
}

// NewApp returns a model driving s. updates is the channel the stopwatch publishes
// to (see stopwatch.ChannelListener); the caller closes it once the program exits.
func NewApp(s *sw.Stopwatch, updates <-chan sw.ElapsedTime, opts Options) *App {
	styles := theme.NewStyles(nil)
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	lapsMax := opts.LapListHeight
	if lapsMax <= 0 {
		lapsMax = DefaultLapListHeight
	}

	app := &App{
		stopwatch: s,
		updates:   updates,
		title:     opts.Title,
		styles:    styles,
		keys:      newKeyMap(),
		help:      help.New(),
		laps:      viewport.New(defaultWidth, 0),
		lapsMax:   lapsMax,
	}
	app.refresh()
	return app
}

func (app *App) Init() tea.Cmd {
	return waitForTick(app.updates)
}

// waitForTick blocks for the next published value. A closed channel ends the loop.
func waitForTick(updates <-chan sw.ElapsedTime) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-updates
		if !ok {
			return nil
		}
		return tickMsg(e)
	}
}

func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := msg.(type) {
	case tickMsg:
		return app, waitForTick(app.updates)

	case tea.WindowSizeMsg:
		app.help.Width = message.Width
		app.laps.Width = message.Width
		return app, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(message, app.keys.Quit):
			app.quitting = true
			app.stopwatch.Close()
			log.Debug("Stopwatch closed", "elapsed", sw.FormatTime(app.stopwatch.Elapsed()))
			return app, tea.Quit
		case key.Matches(message, app.keys.Toggle):
			if !app.stopwatch.Pause() {
				app.stopwatch.Start()
			}
		case key.Matches(message, app.keys.Start):
			app.stopwatch.Start()
		case key.Matches(message, app.keys.Pause):
			app.stopwatch.Pause()
		case key.Matches(message, app.keys.Reset):
			app.stopwatch.Reset()
		case key.Matches(message, app.keys.Lap):
			if app.stopwatch.Lap() {
				app.refresh()
				app.laps.GotoTop()
				return app, nil
			}
		case key.Matches(message, app.keys.Up), key.Matches(message, app.keys.Down):
			var cmd tea.Cmd
			app.laps, cmd = app.laps.Update(msg)
			return app, cmd
		default:
			return app, nil
		}
		app.refresh()
	}

	return app, nil
}

// refresh rebuilds the lap list and key state from the stopwatch.
func (app *App) refresh() {
	entries := app.stopwatch.LapEntries()
	app.keys.sync(app.stopwatch.Running(), len(entries))

	rows := lo.Map(entries, func(e sw.LapEntry, _ int) string {
		return app.styles.LapNumber.Render(e.Label()) + "  " + app.styles.LapTime.Render(sw.FormatTime(e.Time))
	})
	app.laps.SetContent(strings.Join(rows, "\n"))
	app.laps.Height = min(len(rows), app.lapsMax)
}

func (app *App) View() string {
	if app.quitting {
		return ""
	}

	sections := make([]string, 0, 6)
	if app.title != "" {
		sections = append(sections, app.styles.Title.Render(app.title))
	}
	sections = append(sections, app.styles.Display.Render(sw.FormatTime(app.stopwatch.Elapsed())))

	if app.stopwatch.Running() {
		sections = append(sections, app.styles.Running.Render(stateRunning))
	} else {
		sections = append(sections, app.styles.Paused.Render(statePaused))
	}

	if app.laps.Height > 0 {
		sections = append(sections,
			app.styles.LapsTitle.Render(lapsHeading),
			app.laps.View(),
		)
	}

	sections = append(sections, "", app.help.View(app.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Quitting reports whether the user asked to quit.
func (app *App) Quitting() bool {
	return app.quitting
}
