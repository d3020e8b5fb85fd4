// Package console is the line-oriented front end of the chronometer, used when
// stdin is not a terminal or when --plain is set.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	errUtils "github.com/cloudposse/chronometer/errors"
	log "github.com/cloudposse/chronometer/pkg/logger"
	"github.com/cloudposse/chronometer/pkg/stopwatch"
)

type command struct {
	name    string
	aliases []string
	help    string
	run     func(c *Console) bool
}

// commands is filled in init because help refers back to it.
var commands []command

func init() {
	commands = []command{
		{"start", []string{"s"}, "start or resume timing", (*Console).start},
		{"pause", []string{"p"}, "pause timing", (*Console).pause},
		{"reset", []string{"r"}, "pause, zero the time and clear laps", (*Console).reset},
		{"lap", []string{"l"}, "record the displayed time as a lap", (*Console).lap},
		{"time", []string{"t"}, "print the displayed time", (*Console).time},
		{"laps", nil, "print the laps, newest first", (*Console).laps},
		{"help", []string{"h", "?"}, "print this help", (*Console).help},
		{"quit", []string{"q", "exit"}, "stop and exit", func(*Console) bool { return true }},
	}
}

// Console reads commands from in and reports to out.
type Console struct {
	stopwatch *stopwatch.Stopwatch
	in        io.Reader
	out       io.Writer
}

func New(s *stopwatch.Stopwatch, in io.Reader, out io.Writer) *Console {
	return &Console{stopwatch: s, in: in, out: out}
}

// Run processes commands until quit, end of input or ctx is done.
// The stopwatch is closed on return.
func (c *Console) Run(ctx context.Context) error {
	defer c.stopwatch.Close()

	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.println("Type 'help' for commands.")
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return errUtils.Build(errUtils.ErrReadConsole).WithCause(err).Err()
				}
				return nil
			}
			if c.Execute(line) {
				return nil
			}
		}
	}
}

// Execute runs one command line and reports whether it asked to quit.
func (c *Console) Execute(line string) bool {
	word := strings.ToLower(strings.TrimSpace(line))
	if word == "" {
		return false
	}

	cmd, ok := lo.Find(commands, func(cmd command) bool {
		return cmd.name == word || lo.Contains(cmd.aliases, word)
	})
	if !ok {
		c.printf("Unknown command %q. Type 'help' for commands.\n", word)
		return false
	}

	log.Debug("Console command", "command", cmd.name)
	return cmd.run(c)
}

func (c *Console) start() bool {
	if c.stopwatch.Start() {
		c.printf("Running from %s\n", c.display())
	} else {
		c.println("Already running")
	}
	return false
}

func (c *Console) pause() bool {
	if c.stopwatch.Pause() {
		c.printf("Paused at %s\n", c.display())
	} else {
		c.println("Not running")
	}
	return false
}

func (c *Console) reset() bool {
	c.stopwatch.Reset()
	c.println(c.display())
	return false
}

func (c *Console) lap() bool {
	if !c.stopwatch.Lap() {
		c.println("Not running")
		return false
	}
	entries := c.stopwatch.LapEntries()
	c.println(formatLap(entries[0]))
	return false
}

func (c *Console) time() bool {
	c.println(c.display())
	return false
}

func (c *Console) laps() bool {
	entries := c.stopwatch.LapEntries()
	if len(entries) == 0 {
		c.println("No laps")
		return false
	}
	for _, e := range entries {
		c.println(formatLap(e))
	}
	return false
}

func (c *Console) help() bool {
	for _, cmd := range commands {
		name := cmd.name
		if len(cmd.aliases) > 0 {
			name += " (" + strings.Join(cmd.aliases, ", ") + ")"
		}
		c.printf("  %-18s %s\n", name, cmd.help)
	}
	return false
}

func (c *Console) display() string {
	return stopwatch.FormatTime(c.stopwatch.Elapsed())
}

func formatLap(e stopwatch.LapEntry) string {
	return e.Label() + "  " + stopwatch.FormatTime(e.Time)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
