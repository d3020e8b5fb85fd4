package cmd

import (
	"regexp"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/chronometer/errors"
	e "github.com/cloudposse/chronometer/internal/exec"
)

const negativeMillisecondsHint = "Milliseconds must not be negative. Arguments starting with '-' are read as flags unless they follow --"

// digitShorthand matches pflag's error for an argument like -5.
var digitShorthand = regexp.MustCompile(`unknown shorthand flag: '\d'`)

var formatCmd = &cobra.Command{
	Use:   "format <milliseconds>...",
	Short: "Print elapsed milliseconds as HH:MM:SS.CC",
	Long: `This command prints each argument, a non-negative number of milliseconds, the way
the stopwatch displays it. Hours are not capped at 24 and sub-centisecond
milliseconds are dropped.`,
	Example: "chronometer format 1234\nchronometer format 0 60000 3723450\nchronometer format -- 1234",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return e.ExecuteFormat(cmd.OutOrStdout(), args)
	},
}

// formatFlagError reports a negative number as an invalid argument rather than an unknown flag.
func formatFlagError(_ *cobra.Command, err error) error {
	if !digitShorthand.MatchString(err.Error()) {
		return err
	}
	return errUtils.Build(errUtils.ErrInvalidMilliseconds).
		WithCause(err).
		WithHint(negativeMillisecondsHint).
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}

func init() {
	formatCmd.SetFlagErrorFunc(formatFlagError)
	RootCmd.AddCommand(formatCmd)
}
