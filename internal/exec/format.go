package exec

import (
	"fmt"
	"io"
	"strconv"

	errUtils "github.com/cloudposse/chronometer/errors"
	"github.com/cloudposse/chronometer/pkg/stopwatch"
)

// ExecuteFormat prints the display form of each millisecond argument, one per line.
// All arguments are validated before anything is printed.
func ExecuteFormat(out io.Writer, args []string) error {
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		ms, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || ms < 0 {
			b := errUtils.Build(errUtils.ErrInvalidMilliseconds).
				WithContext("value", arg).
				WithHint("Pass a non-negative whole number of milliseconds, e.g. 1234").
				WithExitCode(errUtils.ExitCodeUsage)
			if err != nil {
				b = b.WithCause(err)
			}
			return b.Err()
		}
		values = append(values, ms)
	}

	for _, ms := range values {
		if _, err := fmt.Fprintln(out, stopwatch.FormatTime(stopwatch.Decompose(ms))); err != nil {
			return err
		}
	}
	return nil
}
