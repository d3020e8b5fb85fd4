package errors

import (
	"os"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}

// PrintAndExit writes the formatted error to stderr and exits with its exit code.
// It does nothing for a nil error.
func PrintAndExit(err error) {
	if err == nil {
		return
	}
	_, _ = os.Stderr.WriteString(Format(err, DefaultFormatterConfig()) + "\n")
	Exit(GetExitCode(err))
}
