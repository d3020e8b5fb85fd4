package errors

import (
	"github.com/cockroachdb/errors"
)

// Exit codes returned by the CLI.
const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
	// ExitCodeUsage is returned for invalid flags, arguments or configuration.
	ExitCodeUsage = 2
	// ExitCodeInterrupted is 128 + SIGINT.
	ExitCodeInterrupted = 130
)

// exitCoder carries an exit code alongside its cause.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string { return e.cause.Error() }

func (e *exitCoder) Cause() error { return e.cause }

func (e *exitCoder) Unwrap() error { return e.cause }

// ExitCode returns the attached code.
func (e *exitCoder) ExitCode() int { return e.code }

// WithExitCode attaches an exit code to err. A nil err stays nil.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// GetExitCode returns 0 for nil, the outermost code attached with WithExitCode,
// or ExitCodeFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	return ExitCodeFailure
}
