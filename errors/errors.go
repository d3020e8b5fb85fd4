// Package errors holds the sentinel errors of the chronometer CLI and the helpers that
// enrich, format and map them to exit codes. It is built on cockroachdb/errors.
package errors

import "github.com/cockroachdb/errors"

var (
	// Configuration.
	ErrReadConfig          = errors.New("failed to read configuration")
	ErrDecodeConfig        = errors.New("failed to decode configuration")
	ErrInvalidTickInterval = errors.New("invalid tick interval")
	ErrInvalidColorMode    = errors.New("invalid color mode")
	ErrInvalidLapListSize  = errors.New("invalid lap list height")

	// Logging.
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrOpenLogFile     = errors.New("failed to open log file")

	// Output.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrWriteOutput         = errors.New("failed to write output")

	// Commands.
	ErrInvalidMilliseconds = errors.New("invalid milliseconds value")
	ErrRunTUI              = errors.New("terminal UI failed")
	ErrReadConsole         = errors.New("failed to read console input")
)
