package logger

import (
	"io"
	"os"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/chronometer/errors"
	"github.com/cloudposse/chronometer/pkg/schema"
	"github.com/cloudposse/chronometer/pkg/ui/theme"
)

// LogLevel is a level name as written in configuration.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

const (
	// TraceLevel sits one step below charm's Debug level.
	TraceLevel = charm.DebugLevel - 1
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	// OffLevel is above every level charm emits, which silences the logger.
	OffLevel = charm.FatalLevel + 1
)

const (
	devStdout = "/dev/stdout"
	devStderr = "/dev/stderr"
	devNull   = "/dev/null"

	logFilePerm = 0o644
)

// Logger is a charmbracelet logger with a trace level and an optional file to close.
type Logger struct {
	*charm.Logger
	closer io.Closer
}

// New returns an Info-level logger writing to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns an Info-level logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	l := charm.NewWithOptions(w, charm.Options{
		Level:           charm.InfoLevel,
		ReportTimestamp: false,
	})
	l.SetStyles(theme.GetLogStyles(theme.DefaultScheme()))
	return &Logger{Logger: l}
}

// NewLogger returns a logger at level writing to file. The file may be one of
// /dev/stdout, /dev/stderr or /dev/null, or a path that is opened for appending.
// An empty file means stderr.
func NewLogger(level charm.Level, file string) (*Logger, error) {
	var (
		w      io.Writer
		closer io.Closer
	)

	switch file {
	case "", devStderr:
		w = os.Stderr
	case devStdout:
		w = os.Stdout
	case devNull:
		w = io.Discard
	default:
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, logFilePerm)
		if err != nil {
			return nil, errUtils.Build(errUtils.ErrOpenLogFile).
				WithCause(err).
				WithContext("file", file).
				WithHint("Check that the directory exists and is writable, or use /dev/stderr").
				Err()
		}
		w = f
		closer = f
	}

	l := NewWithWriter(w)
	l.SetLevel(level)
	l.closer = closer
	return l, nil
}

// NewLoggerFromConfig builds a logger from the logs section of the configuration.
func NewLoggerFromConfig(cfg *schema.Configuration) (*Logger, error) {
	level, err := ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return nil, err
	}
	return NewLogger(level, cfg.Logs.File)
}

// ParseLogLevel converts a configured level name into a charm level.
// Names are case-sensitive; an empty name means Info.
func ParseLogLevel(logLevel string) (charm.Level, error) {
	if logLevel == "" {
		return InfoLevel, nil
	}

	switch LogLevel(logLevel) {
	case LogLevelTrace:
		return TraceLevel, nil
	case LogLevelDebug:
		return DebugLevel, nil
	case LogLevelInfo:
		return InfoLevel, nil
	case LogLevelWarning:
		return WarnLevel, nil
	case LogLevelOff:
		return OffLevel, nil
	default:
		return 0, errUtils.Build(errUtils.ErrInvalidLogLevel).
			WithContext("level", logLevel).
			WithHint("Supported log levels are Trace, Debug, Info, Warning, Off").
			Err()
	}
}

// Trace logs at TraceLevel.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lowercase name of the current level.
func (l *Logger) GetLevelString() string {
	switch level := l.GetLevel(); level {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return level.String()
	}
}

// Close releases the log file, if the logger opened one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
