package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// titleHintPrefix marks the hint that carries a custom title.
const titleHintPrefix = "TITLE:"

type contextPair struct {
	key   string
	value interface{}
}

// ErrorBuilder assembles an error with hints, context and an exit code.
type ErrorBuilder struct {
	err       error
	title     string
	hints     []string
	context   []contextPair
	exitCode  *int
	sentinels []error
}

// Build starts from err. A leaf error (one that wraps nothing, like the sentinels in
// this package) is marked on the result so errors.Is keeps matching it after wrapping.
func Build(err error) *ErrorBuilder {
	b := &ErrorBuilder{err: err}
	if err != nil && errors.UnwrapOnce(err) == nil {
		b.sentinels = append(b.sentinels, err)
	}
	return b
}

// WithCause records the error that produced this one. The message becomes
// "<error>: <cause>" and errors.Is matches both.
func (b *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	if cause == nil || b.err == nil {
		return b
	}
	b.err = fmt.Errorf("%w: %w", b.err, cause)
	return b
}

// WithHint adds a user-facing hint.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf adds a formatted hint.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	return b.WithHint(fmt.Sprintf(format, args...))
}

// WithExplanation attaches a longer description, shown in verbose output.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	if b.err != nil {
		b.err = errors.WithDetail(b.err, explanation)
	}
	return b
}

// WithContext adds a key/value pair. Values are reported as safe details and shown
// as a table in verbose output, in the order they were added.
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	for i := range b.context {
		if b.context[i].key == key {
			b.context[i].value = value
			return b
		}
	}
	b.context = append(b.context, contextPair{key: key, value: value})
	return b
}

// WithTitle replaces the default "Error" heading.
func (b *ErrorBuilder) WithTitle(title string) *ErrorBuilder {
	b.title = title
	return b
}

// WithExitCode sets the process exit code for the error.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// WithSentinel marks the result so that errors.Is(result, sentinel) holds.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// Err returns the assembled error, or nil if the builder started from nil.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err

	if b.title != "" {
		err = errors.WithHint(err, titleHintPrefix+b.title)
	}

	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		format := make([]string, 0, len(b.context))
		values := make([]interface{}, 0, len(b.context))
		for _, pair := range b.context {
			format = append(format, pair.key+"=%v")
			values = append(values, errors.Safe(pair.value))
		}
		err = errors.WithSafeDetails(err, strings.Join(format, " "), values...)
	}

	// Marks go on last so they sit at the top of the chain.
	if len(b.sentinels) > 0 {
		err = &markedError{err: err, sentinels: b.sentinels}
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}

	return err
}

// markedError matches its sentinels in errors.Is, from both the standard library and
// cockroachdb/errors, without changing the message.
type markedError struct {
	err       error
	sentinels []error
}

func (e *markedError) Error() string { return e.err.Error() }

func (e *markedError) Cause() error { return e.err }

func (e *markedError) Unwrap() error { return e.err }

func (e *markedError) Is(target error) bool {
	for _, sentinel := range e.sentinels {
		if sentinel == target {
			return true
		}
	}
	return false
}
