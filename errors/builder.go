package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder provides a fluent API for constructing enriched errors.
type ErrorBuilder struct {
	err       error
	cause     error
	hints     []string
	context   map[string]interface{}
	exitCode  *int
	sentinels []error
}

// Build creates a new ErrorBuilder from a base error.
// The base error is marked on the result so that errors.Is() matches it
// even when WithCause replaces it in the chain.
func Build(err error) *ErrorBuilder {
	builder := &ErrorBuilder{err: err}

	if err != nil {
		builder.sentinels = append(builder.sentinels, err)
	}

	return builder
}

// WithCause records the underlying error. The final message reads
// "<base>: <cause>" and both errors stay reachable through errors.Is().
func (b *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	b.cause = cause
	return b
}

// WithHint adds a user-facing hint to the error.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf adds a formatted user-facing hint to the error.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.hints = append(b.hints, fmt.Sprintf(format, args...))
	return b
}

// WithExplanation adds a detailed explanation to the error.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	b.err = errors.WithDetail(b.err, explanation)
	return b
}

// WithExplanationf adds a formatted explanation to the error.
func (b *ErrorBuilder) WithExplanationf(format string, args ...interface{}) *ErrorBuilder {
	return b.WithExplanation(fmt.Sprintf(format, args...))
}

// WithContext adds safe structured context to the error.
// Context is displayed in verbose mode and sent to Sentry.
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]interface{})
	}
	b.context[key] = value
	return b
}

// WithExitCode attaches an exit code to the error.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// WithSentinel marks the error with a sentinel error for errors.Is() checks.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// Err finalizes and returns the enriched error.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err

	if b.cause != nil {
		err = errors.WrapWithDepthf(1, b.cause, "%s", err.Error())
	} else {
		// The base is usually a package level sentinel whose stack points at init.
		err = errors.WithStackDepth(err, 1)
	}

	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		err = withContext(err, b.context)
	}

	// Sentinels go on last so they sit at the top of the chain.
	for _, sentinel := range b.sentinels {
		err = errors.Mark(err, sentinel)
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}

	return err
}
