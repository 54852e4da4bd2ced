package errors

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/pkgci/pkgci/pkg/schema"
)

const (
	// CloseSentryTimeout is the timeout for flushing Sentry events before shutdown.
	CloseSentryTimeout = 2 * time.Second

	maxBreadcrumbs = 100
)

// InitializeSentry initializes the Sentry SDK. It is a no-op when no DSN is configured.
func InitializeSentry(config *schema.SentryConfig) error {
	if config == nil || config.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.DSN,
		Environment:      config.Environment,
		Release:          config.Release,
		Debug:            config.Debug,
		SampleRate:       1.0,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	for key, value := range config.Tags {
		sentry.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag(key, value)
		})
	}

	return nil
}

// CloseSentry flushes any pending Sentry events.
func CloseSentry() {
	sentry.Flush(CloseSentryTimeout)
}

// CaptureError sends an error to Sentry. Safe to call when Sentry was never initialized.
func CaptureError(err error) {
	if err == nil {
		return
	}

	// BuildSentryReport keeps the report PII-free: only safe details and stack traces.
	event, extraDetails := errors.BuildSentryReport(err)

	hub := sentry.CurrentHub()

	hub.WithScope(func(scope *sentry.Scope) {
		for key, value := range extraDetails {
			if contextMap, ok := value.(map[string]interface{}); ok {
				scope.SetContext(key, contextMap)
			}
		}

		for _, hint := range errors.GetAllHints(err) {
			scope.AddBreadcrumb(&sentry.Breadcrumb{
				Type:     "info",
				Category: "hint",
				Message:  hint,
				Level:    sentry.LevelInfo,
			}, maxBreadcrumbs)
		}

		if exitCode := GetExitCode(err); exitCode != 0 && exitCode != 1 {
			if event.Tags == nil {
				event.Tags = map[string]string{}
			}
			event.Tags["pkgci.exit_code"] = fmt.Sprintf("%d", exitCode)
		}

		hub.CaptureEvent(event)
	})
}
