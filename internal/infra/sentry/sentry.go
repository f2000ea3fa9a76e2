// Package sentryutil wires optional Sentry error tracking. With an empty
// DSN the client still initializes and every capture is a no-op.
package sentryutil

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Init configures the global Sentry client. An empty dsn disables
// reporting; a failed init is logged and the bot keeps running.
func Init(dsn, environment string, log *logrus.Logger) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		log.Warnf("Sentry init (non-blocking): %s", err)
	}
	if dsn == "" {
		log.Debug("SENTRY_DSN empty, error tracking disabled")
	} else {
		log.Info("Sentry initialized")
	}
}

// Flush drains buffered events. Call it on the way out of main.
func Flush() { sentry.Flush(2 * time.Second) }

// CaptureError reports err with the given tags. Nil errors are ignored.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
