package view

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a view is animating.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by all views and renderers. By default
// nothing is logged. Pass nil to restore the silent default.
//
// Lifecycle events (start, repeat, cancel, resize, reconfiguration) are
// logged at debug level.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages use it to share the same
// configuration.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
