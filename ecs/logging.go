package ecs

import "go.uber.org/zap"

// logger is the package-wide structured logger, silent by default so
// embedding this package into a host never produces unsolicited output.
// A host that wants registry/dispatcher lifecycle events calls
// SetLogger once during startup, the same swap-a-package-logger pattern
// the corpus's service layers use for zap.
var logger = zap.NewNop()

// SetLogger installs l as the package-wide logger. Passing nil restores
// the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
