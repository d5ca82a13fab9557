package gcurve

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	pkgLogger atomic.Pointer[zap.Logger]

	// accelWarned records whether the manifold acceleration warning has been
	// logged by this process.
	accelWarned atomic.Bool
)

// SetLogger sets the logger used by the package. A nil logger restores the
// default, which is zap's global logger (a no-op unless replaced with
// zap.ReplaceGlobals).
func SetLogger(l *zap.Logger) {
	pkgLogger.Store(l)
}

func logger() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return zap.L()
}

func warnManifoldAccel() {
	if accelWarned.CompareAndSwap(false, true) {
		logger().Warn("using linear acceleration evaluation with a geodesic manifold; results are approximate")
	}
}
