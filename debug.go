package arbor

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// guiLogLevel controls the log level for arbor's debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var guiLogLevel = new(slog.LevelVar)

// guiLogger is the package logger.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose enables or disables debug-level logging.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the package logger. A nil logger restores the default
// stderr text logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))
	}
	guiLogger = l
}

// globalDebug mirrors the most recently set Scene debug flag so that widget
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// SetDebugMode enables or disables debug mode globally. When enabled,
// disposed-widget access panics, tree depth and child count warnings are
// logged, and per-frame timing stats are logged at debug level.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugStats holds per-frame timing and work counters.
// Only populated when debug mode is on.
type debugStats struct {
	constraintsTime time.Duration
	passTime        time.Duration
	widgetCount     int
	geometryCount   int
	layoutCount     int
	paintCount      int
}

func debugLog(stats debugStats) {
	guiLogger.Debug("frame",
		"constraints", stats.constraintsTime,
		"pass", stats.passTime,
		"widgets", stats.widgetCount,
		"geometry", stats.geometryCount,
		"layouts", stats.layoutCount,
		"paints", stats.paintCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed widget
// is used in a tree operation.
func debugCheckDisposed(w *Widget, op string) {
	if w.disposed {
		panic(fmt.Sprintf("arbor debug: %s on disposed widget %q (ID %d)", op, w.Name, w.ID))
	}
}

// debugMaxTreeDepth is the depth above which a warning is logged.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	if depth := w.tree.Depth() + 1; depth > debugMaxTreeDepth {
		guiLogger.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "widget", w.Name)
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if n := w.NumChildren(); n > debugMaxChildCount {
		guiLogger.Warn("child count exceeds threshold",
			"widget", w.Name, "children", n, "threshold", debugMaxChildCount)
	}
}
