package filament

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/filament/driver"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine,
// including release callbacks arriving on engine threads.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for filament and the drivers of every
// live engine. By default, filament produces no log output. Call SetLogger
// to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by filament:
//   - [slog.LevelDebug]: object lifetime (create, destroy) and buffer
//     transfers (handed to the engine, reclaimed)
//   - [slog.LevelWarn]: handles collected without Release, release callbacks
//     for unknown buffers, buffers abandoned at engine teardown
//   - [slog.LevelError]: release callbacks whose pointer or size does not
//     match the transfer
//
// Example:
//
//	// Enable debug-level logging for full lifetime tracing:
//	filament.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	liveDrivers.Lock()
	defer liveDrivers.Unlock()
	for d := range liveDrivers.refs {
		propagateLogger(d, l)
	}
}

// Logger returns the current logger used by filament.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by drivers that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to a driver if it implements the
// loggerSetter interface.
func propagateLogger(d driver.Driver, l *slog.Logger) {
	if ls, ok := d.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

// liveDrivers counts the engines alive per driver so SetLogger reaches
// every driver in use.
var liveDrivers = struct {
	sync.Mutex
	refs map[driver.Driver]int
}{refs: make(map[driver.Driver]int)}

// trackDriver registers an engine on d and hands it the current logger.
func trackDriver(d driver.Driver) {
	liveDrivers.Lock()
	defer liveDrivers.Unlock()
	liveDrivers.refs[d]++
	propagateLogger(d, Logger())
}

// untrackDriver drops an engine of d.
func untrackDriver(d driver.Driver) {
	liveDrivers.Lock()
	defer liveDrivers.Unlock()
	if liveDrivers.refs[d]--; liveDrivers.refs[d] <= 0 {
		delete(liveDrivers.refs, d)
	}
}
