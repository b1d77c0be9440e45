// Package debug provides conditional debug logging for weavetour.
//
// Debug logging is enabled by setting the WEAVETOUR_DEBUG environment variable
// or by passing --verbose:
//
//	WEAVETOUR_DEBUG=1 weavetour serve
//
// Messages go to stderr through a zap logger because the terminal UI owns
// stdout. When disabled (default), every function is a no-op.
//
// Usage:
//
//	import "github.com/vanderheijden86/weavetour/pkg/debug"
//
//	func render() {
//	    defer debug.LogEnterExit("render")()
//	    debug.Log("section %d of %d", i, n)
//	}
package debug

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  = zap.NewNop()
	sugar   = logger.Sugar()
)

func init() {
	if os.Getenv("WEAVETOUR_DEBUG") != "" {
		SetEnabled(true)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetEnabled switches debug logging on or off.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = e
	if e {
		logger = newStderrLogger()
	} else {
		_ = logger.Sync()
		logger = zap.NewNop()
	}
	sugar = logger.Sugar()
}

// SetLogger replaces the underlying logger. Tests use zaptest/observer cores.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	enabled = l != nil
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	sugar = l.Sugar()
}

// Logger returns the current structured logger. It is a no-op logger when
// debugging is disabled.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger().Sync()
}

func newStderrLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("WEAVETOUR_DEBUG")
}

func current() (*zap.SugaredLogger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return sugar, enabled
}

// Log writes a printf-style debug message.
func Log(format string, args ...any) {
	s, ok := current()
	if !ok {
		return
	}
	s.Debugf(format, args...)
}

// LogTiming writes a timing message.
func LogTiming(name string, d time.Duration) {
	mu.RLock()
	l, ok := logger, enabled
	mu.RUnlock()
	if !ok {
		return
	}
	l.Debug("timing", zap.String("op", name), zap.Duration("took", d))
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !cond {
		return
	}
	Log(format, args...)
}

// LogEnterExit logs function entry and exit with timing.
//
//	defer debug.LogEnterExit("render")()
func LogEnterExit(name string) func() {
	if !Enabled() {
		return func() {}
	}
	Log("-> %s", name)
	start := time.Now()
	return func() {
		Log("<- %s (%v)", name, time.Since(start))
	}
}
