package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Init replaces the global logger with a JSON logger writing to stderr at
// the requested level. Unknown level strings fall back to info so a typo in
// config never silences the service.
func Init(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(parsed),
	)

	mu.Lock()
	global = zap.New(core, zap.AddCaller())
	mu.Unlock()
	return nil
}

// Logger returns the global logger; a nop logger before Init.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Sync flushes buffered log entries.
func Sync() error {
	return Logger().Sync()
}

// WithModule returns a child logger annotated with the module name. All
// packages log through module-tagged children rather than the root logger.
func WithModule(module string) *zap.Logger {
	return Logger().With(zap.String("module", module))
}

// swap replaces the global logger and returns the previous one. Test hook.
func swap(l *zap.Logger) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := global
	global = l
	return prev
}
