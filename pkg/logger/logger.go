// Package logger builds the process logger: zap underneath, exposed as a
// logr.Logger and carried through context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oakwood-commons/tasklist/pkg/settings"
)

type loggerContextKey struct{}

const (
	RootCommandKey = "root_command"
	SubCommandKey  = "sub_command"
	CommitKey      = "commit"
	VersionKey     = "version"
	GoVersionKey   = "go_version"
	TimeStampKey   = "timestamp"
	MessageKey     = "message"
)

var (
	once sync.Once

	// globalZapLogger is kept for Sync.
	globalZapLogger  *zap.Logger
	globalLogrLogger *logr.Logger

	noopLogger = logr.Discard()
)

// New builds a JSON logger writing to out. logLevel follows zap levels,
// with negative values enabling logr V levels (-1 is V(1)).
func New(out zapcore.WriteSyncer, logLevel int8) (*zap.Logger, logr.Logger) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	goVersion := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(out),
		zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
	).With([]zapcore.Field{
		zap.String(CommitKey, settings.VersionInformation.Commit),
		zap.String(VersionKey, settings.VersionInformation.BuildVersion),
		zap.String(GoVersionKey, goVersion),
	})

	zl := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)
	return zl, zapr.NewLogger(zl)
}

// Get initializes the global logger on stderr on first use and returns it.
// Later calls ignore logLevel.
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		zl, lgr := New(os.Stderr, logLevel)
		globalZapLogger = zl
		globalLogrLogger = &lgr
	})
	if globalLogrLogger == nil {
		return &noopLogger
	}
	return globalLogrLogger
}

// ForCommand tags lgr with the command being run.
func ForCommand(lgr *logr.Logger, root, sub string) *logr.Logger {
	l := lgr.WithValues(RootCommandKey, root, SubCommandKey, sub)
	return &l
}

// WithLogger returns ctx carrying lgr, reusing ctx when it already holds lgr.
func WithLogger(ctx context.Context, lgr *logr.Logger) context.Context {
	if cur, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok && cur == lgr {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, lgr)
}

// FromContext returns the logger in ctx, else the global logger, else a no-op.
func FromContext(ctx context.Context) *logr.Logger {
	if lgr, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return lgr
	}
	if globalLogrLogger != nil {
		return globalLogrLogger
	}
	return &noopLogger
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	if globalZapLogger == nil {
		return
	}
	if err := globalZapLogger.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// isIgnorableSyncError reports the errors syncing a pipe or TTY returns.
// Windows consoles wrap ERROR_INVALID_HANDLE in *os.PathError, hence the string match.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}
