// Package logger wraps zerolog.Logger with the constructors used by the
// storefront server. Handlers obtain the request-scoped logger with
// FromContext; everything else receives a *Logger at construction time.
package logger

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so Debug, Info, Warn, Error and friends are
// available directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a JSON logger on stdout tagged with role. level accepts any
// zerolog level name; unknown or empty values fall back to debug.
func NewLogger(role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// With returns a child logger carrying one extra string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}

// WithContext stores l in ctx so FromContext can find it later.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx, or zerolog's disabled
// logger when none was attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
