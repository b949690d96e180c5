package ctxutil

import (
	"context"
	"log/slog"

	"github.com/fmi4go/fmutest/pkg/utils/logging"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
	ctxRequestIDKey
)

// Logger returns the logger bound to ctx, or the process default.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxLoggerKey).(*slog.Logger)
	if !ok {
		return logging.Default()
	}
	return logger
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, logger)
}

// RequestID returns the HTTP request id assigned by the server, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, id)
}
