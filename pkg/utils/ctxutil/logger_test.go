package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/fmi4go/fmutest/pkg/utils/ctxutil"
	"github.com/fmi4go/fmutest/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()
	gt.Equal(t, ctxutil.Logger(ctx), logging.Default())

	logger := slog.New(slog.NewJSONHandler(&discard{}, nil))
	ctx = ctxutil.WithLogger(ctx, logger)
	gt.Equal(t, ctxutil.Logger(ctx), logger)
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	gt.Equal(t, ctxutil.RequestID(ctx), "")

	ctx = ctxutil.WithRequestID(ctx, "req-1")
	gt.Equal(t, ctxutil.RequestID(ctx), "req-1")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
