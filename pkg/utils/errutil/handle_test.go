package errutil_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/utils/ctxutil"
	"github.com/fmi4go/fmutest/pkg/utils/errutil"
	"github.com/fmi4go/fmutest/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gt"
)

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	logger := gt.R1(logging.New(&buf, "info", "json")).NoError(t)
	ctx := ctxutil.WithLogger(context.Background(), logger)

	err := goerr.Wrap(types.ErrConfiguration, "TEST_FMUs was expected to be found in the process environment").With("key", "TEST_FMUs")
	errutil.Handle(ctx, "fixture lookup failed", err)

	gt.S(t, buf.String()).
		Contains("fixture lookup failed").
		Contains("required environment variable missing").
		Contains("TEST_FMUs")
}

func TestHandleBareSentinel(t *testing.T) {
	var buf bytes.Buffer
	logger := gt.R1(logging.New(&buf, "info", "json")).NoError(t)
	ctx := ctxutil.WithLogger(context.Background(), logger)

	errutil.Handle(ctx, "fixture lookup failed", types.ErrFixtureNotFound)
	gt.S(t, buf.String()).Contains(`"error":"fixture not found"`)
}

func TestHandleSentryTags(t *testing.T) {
	var events []*sentry.Event
	client := gt.R1(sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			events = append(events, event)
			return nil
		},
	})).NoError(t)

	hub := sentry.CurrentHub()
	prev := hub.Client()
	hub.BindClient(client)
	t.Cleanup(func() { hub.BindClient(prev) })

	var buf bytes.Buffer
	logger := gt.R1(logging.New(&buf, "info", "json")).NoError(t)
	ctx := ctxutil.WithLogger(context.Background(), logger)
	ctx = ctxutil.WithRequestID(ctx, "req-42")

	err := goerr.Wrap(types.ErrConfiguration, "missing").With("key", "TEST_FMUs")
	errutil.Handle(ctx, "fixture lookup failed", err)

	gt.A(t, events).Length(1)
	gt.Equal(t, events[0].Tags["request_id"], "req-42")
	gt.Equal(t, events[0].Tags["status_code"], "503")
	gt.Equal(t, events[0].Extra["key"], any("TEST_FMUs"))
}
