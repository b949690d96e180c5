package errutil

import (
	"context"
	"errors"
	"strconv"

	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/utils/ctxutil"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr"
)

// Handle reports err to Sentry (when configured) and logs it with msg.
func Handle(ctx context.Context, msg string, err error) {
	var goErr *goerr.Error
	if err != nil {
		goErr = goerr.Unwrap(err)
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(k, v)
			}
		}

		var xErr types.Error
		if errors.As(err, &xErr) {
			scope.SetTag("status_code", strconv.Itoa(xErr.Code()))
		}
		if reqID := ctxutil.RequestID(ctx); reqID != "" {
			scope.SetTag("request_id", reqID)
		}
	})
	evID := hub.CaptureException(err)

	ctxutil.Logger(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
