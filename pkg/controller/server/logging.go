package server

import (
	"net/http"
	"time"

	"github.com/fmi4go/fmutest/pkg/utils/ctxutil"
	"github.com/google/uuid"
)

type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := r.Context()
		logger := ctxutil.Logger(ctx).With("request_id", reqID)

		ctx = ctxutil.WithLogger(ctx, logger)
		ctx = ctxutil.WithRequestID(ctx, reqID)
		w.Header().Set("X-Request-Id", reqID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		ts := time.Now()
		next.ServeHTTP(sw, r.WithContext(ctx))
		latency := time.Since(ts)

		logger.Info("HTTP Request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", sw.status,
			"size", sw.size,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"headers", r.Header,
			"latency", latency,
		)
	})
}
