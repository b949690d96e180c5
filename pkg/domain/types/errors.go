package types

import (
	"log/slog"
	"net/http"
)

type Error struct {
	code  int
	msg   string
	cause error
}

func (x Error) Error() string {
	msg := x.msg
	if x.cause != nil {
		msg += ": " + x.cause.Error()
	}
	return msg
}
func (x Error) Code() int { return x.code }
func (x Error) Wrap(cause error) Error {
	return Error{code: x.code, msg: x.msg, cause: cause}
}
func (x Error) Unwrap() error { return x.cause }

// LogValue keeps the message visible through masq, which drops unexported fields.
func (x Error) LogValue() slog.Value { return slog.StringValue(x.Error()) }

// Is matches any Error sharing the same code and message, so a wrapped copy
// still satisfies errors.Is against the sentinel.
func (x Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return x.code == t.code && x.msg == t.msg
}

var (
	ErrConfiguration      = Error{code: http.StatusServiceUnavailable, msg: "required environment variable missing"}
	ErrFixtureDirMissing  = Error{code: http.StatusServiceUnavailable, msg: "fixture directory is not available"}
	ErrInvalidInput       = Error{code: http.StatusBadRequest, msg: "invalid input"}
	ErrFixtureNotFound    = Error{code: http.StatusNotFound, msg: "fixture not found"}
	ErrAmbiguousFixture   = Error{code: http.StatusConflict, msg: "fixture query matches more than one FMU"}
	ErrForbidden          = Error{code: http.StatusForbidden, msg: "forbidden"}
	ErrInvalidFixturePath = Error{code: http.StatusBadRequest, msg: "path does not follow fixture layout"}
)
