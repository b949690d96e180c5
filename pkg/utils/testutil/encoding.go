package testutil

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
)

// Transcode copies src into dst through JSON, e.g. to turn a struct into a
// map the way a policy engine sees it.
func Transcode(t *testing.T, dst, src any) {
	t.Helper()

	raw := gt.R1(json.Marshal(src)).NoError(t)
	gt.NoError(t, json.Unmarshal(raw, dst))
}

// DecodeJSON decodes src into a new T, failing the test on malformed input.
func DecodeJSON[T any](t *testing.T, src []byte) T {
	t.Helper()

	var data T
	gt.NoError(t, json.Unmarshal(src, &data))
	return data
}
