package testutil

import (
	"os"
	"testing"

	"github.com/fmi4go/fmutest/pkg/fixture"
)

// LoadEnv returns the value of key, skipping the test when it is not set.
func LoadEnv(t testing.TB, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok {
		t.Skipf("Environment variable %s is not set", key)
	}
	return value
}

// FixturesDir returns the FMU fixture directory from TEST_FMUs. Unlike
// LoadEnv it fails the test, since fixture based tests are meaningless
// without it.
func FixturesDir(t testing.TB) string {
	t.Helper()
	dir, err := fixture.Dir()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return dir
}
