package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fmi4go/fmutest/pkg/domain/model"
	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeFixture(t *testing.T, dir, rel string) string {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	gt.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	gt.NoError(t, os.WriteFile(p, []byte("fmu"), 0644))
	return p
}

func unsetFixturesEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TEST_FMUs", "")
	gt.NoError(t, os.Unsetenv("TEST_FMUs"))
}

func TestPathCommand(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv("TEST_FMUs", "/fixtures/fmus")

		var buf bytes.Buffer
		gt.NoError(t, newApp(&buf).Run([]string{"fmutest", "path"}))
		gt.Equal(t, buf.String(), "/fixtures/fmus\n")
	})

	t.Run("unset", func(t *testing.T) {
		unsetFixturesEnv(t)

		var buf bytes.Buffer
		err := newApp(&buf).Run([]string{"fmutest", "path"})
		gt.Equal(t, errors.Is(err, types.ErrConfiguration), true)
		gt.S(t, err.Error()).Contains("TEST_FMUs")
	})

	t.Run("from env file", func(t *testing.T) {
		unsetFixturesEnv(t)

		envFile := filepath.Join(t.TempDir(), "test.env")
		gt.NoError(t, os.WriteFile(envFile, []byte("TEST_FMUs=/from/env/file\n"), 0644))

		var buf bytes.Buffer
		gt.NoError(t, newApp(&buf).Run([]string{"fmutest", "--env-file", envFile, "path"}))
		gt.Equal(t, buf.String(), "/from/env/file\n")
	})

	t.Run("env file does not override", func(t *testing.T) {
		t.Setenv("TEST_FMUs", "/from/process")

		envFile := filepath.Join(t.TempDir(), "test.env")
		gt.NoError(t, os.WriteFile(envFile, []byte("TEST_FMUs=/from/env/file\n"), 0644))

		var buf bytes.Buffer
		gt.NoError(t, newApp(&buf).Run([]string{"fmutest", "--env-file", envFile, "path"}))
		gt.Equal(t, buf.String(), "/from/process\n")
	})
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "FMI_2.0/ModelExchange/win64/FMUSDK/2.0.4/bouncingBall/bouncingBall.fmu")
	fmuPath := writeFixture(t, dir, "FMI_2.0/CoSimulation/linux64/20sim/4.6.4.8004/ControlledTemperature/ControlledTemperature.fmu")
	t.Setenv("TEST_FMUs", dir)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, newApp(&buf).Run([]string{"fmutest", "list", "--format", "json", "--type", "CoSimulation"}))

		var fixtures []model.Fixture
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &fixtures))
		gt.A(t, fixtures).Length(1)
		gt.Equal(t, fixtures[0].Path, fmuPath)
		gt.Equal(t, fixtures[0].ToolVersion, "4.6.4.8004")
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, newApp(&buf).Run([]string{"fmutest", "list"}))
		gt.S(t, buf.String()).
			Contains("MODEL").
			Contains("bouncingBall").
			Contains("ControlledTemperature")
	})

	t.Run("invalid format", func(t *testing.T) {
		var buf bytes.Buffer
		err := newApp(&buf).Run([]string{"fmutest", "list", "--format", "xml"})
		gt.Equal(t, errors.Is(err, types.ErrInvalidInput), true)
	})
}

func TestServeCommand(t *testing.T) {
	t.Run("stops when context is done", func(t *testing.T) {
		t.Setenv("TEST_FMUs", t.TempDir())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- newApp(&bytes.Buffer{}).RunContext(ctx, []string{"fmutest", "serve", "--addr", "127.0.0.1:0"})
		}()
		cancel()

		select {
		case err := <-done:
			gt.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("serve did not stop after cancel")
		}
	})

	t.Run("refuses to start without TEST_FMUs", func(t *testing.T) {
		unsetFixturesEnv(t)

		err := newApp(&bytes.Buffer{}).Run([]string{"fmutest", "serve", "--addr", "127.0.0.1:0"})
		gt.Equal(t, errors.Is(err, types.ErrConfiguration), true)
	})

	t.Run("listen failure", func(t *testing.T) {
		t.Setenv("TEST_FMUs", t.TempDir())

		err := newApp(&bytes.Buffer{}).Run([]string{"fmutest", "serve", "--addr", "127.0.0.1:-1"})
		gt.S(t, err.Error()).Contains("failed to listen")
	})
}
