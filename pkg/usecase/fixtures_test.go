package usecase_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/fmi4go/fmutest/pkg/domain/mock"
	"github.com/fmi4go/fmutest/pkg/domain/model"
	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/infra"
	"github.com/fmi4go/fmutest/pkg/usecase"
	"github.com/fmi4go/fmutest/pkg/utils/testutil"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gt"
)

const bouncingBall = "FMI_2.0/ModelExchange/win64/FMUSDK/2.0.4/bouncingBall/bouncingBall.fmu"

func TestFixturesDir(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		uc := usecase.New(usecase.WithEnv(infra.MapEnv{"TEST_FMUs": "/fixtures/fmus"}))
		dir := gt.R1(uc.FixturesDir(context.Background())).NoError(t)
		gt.Equal(t, dir, "/fixtures/fmus")
	})

	t.Run("missing", func(t *testing.T) {
		uc := usecase.New(usecase.WithEnv(infra.MapEnv{}))
		_, err := uc.FixturesDir(context.Background())
		gt.Equal(t, errors.Is(err, types.ErrConfiguration), true)
	})
}

func TestListFixtures(t *testing.T) {
	var opened []string
	fsys := fstest.MapFS{}
	fsys[bouncingBall] = &fstest.MapFile{Data: []byte("fmu")}
	fsys["FMI_2.0/CoSimulation/linux64/20sim/4.6.4.8004/ControlledTemperature/ControlledTemperature.fmu"] = &fstest.MapFile{Data: []byte("fmu")}
	uc := usecase.New(
		usecase.WithEnv(infra.MapEnv{"TEST_FMUs": "/fixtures/fmus"}),
		usecase.WithFS(func(dir string) fs.FS {
			opened = append(opened, dir)
			return fsys
		}),
	)

	fixtures := gt.R1(uc.ListFixtures(context.Background(), model.FixtureQuery{Type: types.ModelExchange})).NoError(t)
	gt.A(t, fixtures).Length(1)
	gt.Equal(t, fixtures[0].Path, filepath.Join("/fixtures/fmus", filepath.FromSlash(bouncingBall)))
	gt.Equal(t, opened, []string{"/fixtures/fmus"})
}

func TestListFixturesWithoutEnv(t *testing.T) {
	called := false
	uc := usecase.New(
		usecase.WithEnv(infra.MapEnv{}),
		usecase.WithFS(func(dir string) fs.FS {
			called = true
			return fstest.MapFS{}
		}),
	)

	_, err := uc.ListFixtures(context.Background(), model.FixtureQuery{})
	gt.Equal(t, errors.Is(err, types.ErrConfiguration), true)
	gt.Equal(t, called, false)
}

func TestFindFixtureOnDisk(t *testing.T) {
	t.Setenv("TEST_FMUs", t.TempDir())
	dir := testutil.FixturesDir(t)
	fmuPath := filepath.Join(dir, filepath.FromSlash(bouncingBall))
	gt.NoError(t, os.MkdirAll(filepath.Dir(fmuPath), 0755))
	gt.NoError(t, os.WriteFile(fmuPath, []byte("fmu"), 0644))

	uc := usecase.New()

	f := gt.R1(uc.FindFixture(context.Background(), model.FixtureQuery{Model: "bouncingBall"})).NoError(t)
	gt.Equal(t, f.Path, fmuPath)
	gt.Equal(t, f.Tool, "FMUSDK")

	_, err := os.Stat(f.Path)
	gt.NoError(t, err)

	_, err = uc.FindFixture(context.Background(), model.FixtureQuery{Model: "dq"})
	gt.Equal(t, errors.Is(err, types.ErrFixtureNotFound), true)
}

func TestFixturesDirReadsOnlyTestFMUs(t *testing.T) {
	env := &mock.EnvironmentMock{
		LookupEnvFunc: func(key string) (string, bool) {
			return "/fixtures/fmus", true
		},
	}
	uc := usecase.New(usecase.WithEnv(env))

	for i := 0; i < 3; i++ {
		dir := gt.R1(uc.FixturesDir(context.Background())).NoError(t)
		gt.Equal(t, dir, "/fixtures/fmus")
	}

	calls := env.LookupEnvCalls()
	gt.A(t, calls).Length(3)
	for _, c := range calls {
		gt.Equal(t, c.Key, "TEST_FMUs")
	}
}

func TestFixturesDirMissingOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "no-such-dir")
	uc := usecase.New(usecase.WithEnv(infra.MapEnv{"TEST_FMUs": dir}))

	t.Run("list", func(t *testing.T) {
		_, err := uc.ListFixtures(context.Background(), model.FixtureQuery{})
		gt.Equal(t, errors.Is(err, types.ErrFixtureDirMissing), true)
		gt.S(t, err.Error()).Contains(dir)
		gt.Equal(t, goerr.Unwrap(err).Values()["dir"], any(dir))
	})

	t.Run("find", func(t *testing.T) {
		_, err := uc.FindFixture(context.Background(), model.FixtureQuery{Model: "bouncingBall"})
		gt.Equal(t, errors.Is(err, types.ErrFixtureDirMissing), true)
		gt.S(t, err.Error()).Contains(dir)
	})
}
