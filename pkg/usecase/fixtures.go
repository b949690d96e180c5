package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"

	"github.com/fmi4go/fmutest/pkg/domain/model"
	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/fixture"
	"github.com/fmi4go/fmutest/pkg/utils/ctxutil"
	"github.com/m-mizutani/goerr"
)

func (x *UseCases) FixturesDir(ctx context.Context) (string, error) {
	dir, err := fixture.LookupDir(x.env)
	if err != nil {
		return "", err
	}
	ctxutil.Logger(ctx).Debug("fixture directory located", "dir", dir)
	return dir, nil
}

func (x *UseCases) ListFixtures(ctx context.Context, query model.FixtureQuery) ([]model.Fixture, error) {
	dir, err := x.FixturesDir(ctx)
	if err != nil {
		return nil, err
	}

	fixtures, err := fixture.NewCatalog(x.newFS(dir)).List(ctx, query)
	if err != nil {
		return nil, withDir(err, dir)
	}

	for i := range fixtures {
		fixtures[i].Path = filepath.Join(dir, filepath.FromSlash(fixtures[i].Path))
	}
	return fixtures, nil
}

func (x *UseCases) FindFixture(ctx context.Context, query model.FixtureQuery) (*model.Fixture, error) {
	dir, err := x.FixturesDir(ctx)
	if err != nil {
		return nil, err
	}

	f, err := fixture.NewCatalog(x.newFS(dir)).Find(ctx, query)
	if err != nil {
		return nil, withDir(err, dir)
	}

	f.Path = filepath.Join(dir, filepath.FromSlash(f.Path))
	ctxutil.Logger(ctx).Debug("fixture found", "fixture", f)
	return f, nil
}

// withDir names the configured directory when it cannot be read.
func withDir(err error, dir string) error {
	if !errors.Is(err, types.ErrFixtureDirMissing) {
		return err
	}
	return goerr.Wrap(err, fixture.EnvKey+" points to "+strconv.Quote(dir)).With("dir", dir)
}
