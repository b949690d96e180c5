package fixture

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"sort"

	"github.com/fmi4go/fmutest/pkg/domain/model"
	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/utils/ctxutil"
	"github.com/m-mizutani/goerr"
)

// Catalog indexes FMU files under a fixture directory.
type Catalog struct {
	fsys fs.FS
}

func NewCatalog(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys}
}

// Scan walks the whole tree and returns every FMU following the fixture
// layout, sorted by path. Files outside the layout are skipped.
func (x *Catalog) Scan(ctx context.Context) ([]model.Fixture, error) {
	logger := ctxutil.Logger(ctx)
	var fixtures []model.Fixture

	err := fs.WalkDir(x.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return goerr.Wrap(types.ErrFixtureDirMissing.Wrap(err), "cannot open fixture root")
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == "." && !d.IsDir() {
			return goerr.Wrap(types.ErrFixtureDirMissing, "fixture root is not a directory")
		}
		if d.IsDir() || path.Ext(p) != types.FMUExt {
			return nil
		}

		f, err := model.ParseFixturePath(p)
		if err != nil {
			logger.Debug("skip FMU outside fixture layout", "path", p, "err", err)
			return nil
		}
		fixtures = append(fixtures, *f)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, goerr.Wrap(err, "fixture scan aborted")
		}
		if errors.Is(err, types.ErrFixtureDirMissing) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to walk fixture directory")
	}

	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].Path < fixtures[j].Path
	})

	logger.Debug("fixture scan done", "count", len(fixtures))
	return fixtures, nil
}

// List returns the fixtures matching query.
func (x *Catalog) List(ctx context.Context, query model.FixtureQuery) ([]model.Fixture, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fixtures, err := x.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(fixtures), nil
}

// Find returns the only fixture matching query.
func (x *Catalog) Find(ctx context.Context, query model.FixtureQuery) (*model.Fixture, error) {
	fixtures, err := x.List(ctx, query)
	if err != nil {
		return nil, err
	}

	switch len(fixtures) {
	case 0:
		return nil, goerr.Wrap(types.ErrFixtureNotFound).With("query", query)
	case 1:
		return &fixtures[0], nil
	default:
		paths := make([]string, len(fixtures))
		for i, f := range fixtures {
			paths[i] = f.Path
		}
		return nil, goerr.Wrap(types.ErrAmbiguousFixture).With("query", query).With("candidates", paths)
	}
}
