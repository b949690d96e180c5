package interfaces

import (
	"context"

	"github.com/fmi4go/fmutest/pkg/domain/model"
)

type UseCases interface {
	FixturesDir(ctx context.Context) (string, error)
	ListFixtures(ctx context.Context, query model.FixtureQuery) ([]model.Fixture, error)
	FindFixture(ctx context.Context, query model.FixtureQuery) (*model.Fixture, error)
}
