package interfaces

import (
	"context"

	"github.com/m-mizutani/opac"
)

// Environment is a read-only view of process environment variables.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

type Policy interface {
	Query(ctx context.Context, query string, input, output any, options ...opac.QueryOption) error
}
