package fixture

import (
	"github.com/fmi4go/fmutest/pkg/domain/interfaces"
	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/infra"
	"github.com/m-mizutani/goerr"
)

// EnvKey is the environment variable holding the fixture directory.
const EnvKey = "TEST_FMUs"

// Dir returns the value of TEST_FMUs from the process environment. The value
// is returned verbatim, an empty string included. If the variable is not set
// at all, the error wraps types.ErrConfiguration.
func Dir() (string, error) {
	return LookupDir(infra.OSEnv{})
}

// LookupDir is Dir with an explicit environment.
func LookupDir(env interfaces.Environment) (string, error) {
	dir, ok := env.LookupEnv(EnvKey)
	if !ok {
		return "", goerr.Wrap(types.ErrConfiguration, EnvKey+" was expected to be found in the process environment").With("key", EnvKey)
	}
	return dir, nil
}
