package usecase

import (
	"io/fs"
	"os"

	"github.com/fmi4go/fmutest/pkg/domain/interfaces"
	"github.com/fmi4go/fmutest/pkg/infra"
)

type UseCases struct {
	env   interfaces.Environment
	newFS func(dir string) fs.FS
}

var _ interfaces.UseCases = (*UseCases)(nil)

func New(options ...Option) *UseCases {
	uc := &UseCases{
		env:   infra.OSEnv{},
		newFS: dirFS,
	}
	for _, option := range options {
		option(uc)
	}

	return uc
}

type Option func(*UseCases)

func WithEnv(env interfaces.Environment) Option {
	return func(uc *UseCases) {
		uc.env = env
	}
}

// WithFS replaces the filesystem opened for the fixture directory.
func WithFS(newFS func(dir string) fs.FS) Option {
	return func(uc *UseCases) {
		uc.newFS = newFS
	}
}

// dirFS opens the fixture directory. An empty TEST_FMUs refers to the
// working directory, the same way filepath.Join treats it.
func dirFS(dir string) fs.FS {
	if dir == "" {
		dir = "."
	}
	return os.DirFS(dir)
}
