package config

import (
	"log/slog"

	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr"
	"github.com/urfave/cli/v2"
)

type Sentry struct {
	dsn string
	env string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting",
			EnvVars:     []string{"FMUTEST_SENTRY_DSN"},
			Destination: &x.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			EnvVars:     []string{"FMUTEST_SENTRY_ENV"},
			Destination: &x.env,
		},
	}
}

// Configure initializes the Sentry client. Without a DSN it does nothing and
// errutil.Handle only logs.
func (x *Sentry) Configure() error {
	if x.dsn == "" {
		logging.Default().Debug("sentry is not enabled")
		return nil
	}

	logging.Default().Info("Enable Sentry", "sentry", x)
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.env,
		Release:     "fmutest@" + types.AppVersion,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize Sentry").With("env", x.env)
	}

	return nil
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dsn", x.dsn),
		slog.String("env", x.env),
	)
}
