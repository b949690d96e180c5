package cli

import (
	"io"
	"os"

	"github.com/fmi4go/fmutest/pkg/controller/cli/config"
	"github.com/fmi4go/fmutest/pkg/utils/logging"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr"
	"github.com/urfave/cli/v2"
)

func Run(argv []string) error {
	if err := newApp(os.Stdout).Run(argv); err != nil {
		logging.Default().Error("exit with failure", "err", err)
		return err
	}

	return nil
}

func newApp(w io.Writer) *cli.App {
	var (
		logLevel  string
		logFormat string
		envFiles  cli.StringSlice
		sentryCfg config.Sentry
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			EnvVars:     []string{"FMUTEST_LOG_LEVEL"},
			Destination: &logLevel,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			EnvVars:     []string{"FMUTEST_LOG_FORMAT"},
			Destination: &logFormat,
			Value:       "console",
		},
		&cli.StringSliceFlag{
			Name:        "env-file",
			Usage:       "dotenv file loaded before running. Variables already set are kept",
			Aliases:     []string{"e"},
			EnvVars:     []string{"FMUTEST_ENV_FILE"},
			Destination: &envFiles,
		},
	}
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.App{
		Name:      "fmutest",
		Usage:     "Locate and serve FMU test fixtures from TEST_FMUs",
		Writer:    w,
		ErrWriter: w,

		Flags: flags,

		Before: func(c *cli.Context) error {
			if err := logging.Configure(os.Stderr, logLevel, logFormat); err != nil {
				return err
			}

			if files := envFiles.Value(); len(files) > 0 {
				if err := godotenv.Load(files...); err != nil {
					return goerr.Wrap(err, "failed to load env file").With("files", files)
				}
				logging.Default().Debug("env files loaded", "files", files)
			}

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			return nil
		},

		Commands: []*cli.Command{
			cmdPath(),
			cmdList(),
			cmdServe(),
		},
	}
}
