package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/fmi4go/fmutest/pkg/controller/server"
	"github.com/fmi4go/fmutest/pkg/infra"
	"github.com/fmi4go/fmutest/pkg/usecase"
	"github.com/fmi4go/fmutest/pkg/utils/logging"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/opac"
	"github.com/urfave/cli/v2"
)

func cmdServe() *cli.Command {
	var (
		addr        string
		policyFiles cli.StringSlice
	)

	return &cli.Command{
		Name:    "serve",
		Usage:   "Serve FMU fixtures over HTTP",
		Aliases: []string{"s"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "HTTP server address",
				Aliases:     []string{"a"},
				EnvVars:     []string{"FMUTEST_ADDR"},
				Destination: &addr,
				Value:       "127.0.0.1:8080",
			},
			&cli.StringSliceFlag{
				Name:        "policy-file",
				Usage:       "Rego policy file for access control (query: data.auth)",
				Aliases:     []string{"p"},
				EnvVars:     []string{"FMUTEST_POLICY_FILE"},
				Destination: &policyFiles,
			},
		},

		Action: func(c *cli.Context) error {
			var clientOptions []infra.Option
			if files := policyFiles.Value(); len(files) > 0 {
				policy, err := opac.New(opac.Files(files...))
				if err != nil {
					return goerr.Wrap(err, "failed to load policy files").With("files", files)
				}
				clientOptions = append(clientOptions, infra.WithPolicy(policy))
			}
			clients := infra.New(clientOptions...)

			uc := usecase.New(usecase.WithEnv(clients.Env()))

			// refuse to start without a fixture directory
			dir, err := uc.FixturesDir(c.Context)
			if err != nil {
				return err
			}

			var serverOptions []server.Option
			if clients.Policy() != nil {
				serverOptions = append(serverOptions, server.WithPolicy(clients.Policy()))
			}

			s := &http.Server{
				Addr:              addr,
				ReadHeaderTimeout: 3 * time.Second,
				Handler:           server.New(uc, serverOptions...),
			}

			errCh := make(chan error, 1)

			go func() {
				logging.Default().Info("start fixture server", "addr", addr, "dir", dir)
				if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to listen")
				}
			}()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
			defer stop()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
				logging.Default().Info("fixture server stopped", "addr", addr)

			case err := <-errCh:
				return err
			}

			return nil
		},
	}
}
