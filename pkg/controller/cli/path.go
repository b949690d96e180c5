package cli

import (
	"fmt"

	"github.com/fmi4go/fmutest/pkg/usecase"
	"github.com/urfave/cli/v2"
)

func cmdPath() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "Print the fixture directory set by TEST_FMUs",
		Action: func(c *cli.Context) error {
			dir, err := usecase.New().FixturesDir(c.Context)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, dir)
			return nil
		},
	}
}
