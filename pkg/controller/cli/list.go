package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fmi4go/fmutest/pkg/domain/model"
	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/usecase"
	"github.com/m-mizutani/goerr"
	"github.com/urfave/cli/v2"
)

func cmdList() *cli.Command {
	var (
		format string
		query  model.FixtureQuery

		version  string
		fmuType  string
		platform string
	)

	return &cli.Command{
		Name:    "list",
		Usage:   "List FMU fixtures under TEST_FMUs",
		Aliases: []string{"ls"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (text, json)",
				Aliases:     []string{"f"},
				Destination: &format,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "fmi-version",
				Usage:       "Filter by FMI version, e.g. 2.0",
				Destination: &version,
			},
			&cli.StringFlag{
				Name:        "type",
				Usage:       "Filter by FMU type (ModelExchange, CoSimulation)",
				Destination: &fmuType,
			},
			&cli.StringFlag{
				Name:        "platform",
				Usage:       "Filter by platform, e.g. linux64",
				Destination: &platform,
			},
			&cli.StringFlag{
				Name:        "tool",
				Usage:       "Filter by exporting tool",
				Destination: &query.Tool,
			},
			&cli.StringFlag{
				Name:        "tool-version",
				Usage:       "Filter by exporting tool version",
				Destination: &query.ToolVersion,
			},
			&cli.StringFlag{
				Name:        "model",
				Usage:       "Filter by model name",
				Aliases:     []string{"m"},
				Destination: &query.Model,
			},
		},

		Action: func(c *cli.Context) error {
			if format != "text" && format != "json" {
				return goerr.Wrap(types.ErrInvalidInput, "format must be text or json").With("format", format)
			}

			query.Version = types.FMIVersion(version)
			query.Type = types.FMUType(fmuType)
			query.Platform = types.Platform(platform)

			fixtures, err := usecase.New().ListFixtures(c.Context, query)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				if err := enc.Encode(fixtures); err != nil {
					return goerr.Wrap(err, "failed to encode fixtures")
				}

			case "text":
				tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tTYPE\tPLATFORM\tTOOL\tTOOL_VERSION\tMODEL\tPATH")
				for _, f := range fixtures {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						f.Version, f.Type, f.Platform, f.Tool, f.ToolVersion, f.Model, f.Path)
				}
				if err := tw.Flush(); err != nil {
					return goerr.Wrap(err, "failed to write fixtures")
				}
			}

			return nil
		},
	}
}
