package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/medassist-lab/medassist/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate an extracted injury form JSON file and report completeness",
		ArgsUsage: "<form.json>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print the raw validation report as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one form file is required")
			}
			path := c.Args().First()

			raw, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read form file", goerr.V("path", path))
			}

			report := usecase.ValidateForm(raw)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if report.IsValid {
				color.Green("VALID")
			} else {
				color.Red("INVALID")
			}
			fmt.Printf("completeness: %.1f%%\n", report.Completeness*100)

			for _, e := range report.Errors {
				color.Red("error: %s", e)
			}
			for _, w := range report.Warnings {
				color.Yellow("warning: %s", w)
			}
			if len(report.MissingFields) > 0 {
				fmt.Printf("missing fields (%d):\n", len(report.MissingFields))
				for _, f := range report.MissingFields {
					fmt.Printf("  - %s\n", f)
				}
			}

			return nil
		},
	}
}
