package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/caselog-dev/caselog/pkg/cli/config"
)

func cmdExport() *cli.Command {
	var cfgPath string
	var output string
	var storeCfg config.Store
	var filters filterValues

	flags := []cli.Flag{
		configFlag(&cfgPath),
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path of the xlsx file to write",
			Value:       "surgical_log.xlsx",
			Destination: &output,
		},
	}
	flags = append(flags, filters.flags()...)
	flags = append(flags, storeCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export the (optionally filtered) case log as an xlsx workbook",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := openSession(ctx, c, cfgPath, &storeCfg)
			if err != nil {
				return err
			}
			defer sess.close(ctx)

			predicates := filters.predicates()
			data, err := sess.uc.Export(predicates)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write export file", goerr.V("path", output))
			}

			color.Green("Exported %d case(s) to %s", sess.uc.Cases(predicates).Len(), output)
			return nil
		},
	}
}
