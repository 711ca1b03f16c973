package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/caselog-dev/caselog/pkg/cli/config"
)

func cmdList() *cli.Command {
	var cfgPath string
	var storeCfg config.Store
	var filters filterValues

	flags := []cli.Flag{configFlag(&cfgPath)}
	flags = append(flags, filters.flags()...)
	flags = append(flags, storeCfg.Flags()...)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Print the case log, optionally filtered",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := openSession(ctx, c, cfgPath, &storeCfg)
			if err != nil {
				return err
			}
			defer sess.close(ctx)

			col := sess.uc.Cases(filters.predicates())
			if col.Len() == 0 {
				fmt.Println("No cases found.")
				return nil
			}

			bold := color.New(color.Bold).Sprint
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				bold("#"), bold("Date"), bold("Patient"), bold("Age"),
				bold("Diagnosis"), bold("Procedure"), bold("Outcome"), bold("Role"))
			for _, rec := range col.Records() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					rec.Number, rec.Date, rec.PatientID, rec.Age,
					rec.Diagnosis, rec.Procedure, rec.Outcome, rec.MyRole)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("\n%d case(s)\n", col.Len())
			return nil
		},
	}
}
