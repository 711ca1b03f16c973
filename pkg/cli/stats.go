package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/caselog-dev/caselog/pkg/cli/config"
	"github.com/caselog-dev/caselog/pkg/domain/types"
	"github.com/caselog-dev/caselog/pkg/usecase"
)

const chartWidth = 40

func cmdStats() *cli.Command {
	var cfgPath string
	var storeCfg config.Store

	flags := []cli.Flag{configFlag(&cfgPath)}
	flags = append(flags, storeCfg.Flags()...)

	return &cli.Command{
		Name:  "stats",
		Usage: "Show the dashboard: metric tiles and per-procedure/per-hospital counts",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := openSession(ctx, c, cfgPath, &storeCfg)
			if err != nil {
				return err
			}
			defer sess.close(ctx)

			if sess.uc.Collection().Len() == 0 {
				fmt.Println("No cases logged yet. Add a case to see your dashboard.")
				return nil
			}

			s := sess.uc.Summary()
			bold := color.New(color.Bold)
			bold.Println("Your Surgical Dashboard")
			fmt.Printf("  Total Cases Logged:    %d\n", s.Total)
			fmt.Printf("  Complicated Cases:     %d\n", s.Complicated)
			fmt.Printf("  Primary Surgeon Cases: %d\n", s.PrimarySurgeon)

			printChart(sess.uc, "Cases by Procedure Type", types.FieldProcedure)
			printChart(sess.uc, "Cases by Hospital", types.FieldHospital)
			return nil
		},
	}
}

func printChart(uc *usecase.UseCases, title string, field types.Field) {
	groups, err := uc.GroupCounts(field)
	if err != nil || len(groups) == 0 {
		return
	}

	fmt.Println()
	color.New(color.Bold).Println(title)

	max := groups[0].Count
	width := 0
	for _, g := range groups {
		if len(g.Value) > width {
			width = len(g.Value)
		}
	}
	for _, g := range groups {
		bar := chartWidth * g.Count / max
		if bar < 1 {
			bar = 1
		}
		fmt.Printf("  %-*s %s %d\n", width, g.Value, color.CyanString(strings.Repeat("■", bar)), g.Count)
	}
}
