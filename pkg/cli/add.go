package cli

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/caselog-dev/caselog/pkg/cli/config"
	"github.com/caselog-dev/caselog/pkg/domain/model"
	"github.com/caselog-dev/caselog/pkg/domain/types"
)

func cmdAdd() *cli.Command {
	var cfgPath string
	var storeCfg config.Store
	var fields struct {
		patientID      string
		age            int
		date           string
		hospital       string
		consultant     string
		diagnosis      string
		procedure      string
		anaesthesia    string
		outcome        string
		notes          string
		role           string
		primarySurgeon string
		assistant      string
	}

	flags := []cli.Flag{
		configFlag(&cfgPath),
		&cli.StringFlag{
			Name:        "patient-id",
			Usage:       "De-identified patient code (e.g. 2025-001), never the MRN",
			Required:    true,
			Destination: &fields.patientID,
		},
		&cli.IntFlag{
			Name:        "age",
			Usage:       "Patient age (0-120)",
			Required:    true,
			Destination: &fields.age,
		},
		&cli.StringFlag{
			Name:        "date",
			Usage:       "Date of surgery (YYYY-MM-DD)",
			Destination: &fields.date,
		},
		&cli.StringFlag{
			Name:        "hospital",
			Usage:       "Hospital",
			Destination: &fields.hospital,
		},
		&cli.StringFlag{
			Name:        "consultant",
			Usage:       "Consultant",
			Destination: &fields.consultant,
		},
		&cli.StringFlag{
			Name:        "diagnosis",
			Usage:       "Diagnosis",
			Required:    true,
			Destination: &fields.diagnosis,
		},
		&cli.StringFlag{
			Name:        "procedure",
			Usage:       "Procedure",
			Required:    true,
			Destination: &fields.procedure,
		},
		&cli.StringFlag{
			Name:        "anaesthesia",
			Usage:       "Anaesthesia (General, Spinal, Epidural, Regional, Local, Sedation)",
			Value:       types.AnaesthesiaGeneral.String(),
			Destination: &fields.anaesthesia,
		},
		&cli.StringFlag{
			Name:        "outcome",
			Usage:       "Outcome (Uneventful or Complicated)",
			Value:       types.OutcomeUneventful.String(),
			Destination: &fields.outcome,
		},
		&cli.StringFlag{
			Name:        "role",
			Usage:       "My role (Primary Surgeon, Assistant, Observer)",
			Value:       types.RolePrimarySurgeon.String(),
			Destination: &fields.role,
		},
		&cli.StringFlag{
			Name:        "primary-surgeon",
			Usage:       "Primary surgeon",
			Destination: &fields.primarySurgeon,
		},
		&cli.StringFlag{
			Name:        "assistant",
			Usage:       "Assistant(s)",
			Destination: &fields.assistant,
		},
		&cli.StringFlag{
			Name:        "notes",
			Usage:       "Notes / key learnings",
			Destination: &fields.notes,
		},
	}
	flags = append(flags, storeCfg.Flags()...)

	return &cli.Command{
		Name:  "add",
		Usage: "Log a new surgical case",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := openSession(ctx, c, cfgPath, &storeCfg)
			if err != nil {
				return err
			}
			defer sess.close(ctx)

			if fields.date == "" {
				fields.date = time.Now().Format(model.DateLayout)
			}
			if fields.consultant == "" {
				fields.consultant = sess.appCfg.Defaults.Consultant
			}
			if fields.hospital == "" {
				fields.hospital = sess.appCfg.Defaults.Hospital
			}

			anaesthesia, err := types.ParseAnaesthesia(fields.anaesthesia)
			if err != nil {
				return goerr.Wrap(err, "invalid --anaesthesia")
			}
			outcome, err := types.ParseOutcome(fields.outcome)
			if err != nil {
				return goerr.Wrap(err, "invalid --outcome")
			}
			role, err := types.ParseRole(fields.role)
			if err != nil {
				return goerr.Wrap(err, "invalid --role")
			}

			rec, err := sess.uc.LogCase(ctx, model.Fields{
				PatientID:      fields.patientID,
				Age:            int(fields.age),
				Date:           fields.date,
				Hospital:       fields.hospital,
				Consultant:     fields.consultant,
				Diagnosis:      fields.diagnosis,
				Procedure:      fields.procedure,
				Anaesthesia:    anaesthesia,
				Outcome:        outcome,
				Notes:          fields.notes,
				MyRole:         role,
				PrimarySurgeon: fields.primarySurgeon,
				Assistant:      fields.assistant,
			})
			if err != nil {
				return err
			}

			color.Green("Logged case #%d (%s on %s)", rec.Number, rec.Procedure, rec.Date)
			return nil
		},
	}
}
