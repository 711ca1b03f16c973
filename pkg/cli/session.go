package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/caselog-dev/caselog/pkg/cli/config"
	"github.com/caselog-dev/caselog/pkg/domain/interfaces"
	"github.com/caselog-dev/caselog/pkg/domain/types"
	"github.com/caselog-dev/caselog/pkg/usecase"
	"github.com/caselog-dev/caselog/pkg/utils/safe"
)

// session bundles the store and the loaded use cases for one command
// invocation.
type session struct {
	store  interfaces.Store
	uc     *usecase.UseCases
	appCfg *config.AppConfig
}

func configFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path of the TOML configuration file",
		Sources:     cli.EnvVars("CASELOG_CONFIG"),
		Destination: dst,
	}
}

// openSession loads the config file, resolves the data file path and
// loads the collection. The config file's data_file applies only when
// the flag was left at its default.
func openSession(ctx context.Context, c *cli.Command, cfgPath string, storeCfg *config.Store) (*session, error) {
	appCfg, err := config.LoadAppConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	if appCfg.DataFile != "" && !c.IsSet("data-file") {
		storeCfg.SetPath(appCfg.DataFile)
	}

	store, err := storeCfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure store")
	}

	uc, err := usecase.New(ctx, store)
	if err != nil {
		safe.Close(ctx, store)
		return nil, err
	}

	return &session{store: store, uc: uc, appCfg: appCfg}, nil
}

func (s *session) close(ctx context.Context) {
	safe.Close(ctx, s.store)
}

// filterValues carries the substring filter flags shared by list and
// export.
type filterValues struct {
	procedure  string
	diagnosis  string
	hospital   string
	consultant string
}

func (f *filterValues) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "procedure",
			Usage:       "Substring filter on the Procedure field",
			Destination: &f.procedure,
		},
		&cli.StringFlag{
			Name:        "diagnosis",
			Usage:       "Substring filter on the Diagnosis field",
			Destination: &f.diagnosis,
		},
		&cli.StringFlag{
			Name:        "hospital",
			Usage:       "Substring filter on the Hospital field",
			Destination: &f.hospital,
		},
		&cli.StringFlag{
			Name:        "consultant",
			Usage:       "Substring filter on the Consultant field",
			Destination: &f.consultant,
		},
	}
}

func (f *filterValues) predicates() map[types.Field]string {
	return map[types.Field]string{
		types.FieldProcedure:  f.procedure,
		types.FieldDiagnosis:  f.diagnosis,
		types.FieldHospital:   f.hospital,
		types.FieldConsultant: f.consultant,
	}
}
