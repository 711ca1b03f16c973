package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/caselog-dev/caselog/pkg/cli/config"
)

func configureLogger(t *testing.T, args ...string) error {
	t.Helper()

	var loggerCfg config.Logger
	var confErr error
	cmd := &cli.Command{
		Name:  "test",
		Flags: loggerCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			closer, err := loggerCfg.Configure()
			if err != nil {
				confErr = err
				return nil
			}
			closer()
			return nil
		},
	}
	gt.NoError(t, cmd.Run(t.Context(), append([]string{"test"}, args...))).Required()
	return confErr
}

func TestLoggerConfigureDefaults(t *testing.T) {
	gt.NoError(t, configureLogger(t))
}

func TestLoggerConfigureJSON(t *testing.T) {
	gt.NoError(t, configureLogger(t, "--log-format", "json", "--log-level", "debug"))
}

func TestLoggerConfigureInvalidLevel(t *testing.T) {
	gt.Error(t, configureLogger(t, "--log-level", "verbose"))
}

func TestLoggerConfigureInvalidFormat(t *testing.T) {
	gt.Error(t, configureLogger(t, "--log-format", "xml"))
}
