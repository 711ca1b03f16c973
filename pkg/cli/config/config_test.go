package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/caselog-dev/caselog/pkg/cli/config"
)

func TestLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caselog.toml")
	content := `
data_file = "/var/log/cases.csv"

[defaults]
consultant = "Dr. X"
hospital = "General"
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()

	cfg, err := config.LoadAppConfig(path)
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.DataFile).Equal("/var/log/cases.csv")
	gt.Value(t, cfg.Defaults.Consultant).Equal("Dr. X")
	gt.Value(t, cfg.Defaults.Hospital).Equal("General")
}

func TestLoadAppConfigEmptyPath(t *testing.T) {
	cfg, err := config.LoadAppConfig("")
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.DataFile).Equal("")
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	_, err := config.LoadAppConfig(filepath.Join(t.TempDir(), "nope.toml"))
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrConfigNotFound)).True()
}

func TestLoadAppConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caselog.toml")
	gt.NoError(t, os.WriteFile(path, []byte("data_file = [broken"), 0o644)).Required()

	_, err := config.LoadAppConfig(path)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
}
