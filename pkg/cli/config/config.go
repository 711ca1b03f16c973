package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the optional TOML configuration file: where the log
// lives and the form defaults pre-filled into new cases.
type AppConfig struct {
	DataFile string   `toml:"data_file"`
	Defaults Defaults `toml:"defaults"`
}

// Defaults are values applied to a new case when the matching flag is
// not given.
type Defaults struct {
	Consultant string `toml:"consultant"`
	Hospital   string `toml:"hospital"`
}

// LoadAppConfig reads the configuration file at path. An empty path
// returns a zero config; a missing file at an explicit path is an
// error.
func LoadAppConfig(path string) (*AppConfig, error) {
	if path == "" {
		return &AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "cannot read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "cannot read config file", goerr.V(ConfigPathKey, path))
	}

	var cfg AppConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "cannot parse config file", goerr.V(ConfigPathKey, path))
	}
	return &cfg, nil
}
