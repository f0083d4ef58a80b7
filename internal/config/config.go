package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/frederic-klein/transient/internal/errors"
)

// Config holds operator defaults that flags can override.
type Config struct {
	// Python is the interpreter used to drive the package manager.
	Python string `yaml:"python"`

	// OutputDirectory is the default location for created wheels.
	OutputDirectory string `yaml:"output_directory"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Python:          "python3",
		OutputDirectory: ".",
	}
}

// Path returns the config file location under the XDG config home.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "transient", "config.yaml")
}

// Load reads the config file if present. A missing file is not an
// error; the defaults are returned.
func Load() (*Config, error) {
	return load(Path())
}

func load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "reading %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", path)
	}

	if cfg.Python == "" {
		cfg.Python = Default().Python
	}
	if cfg.OutputDirectory == "" {
		cfg.OutputDirectory = Default().OutputDirectory
	}

	return cfg, nil
}
