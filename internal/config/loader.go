package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigFile = "config.yaml"

// Load reads the configuration file named by CONFIG_PATH. See LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads a YAML file, applies environment overrides and env-default
// values, and validates the result.
//
// An empty path means ./config.yaml if it exists, else environment only.
// A named file that cannot be read is an error.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if err := read(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(path string, cfg *Config) error {
	if path == "" {
		_, err := os.Stat(defaultConfigFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if err := cleanenv.ReadEnv(cfg); err != nil {
				return fmt.Errorf("read env: %w", err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("stat %s: %w", defaultConfigFile, err)
		}
		path = defaultConfigFile
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
