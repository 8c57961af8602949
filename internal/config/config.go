// Package config handles global configuration for the affil CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/affil/config.yml.
type Config struct {
	Delimiter string `yaml:"delimiter" validate:"required,len=1"`        // Roster field separator
	Format    string `yaml:"format" validate:"required,oneof=html text"` // Default output format
	Human     bool   `yaml:"human"`                                      // Human-readable reports by default
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "affil"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"
)

// Environment variables that override the config file.
const (
	EnvDelimiter = "AFFIL_DELIMITER"
	EnvFormat    = "AFFIL_FORMAT"
)

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Delimiter: ";",
		Format:    "html",
	}
}

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/affil/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads the global config file, applies environment overrides, and
// validates the result. Keys missing from the file keep their defaults.
func Load() (*Config, error) {
	return LoadFrom(GlobalConfigPath())
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// Defaults only
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from AFFIL_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDelimiter); v != "" {
		c.Delimiter = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
}

// DelimiterRune returns the delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
