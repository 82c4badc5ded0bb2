package config

import (
	"strings"

	"github.com/arthur-debert/envfill/pkg/errors"
	"github.com/arthur-debert/envfill/pkg/variables"
)

// Config is the effective configuration of a run
type Config struct {
	Prefix        string `koanf:"prefix" toml:"prefix" yaml:"prefix"`
	IgnoreMissing bool   `koanf:"ignore_missing" toml:"ignore_missing" yaml:"ignore_missing"`
	AllowUnknown  bool   `koanf:"allow_unknown" toml:"allow_unknown" yaml:"allow_unknown"`
	DryRun        bool   `koanf:"dry_run" toml:"dry_run" yaml:"dry_run"`
	Diff          bool   `koanf:"diff" toml:"diff" yaml:"diff"`
	Debug         bool   `koanf:"debug" toml:"debug" yaml:"debug"`
	LogFile       string `koanf:"log_file" toml:"log_file" yaml:"log_file"`
}

// Keys lists every configuration key
var Keys = []string{"prefix", "ignore_missing", "allow_unknown", "dry_run", "diff", "debug", "log_file"}

// IsKey reports whether key names a configuration value
func IsKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// DefaultLogFileValue selects the XDG state log file
const DefaultLogFileValue = "default"

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Prefix: variables.DefaultPrefix,
	}
}

// Validate checks values that no layer can be allowed to set
func (c *Config) Validate() error {
	if strings.Contains(c.Prefix, "=") {
		return errors.Newf(errors.ErrConfigValid, "prefix %q cannot contain '='", c.Prefix).
			WithDetail("prefix", c.Prefix)
	}
	return nil
}
