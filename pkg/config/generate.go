package config

import (
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/envfill/pkg/errors"
)

// Generate renders cfg in the given format ("toml" or "yaml")
func Generate(cfg *Config, format string) ([]byte, error) {
	switch format {
	case "", "toml":
		out, err := gotoml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to render toml")
		}
		return out, nil
	case "yaml", "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to render yaml")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q, expected toml or yaml", format).
			WithDetail("format", format)
	}
}
