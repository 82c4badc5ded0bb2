package config

import (
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/envfill/pkg/errors"
)

func TestGenerate(t *testing.T) {
	cfg := Default()
	cfg.IgnoreMissing = true

	t.Run("toml", func(t *testing.T) {
		out, err := Generate(cfg, "toml")
		require.NoError(t, err)
		assert.Contains(t, string(out), "prefix = ")
		assert.Contains(t, string(out), "APP_")

		var back Config
		require.NoError(t, gotoml.Unmarshal(out, &back))
		assert.Equal(t, *cfg, back)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := Generate(cfg, "yaml")
		require.NoError(t, err)
		assert.Contains(t, string(out), "ignore_missing: true")

		var back Config
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, *cfg, back)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Generate(cfg, "json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
