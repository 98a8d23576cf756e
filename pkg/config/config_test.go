package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shkm/rubyfmt/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Backup)
	assert.Equal(t, 0, cfg.Jobs)
	require.NoError(t, cfg.Validate())
}

func TestColorIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorAlways.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.Color("sometimes").IsValid())
	assert.False(t, config.Color("").IsValid())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr bool
	}{
		{"defaults", func(_ *config.Config) {}, false},
		{"bad color", func(c *config.Config) { c.Color = "sometimes" }, true},
		{"bad log level", func(c *config.Config) { c.LogLevel = "shout" }, true},
		{"warning alias accepted", func(c *config.Config) { c.LogLevel = "warning" }, false},
		{"negative jobs", func(c *config.Config) { c.Jobs = -1 }, true},
		{"zero jobs means auto", func(c *config.Config) { c.Jobs = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	content, err := config.GenerateTemplate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(content), "#"), "template starts with comments")

	// The template must parse back into a valid config.
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(content, &cfg))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.ColorAuto, cfg.Color)
}
