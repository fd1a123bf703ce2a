package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(EnvConfigPath, "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "greedy", c.Contract.Optimizer)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, 1, c.Log.MaxSizeMB)
	assert.Equal(t, "text", c.Render.Format)
	assert.True(t, c.Render.ShowTags)
	assert.Equal(t, "neato", c.Render.Layout)
	assert.NoError(t, c.Validate())
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[contract]
optimizer = "sequential"

[log]
level = "debug"
max_size_mb = 5

[render]
format = "dot"
show_tags = false
fig_width = 8.5
fig_height = 4

[render.colors]
T1 = "red"
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sequential", c.Contract.Optimizer)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 5, c.Log.MaxSizeMB)
	assert.Equal(t, "dot", c.Render.Format)
	assert.False(t, c.Render.ShowTags)
	assert.InDelta(t, 8.5, c.Render.FigWidth, 1e-9)
	assert.Equal(t, "red", c.Render.Colors["t1"])
	assert.NoError(t, c.Validate())
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tnqecc", "config.toml"), "[render]\nlayout = \"dot\"\n")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dot", c.Render.Layout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.toml")
	writeFile(t, path, "[contract]\noptimizer = \"sequential\"\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv("TNQECC_LOG_LEVEL", "error")
	t.Setenv("TNQECC_RENDER_LEGEND", "false")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sequential", c.Contract.Optimizer)
	assert.Equal(t, "error", c.Log.Level)
	assert.False(t, c.Render.Legend)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"optimizer", func(c *Config) { c.Contract.Optimizer = "random" }, "contract.optimizer"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"rotation", func(c *Config) { c.Log.MaxBackups = -1 }, "rotation"},
		{"format", func(c *Config) { c.Render.Format = "svg" }, "render.format"},
		{"figure", func(c *Config) { c.Render.FigHeight = -2 }, "figure size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
