package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultsWhenNoPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "%g", cfg.Format)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "calc.yaml", "format: \"%.3f\"\nlines: true\nverbosity: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "%.3f", cfg.Format)
	assert.True(t, cfg.Lines)
	assert.False(t, cfg.Echo)
	assert.Equal(t, 2, cfg.Verbosity)
}

func TestLoad_YMLKeepsDefaults(t *testing.T) {
	path := write(t, "calc.yml", "echo: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "%g", cfg.Format, "unset format should keep its default")
	assert.True(t, cfg.Echo)
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(write(t, "calc.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "calc.toml", "format = \"%v\"\necho = true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "%v", cfg.Format)
	assert.True(t, cfg.Echo)
	assert.False(t, cfg.Lines)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		msg     string
	}{
		{"unknown-ext", "calc.json", "{}", "unknown config format"},
		{"yaml-unknown-key", "calc.yaml", "precision: 64\n", "yaml"},
		{"yaml-syntax", "calc.yaml", "format: [\n", "yaml"},
		{"toml-unknown-key", "calc.toml", "precision = 64\n", "unknown key"},
		{"toml-syntax", "calc.toml", "format = \n", "toml"},
		{"no-verb", "calc.yaml", "format: result\n", "exactly one verb"},
		{"two-verbs", "calc.toml", "format = \"%g %g\"\n", "exactly one verb"},
		{"negative-verbosity", "calc.yaml", "verbosity: -1\n", "must not be negative"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(write(t, c.file, c.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)), "cause should be a not-exist error: %v", err)
}

func TestVerbs(t *testing.T) {
	assert.Equal(t, 0, verbs(""))
	assert.Equal(t, 1, verbs("%g"))
	assert.Equal(t, 1, verbs("%.2f%%"))
	assert.Equal(t, 2, verbs("%g=%v"))
	assert.Equal(t, 1, verbs("100%% = %d"))
}
