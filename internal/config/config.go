// Package config loads settings for the calc command from YAML or TOML files.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the command configuration. Fields absent from a file keep their
// defaults.
type Config struct {
	// Format is the fmt verb used to print results.
	Format string `yaml:"format" toml:"format"`
	// Lines treats each input line as a separate expression.
	Lines bool `yaml:"lines" toml:"lines"`
	// Echo prints each expression before its result.
	Echo bool `yaml:"echo" toml:"echo"`
	// Verbosity is the log verbosity. 0 logs errors only.
	Verbosity int `yaml:"verbosity" toml:"verbosity"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{Format: "%g"}
}

// Load reads the configuration at path, choosing the decoder by extension:
// .yaml or .yml for YAML, .toml for TOML. An empty path gives the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := cfg.decode(filepath.Ext(path), data); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// decode merges data in the format named by ext into cfg. Unknown keys are
// errors in either format.
func (cfg *Config) decode(ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "yaml")
		}
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return errors.Wrap(err, "toml")
		}
		if u := md.Undecoded(); len(u) > 0 {
			return errors.Errorf("toml: unknown key %q", u[0].String())
		}
	default:
		return errors.Errorf("unknown config format %q", ext)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (cfg *Config) Validate() error {
	if n := verbs(cfg.Format); n != 1 {
		return errors.Errorf("format %q must have exactly one verb, has %d", cfg.Format, n)
	}
	if cfg.Verbosity < 0 {
		return errors.Errorf("verbosity (%d) must not be negative", cfg.Verbosity)
	}
	return nil
}

// verbs counts the formatting verbs in a fmt string, not counting %%.
func verbs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}
