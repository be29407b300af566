// Package config provides the server configuration and the per-locale
// stopword lists the tokenizer depends on.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration, loadable from a YAML file. Zero
// values are replaced by defaults via ApplyDefaults.
type Config struct {
	Port    string `yaml:"port"`
	DataDir string `yaml:"data_dir"`
	// Locale selects the stopword list used when building the index.
	Locale string `yaml:"locale"`
	// ExtraStopwords adds locale-specific stopwords on top of the built-in
	// lists, keyed by locale code.
	ExtraStopwords map[string][]string `yaml:"extra_stopwords"`
}

// ApplyDefaults fills in defaults for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DataDir == "" {
		c.DataDir = "./script_data"
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
}

// Load reads a YAML config file and applies defaults. A missing file is not
// an error: it yields the default configuration.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the command line, not remote input
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Stopwords returns the stopword list for a locale: the built-in list (when
// the locale is known) plus any configured extras. Unknown locales get only
// their extras, so indexing still works, just without stopword removal.
func (c *Config) Stopwords(locale string) []string {
	words := append([]string(nil), builtinStopwords[locale]...)
	words = append(words, c.ExtraStopwords[locale]...)
	return words
}
