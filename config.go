package jaksel

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the host-side knobs read from an optional ~/.jakselrc.yaml.
// It only affects the CLI/REPL surface; the interpreter core never reads it.
type Config struct {
	Prompt     string `yaml:"prompt"`
	ContPrompt string `yaml:"cont_prompt"`
	Color      *bool  `yaml:"color"`
	Banner     *bool  `yaml:"banner"`
	History    string `yaml:"history"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Prompt:     "==> ",
		ContPrompt: "... ",
		History:    ".jaksel_history",
	}
}

// DefaultConfigPath is where LoadConfig looks when no explicit path is given.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jakselrc.yaml")
}

// LoadConfig reads a YAML config file, layering it over the defaults.
// A missing file is not an error; unknown keys are.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	if cfg.ContPrompt == "" {
		cfg.ContPrompt = DefaultConfig().ContPrompt
	}
	if cfg.History == "" {
		cfg.History = DefaultConfig().History
	}
	return cfg, nil
}
