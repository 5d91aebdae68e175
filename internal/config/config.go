// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath           = "pagecheck.yaml"
	DefaultFixturePath    = "test/fixtures/test.pdf"
	DefaultOutputGlob     = "test/temp/*.pdf"
	DefaultBackend        = "pdfcpu"
	DefaultLogLevel       = "info"
	DefaultOutputBasename = "output"
)

type Config struct {
	FixturePath string      `yaml:"fixture_path"`
	OutputGlob  string      `yaml:"output_glob"`
	Backend     string      `yaml:"backend"`
	NoColor     bool        `yaml:"no_color"`
	LogLevel    string      `yaml:"log_level"`
	Split       SplitConfig `yaml:"split"`
}

// SplitConfig describes the split run whose output is verified. Parts == 0 disables verification.
type SplitConfig struct {
	Parts          int    `yaml:"parts"`
	IntroStart     int    `yaml:"intro_start"`
	IntroEnd       int    `yaml:"intro_end"`
	OutputBasename string `yaml:"output_basename"`
}

func (s SplitConfig) Enabled() bool {
	return s.Parts > 0
}

func (s SplitConfig) HasIntro() bool {
	return s.IntroStart > 0 || s.IntroEnd > 0
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Split.Parts < 0 {
		return fmt.Errorf("split.parts must not be negative, got %d", c.Split.Parts)
	}
	if c.Split.HasIntro() && (c.Split.IntroStart <= 0 || c.Split.IntroEnd < c.Split.IntroStart) {
		return fmt.Errorf("invalid intro range %d-%d", c.Split.IntroStart, c.Split.IntroEnd)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.FixturePath == "" {
		c.FixturePath = DefaultFixturePath
	}
	if c.OutputGlob == "" {
		c.OutputGlob = DefaultOutputGlob
	}
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Split.OutputBasename == "" {
		c.Split.OutputBasename = DefaultOutputBasename
	}
}
