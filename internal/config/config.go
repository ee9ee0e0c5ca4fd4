package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the well-known config file that marks a book root.
const Filename = "book.yaml"

type Config struct {
	Title           string `yaml:"title"`
	Source          string `yaml:"source"`
	BuildDir        string `yaml:"build-dir"`
	Introduction    string `yaml:"introduction"`
	Renderer        string `yaml:"renderer"`
	RendererTimeout int    `yaml:"renderer-timeout"`
}

// Load reads a YAML config file and returns a validated Config with defaults set.
func Load(path, bookRoot string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg, bookRoot); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SourceDir returns the absolute source root.
func (c *Config) SourceDir(bookRoot string) string {
	return filepath.Join(bookRoot, c.Source)
}

// BuildPath returns the absolute destination root.
func (c *Config) BuildPath(bookRoot string) string {
	return filepath.Join(bookRoot, c.BuildDir)
}

// IntroPath returns the absolute path of the introduction document.
func (c *Config) IntroPath(bookRoot string) string {
	return filepath.Join(bookRoot, c.Introduction)
}
